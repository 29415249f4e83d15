package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woragis/docs-service/pkg/cli"
	"github.com/woragis/docs-service/pkg/config"
)

var validateFlags struct {
	format string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Load and validate the configuration file without starting the server.

Checks the listen address, docs root settings, markdown extensions,
health cache TTL, and telemetry configuration, and reports the effective
values after environment overrides are applied.

Examples:
  # Validate the default config
  docsd validate

  # Validate a specific config file
  docsd validate --config /etc/docsd/config.yaml

  # Print the effective config as JSON
  docsd validate --format json`,
	RunE: validateConfig,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
}

func validateConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		return cli.NewConfigError("", err.Error())
	}

	format, err := cli.ParseFormat(validateFlags.format)
	if err != nil {
		return cli.NewCommandError("validate", err)
	}

	if format == cli.FormatJSON {
		formatter := cli.NewFormatter(format)
		return formatter.FormatTo(os.Stdout, cfg)
	}

	fmt.Println("✓ Configuration valid")
	fmt.Printf("  Listen address:   %s\n", cfg.Server.ListenAddress)
	fmt.Printf("  Docs root:        %s\n", cfg.Docs.Root)
	fmt.Printf("  Extensions:       %v\n", cfg.Docs.MarkdownExtensions)
	fmt.Printf("  Health cache TTL: %s\n", cfg.Health.CacheTTL)
	fmt.Printf("  Log level:        %s\n", cfg.Telemetry.Logging.Level)
	fmt.Printf("  Metrics enabled:  %t\n", cfg.Telemetry.Metrics.Enabled)
	fmt.Printf("  Tracing enabled:  %t\n", cfg.Telemetry.Tracing.Enabled)
	return nil
}
