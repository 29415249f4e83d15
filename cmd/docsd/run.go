package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/woragis/docs-service/pkg/cli"
	"github.com/woragis/docs-service/pkg/config"
	"github.com/woragis/docs-service/pkg/docs"
	"github.com/woragis/docs-service/pkg/server"
	"github.com/woragis/docs-service/pkg/telemetry/health"
	"github.com/woragis/docs-service/pkg/telemetry/logging"
	"github.com/woragis/docs-service/pkg/telemetry/metrics"
	"github.com/woragis/docs-service/pkg/telemetry/tracing"
)

var runFlags struct {
	listenAddress string
	docsRoot      string
	logLevel      string
	dryRun        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the docs server",
	Long: `Start the docs server with the specified configuration.

The server lists and renders markdown documents from the configured docs
root and exposes health and metrics endpoints.

Examples:
  # Start with default config
  docsd run

  # Start with custom config
  docsd run --config /etc/docsd/config.yaml

  # Override the docs directory
  docsd run --docs-root ./docs

  # Validate config without starting server
  docsd run --dry-run`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.docsRoot, "docs-root", "", "override docs root directory")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false, "validate config without starting server")
}

func runServer(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()

	// Apply flag overrides
	if runFlags.listenAddress != "" {
		cfg.Server.ListenAddress = runFlags.listenAddress
	}
	if runFlags.docsRoot != "" {
		cfg.Docs.Root = runFlags.docsRoot
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}

	logger, err := logging.Setup(&cfg.Telemetry.Logging)
	if err != nil {
		return cli.NewConfigError("telemetry.logging", err.Error())
	}

	if runFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	fmt.Printf("docsd v%s\n", Version)
	fmt.Printf("Loading configuration from: %s\n", cfgFile)
	fmt.Println("✓ Configuration loaded")

	// Tracing
	tracer, err := tracing.New(&cfg.Telemetry.Tracing)
	if err != nil {
		return cli.NewCommandError("run", fmt.Errorf("failed to initialize tracing: %w", err))
	}
	defer func() { _ = tracer.Shutdown(context.Background()) }()
	if tracer.Enabled() {
		fmt.Println("✓ Tracing initialized")
	}

	// Metrics
	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)

	// Docs domain
	if _, err := os.Stat(cfg.Docs.Root); err != nil {
		logger.Warn("docs root not accessible at startup", "root", cfg.Docs.Root, "error", err)
	}

	renderer := docs.NewRenderer(cfg.Docs.MarkdownExtensions, logger)
	catalog := docs.NewCatalog(cfg.Docs.Root, logger)
	service := docs.NewService(cfg.Docs.Root, renderer, logger)

	// Health
	checker := health.New("docs-service", cfg.Health.CacheTTL, health.DocsChecks(cfg.Docs.Root)...)
	checker.OnCacheLookup(collector.Docs().RecordHealthCache)

	// Seed the file-count gauge
	if count, err := catalog.Count(); err == nil {
		collector.Docs().SetMarkdownFiles(count)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Watcher keeps the file-count gauge and health cache fresh
	if cfg.Docs.Watch {
		watcherCfg := docs.DefaultWatcherConfig(cfg.Docs.Root)
		watcherCfg.RescanSchedule = cfg.Docs.RescanSchedule
		watcher, err := docs.NewWatcher(watcherCfg, logger)
		if err != nil {
			logger.Warn("failed to initialize docs watcher", "error", err)
		} else {
			go func() {
				defer func() { _ = watcher.Stop() }()
				err := watcher.Watch(ctx, func() {
					checker.Invalidate()
					collector.Docs().RecordCatalogScan()
					if count, err := catalog.Count(); err == nil {
						collector.Docs().SetMarkdownFiles(count)
					}
				})
				if err != nil && ctx.Err() == nil {
					logger.Error("docs watcher stopped", "error", err)
				}
			}()
			fmt.Println("✓ Docs watcher started")
		}
	}

	srv := server.New(server.Options{
		Config:    cfg,
		Catalog:   catalog,
		Service:   service,
		Checker:   checker,
		Collector: collector,
		Logger:    logger,
		Version:   Version,
	})

	fmt.Printf("✓ Server listening on %s\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Docs endpoint: http://%s/api/v1/docs/\n", cfg.Server.ListenAddress)
	fmt.Printf("✓ Health endpoint: http://%s/healthz\n", cfg.Server.ListenAddress)
	if cfg.Telemetry.Metrics.Enabled {
		fmt.Printf("✓ Metrics endpoint: http://%s%s\n", cfg.Server.ListenAddress, cfg.Telemetry.Metrics.Path)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	if err := srv.Start(ctx); err != nil {
		return cli.NewCommandError("run", err)
	}

	fmt.Println("✓ Server stopped")
	return nil
}
