package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("docs.root", "must not be empty")

	if !strings.Contains(err.Error(), "docs.root") {
		t.Errorf("Error() = %q, missing field", err.Error())
	}
	if !strings.Contains(err.Error(), "must not be empty") {
		t.Errorf("Error() = %q, missing message", err.Error())
	}
}

func TestCommandError(t *testing.T) {
	cause := errors.New("address in use")
	err := NewCommandError("run", cause)

	if !strings.Contains(err.Error(), "run") {
		t.Errorf("Error() = %q, missing command", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the wrapped cause")
	}
}
