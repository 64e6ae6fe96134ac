package app

import (
	"errors"
	"fmt"

	"github.com/vk/hypergraph/internal/config"
)

// DefaultProjectFile is read when no project file is named and it exists in
// the working directory.
const DefaultProjectFile = "hypergraph.hcl"

// Config holds the process-level settings of an App, as resolved by the CLI.
type Config struct {
	// ConfigPath is the HCL project file. Empty means DefaultProjectFile if
	// present.
	ConfigPath string
	// Flags are the run settings given explicitly on the command line; they
	// take precedence over every other source.
	Flags config.Overrides

	LogFormat string
	LogLevel  string
	// DryRun writes the merged description to the output writer instead of
	// persisting anything.
	DryRun bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	switch cfg.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat))
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}
