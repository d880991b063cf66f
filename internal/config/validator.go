package config

import (
	"fmt"
	"strings"
)

// Validate checks enumerated fields and numeric ranges, accumulating
// every problem into one error.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Input == "" {
		errs = append(errs, "input path is required")
	}
	if cfg.Output == "" {
		errs = append(errs, "output directory is required")
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Sprintf("workers must be >= 0, got %d", cfg.Workers))
	}
	if cfg.Attack.Trials < 1 {
		errs = append(errs, fmt.Sprintf("attack.trials must be >= 1, got %d", cfg.Attack.Trials))
	}

	switch cfg.Store.Backend {
	case BackendSQLite, BackendPostgres, BackendMemory:
	default:
		errs = append(errs, fmt.Sprintf("unknown store.backend %q (sqlite, postgres, memory)", cfg.Store.Backend))
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("unknown log.level %q (debug, info, warn, error)", cfg.Log.Level))
	}

	switch cfg.Log.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("unknown log.format %q (text, json)", cfg.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
