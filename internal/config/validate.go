package config

import (
	"fmt"
	"strings"
)

// MaxParallelReadsLimit bounds max_parallel_reads.
const MaxParallelReadsLimit = 256

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if strings.HasSuffix(cfg.DebugReport, "/") {
		errs = append(errs, fmt.Sprintf("debug_report: must name a file, got directory %q", cfg.DebugReport))
	}

	if cfg.MaxParallelReads < 0 || cfg.MaxParallelReads > MaxParallelReadsLimit {
		errs = append(errs, fmt.Sprintf("max_parallel_reads: must be between 0 and %d, got %d", MaxParallelReadsLimit, cfg.MaxParallelReads))
	}

	if strings.ContainsAny(cfg.Title, "\n\r") {
		errs = append(errs, "title: must be a single line")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
