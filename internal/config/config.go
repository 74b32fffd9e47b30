// Package config handles dbgreport configuration files.
//
// Settings come from a global file under $XDG_CONFIG_HOME/dbgreport and a
// project file (.dbgreport.yaml, or dbgreport.toml when no YAML file exists).
// Project values override global ones.
package config

// Config represents the contents of a dbgreport configuration file.
type Config struct {
	// DebugReport is the path the finished HTML report is written to.
	DebugReport      string `yaml:"debug_report,omitempty" toml:"debug_report,omitempty"`
	Title            string `yaml:"title,omitempty" toml:"title,omitempty"`
	RunID            *bool  `yaml:"run_id,omitempty" toml:"run_id,omitempty"`
	MaxParallelReads int    `yaml:"max_parallel_reads,omitempty" toml:"max_parallel_reads,omitempty"`
}

// FileName is the expected YAML config file name in a project root.
const FileName = ".dbgreport.yaml"

// TOMLFileName is the TOML alternative, read only when FileName is absent.
const TOMLFileName = "dbgreport.toml"

// ReportPath returns the configured output path. It lets a Config serve as
// the report's destination.
func (c *Config) ReportPath() string {
	if c == nil {
		return ""
	}
	return c.DebugReport
}

// RunIDEnabled reports whether a run identifier should be embedded in the
// report. It defaults to true.
func (c *Config) RunIDEnabled() bool {
	if c == nil || c.RunID == nil {
		return true
	}
	return *c.RunID
}
