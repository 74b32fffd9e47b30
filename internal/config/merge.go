package config

// Merge combines global and project configs. Project values take precedence;
// zero-value project fields fall through to the global config.
func Merge(global, repo *Config) *Config {
	merged := Config{}
	if global != nil {
		merged = *global
	}
	if repo == nil {
		return &merged
	}

	if repo.DebugReport != "" {
		merged.DebugReport = repo.DebugReport
	}
	if repo.Title != "" {
		merged.Title = repo.Title
	}
	if repo.RunID != nil {
		merged.RunID = repo.RunID
	}
	if repo.MaxParallelReads > 0 {
		merged.MaxParallelReads = repo.MaxParallelReads
	}

	return &merged
}
