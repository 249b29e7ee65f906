package config

import "time"

// BackendConfig describes how to reach the classroom assistant backend.
type BackendConfig struct {
	URL     string            `mapstructure:"url"`
	Timeout time.Duration     `mapstructure:"timeout"`
	Headers map[string]string `mapstructure:"headers"`
}

// RecordingConfig controls the recording controller.
type RecordingConfig struct {
	StateFile         string `mapstructure:"state_file"`
	RollbackOnFailure bool   `mapstructure:"rollback_on_failure"`
}

// Config holds the application configuration.
type Config struct {
	Backend   BackendConfig   `mapstructure:"backend"`
	Recording RecordingConfig `mapstructure:"recording"`
	LogLevel  string          `mapstructure:"log_level"`
}
