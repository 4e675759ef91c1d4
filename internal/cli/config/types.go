// Package config provides configuration management for the vocabclean CLI.
//
// Only process-level settings are configurable (file paths, backups, output
// and logging). The classifier's lookup lists are fixed; see
// classify.DefaultConfig.
package config

import "log/slog"

// Config holds all CLI configuration options.
type Config struct {
	Input        string     `koanf:"input" yaml:"input"`
	OutputFile   string     `koanf:"output_file" yaml:"output_file"`
	InPlace      bool       `koanf:"in_place" yaml:"in_place"`
	Backup       bool       `koanf:"backup" yaml:"backup"`
	ShowDropped  bool       `koanf:"show_dropped" yaml:"show_dropped"`
	OutputFormat string     `koanf:"output" yaml:"output"`
	Verbose      bool       `koanf:"verbose" yaml:"verbose"`
	LogLevel     slog.Level `koanf:"log_level" yaml:"log_level"`
}

// Default configuration values.
const (
	DefaultInput      = "vocabulary_data_all.csv"
	DefaultOutputFile = "vocabulary_data.csv"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel   = "warn"
	DefaultConfigName = "vocabclean.yaml"
	EnvPrefix         = "VOCABCLEAN_"
)

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		Input:        DefaultInput,
		OutputFile:   DefaultOutputFile,
		Backup:       true,
		OutputFormat: DefaultOutput,
		LogLevel:     slog.LevelWarn,
	}
}

// EffectiveLogLevel returns the log level, lowered to debug when verbose.
func (c *Config) EffectiveLogLevel() slog.Level {
	if c.Verbose && c.LogLevel > slog.LevelDebug {
		return slog.LevelDebug
	}
	return c.LogLevel
}
