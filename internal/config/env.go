package config

import (
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvPrompt        = "TASKTREE_PROMPT"
	EnvFarewell      = "TASKTREE_FAREWELL"
	EnvColor         = "TASKTREE_COLOR"
	EnvLogLevel      = "TASKTREE_LOG_LEVEL"
	EnvLogFormat     = "TASKTREE_LOG_FORMAT"
	EnvLogFile       = "TASKTREE_LOG_FILE"
	EnvLogTimestamps = "TASKTREE_LOG_TIMESTAMPS"
	EnvLogCaller     = "TASKTREE_LOG_CALLER"
)

// loadFromEnvHelper overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnvHelper(cfg *Config, sources map[string]ConfigSource, source ConfigSource) {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = source
		}
	}

	// An empty prompt is meaningful, so presence is checked rather than value.
	if v, ok := os.LookupEnv(EnvPrompt); ok {
		cfg.Prompt = v
		setEnv("prompt")
	}
	if v := os.Getenv(EnvFarewell); v != "" {
		cfg.Farewell = v
		setEnv("farewell")
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.Color = boolFromString(v)
		setEnv("color")
	}

	// Logging configuration
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
		setEnv("log_file")
	}
	if v := os.Getenv(EnvLogTimestamps); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv(EnvLogCaller); v != "" {
		cfg.LogCaller = boolFromString(v)
		setEnv("log_caller")
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
