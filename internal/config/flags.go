package config

import (
	"github.com/spf13/pflag"
)

// Flag names.
const (
	FlagConfig        = "config"
	FlagPrompt        = "prompt"
	FlagFarewell      = "farewell"
	FlagColor         = "color"
	FlagLogLevel      = "log-level"
	FlagLogFormat     = "log-format"
	FlagLogFile       = "log-file"
	FlagLogTimestamps = "log-timestamps"
	FlagLogCaller     = "log-caller"
)

// BindFlags registers the configuration flags on fs. Defaults shown in help
// are the built-in defaults; only flags the user sets override file and
// environment values.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "Path to a config file (TOML or YAML)")
	fs.String(FlagPrompt, DefaultPrompt, "Shell prompt")
	fs.String(FlagFarewell, DefaultFarewell, "Line printed on exit")
	fs.Bool(FlagColor, DefaultColor, "Color prompt and messages")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level (debug|info|warn|error)")
	fs.String(FlagLogFormat, DefaultLogFormat, "Log format (text|json|logfmt)")
	fs.String(FlagLogFile, "", "Write logs to this file instead of stderr")
	fs.Bool(FlagLogTimestamps, false, "Include timestamps in logs")
	fs.Bool(FlagLogCaller, false, "Include caller location in logs")
}

func explicitConfigFile(fs *pflag.FlagSet) string {
	if fs == nil || fs.Lookup(FlagConfig) == nil {
		return ""
	}
	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return ""
	}
	return path
}

// applyFlags copies explicitly set flags into cfg.
// If sources is non-nil, it tracks the source of each value.
func applyFlags(cfg *Config, fs *pflag.FlagSet, sources map[string]ConfigSource, source ConfigSource) error {
	if fs == nil {
		return nil
	}

	type stringBinding struct {
		flag   string
		field  string
		target *string
	}
	type boolBinding struct {
		flag   string
		field  string
		target *bool
	}

	for _, b := range []stringBinding{
		{FlagPrompt, "prompt", &cfg.Prompt},
		{FlagFarewell, "farewell", &cfg.Farewell},
		{FlagLogLevel, "log_level", &cfg.LogLevel},
		{FlagLogFormat, "log_format", &cfg.LogFormat},
		{FlagLogFile, "log_file", &cfg.LogFile},
	} {
		if fs.Lookup(b.flag) == nil || !fs.Changed(b.flag) {
			continue
		}
		v, err := fs.GetString(b.flag)
		if err != nil {
			return err
		}
		setSource(b.target, v, sources, b.field, source)
	}

	for _, b := range []boolBinding{
		{FlagColor, "color", &cfg.Color},
		{FlagLogTimestamps, "log_timestamps", &cfg.LogTimestamps},
		{FlagLogCaller, "log_caller", &cfg.LogCaller},
	} {
		if fs.Lookup(b.flag) == nil || !fs.Changed(b.flag) {
			continue
		}
		v, err := fs.GetBool(b.flag)
		if err != nil {
			return err
		}
		setSource(b.target, v, sources, b.field, source)
	}

	return nil
}
