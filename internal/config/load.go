package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (OS-specific config dir)
// 3. Project config file (current directory)
// 4. Explicit config file (--config)
// 5. Environment variables
// 6. CLI flags
//
// fs may be nil, in which case flags are not consulted.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cws, err := load(fs, nil)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
// Returns ConfigWithSources containing the config and a map of field names to their sources.
func LoadWithSources(fs *pflag.FlagSet) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}
	return load(fs, sources)
}

// load is the shared implementation. If sources is non-nil, it tracks the
// source of each value.
func load(fs *pflag.FlagSet, sources map[string]ConfigSource) (*ConfigWithSources, error) {
	cfg := &Config{}
	cws := &ConfigWithSources{Config: cfg, Sources: sources}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cws.Files = append(cws.Files, userConfigFile)
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		cws.Files = append(cws.Files, projectConfigFile)
	}

	// 4. Explicit --config file (must exist)
	if explicit := explicitConfigFile(fs); explicit != "" {
		if err := loadConfigFile(cfg, explicit, sources, SourceFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", explicit, err)
		}
		cfg.ConfigFile = explicit
		cws.Files = append(cws.Files, explicit)
	}

	// 5. Override from environment
	loadFromEnvHelper(cfg, sources, SourceEnv)

	// 6. Apply CLI flags that were set (they override everything)
	if err := applyFlags(cfg, fs, sources, SourceFlag); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 7. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// LoadFile reads, validates and decodes a single config file on top of the
// defaults. It does not consult the environment or flags.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadConfigFile(cfg, path, nil, SourceFile); err != nil {
		return nil, err
	}
	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile validates a config file and merges the keys it sets into
// cfg. Files ending in .yaml or .yml are YAML; anything else is TOML.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	// Validate the generic document first so type mismatches are reported
	// against the schema rather than as decode failures.
	raw := map[string]interface{}{}
	fileCfg := &Config{}
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
		normalizeRaw(raw)
		if errs := validateRaw(path, raw); len(errs) > 0 {
			return errors.Join(errs...)
		}
		if err := yaml.Unmarshal(data, fileCfg); err != nil {
			return fmt.Errorf("parse yaml: %w", err)
		}
	} else {
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return fmt.Errorf("parse toml: %w", err)
		}
		normalizeRaw(raw)
		if errs := validateRaw(path, raw); len(errs) > 0 {
			return errors.Join(errs...)
		}
		if _, err := toml.Decode(string(data), fileCfg); err != nil {
			return fmt.Errorf("parse toml: %w", err)
		}
	}

	mergeFileConfig(cfg, fileCfg, raw, sources, source)
	return nil
}

// normalizeRaw lower-cases enum values so files accept the same spellings
// as the environment and flags.
func normalizeRaw(raw map[string]interface{}) {
	for _, key := range []string{"log_level", "log_format"} {
		if v, ok := raw[key].(string); ok {
			raw[key] = strings.ToLower(strings.TrimSpace(v))
		}
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// mergeFileConfig copies into cfg only the keys present in the file.
func mergeFileConfig(cfg, fileCfg *Config, raw map[string]interface{}, sources map[string]ConfigSource, source ConfigSource) {
	for key := range raw {
		switch key {
		case "prompt":
			setSource(&cfg.Prompt, fileCfg.Prompt, sources, key, source)
		case "farewell":
			setSource(&cfg.Farewell, fileCfg.Farewell, sources, key, source)
		case "color":
			setSource(&cfg.Color, fileCfg.Color, sources, key, source)
		case "log_level":
			setSource(&cfg.LogLevel, fileCfg.LogLevel, sources, key, source)
		case "log_format":
			setSource(&cfg.LogFormat, fileCfg.LogFormat, sources, key, source)
		case "log_file":
			setSource(&cfg.LogFile, fileCfg.LogFile, sources, key, source)
		case "log_timestamps":
			setSource(&cfg.LogTimestamps, fileCfg.LogTimestamps, sources, key, source)
		case "log_caller":
			setSource(&cfg.LogCaller, fileCfg.LogCaller, sources, key, source)
		}
	}
}

func setSource[T any](field *T, value T, sources map[string]ConfigSource, name string, source ConfigSource) {
	*field = value
	if sources != nil {
		sources[name] = source
	}
}

// finalizeConfig computes derived values and validates settings.
func finalizeConfig(cfg *Config) error {
	// Expand ~ and environment variables in paths
	cfg.LogFile = expandPath(cfg.LogFile)

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("unknown level %q", cfg.LogLevel)}
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return &ValidationError{Path: "log_format", Err: fmt.Errorf("unknown format %q", cfg.LogFormat)}
	}

	return nil
}

// WriteTOML encodes the effective configuration as TOML.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
