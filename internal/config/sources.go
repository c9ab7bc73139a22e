package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "tasktree"

// projectConfigNames are checked in order in the working directory.
var projectConfigNames = []string{"tasktree.toml", ".tasktree.toml", "tasktree.yaml", "tasktree.yml"}

// findProjectConfigFile looks for a config file in the current directory.
func findProjectConfigFile() string {
	for _, name := range projectConfigNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// findUserConfigFile looks for a user-level config file in the OS-specific
// config directory, TOML first.
func findUserConfigFile() string {
	cfgDir := osUserConfigDir()
	if cfgDir == "" {
		return ""
	}
	for _, name := range []string{"tasktree.toml", "tasktree.yaml", "tasktree.yml"} {
		userConfigPath := filepath.Join(cfgDir, appName, name)
		if _, err := os.Stat(userConfigPath); err == nil {
			return userConfigPath
		}
	}
	return ""
}

// UserConfigPath returns where the user-level TOML file is expected, even
// if it does not exist yet.
func UserConfigPath() string {
	cfgDir := osUserConfigDir()
	if cfgDir == "" {
		return ""
	}
	return filepath.Join(cfgDir, appName, "tasktree.toml")
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("APPDATA"); appdata != "" {
			return appdata
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}
