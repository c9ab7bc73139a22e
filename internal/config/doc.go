// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (OS-specific config directory)
// 3. Project config file (tasktree.toml, .tasktree.toml, tasktree.yaml or
//    tasktree.yml in the working directory)
// 4. The file named by --config, if any
// 5. Environment variables (TASKTREE_*)
// 6. CLI flags that were set explicitly
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - Windows: %APPDATA%\tasktree\tasktree.toml
// - macOS: ~/Library/Application Support/tasktree/tasktree.toml
// - Linux/BSD: $XDG_CONFIG_HOME/tasktree/tasktree.toml or ~/.config/tasktree/tasktree.toml
//
// Every file is checked against an embedded JSON Schema before it is
// decoded, so typos in key names and unknown log levels are reported with
// the offending key instead of being silently ignored.
package config
