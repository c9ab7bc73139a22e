package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasktree configuration file
# Values can be overridden by TASKTREE_* environment variables or CLI flags.

# Prompt printed before each command
prompt = ">>> "

# Line printed on exit
farewell = "Thanks for using the To Do App"

# Color the prompt and messages (the table is always plain text)
color = false

# Logging: debug, info, warn or error
log_level = "warn"

# Log format: text, json or logfmt
log_format = "text"

# Write logs to a file instead of stderr (supports ~ and $VAR)
# log_file = "~/.local/state/tasktree/tasktree.log"

log_timestamps = false
log_caller = false
`
}
