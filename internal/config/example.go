package config

// ExampleConfig returns an example configuration showing all available
// options.
func ExampleConfig() string {
	return `# Journal configuration file
# Values can be overridden by environment variables or CLI flags

# Journal file (default: ~/` + DefaultJournalName + `)
# journal_file = "~/todo/journal.json"

# Display width task text is padded to in list output
pad_width = 80

# Diagnostic log level: debug, info, warn, error
log_level = "warn"

# Status coloring of list output: auto or off
color = "auto"
`
}
