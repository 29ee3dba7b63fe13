// Package config handles loading and validation of tprompt configuration.
//
// Configuration is read from ~/.config/tprompt/config.toml, or from the
// file named by the TPROMPT_CONFIG environment variable.
//
// # Key Settings
//
//   - theme.name: color preset ("default", "dracula", "nord", "gruvbox", "none")
//   - width: modal content width in cells (20-120, default 50)
//   - char_limit: maximum runes accepted by the text field (default 256)
//   - labels.cancel: label of the cancel button when a prompt sets none
//   - history.enabled / history.max_entries: remembered values per key
//
// Example:
//
//	theme.name = "nord"
//	width = 60
//
//	[labels]
//	cancel = "Abbrechen"
//
//	[history]
//	enabled = true
//	max_entries = 50
//
// Keys missing from the file keep their defaults. A file that fails to
// parse or validate yields Default() together with the error.
package config
