package config

import (
	_ "embed"
)

//go:embed defaults/tictactoe.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration.
// Mirrors defaults/tictactoe.yaml and is used if the embedded file is unreadable.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			CellWidth:  7,
			CellHeight: 3,
		},
		Theme: ThemeConfig{
			Title:  "bright_magenta",
			X:      "bright_red",
			O:      "bright_cyan",
			Cursor: "bright_yellow",
			Win:    "bright_green",
			Grid:   "gray",
			Hint:   "gray",
		},
		Server: ServerConfig{
			Address:            ":23234",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
