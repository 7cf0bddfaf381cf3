// Package config provides YAML-based configuration loading for the game,
// its terminal theme, the SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// Minimum cell size that still fits a mark between cursor brackets.
const (
	MinCellWidth  = 3
	MinCellHeight = 1
	MaxCellWidth  = 15
	MaxCellHeight = 7
)

var (
	ErrInvalidBoard = errors.New("invalid board settings")
	ErrInvalidTheme = errors.New("invalid theme")
	ErrInvalidLog   = errors.New("invalid log settings")
)

// Config contains all configuration for the game.
type Config struct {
	Board  BoardConfig  `yaml:"board"`
	Theme  ThemeConfig  `yaml:"theme"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// BoardConfig defines how large each of the nine cells is drawn.
type BoardConfig struct {
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// ThemeConfig maps screen elements to color names (see core.ParseColor).
type ThemeConfig struct {
	Title  string `yaml:"title"`
	X      string `yaml:"x"`
	O      string `yaml:"o"`
	Cursor string `yaml:"cursor"`
	Win    string `yaml:"win"`
	Grid   string `yaml:"grid"`
	Hint   string `yaml:"hint"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"` // Auto-generated under ~/.tictactoe when empty
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig defines logger parameters.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty disables logging while a game owns the terminal
}

// Palette is a resolved ThemeConfig.
type Palette struct {
	Title  core.Color
	X      core.Color
	O      core.Color
	Cursor core.Color
	Win    core.Color
	Grid   core.Color
	Hint   core.Color
}

// Palette resolves the theme color names.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"title", t.Title, &p.Title},
		{"x", t.X, &p.X},
		{"o", t.O, &p.O},
		{"cursor", t.Cursor, &p.Cursor},
		{"win", t.Win, &p.Win},
		{"grid", t.Grid, &p.Grid},
		{"hint", t.Hint, &p.Hint},
	}
	for _, f := range fields {
		c, ok := core.ParseColor(f.name)
		if !ok {
			return Palette{}, fmt.Errorf("%w: unknown color %q for %s", ErrInvalidTheme, f.name, f.key)
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Board.CellWidth < MinCellWidth || c.Board.CellWidth > MaxCellWidth {
		return fmt.Errorf("%w: cell_width %d not in [%d, %d]",
			ErrInvalidBoard, c.Board.CellWidth, MinCellWidth, MaxCellWidth)
	}
	if c.Board.CellHeight < MinCellHeight || c.Board.CellHeight > MaxCellHeight {
		return fmt.Errorf("%w: cell_height %d not in [%d, %d]",
			ErrInvalidBoard, c.Board.CellHeight, MinCellHeight, MaxCellHeight)
	}
	if _, err := c.Theme.Palette(); err != nil {
		return err
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel returns the configured log level, defaulting to info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if strings.TrimSpace(l.Level) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("%w: %w", ErrInvalidLog, err)
	}
	return lvl, nil
}
