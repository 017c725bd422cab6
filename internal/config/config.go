// Package config provides YAML-based configuration loading for the
// Gomoku board host: board variant, display options, logging, storage
// and the SSH server.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Config is the full host configuration.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// BoardConfig selects the board. A non-zero Size overrides the variant's size.
type BoardConfig struct {
	Variant string `yaml:"variant"`
	Size    int    `yaml:"size"`
}

// DisplayConfig controls how the board is drawn in the terminal.
type DisplayConfig struct {
	CellWidth  int    `yaml:"cell_width"` // Terminal columns per intersection
	ShowCoords bool   `yaml:"show_coords"`
	NoColor    bool   `yaml:"no_color"`
	BlackStone string `yaml:"black_stone"`
	WhiteStone string `yaml:"white_stone"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty discards play-mode logs
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig configures the serve command.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Board size limits. The lower bound is the win length; the upper bound
// keeps labels to a single letter.
const (
	MinBoardSize = 5
	MaxBoardSize = 26
)

// Validate checks the configuration for values the host cannot work with.
func (c Config) Validate() error {
	if c.Board.Size != 0 && (c.Board.Size < MinBoardSize || c.Board.Size > MaxBoardSize) {
		return fmt.Errorf("config: board.size %d out of range [%d, %d]", c.Board.Size, MinBoardSize, MaxBoardSize)
	}
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 4 {
		return fmt.Errorf("config: display.cell_width %d out of range [1, 4]", c.Display.CellWidth)
	}
	if utf8.RuneCountInString(c.Display.BlackStone) != 1 {
		return fmt.Errorf("config: display.black_stone must be a single character, got %q", c.Display.BlackStone)
	}
	if utf8.RuneCountInString(c.Display.WhiteStone) != 1 {
		return fmt.Errorf("config: display.white_stone must be a single character, got %q", c.Display.WhiteStone)
	}
	if c.Display.BlackStone == c.Display.WhiteStone {
		return fmt.Errorf("config: black and white stones must differ")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative")
	}
	return nil
}

// BlackRune returns the glyph drawn for black stones.
func (d DisplayConfig) BlackRune() rune {
	r, _ := utf8.DecodeRuneInString(d.BlackStone)
	return r
}

// WhiteRune returns the glyph drawn for white stones.
func (d DisplayConfig) WhiteRune() rune {
	r, _ := utf8.DecodeRuneInString(d.WhiteStone)
	return r
}
