package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/gomoku.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It mirrors defaults/gomoku.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Variant: "freestyle",
		},
		Display: DisplayConfig{
			CellWidth:  2,
			ShowCoords: true,
			BlackStone: "●",
			WhiteStone: "○",
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			DBPath: "~/.gomoku/results.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
