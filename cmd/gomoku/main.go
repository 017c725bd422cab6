// gomoku is a two-player five-in-a-row board for the terminal.
//
// Usage:
//
//	gomoku list               - List board variants
//	gomoku play [variant]     - Play a hot-seat game
//	gomoku menu               - Pick a variant interactively
//	gomoku results [variant]  - Show finished games
//	gomoku serve              - Start SSH server, one board per session
//	gomoku config             - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.gomoku/configs, ./configs)
//	--db <path>         - Results database path (default: ~/.gomoku/results.db)
//	--log-level <lvl>   - debug, info, warn, error
//	--log-file <path>   - Write play logs to a file
//	--no-color          - Disable colours
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gomoku/internal/config"
	"github.com/vovakirdan/tui-gomoku/internal/logging"
	"github.com/vovakirdan/tui-gomoku/internal/registry"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gomoku",
	Short: "Gomoku - five in a row in your terminal",
	Long: `Gomoku is a two-player board game: Black and White take turns placing
stones on the intersections of a grid. The first to line up five or more
stones horizontally, vertically or diagonally wins.

Available commands:
  list     - Show all board variants
  play     - Play a hot-seat game on one keyboard
  menu     - Interactive variant picker
  results  - View finished games
  serve    - Start SSH server, every session gets its own board
  config   - Print the default configuration

Examples:
  gomoku list
  gomoku play
  gomoku play go19
  gomoku results mini
  gomoku serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colours")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("no-color") {
		cfg.Display.NoColor = flagNoColor
	}

	return cfg, cfg.Validate()
}

// resolveVariant picks the variant from args or the config. A non-zero
// board.size replaces the variant's board with a custom one.
func resolveVariant(args []string, cfg config.Config) (registry.Variant, error) {
	id := cfg.Board.Variant
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		id = registry.DefaultVariant
	}

	v, err := registry.Lookup(id)
	if err != nil {
		return v, err
	}
	return v.WithSize(cfg.Board.Size), nil
}

// openPlayLogger returns the logger for interactive commands. The TUI owns
// the terminal, so logs go to the configured file or nowhere.
func openPlayLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return logging.Discard(), io.NopCloser(nil), nil
	}
	path, err := config.ExpandHome(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(path, "gomoku", cfg.Log.Level)
}

func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
