package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gomoku/internal/config"
	"github.com/vovakirdan/tui-gomoku/internal/platform/tui"
	"github.com/vovakirdan/tui-gomoku/internal/registry"
	"github.com/vovakirdan/tui-gomoku/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a hot-seat game",
	Long: `Start a two-player game on one keyboard. Black moves first.
Without a variant the board from the config (board.variant) is used.

Controls:
  Arrows/hjkl/wasd  - Move cursor
  Space/Enter       - Place stone (or click an intersection)
  R                 - Restart
  Tab               - Results
  Esc/B             - Back to menu
  Q/Ctrl+C          - Quit

Examples:
  gomoku play
  gomoku play mini
  gomoku play go19 --log-file ./gomoku.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board variant interactively",
	Long: `Start with the variant picker. After leaving a board you return to
the menu to pick another one.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Results
  Q            - Quit`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitWithError("%v", err)
	}

	v, err := resolveVariant(args, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gomoku list' to see available variants.")
		os.Exit(1)
	}

	if err := runInteractive(cfg, &v); err != nil {
		exitWithError("%v", err)
	}
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitWithError("%v", err)
	}
	if err := runInteractive(cfg, nil); err != nil {
		exitWithError("%v", err)
	}
}

// runInteractive runs a local session, on a board when v is set and on the
// menu otherwise. The log file and the store are closed before it returns.
func runInteractive(cfg config.Config, v *registry.Variant) error {
	logger, closer, err := openPlayLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		logger.Warn("results disabled", "error", err)
		// Continue without storage - the board still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.GameOptions{
		Board:   cfg.Board,
		Display: cfg.Display,
		Theme:   tui.NewTheme(nil, cfg.Display.NoColor),
		Store:   store,
		Logger:  logger,
		Player:  localUser(),
		Width:   width,
		Height:  height,
	}

	if err := tui.Run(v, opts); err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func localUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}
