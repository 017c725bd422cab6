package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gomoku/internal/registry"
	"github.com/vovakirdan/tui-gomoku/internal/storage"
)

var (
	flagResultsLimit int
	flagResultsClear bool
)

var errUnknownVariant = errors.New("unknown variant")

var resultsCmd = &cobra.Command{
	Use:   "results [variant]",
	Short: "Show finished games",
	Long: `Display the most recent finished games and the win tally.
Without a variant, a tally for every variant with results is shown,
including custom board sizes (custom11, custom13, ...).

Examples:
  gomoku results
  gomoku results freestyle
  gomoku results custom11
  gomoku results mini --limit 5
  gomoku results mini --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of games to list")
	resultsCmd.Flags().BoolVar(&flagResultsClear, "clear", false, "Delete the results of the given variant")
}

func runResults(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitWithError("%v", err)
	}
	if len(args) == 0 && flagResultsClear {
		exitWithError("--clear needs a variant")
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		exitWithError("opening results database: %v", err)
	}

	err = showResults(os.Stdout, store, args)
	store.Close()

	if errors.Is(err, errUnknownVariant) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'gomoku list' to see available variants.")
		os.Exit(1)
	}
	if err != nil {
		exitWithError("%v", err)
	}
}

func showResults(w io.Writer, store *storage.Store, args []string) error {
	if len(args) == 0 {
		tallies, err := store.AllTallies()
		if err != nil {
			return fmt.Errorf("retrieving results: %w", err)
		}
		writeTallies(w, tallies)
		return nil
	}

	v, err := resultsVariant(store, args[0])
	if err != nil {
		return err
	}

	if flagResultsClear {
		if err := store.ClearResults(v.ID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared results for %s.\n", v.ID)
		return nil
	}

	return writeVariantResults(w, store, v, flagResultsLimit)
}

// resultsVariant accepts registered IDs, custom board IDs, and any other ID
// that still has rows in the ledger.
func resultsVariant(store *storage.Store, id string) (registry.Variant, error) {
	if v, err := registry.Resolve(id); err == nil {
		return v, nil
	}

	ids, err := store.Variants()
	if err != nil {
		return registry.Variant{}, fmt.Errorf("retrieving results: %w", err)
	}
	for _, stored := range ids {
		if stored == id {
			return registry.Variant{ID: id, Title: id}, nil
		}
	}
	return registry.Variant{}, fmt.Errorf("%w %q", errUnknownVariant, id)
}

func writeTallies(w io.Writer, tallies map[string]*storage.Tally) {
	if len(tallies) == 0 {
		fmt.Fprintln(w, "No games finished yet.")
		return
	}

	ids := make([]string, 0, len(tallies))
	for id := range tallies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "  %-10s  %5s  %5s  %5s  %9s  %s\n", "Variant", "Games", "Black", "White", "Avg moves", "Last played")
	fmt.Fprintf(w, "  %-10s  %5s  %5s  %5s  %9s  %s\n", "-------", "-----", "-----", "-----", "---------", "-----------")
	for _, id := range ids {
		t := tallies[id]
		fmt.Fprintf(w, "  %-10s  %5d  %5d  %5d  %9.1f  %s\n",
			t.Variant, t.Games, t.BlackWins, t.WhiteWins, t.AvgMoves, t.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func writeVariantResults(w io.Writer, store *storage.Store, v registry.Variant, limit int) error {
	results, err := store.RecentResults(v.ID, limit)
	if err != nil {
		return fmt.Errorf("retrieving results: %w", err)
	}

	fmt.Fprintf(w, "Results - %s\n", v.Title)
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No games finished yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'gomoku play %s' to record the first one!\n", v.ID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %5s  %8s  %-12s  %s\n", "#", "Winner", "Moves", "Time", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %5s  %8s  %-12s  %s\n", "-", "------", "-----", "----", "------", "----")
	for i, r := range results {
		fmt.Fprintf(w, "  %-4d  %-6s  %5d  %8s  %-12s  %s\n",
			i+1, r.Winner, r.Moves, r.Duration, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	tally, err := store.Tally(v.ID)
	if err != nil {
		return fmt.Errorf("retrieving tally: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Black: %d  White: %d  Avg moves: %.1f\n",
		tally.Games, tally.BlackWins, tally.WhiteWins, tally.AvgMoves)
	return nil
}
