package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gomoku/internal/gomoku"
	"github.com/vovakirdan/tui-gomoku/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered board variant. All variants use the five-in-a-row rule.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "ID", "Board", "Title")
	fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-5s  %s\n", maxIDLen, v.ID, fmt.Sprintf("%dx%d", v.Size, v.Size), v.Title)
	}

	fmt.Println()
	fmt.Printf("Win by lining up %d or more stones.\n", gomoku.WinLength)
	fmt.Println("Run 'gomoku play <id>' to play.")
}
