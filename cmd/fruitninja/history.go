package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-arcade/internal/platform/tui"
	"github.com/vovakirdan/fruit-arcade/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs",
	Long: `Open an interactive table of every finished run, newest first.
Press tab to switch to the best runs; X clears the history.

Examples:
  fruitninja history
  fruitninja history --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
