package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/leaderboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top-5 leaderboard",
	Long: `Display the five best results stored in the leaderboard file.
Results are ranked by score, ties broken by the shorter time.

Examples:
  fruitninja scores
  fruitninja scores --config ./my-fruitninja.yaml`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	path, err := config.ExpandHome(cfg.Leaderboard.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	table, err := leaderboard.NewFileStore(path, log.New(io.Discard)).Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading leaderboard: %v\n", err)
		os.Exit(1)
	}

	printScores(os.Stdout, path, table)
}

// printScores writes the leaderboard as a plain text table.
func printScores(w io.Writer, path string, table leaderboard.Table) {
	fmt.Fprintln(w, "Best Scores - Fruit Ninja")
	fmt.Fprintf(w, "(%s)\n", path)
	fmt.Fprintln(w)

	ranked := table.Ranked()
	if ranked[0].Score == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'fruitninja' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %s\n", "Rank", "Score", "Time")
	fmt.Fprintf(w, "  %-4s  %-6s  %s\n", "----", "-----", "----")
	for _, r := range ranked {
		fmt.Fprintf(w, "  %-4s  %-6d  %.2fs\n", r.Rank, r.Score, r.Time)
	}
}
