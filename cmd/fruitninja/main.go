// fruitninja is a Fruit Ninja clone playable in the terminal or a window.
//
// Usage:
//
//	fruitninja               - Play in the terminal
//	fruitninja window        - Play in a desktop window
//	fruitninja scores        - Show the top-5 leaderboard
//	fruitninja history       - Browse recorded runs
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawning
//	--db <path>           - Set run history database (default: ~/.fruitninja/history.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--mute                - Run without sound
//	--log <path>          - Log file, "-" for stderr (default: ~/.fruitninja/fruitninja.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitninja",
	Short: "Fruit Ninja - slice fruit with your mouse",
	Long: `Fruit Ninja: fruits fly up from the bottom of the screen, move the
mouse over them to slice them. Every fruit that escapes through the top
costs a life; after three misses the game is over.

Controls:
  Mouse      - Slice fruit, click buttons
  P          - Pause / unpause
  Ctrl+C     - Quit (terminal)

Difficulty options:
  easy   - Speed up every 7 seconds
  normal - Speed up every 5 seconds
  hard   - Speed up every 3 seconds
  fixed  - Never speed up

Examples:
  fruitninja
  fruitninja --difficulty hard
  fruitninja window
  fruitninja scores`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fruitninja/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.fruitninja/fruitninja.log", `Log file ("-" for stderr)`)

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
