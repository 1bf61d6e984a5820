// hovercat is a terminal flappy-style game starring a hovering cat.
//
// Usage:
//
//	hovercat play            - Play the game
//	hovercat scores          - Show the leaderboard
//	hovercat serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.hovercat/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hovercat",
	Short: "Hovercat - Fly a cat through the pipes in your terminal",
	Long: `Hovercat is a terminal game: keep a hovering cat airborne and steer
it through an endless stream of pipes. The game speeds up the longer
you survive.

Available commands:
  play     - Play the game
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  hovercat play
  hovercat play --difficulty hard
  hovercat scores
  hovercat serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hovercat/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
