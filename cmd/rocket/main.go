// rocket is a terminal arcade shooter: steer the ship, shoot down enemies,
// survive as long as possible.
//
// Usage:
//
//	rocket play        - Play in the current terminal
//	rocket serve       - Start SSH server for remote play
//	rocket scores      - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.rocket/runs.db)
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
	Use:   "rocket",
	Short: "Rocket - a terminal arcade shooter",
	Long: `Rocket is a terminal arcade shooter. Steer the ship with the arrow
keys or WASD, fire with space, and survive the enemy swarm as long
as you can.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  rocket play
  rocket play --difficulty hard
  rocket serve --ssh :2222
  rocket scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rocket/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
