// termtris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	termtris play            - Play in the current terminal
//	termtris scores          - Show recorded session scores
//	termtris serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.termtris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termtris/termtris/internal/games/tetris"
	"github.com/termtris/termtris/internal/storage"
)

const gameID = "tetris"

// installHighScoreStore points the game at the persistent high-score
// file. Both local play and the SSH server wire this before any session
// starts, so the HUD shows the stored best and game over persists it.
func installHighScoreStore(path string) {
	tetris.SetHighScoreStore(storage.NewHighScoreFile(path))
}

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
	Use:   "termtris",
	Short: "Termtris - falling blocks in your terminal",
	Long: `Termtris is a terminal falling-block puzzle game.

Stack the pieces, clear lines, chase the high score.

Available commands:
  play     - Play in the current terminal
  scores   - View recorded scores
  serve    - Start SSH server for remote play

Examples:
  termtris play
  termtris play --level 5
  termtris scores --interactive
  termtris serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termtris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
