package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termtris/termtris/internal/core"
	"github.com/termtris/termtris/internal/games/tetris"
	"github.com/termtris/termtris/internal/platform/tui"
	"github.com/termtris/termtris/internal/registry"
	"github.com/termtris/termtris/internal/storage"
)

var (
	flagConfig      string
	flagStartLevel  int
	flagHiscorePath string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Down/S     - Soft drop
  Space      - Hard drop
  Z/Up/W     - Rotate
  C          - Hold piece
  H          - Help overlay
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  termtris play
  termtris play --level 5
  termtris play --config ./my-rules.yaml
  termtris play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Starting level, 1-10 (0 = use config)")
	playCmd.Flags().StringVar(&flagHiscorePath, "hiscore", "~/.termtris/hiscore.txt", "Path to high score file")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagStartLevel != 0 && (flagStartLevel < 1 || flagStartLevel > 10) {
		fmt.Fprintln(os.Stderr, "Error: --level must be between 1 and 10")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	tetris.SetConfigPath(flagConfig)
	if flagStartLevel > 0 {
		tetris.SetStartLevel(flagStartLevel)
	}
	installHighScoreStore(flagHiscorePath)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
