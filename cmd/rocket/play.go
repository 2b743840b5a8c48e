package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/rocket-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWidth      float64
	flagHeight     float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Arrows/WASD - Steer the ship
  Space       - Fire
  Q/Ctrl+C    - Quit
  Any key     - Restart (after game over)

Difficulty presets:
  easy   - Slower enemies, fewer spawns
  normal - Stock values
  hard   - Faster enemies, denser spawns

Examples:
  rocket play
  rocket play --difficulty hard
  rocket play --width 1280 --height 720
  rocket play --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().Float64Var(&flagWidth, "width", 0, "Arena width in world units (0 = config value)")
	playCmd.Flags().Float64Var(&flagHeight, "height", 0, "Arena height in world units (0 = config value)")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", presetErr)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	if flagWidth > 0 {
		cfg.Arena.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Arena.Height = flagHeight
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Size the screen before the first WindowSizeMsg arrives
	screenW, screenH := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		screenW, screenH = w, h
	}

	runErr := tui.Run(cfg, tui.Options{
		FPS:     flagFPS,
		Seed:    flagSeed,
		Store:   store,
		ScreenW: screenW,
		ScreenH: screenH,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
