package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-dash/internal/assets"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/games/dino"
	"github.com/vovakirdan/dino-dash/internal/platform/tui"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the runner",
	Long: `Start a run.

Controls:
  Space/Up/W  - Start, then jump
  Down/S      - Duck
  Enter/R     - Restart (after game over)
  P/Esc       - Pause
  Tab         - Run log of this session
  Ctrl+S      - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower start, lower top speed, gentler ramp
  normal - Config values unchanged
  hard   - Faster start, higher top speed, steeper ramp
  fixed  - No ramp, the base speed forever

Examples:
  arcade play
  arcade play --difficulty easy
  arcade play --seed 1234 --fps 30
  arcade play --config ./my-dino.toml --log-file dino.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config; the last row is the status line
	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = max(height-1, 1)
	rt.TickRate = flagFPS
	rt.DuckHold = flagDuckHold
	rt.Seed = flagSeed

	provider := assets.NewProvider(cfg.Assets.Dir, logger)
	game := dino.New(cfg, rt, provider, logger)

	// Open the run log
	store, err := storage.Open("")
	if err != nil {
		logger.Warn("run log unavailable", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting", "fps", rt.TickRate, "seed", rt.Seed, "size", fmt.Sprintf("%dx%d", width, height))

	// Run the game
	runErr := tui.Run(game, store, logger, rt)

	// Summarize and close the store before a potential exit
	if store != nil {
		if err := printRunSummary(os.Stdout, store); err != nil {
			logger.Warn("run summary failed", "err", err)
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
