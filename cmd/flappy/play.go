package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagNoSound    bool
	flagFullscreen bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Space/Up/Click  - Flap (also starts and restarts)
  F or [F]        - Toggle fullscreen
  Esc             - Leave fullscreen
  Ctrl+S          - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower start and a lower speed cap
  normal - The default speed ramp
  hard   - Faster start, higher cap, quicker ramp
  fixed  - No speed ramp at all

Examples:
  flappy play
  flappy play --fullscreen
  flappy play --difficulty easy --no-sound
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio cues")
		c.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start on the alternate screen")
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagNoSound {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := setupFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:   width,
			ScreenH:   height,
			FrameRate: flagFPS,
			Seed:      flagSeed,
		},
		Logger:     logger,
		Fullscreen: flagFullscreen,
	}

	// Continue without storage - the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
	} else {
		opts.Store = storage.HighScoreKV{Store: store}
	}

	cues, closeAudio := audio.Open(cfg.Audio, logger)
	opts.Cues = cues

	runErr := tui.Run(opts)

	closeAudio()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
