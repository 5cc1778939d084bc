// flappy is a terminal flappy-bird game.
//
// Usage:
//
//	flappy                   - Play (same as "flappy play")
//	flappy play              - Play in this terminal
//	flappy scores            - Show the high score and best runs
//	flappy config            - Print the effective configuration
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacles
//	--db <path>           - Set database path (default: ~/.flappy/flappy.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap through the pipes in your terminal",
	Long: `Flappy is a terminal take on the one-button arcade classic: the bird
falls, you flap, and the pipes keep coming faster.

Available commands:
  play     - Play in this terminal (default)
  scores   - View the high score and best runs
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  flappy
  flappy play --difficulty hard
  flappy scores
  flappy serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/flappy.db", "Path to database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	return cfg, nil
}

// setupFileLogger points the default logger at --log, or discards logs so
// nothing is written over the game screen. The returned func closes the file.
func setupFileLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		logger := log.New(io.Discard)
		log.SetDefault(logger)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           log.DebugLevel,
	})
	log.SetDefault(logger)
	return logger, func() { f.Close() }, nil
}
