// arcade is a Dino-style endless runner for the terminal.
//
// Usage:
//
//	arcade                   - Play (same as arcade play)
//	arcade play              - Play the runner
//	arcade config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible obstacle sequences
//	--config <path>       - Custom config file (.yaml, .yml or .toml)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-file <path>     - Write logs to a file (discarded otherwise)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDuckHold   time.Duration
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Dino Dash - jump and duck through an endless desert",
	Long: `Dino Dash is a side-scrolling runner for your terminal.
Jump over cacti, duck under birds, and survive as long as you can while
the world speeds up.

Available commands:
  play     - Play the runner (default)
  config   - Print the effective configuration

Examples:
  arcade
  arcade play --difficulty hard
  arcade play --seed 42
  arcade config --format toml > dino.toml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().DurationVar(&flagDuckHold, "duck-hold", 700*time.Millisecond, "How long one Down press keeps the runner ducked")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. The game owns the terminal while it
// runs, so without a log file everything is discarded.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("arcade: bad log level %q: %w", level, err)
	}

	if path == "" {
		logger := log.New(io.Discard)
		logger.SetLevel(lvl)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("arcade: cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	})
	return logger, f, nil
}
