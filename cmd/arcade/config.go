package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-dash/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, after the config search
and the difficulty preset are applied. The output is a valid config file.

Search order:
  --config <path>
  ~/.arcade/configs/dino.{yaml,yml,toml}
  ./configs/dino.{yaml,yml,toml}
  built-in defaults

Examples:
  arcade config
  arcade config --difficulty hard
  arcade config --format toml > ~/.arcade/configs/dino.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := config.Encode(os.Stdout, cfg, flagFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig runs the config search and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.DinoConfig, error) {
	cfg, source, err := config.LoadDino(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return cfg, fmt.Errorf("arcade: unknown difficulty %q", flagDifficulty)
	}
	config.ApplyDinoPreset(&cfg, preset)

	logger.Info("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}
