package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SourceEmbedded is reported when no config file was found.
const SourceEmbedded = "embedded"

// configNames are the file names probed in each config directory.
var configNames = []string{"dino.yaml", "dino.yml", "dino.toml"}

// LoadDino loads the runner configuration and reports where it came from.
// Search order: customPath -> ~/.arcade/configs/dino.{yaml,yml,toml} ->
// ./configs/dino.{yaml,yml,toml} -> embedded default.
// Files are overlaid on the defaults, so partial files are fine. The first
// file found is used; a broken one is an error, not a reason to look further.
func LoadDino(customPath string) (DinoConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range []string{userConfigDir(), "configs"} {
		if dir == "" {
			continue
		}
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := loadFile(path)
			return cfg, path, err
		}
	}

	// Use embedded default YAML
	cfg := DefaultDinoConfig()
	if err := yaml.Unmarshal(defaultDinoYAML, &cfg); err != nil {
		return DefaultDinoConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads, decodes and validates a single config file.
func loadFile(path string) (DinoConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DinoConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, formatOf(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// formatOf picks a decoder by file extension; anything unknown is YAML.
func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return "toml"
	}
	return "yaml"
}

// Decode parses config data in the given format ("yaml" or "toml") on top
// of the defaults.
func Decode(data []byte, format string) (DinoConfig, error) {
	cfg := DefaultDinoConfig()
	switch format {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	case "yaml", "yml", "":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return cfg, fmt.Errorf("config: unknown format %q", format)
	}
	return cfg, nil
}

// Encode writes the config in the given format ("yaml" or "toml").
func Encode(w io.Writer, cfg DinoConfig, format string) error {
	switch format {
	case "toml":
		return toml.NewEncoder(w).Encode(cfg)
	case "yaml", "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("config: unknown format %q", format)
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c DinoConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	case c.World.GroundY <= 0 || c.World.GroundY > c.World.Height:
		return fmt.Errorf("%w: world.ground_y must lie inside the world", ErrInvalid)
	case c.Runner.Width <= 0 || c.Runner.StandingHeight <= 0 || c.Runner.DuckingHeight <= 0:
		return fmt.Errorf("%w: runner size must be positive", ErrInvalid)
	case c.Runner.DuckingHeight > c.Runner.StandingHeight:
		return fmt.Errorf("%w: runner.ducking_height exceeds standing_height", ErrInvalid)
	case c.Runner.Gravity <= 0:
		return fmt.Errorf("%w: runner.gravity must be positive", ErrInvalid)
	case c.Runner.JumpVelocity >= 0:
		return fmt.Errorf("%w: runner.jump_velocity must be negative (upward)", ErrInvalid)
	case c.Obstacles.MinGap <= 0:
		return fmt.Errorf("%w: obstacles.min_gap must be positive", ErrInvalid)
	case c.Obstacles.AerialChance < 0 || c.Obstacles.AerialChance > 1:
		return fmt.Errorf("%w: obstacles.aerial_chance must be within [0, 1]", ErrInvalid)
	case len(c.Obstacles.Ground) == 0 || len(c.Obstacles.Aerial) == 0:
		return fmt.Errorf("%w: obstacle catalogs must not be empty", ErrInvalid)
	case c.Scroll.BaseSpeed <= 0 || c.Scroll.MaxSpeed < c.Scroll.BaseSpeed:
		return fmt.Errorf("%w: scroll speeds must satisfy 0 < base_speed <= max_speed", ErrInvalid)
	case c.Scroll.Acceleration < 0:
		return fmt.Errorf("%w: scroll.acceleration must not be negative", ErrInvalid)
	case c.Scoring.MsPerPoint <= 0:
		return fmt.Errorf("%w: scoring.ms_per_point must be positive", ErrInvalid)
	}

	for _, e := range append(append([]SizeEntry{}, c.Obstacles.Ground...), c.Obstacles.Aerial...) {
		if e.Width <= 0 || e.Height <= 0 {
			return fmt.Errorf("%w: obstacle size %vx%v must be positive", ErrInvalid, e.Width, e.Height)
		}
	}
	return nil
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
