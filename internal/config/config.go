// Package config provides YAML/TOML-based game configuration loading and
// difficulty presets for the runner.
package config

// DinoConfig contains all tunables of the runner simulation.
// Distances are world pixels, speeds are pixels per second and times are
// milliseconds.
type DinoConfig struct {
	World     WorldConfig     `yaml:"world" toml:"world"`
	Runner    RunnerConfig    `yaml:"runner" toml:"runner"`
	Obstacles ObstacleConfig  `yaml:"obstacles" toml:"obstacles"`
	Scroll    ScrollConfig    `yaml:"scroll" toml:"scroll"`
	Collision CollisionConfig `yaml:"collision" toml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring" toml:"scoring"`
	Assets    AssetConfig     `yaml:"assets" toml:"assets"`
}

// WorldConfig defines the visible play field.
type WorldConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	GroundY float64 `yaml:"ground_y" toml:"ground_y"` // Ground line; y grows downward
}

// RunnerConfig defines the player character.
type RunnerConfig struct {
	X              float64 `yaml:"x" toml:"x"`
	Width          float64 `yaml:"width" toml:"width"`
	StandingHeight float64 `yaml:"standing_height" toml:"standing_height"`
	DuckingHeight  float64 `yaml:"ducking_height" toml:"ducking_height"`
	Gravity        float64 `yaml:"gravity" toml:"gravity"`             // Added to vertical velocity once per tick while airborne
	JumpVelocity   float64 `yaml:"jump_velocity" toml:"jump_velocity"` // Negative = upward
}

// ObstacleConfig defines spawning and placement of hazards.
type ObstacleConfig struct {
	SpawnX       float64     `yaml:"spawn_x" toml:"spawn_x"`
	MinGap       float64     `yaml:"min_gap" toml:"min_gap"`
	CullMargin   float64     `yaml:"cull_margin" toml:"cull_margin"`
	AerialChance float64     `yaml:"aerial_chance" toml:"aerial_chance"`
	AerialOffset float64     `yaml:"aerial_offset" toml:"aerial_offset"` // Clearance between ground line and aerial obstacle base
	PassMargin   float64     `yaml:"pass_margin" toml:"pass_margin"`
	Ground       []SizeEntry `yaml:"ground" toml:"ground"`
	Aerial       []SizeEntry `yaml:"aerial" toml:"aerial"`
}

// SizeEntry is one obstacle shape in a category catalog.
type SizeEntry struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ScrollConfig defines the world scroll speed ramp.
type ScrollConfig struct {
	BaseSpeed    float64 `yaml:"base_speed" toml:"base_speed"`
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed"`
	Acceleration float64 `yaml:"acceleration" toml:"acceleration"` // Pixels per second gained each second
}

// CollisionConfig defines the forgiveness insets applied before overlap tests.
type CollisionConfig struct {
	RunnerInsetX   float64 `yaml:"runner_inset_x" toml:"runner_inset_x"`
	RunnerInsetY   float64 `yaml:"runner_inset_y" toml:"runner_inset_y"`
	ObstacleInsetX float64 `yaml:"obstacle_inset_x" toml:"obstacle_inset_x"`
	ObstacleInsetY float64 `yaml:"obstacle_inset_y" toml:"obstacle_inset_y"`
}

// ScoringConfig defines how survival time turns into points.
type ScoringConfig struct {
	MsPerPoint float64 `yaml:"ms_per_point" toml:"ms_per_point"`
}

// AssetConfig names the sprites and an optional override directory.
type AssetConfig struct {
	Dir    string `yaml:"dir" toml:"dir"`
	Runner string `yaml:"runner" toml:"runner"`
	Ground string `yaml:"ground" toml:"ground"`
	Aerial string `yaml:"aerial" toml:"aerial"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown or empty strings
// return "" so the config file values are used unchanged.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
