package config

import "github.com/vovakirdan/dino-dash/internal/core"

// presetScroll holds the scroll ramp of each preset relative to the
// configured values.
var presetScroll = map[DifficultyPreset]struct {
	base, max, accel float64
}{
	DifficultyEasy:   {base: 0.8, max: 0.75, accel: 0.66},
	DifficultyNormal: {base: 1.0, max: 1.0, accel: 1.0},
	DifficultyHard:   {base: 1.2, max: 1.15, accel: 1.5},
}

// ApplyDinoPreset modifies the scroll section based on a difficulty preset.
// The fixed preset disables the ramp and keeps the base speed forever.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Scroll.Acceleration = 0
		cfg.Scroll.MaxSpeed = cfg.Scroll.BaseSpeed
		return
	}

	p, ok := presetScroll[preset]
	if !ok {
		return
	}
	cfg.Scroll.BaseSpeed *= p.base
	cfg.Scroll.MaxSpeed *= p.max
	cfg.Scroll.Acceleration *= p.accel
	if cfg.Scroll.MaxSpeed < cfg.Scroll.BaseSpeed {
		cfg.Scroll.MaxSpeed = cfg.Scroll.BaseSpeed
	}
}

// Level returns how far along the ramp a scroll speed magnitude is,
// from 0.0 at base speed to 1.0 at max speed.
func (s ScrollConfig) Level(speed float64) float64 {
	span := s.MaxSpeed - s.BaseSpeed
	if span <= 0 {
		return 0
	}
	return core.ClampF((speed-s.BaseSpeed)/span, 0.0, 1.0)
}
