package dino

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Insets shrink hitboxes before the overlap test so near misses don't count.
type Insets struct {
	RunnerX, RunnerY     float64
	ObstacleX, ObstacleY float64
}

// InsetsFrom converts the collision config section.
func InsetsFrom(c config.CollisionConfig) Insets {
	return Insets{
		RunnerX:   c.RunnerInsetX,
		RunnerY:   c.RunnerInsetY,
		ObstacleX: c.ObstacleInsetX,
		ObstacleY: c.ObstacleInsetY,
	}
}

// Collides reports whether the inset runner and obstacle boxes overlap on
// both axes. Touching edges collide.
func Collides(runner, obstacle core.Box, in Insets) bool {
	a := runner.Inset(in.RunnerX, in.RunnerY)
	b := obstacle.Inset(in.ObstacleX, in.ObstacleY)
	return a.Overlaps(b)
}
