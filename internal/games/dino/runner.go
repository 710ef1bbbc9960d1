package dino

import (
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Stance is the runner's movement state. Ducking and airborne are mutually
// exclusive by construction.
type Stance int

const (
	StanceGrounded Stance = iota // On the ground, standing
	StanceDucking                // On the ground, ducking
	StanceAirborne               // In a jump
)

// String returns a human-readable name for the stance.
func (s Stance) String() string {
	switch s {
	case StanceGrounded:
		return "grounded"
	case StanceDucking:
		return "ducking"
	case StanceAirborne:
		return "airborne"
	default:
		return "unknown"
	}
}

// Runner is the player character.
type Runner struct {
	pos     core.Vec2
	dim     core.Dimensions
	vy      float64 // Vertical velocity, negative = up
	stance  Stance
	cfg     config.RunnerConfig
	groundY float64
}

// NewRunner creates a runner standing on the ground line.
func NewRunner(cfg config.RunnerConfig, groundY float64) *Runner {
	r := &Runner{cfg: cfg, groundY: groundY}
	r.Reset()
	return r
}

// Reset restores the starting position, zero velocity and standing stance.
func (r *Runner) Reset() {
	r.vy = 0
	r.stance = StanceGrounded
	r.dim = core.Dimensions{Width: r.cfg.Width, Height: r.cfg.StandingHeight}
	r.pos = core.Vec2{X: r.cfg.X, Y: r.groundY - r.dim.Height}
}

// Update advances the runner by one tick. Gravity is applied once per call
// while airborne; dtMillis does not scale it.
func (r *Runner) Update(dtMillis float64) {
	if r.stance == StanceAirborne {
		r.vy += r.cfg.Gravity
		r.pos.Y += r.vy

		// Landed
		if r.pos.Y+r.dim.Height >= r.groundY {
			r.pos.Y = r.groundY - r.dim.Height
			r.vy = 0
			r.stance = StanceGrounded
		}
		return
	}

	r.pin()
}

// pin sets height from the stance and keeps the feet on the ground line.
func (r *Runner) pin() {
	if r.stance == StanceDucking {
		r.dim.Height = r.cfg.DuckingHeight
	} else {
		r.dim.Height = r.cfg.StandingHeight
	}
	r.pos.Y = r.groundY - r.dim.Height
}

// Jump starts a jump from a standing stance. Ignored while ducking or
// already airborne.
func (r *Runner) Jump() {
	if r.stance != StanceGrounded {
		return
	}
	r.vy = r.cfg.JumpVelocity
	r.stance = StanceAirborne
}

// Duck switches between standing and ducking. Ignored while airborne; the
// request is dropped, not queued.
func (r *Runner) Duck(active bool) {
	if r.stance == StanceAirborne {
		return
	}
	if active {
		r.stance = StanceDucking
	} else {
		r.stance = StanceGrounded
	}
	r.pin()
}

// Hitbox returns the current collision rectangle (before insets).
func (r *Runner) Hitbox() core.Box {
	return core.NewBox(r.pos, r.dim)
}

// Position returns the top-left corner.
func (r *Runner) Position() core.Vec2 { return r.pos }

// Dimensions returns the current size.
func (r *Runner) Dimensions() core.Dimensions { return r.dim }

// Velocity returns the vertical velocity.
func (r *Runner) Velocity() float64 { return r.vy }

// Stance returns the current stance.
func (r *Runner) Stance() Stance { return r.stance }

// Airborne reports whether a jump is in progress.
func (r *Runner) Airborne() bool { return r.stance == StanceAirborne }

// Ducking reports whether the runner is ducking.
func (r *Runner) Ducking() bool { return r.stance == StanceDucking }

// Feet returns the y-coordinate of the runner's base.
func (r *Runner) Feet() float64 { return r.pos.Y + r.dim.Height }
