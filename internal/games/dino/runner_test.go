package dino

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner() *Runner {
	cfg := testConfig()
	return NewRunner(cfg.Runner, cfg.World.GroundY)
}

func TestRunnerStartsOnGround(t *testing.T) {
	r := newTestRunner()

	assert.Equal(t, StanceGrounded, r.Stance())
	assert.Equal(t, 50.0, r.Position().X)
	assert.Equal(t, 280.0, r.Position().Y)
	assert.Equal(t, 60.0, r.Dimensions().Width)
	assert.Equal(t, 70.0, r.Dimensions().Height)
	assert.Equal(t, 350.0, r.Feet())
}

func TestRunnerJumpArc(t *testing.T) {
	r := newTestRunner()
	r.Jump()
	require.True(t, r.Airborne())
	assert.Equal(t, -15.0, r.Velocity())

	r.Update(16)
	assert.InDelta(t, -14.2, r.Velocity(), 1e-9)
	assert.InDelta(t, 265.8, r.Position().Y, 1e-9)

	peak := r.Position().Y
	ticks := 1
	for r.Airborne() && ticks < 200 {
		r.Update(16)
		if r.Position().Y < peak {
			peak = r.Position().Y
		}
		ticks++
	}

	require.False(t, r.Airborne(), "runner never landed")
	assert.Equal(t, 37, ticks)
	assert.InDelta(t, 146.8, peak, 1e-9)
	assert.Equal(t, 350.0, r.Feet(), "landing snaps feet to the ground line")
	assert.Equal(t, 0.0, r.Velocity())
	assert.Equal(t, StanceGrounded, r.Stance())
}

func TestRunnerGravityIgnoresDelta(t *testing.T) {
	a := newTestRunner()
	b := newTestRunner()
	a.Jump()
	b.Jump()

	a.Update(1)
	b.Update(250)

	assert.Equal(t, a.Velocity(), b.Velocity())
	assert.Equal(t, a.Position(), b.Position())
}

func TestRunnerJumpWhileAirborneIgnored(t *testing.T) {
	r := newTestRunner()
	r.Jump()
	r.Update(16)
	vy := r.Velocity()

	r.Jump()
	assert.Equal(t, vy, r.Velocity())
}

func TestRunnerDuck(t *testing.T) {
	r := newTestRunner()

	r.Duck(true)
	assert.Equal(t, StanceDucking, r.Stance())
	assert.Equal(t, 35.0, r.Dimensions().Height)
	assert.Equal(t, 315.0, r.Position().Y)
	assert.Equal(t, 350.0, r.Feet())

	// Jumping from a duck is not allowed
	r.Jump()
	assert.False(t, r.Airborne())

	r.Duck(false)
	assert.Equal(t, StanceGrounded, r.Stance())
	assert.Equal(t, 70.0, r.Dimensions().Height)
	assert.Equal(t, 280.0, r.Position().Y)
}

func TestRunnerDuckWhileAirborneIgnored(t *testing.T) {
	r := newTestRunner()
	r.Jump()
	r.Update(16)

	r.Duck(true)
	assert.Equal(t, StanceAirborne, r.Stance())
	assert.Equal(t, 70.0, r.Dimensions().Height)

	// The request is dropped, not queued for landing
	for r.Airborne() {
		r.Update(16)
	}
	assert.Equal(t, StanceGrounded, r.Stance())
}

func TestRunnerReset(t *testing.T) {
	r := newTestRunner()
	r.Jump()
	r.Update(16)
	r.Reset()

	assert.Equal(t, StanceGrounded, r.Stance())
	assert.Equal(t, 0.0, r.Velocity())
	assert.Equal(t, 280.0, r.Position().Y)
}

func TestStanceString(t *testing.T) {
	assert.Equal(t, "grounded", StanceGrounded.String())
	assert.Equal(t, "ducking", StanceDucking.String())
	assert.Equal(t, "airborne", StanceAirborne.String())
	assert.Equal(t, "unknown", Stance(9).String())
}
