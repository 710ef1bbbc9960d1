package dino

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(nextSeed func() int64) *Session {
	return NewSession(testConfig(), 1, nil, nextSeed)
}

// crash puts a ground obstacle just ahead of the runner so the next tick
// collides.
func crash(s *Session) {
	place(s.director, s.runner.Position().X+40, CategoryGround, 30, 50)
}

func TestSessionStartsIdle(t *testing.T) {
	s := newTestSession(nil)

	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.HighScore())

	// Nothing moves before Start
	s.Update(100)
	s.Jump()
	s.Duck(true)
	assert.Empty(t, s.Director().Obstacles())
	assert.Zero(t, s.Score())
	assert.Equal(t, StanceGrounded, s.Runner().Stance())
}

func TestSessionScoreAccumulates(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	require.Equal(t, PhasePlaying, s.Phase())

	for i := 1; i <= 10; i++ {
		s.Update(100)
		require.Equal(t, PhasePlaying, s.Phase())
		assert.Equal(t, i, s.Score())
	}
}

func TestSessionScoreWithShortTicks(t *testing.T) {
	s := newTestSession(nil)
	s.Start()

	for i := 0; i < 100; i++ {
		s.Update(16)
	}

	// 1600 ms survived, even though no single tick reaches 100 ms
	assert.Equal(t, 16, s.Score())
	assert.Equal(t, 1600.0, s.Elapsed())
}

func TestSessionIgnoresBadDeltas(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	s.Update(250)
	score := s.Score()

	s.Update(-50)
	s.Update(math.NaN())

	assert.Equal(t, score, s.Score())
	assert.Equal(t, 250.0, s.Elapsed())
	assert.Equal(t, PhasePlaying, s.Phase())
}

func TestSessionZeroDeltaIsNoop(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	s.Update(0)
	assert.Empty(t, s.Director().Obstacles(), "nothing spawns before time passes")

	s.Jump()
	s.Update(16)
	pos, vy := s.Runner().Position(), s.Runner().Velocity()
	obstacles := len(s.Director().Obstacles())

	s.Update(0)
	s.Update(-5)

	assert.Equal(t, pos, s.Runner().Position())
	assert.Equal(t, vy, s.Runner().Velocity(), "gravity is not applied on an empty tick")
	assert.Len(t, s.Director().Obstacles(), obstacles)
}

func TestSessionCollisionEndsRun(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	for i := 0; i < 10; i++ {
		s.Update(100)
	}
	require.Equal(t, 10, s.Score())

	crash(s)
	s.Update(100)

	assert.Equal(t, PhaseGameOver, s.Phase())
	assert.Equal(t, 10, s.Score(), "score freezes on the colliding tick")
	assert.Equal(t, 10, s.HighScore())

	// Frozen until Start
	obstacles := len(s.Director().Obstacles())
	s.Update(100)
	s.Jump()
	assert.Equal(t, 10, s.Score())
	assert.Len(t, s.Director().Obstacles(), obstacles)
	assert.False(t, s.Runner().Airborne())
}

func TestSessionRestart(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	for i := 0; i < 10; i++ {
		s.Update(100)
	}
	place(s.director, 0, CategoryGround, 30, 60)
	s.Update(16)
	require.NotZero(t, s.Director().Passed())
	crash(s)
	s.Update(100)
	require.Equal(t, PhaseGameOver, s.Phase())

	s.Start()

	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Elapsed())
	assert.Equal(t, 10, s.HighScore(), "high score survives a restart")
	assert.Empty(t, s.Director().Obstacles())
	assert.Zero(t, s.Director().Passed())
	assert.Equal(t, -300.0, s.Director().Speed())
	assert.Equal(t, StanceGrounded, s.Runner().Stance())
}

func TestSessionHighScoreOnlyGrows(t *testing.T) {
	s := newTestSession(nil)

	s.Start()
	for i := 0; i < 15; i++ {
		s.Update(100)
	}
	crash(s)
	s.Update(100)
	require.Equal(t, 15, s.HighScore())

	s.Start()
	for i := 0; i < 5; i++ {
		s.Update(100)
	}
	crash(s)
	s.Update(100)

	assert.Equal(t, 5, s.Score())
	assert.Equal(t, 15, s.HighScore())
}

func TestSessionStartWhilePlayingIgnored(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	s.Update(300)

	s.Start()
	assert.Equal(t, 3, s.Score())
	assert.NotEmpty(t, s.Director().Obstacles())
}

func TestSessionCommandsWhileAirborne(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	s.Jump()
	s.Update(16)
	require.True(t, s.Runner().Airborne())
	vy := s.Runner().Velocity()

	s.Jump()
	s.Duck(true)

	assert.Equal(t, vy, s.Runner().Velocity())
	assert.Equal(t, StanceAirborne, s.Runner().Stance())
}

func TestSessionDuckUnderAerial(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	s.Duck(true)
	place(s.director, 60, CategoryAerial, 40, 40)

	s.Update(16)
	assert.Equal(t, PhasePlaying, s.Phase(), "ducking clears aerial obstacles")

	s.Duck(false)
	s.Update(16)
	assert.Equal(t, PhaseGameOver, s.Phase(), "standing runner hits aerial obstacles")
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(nil)
	s.Start()
	s.Update(500)
	crash(s)
	s.Update(100)
	require.Equal(t, 5, s.HighScore())

	s.Reset()

	assert.Equal(t, PhaseIdle, s.Phase())
	assert.Zero(t, s.Score())
	assert.Empty(t, s.Director().Obstacles())
	assert.Equal(t, 5, s.HighScore())
}

func TestSessionSeeds(t *testing.T) {
	t.Run("fixed seed replays", func(t *testing.T) {
		s := newTestSession(nil)
		s.Start()
		crash(s)
		s.Update(16)
		s.Start()
		assert.Equal(t, int64(1), s.Snapshot().Seed)
		assert.Equal(t, int64(1), s.Director().Seed())
	})

	t.Run("next seed per replay", func(t *testing.T) {
		s := newTestSession(func() int64 { return 99 })
		s.Start()
		assert.Equal(t, int64(1), s.Snapshot().Seed, "first run keeps the initial seed")
		crash(s)
		s.Update(16)
		s.Start()
		assert.Equal(t, int64(99), s.Snapshot().Seed)
		assert.Equal(t, int64(99), s.Director().Seed())
	})
}

func TestSessionSnapshot(t *testing.T) {
	s := newTestSession(nil)
	snap := s.Snapshot()

	assert.Equal(t, PhaseIdle, snap.Phase)
	assert.Equal(t, 300.0, snap.Speed, "speed is reported as a magnitude")
	assert.Zero(t, snap.Level)

	s.Start()
	s.Update(1000)
	snap = s.Snapshot()
	assert.Equal(t, 10, snap.Score)
	assert.Equal(t, 360.0, snap.Speed)
	assert.Equal(t, 1000.0, snap.Elapsed)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "IDLE", PhaseIdle.String())
	assert.Equal(t, "PLAYING", PhasePlaying.String())
	assert.Equal(t, "GAME_OVER", PhaseGameOver.String())
	assert.Equal(t, "UNKNOWN", Phase(7).String())
}
