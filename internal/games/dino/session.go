package dino

import (
	"math"

	"github.com/vovakirdan/dino-dash/internal/config"
)

// Phase is the session state.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first Start
	PhasePlaying               // Simulation running
	PhaseGameOver              // Run ended by a collision, waiting for Start
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "IDLE"
	case PhasePlaying:
		return "PLAYING"
	case PhaseGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is a read-only view of the session for renderers and the run log.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int
	Passed    int
	Speed     float64 // Scroll speed magnitude in pixels per second
	Level     float64 // Ramp progress, 0.0 to 1.0
	Elapsed   float64 // Milliseconds survived in the current run
	Seed      int64
}

// Session owns one runner and one director and sequences every tick.
// All methods must be called from a single goroutine.
type Session struct {
	phase     Phase
	score     int
	highScore int
	elapsed   float64
	runner    *Runner
	director  *Director
	insets    Insets
	msPerPt   float64
	seed      int64
	nextSeed  func() int64
}

// NewSession creates a session in PhaseIdle. nextSeed supplies the RNG seed
// for each replay; when nil the first seed is reused.
func NewSession(cfg config.DinoConfig, seed int64, sprites SpriteSource, nextSeed func() int64) *Session {
	return &Session{
		phase:    PhaseIdle,
		runner:   NewRunner(cfg.Runner, cfg.World.GroundY),
		director: NewDirector(cfg, seed, sprites),
		insets:   InsetsFrom(cfg.Collision),
		msPerPt:  cfg.Scoring.MsPerPoint,
		seed:     seed,
		nextSeed: nextSeed,
	}
}

// Start begins a run. From PhaseGameOver it first performs a full reset.
// Ignored while already playing.
func (s *Session) Start() {
	switch s.phase {
	case PhaseIdle:
		s.phase = PhasePlaying
	case PhaseGameOver:
		if s.nextSeed != nil {
			s.seed = s.nextSeed()
		}
		s.resetRun()
		s.phase = PhasePlaying
	}
}

// Jump forwards to the runner while playing.
func (s *Session) Jump() {
	if s.phase == PhasePlaying {
		s.runner.Jump()
	}
}

// Duck forwards to the runner while playing.
func (s *Session) Duck(active bool) {
	if s.phase == PhasePlaying {
		s.runner.Duck(active)
	}
}

// Update advances one tick: runner, director, pass credits, collision, then
// score. Does nothing outside PhasePlaying or when no time passed; negative
// and NaN deltas count as zero.
func (s *Session) Update(dtMillis float64) {
	if s.phase != PhasePlaying {
		return
	}
	if !(dtMillis > 0) {
		return
	}

	s.runner.Update(dtMillis)
	s.director.Update(dtMillis)

	hitbox := s.runner.Hitbox()
	s.director.HasPassedObstacle(hitbox)

	if s.director.CheckCollision(hitbox, s.insets) {
		s.phase = PhaseGameOver
		if s.score > s.highScore {
			s.highScore = s.score
		}
		return
	}

	s.elapsed += dtMillis
	if pts := int(math.Floor(s.elapsed / s.msPerPt)); pts > s.score {
		s.score = pts
	}
}

// Reset returns to PhaseIdle with a zero score. The high score survives.
func (s *Session) Reset() {
	s.resetRun()
	s.phase = PhaseIdle
}

func (s *Session) resetRun() {
	s.runner.Reset()
	s.director.Reset(s.seed)
	s.score = 0
	s.elapsed = 0
}

// Phase returns the current state.
func (s *Session) Phase() Phase { return s.phase }

// Score returns the points of the current run.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score of this process.
func (s *Session) HighScore() int { return s.highScore }

// Elapsed returns the milliseconds survived in the current run.
func (s *Session) Elapsed() float64 { return s.elapsed }

// Runner returns the player character.
func (s *Session) Runner() *Runner { return s.runner }

// Director returns the obstacle director.
func (s *Session) Director() *Director { return s.director }

// Snapshot returns a copy of the values a renderer displays.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:     s.phase,
		Score:     s.score,
		HighScore: s.highScore,
		Passed:    s.director.Passed(),
		Speed:     -s.director.Speed(),
		Level:     s.director.Level(),
		Elapsed:   s.elapsed,
		Seed:      s.seed,
	}
}
