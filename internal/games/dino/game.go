// Package dino implements a Chrome Dino-style endless runner.
// The player jumps over ground obstacles and ducks under aerial ones while
// the world scrolls faster and faster.
package dino

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/assets"
	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '═'
	FallbackChar = '▓'
)

// Game adapts a Session to the terminal platform: it forwards commands,
// holds the pause flag, and renders into a core.Screen.
type Game struct {
	session      *Session
	cfg          config.DinoConfig
	runnerSprite *assets.Handle
	logger       *log.Logger
	lastPhase    Phase
	paused       bool
}

// New creates a game. sprites and logger may be nil.
// A zero runtime seed picks a fresh time-based seed for every run; a fixed
// seed replays the same obstacle sequence each time.
func New(cfg config.DinoConfig, runtime core.RuntimeConfig, sprites SpriteSource, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := runtime.Seed
	var nextSeed func() int64
	if seed == 0 {
		seed = time.Now().UnixNano()
		nextSeed = func() int64 { return time.Now().UnixNano() }
	}

	g := &Game{
		session: NewSession(cfg, seed, sprites, nextSeed),
		cfg:     cfg,
		logger:  logger,
	}
	if sprites != nil {
		g.runnerSprite = sprites.Request(cfg.Assets.Runner)
	}
	g.lastPhase = g.session.Phase()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Dash"
}

// Start starts or restarts a run.
func (g *Game) Start() {
	g.paused = false
	g.session.Start()
	g.trackPhase()
}

// Jump forwards a jump command.
func (g *Game) Jump() {
	if !g.paused {
		g.session.Jump()
	}
}

// Duck forwards a duck command.
func (g *Game) Duck(active bool) {
	if !g.paused {
		g.session.Duck(active)
	}
}

// TogglePause freezes or resumes the simulation. Only a running session can
// be paused.
func (g *Game) TogglePause() {
	if g.session.Phase() != PhasePlaying {
		g.paused = false
		return
	}
	g.paused = !g.paused
}

// Paused reports whether the simulation is frozen.
func (g *Game) Paused() bool {
	return g.paused
}

// Update advances the simulation unless paused.
func (g *Game) Update(dtMillis float64) {
	if g.paused {
		return
	}
	g.session.Update(dtMillis)
	g.trackPhase()
}

// trackPhase logs phase transitions.
func (g *Game) trackPhase() {
	phase := g.session.Phase()
	if phase == g.lastPhase {
		return
	}
	snap := g.session.Snapshot()
	g.logger.Debug("phase changed",
		"from", g.lastPhase,
		"to", phase,
		"score", snap.Score,
		"high", snap.HighScore,
		"seed", snap.Seed,
	)
	g.lastPhase = phase
}

// Session exposes the underlying state machine.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the current session values.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	world := g.cfg.World
	scale := core.NewScale(world.Width, world.Height, dst.Width(), dst.Height())

	// Draw ground
	dst.DrawHLine(0, scale.Row(world.GroundY), dst.Width(), GroundChar, core.ColorGray)

	// Draw obstacles
	for _, o := range g.session.Director().Obstacles() {
		color := core.ColorGreen
		if o.Category == CategoryAerial {
			color = core.ColorMagenta
		}
		drawSprite(dst, scale.Rect(o.Hitbox()), o.Handle, color)
	}

	// Draw player
	drawSprite(dst, scale.Rect(g.session.Runner().Hitbox()), g.runnerSprite, core.ColorBrightYellow)

	g.drawHUD(dst)

	snap := g.session.Snapshot()
	switch {
	case snap.Phase == PhaseIdle:
		g.drawCenteredMessage(dst, g.Title(), "Space: jump / start   Down: duck")
	case snap.Phase == PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  High Score: %d  |  Space to restart", snap.Score, snap.HighScore))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawSprite stretches a sprite over the cell rectangle, or fills the
// rectangle with a solid block while the sprite is not Ready.
func drawSprite(dst *core.Screen, r core.Rect, h *assets.Handle, color core.Color) {
	sprite, ok := h.Sprite()
	if !ok {
		dst.FillRect(r, FallbackChar, core.ColorGray)
		return
	}
	for dy := 0; dy < r.H; dy++ {
		for dx := 0; dx < r.W; dx++ {
			if ch := sprite.Sample(dx, dy, r.W, r.H); ch != ' ' {
				dst.SetColored(r.X+dx, r.Y+dy, ch, color)
			}
		}
	}
}

// drawHUD renders the score line.
func (g *Game) drawHUD(dst *core.Screen) {
	snap := g.session.Snapshot()

	scoreText := fmt.Sprintf(" Score: %05d  HI: %05d ", snap.Score, snap.HighScore)
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	// Stats are right-aligned but never cover the score
	statsText := fmt.Sprintf(" Passed: %d  Spd: %.0f (%d%%) ", snap.Passed, snap.Speed, int(snap.Level*100))
	statsX := core.Clamp(dst.Width()-len(statsText)-2, len(scoreText)+2, dst.Width())
	dst.DrawTextColored(statsX, 0, statsText, core.ColorCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightWhite)

	dst.DrawTextCentered(boxY+3, subtitle)
}
