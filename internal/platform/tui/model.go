package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/games/dino"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       *dino.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	now        func() time.Time
	lastTick   time.Time
	duckUntil  time.Time // Zero when not ducking; terminals report no key release
	scoreboard *ScoreboardModel
	status     string
	quitting   bool
	runSaved   bool // Whether the current game over has been logged
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game *dino.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		now:    time.Now,
		status: "space: start/jump  down: duck  p: pause  tab: runs  q: quit",
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.handleScoreboardKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionStart:
		if m.game.Snapshot().Phase != dino.PhasePlaying {
			m.start()
		}
	case core.ActionJump:
		if m.game.Snapshot().Phase != dino.PhasePlaying {
			m.start()
		} else {
			m.game.Jump()
		}
	case core.ActionDuck:
		// Every repeat of the key extends the deadline
		m.game.Duck(true)
		m.duckUntil = m.now().Add(m.duckHold())
	case core.ActionPause:
		m.game.TogglePause()
	case core.ActionScoreboard:
		sb := NewScoreboardModel(m.store, m.screen.Width(), m.screen.Height()+1)
		m.scoreboard = &sb
	case core.ActionScreenshot:
		m.saveScreenshot()
	}

	return m, nil
}

// handleScoreboardKey forwards keys to the open scoreboard.
func (m Model) handleScoreboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// start begins a new run.
func (m *Model) start() {
	m.game.Start()
	m.duckUntil = time.Time{}
	m.runSaved = false
}

// handleResize processes window resize events. The world is scaled to the
// screen, so a resize never disturbs the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Last row is reserved for the status line
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-1, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = &sb
	}

	return m, nil
}

// handleTick advances the simulation by the real time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.DeltaMillis(m.lastTick, now)
	m.lastTick = now

	// The run log freezes the game behind it
	if m.scoreboard != nil {
		return m, tickCmd(m.config.TickRate)
	}

	// Release a duck whose key stopped repeating. A paused game drops
	// commands, so the release waits for the resume.
	if !m.duckUntil.IsZero() && !now.Before(m.duckUntil) && !m.game.Paused() {
		m.game.Duck(false)
		m.duckUntil = time.Time{}
	}

	m.game.Update(dt)

	// Log the run on game over (once)
	if snap := m.game.Snapshot(); snap.Phase == dino.PhaseGameOver && !m.runSaved {
		m.saveRun(snap)
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// duckHold returns the configured duck hold time.
func (m *Model) duckHold() time.Duration {
	if m.config.DuckHold <= 0 {
		return core.DefaultConfig().DuckHold
	}
	return m.config.DuckHold
}

// saveRun writes a finished run to the run log.
func (m *Model) saveRun(snap dino.Snapshot) {
	if m.store == nil {
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		Score:     snap.Score,
		Passed:    snap.Passed,
		ElapsedMs: snap.Elapsed,
		Speed:     snap.Speed,
		Seed:      snap.Seed,
	})
	if err != nil {
		m.logger.Error("run log write failed", "err", err)
		return
	}

	m.logger.Info("run recorded", "id", run.ID, "score", run.Score, "passed", run.Passed)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	// Create screenshots directory
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}

	m.status = "screenshot saved to " + path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + RenderStatus(m.status, m.screen.Width())
}

// Game returns the driven game.
func (m Model) Game() *dino.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given game.
func Run(game *dino.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
