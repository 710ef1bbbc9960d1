package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/config"
	"github.com/vovakirdan/dino-dash/internal/core"
	"github.com/vovakirdan/dino-dash/internal/games/dino"
	"github.com/vovakirdan/dino-dash/internal/storage"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()

	store, err := storage.Open("")
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.DefaultConfig()
	cfg.Seed = 1
	game := dino.New(config.DefaultDinoConfig(), cfg, nil, nil)

	m := NewModel(game, store, nil, cfg)
	m.now = func() time.Time { return t0 }
	return m, store
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m Model, at time.Time) Model {
	return send(m, TickMsg(at))
}

func TestModelSpaceStartsRun(t *testing.T) {
	m, _ := newTestModel(t)

	if m.game.Snapshot().Phase != dino.PhaseIdle {
		t.Fatal("Game should start idle")
	}

	m = send(m, keyMsg(tea.KeySpace))
	if m.game.Snapshot().Phase != dino.PhasePlaying {
		t.Fatalf("Space should start a run, phase = %v", m.game.Snapshot().Phase)
	}

	// Second space jumps instead of restarting
	m = send(m, keyMsg(tea.KeySpace))
	if !m.game.Session().Runner().Airborne() {
		t.Error("Space while playing should jump")
	}
}

func TestModelTicksUseRealDelta(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyMsg(tea.KeyEnter))

	// First tick only sets the reference time
	m = tick(m, t0)
	if m.game.Snapshot().Elapsed != 0 {
		t.Errorf("First tick should not advance, elapsed = %v", m.game.Snapshot().Elapsed)
	}

	m = tick(m, t0.Add(100*time.Millisecond))
	m = tick(m, t0.Add(200*time.Millisecond))
	if got := m.game.Snapshot().Score; got != 2 {
		t.Errorf("Score after 200ms = %d, expected 2", got)
	}

	// A long stall is capped
	m = tick(m, t0.Add(10*time.Second))
	if got := m.game.Snapshot().Elapsed; got != 450 {
		t.Errorf("Elapsed after stall = %v, expected 450", got)
	}
}

func TestModelDuckRelease(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyMsg(tea.KeySpace))
	m = tick(m, t0)

	m = send(m, keyMsg(tea.KeyDown))
	if !m.game.Session().Runner().Ducking() {
		t.Fatal("Down should duck")
	}

	hold := m.config.DuckHold
	m = tick(m, t0.Add(hold/2))
	if !m.game.Session().Runner().Ducking() {
		t.Error("Duck should hold until the deadline")
	}

	m = tick(m, t0.Add(hold))
	if m.game.Session().Runner().Ducking() {
		t.Error("Duck should be released at the deadline")
	}
}

func TestModelDuckReleaseWaitsForResume(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyMsg(tea.KeySpace))
	m = tick(m, t0)

	m = send(m, keyMsg(tea.KeyDown))
	m = send(m, runes("p"))

	// The deadline passes while paused
	hold := m.config.DuckHold
	m = tick(m, t0.Add(hold+100*time.Millisecond))
	if !m.game.Session().Runner().Ducking() {
		t.Fatal("Paused runner should stay as it was")
	}

	m = send(m, runes("p"))
	m = tick(m, t0.Add(hold+200*time.Millisecond))
	if m.game.Paused() {
		t.Fatal("Game should be resumed")
	}
	if m.game.Session().Runner().Ducking() {
		t.Fatal("Duck should be released on the first tick after resume")
	}

	m = send(m, keyMsg(tea.KeySpace))
	if !m.game.Session().Runner().Airborne() {
		t.Error("Runner should be able to jump again")
	}
}

func TestModelLogsRunOnce(t *testing.T) {
	m, store := newTestModel(t)
	m = send(m, keyMsg(tea.KeySpace))
	m = tick(m, t0)

	// A runner that never jumps hits the first obstacle
	at := t0
	for i := 0; i < 200 && m.game.Snapshot().Phase == dino.PhasePlaying; i++ {
		at = at.Add(100 * time.Millisecond)
		m = tick(m, at)
	}
	snap := m.game.Snapshot()
	if snap.Phase != dino.PhaseGameOver {
		t.Fatal("Run never ended")
	}

	for i := 0; i < 5; i++ {
		at = at.Add(100 * time.Millisecond)
		m = tick(m, at)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 logged run, got %d", len(runs))
	}
	if runs[0].Score != snap.Score || runs[0].Seed != 1 || runs[0].Speed != snap.Speed {
		t.Errorf("Logged run %+v does not match snapshot %+v", runs[0], snap)
	}

	// Restart and crash again
	m = send(m, keyMsg(tea.KeySpace))
	for i := 0; i < 200 && m.game.Snapshot().Phase == dino.PhasePlaying; i++ {
		at = at.Add(100 * time.Millisecond)
		m = tick(m, at)
	}
	runs, _ = store.TopRuns(10)
	if len(runs) != 2 {
		t.Errorf("Expected 2 logged runs after a replay, got %d", len(runs))
	}
}

func TestModelPause(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyMsg(tea.KeySpace))
	m = tick(m, t0)

	m = send(m, runes("p"))
	m = tick(m, t0.Add(100*time.Millisecond))
	if m.game.Snapshot().Score != 0 {
		t.Error("Paused game should not score")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View should show the pause overlay")
	}

	m = send(m, runes("p"))
	m = tick(m, t0.Add(200*time.Millisecond))
	if m.game.Snapshot().Score != 1 {
		t.Errorf("Score after resume = %d, expected 1", m.game.Snapshot().Score)
	}
}

func TestModelScoreboard(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyMsg(tea.KeySpace))
	m = tick(m, t0)

	m = send(m, keyMsg(tea.KeyTab))
	if m.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "RUN LOG") {
		t.Error("View should show the run log")
	}

	// The game is frozen while the run log is open
	m = tick(m, t0.Add(100*time.Millisecond))
	if m.game.Snapshot().Elapsed != 0 {
		t.Error("Game should not advance behind the scoreboard")
	}

	m = send(m, keyMsg(tea.KeyEsc))
	if m.scoreboard != nil {
		t.Error("Esc should close the scoreboard")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runes("q"))
	m = next.(Model)
	if cmd == nil {
		t.Error("Quit should return a command")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, keyMsg(tea.KeySpace))
	m = tick(m, t0)
	m = tick(m, t0.Add(100*time.Millisecond))

	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("Screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.game.Snapshot().Score != 1 {
		t.Error("Resize should not reset the run")
	}
}

func TestModelDuckHoldDefault(t *testing.T) {
	m, _ := newTestModel(t)
	if m.duckHold() != 700*time.Millisecond {
		t.Errorf("duckHold() = %v, expected 700ms", m.duckHold())
	}

	m.config.DuckHold = 0
	if m.duckHold() != core.DefaultConfig().DuckHold {
		t.Errorf("Unset DuckHold should fall back to the default, got %v", m.duckHold())
	}
}
