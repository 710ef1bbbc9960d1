package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dino-dash/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Space, up and w map to ActionJump; the model turns a jump into a start
// when no run is in progress.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "w", "up":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionDuck, false
	case "enter", "r":
		return core.ActionStart, false
	case "p", "esc":
		return core.ActionPause, false
	case "tab":
		return core.ActionScoreboard, false
	case "ctrl+s":
		return core.ActionScreenshot, false
	}

	return core.ActionNone, false
}
