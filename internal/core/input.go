package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter, R - start or restart a run
	ActionJump              // Space, W, Up - jump while running
	ActionDuck              // S, Down - duck (held; released by the platform)
	ActionPause             // P - pause/unpause the ticker
	ActionScoreboard        // Tab - open the run log
	ActionScreenshot        // Ctrl+S - dump the screen to a file
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
