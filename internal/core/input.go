package core

// Action represents a semantic game action, abstracted from physical key presses.
// Key bindings live in the platform layer; games only ever see actions.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, h, a
	ActionMoveRight        // Right arrow, l, d
	ActionRotate           // Up arrow, k, w, x - rotate clockwise
	ActionHardDrop         // Down arrow, j, s, space
	ActionPause            // P, Escape - pause/unpause game
	ActionRestart          // R key - start a fresh game
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionBack             // B - go back to menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionRotate:
		return "Rotate"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}
