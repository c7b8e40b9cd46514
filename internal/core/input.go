package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // Left, h - shift one column left
	ActionRight         // Right, l - shift one column right
	ActionDown          // Down, j - soft drop one row
	ActionRotate        // Up, k - rotate clockwise
	ActionDrop          // Space - drop to the lowest free row
	ActionPause         // P - pause/unpause
	ActionQuit          // Q - end the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionDrop:
		return "Drop"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Poll is the result of one non-blocking input poll.
// A poll with Ok == false means no key was pending this tick; that is the
// common case and not an error.
type Poll struct {
	Action Action
	Ok     bool
}

// NoKey returns the empty poll result.
func NoKey() Poll {
	return Poll{}
}

// KeyPress returns a poll result carrying a single action.
// ActionNone is normalized to NoKey.
func KeyPress(a Action) Poll {
	if a == ActionNone {
		return NoKey()
	}
	return Poll{Action: a, Ok: true}
}

// InputSource supplies at most one pending action per call without blocking.
type InputSource interface {
	Poll() Poll
}
