package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - shift one lane left
	ActionRight             // D, Right arrow - shift one lane right
	ActionRandomJump        // Space - jump to a random lane
	ActionRestart           // R - restart after game over
	ActionPause             // P - pause/unpause
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - back to menu
	ActionQuit              // Q, Ctrl+C - exit
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
	case ActionRandomJump:
		return "RandomJump"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents everything the platform observed during one frame:
// the actions triggered and the wall-clock time since the previous frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Events lists every triggered action in arrival order, repeats included.
	// Games that act once per key press read this instead of Actions.
	Events []Action

	// Elapsed is the time since the previous frame. Zero means "one nominal tick".
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame and queues it as an event.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
	f.Events = append(f.Events, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the elapsed time for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Events = f.Events[:0]
	f.Elapsed = 0
}

// Seconds returns the frame's elapsed time in seconds, falling back to
// one tick at the given rate when no elapsed time was recorded.
func (f InputFrame) Seconds(tickRate int) float64 {
	if f.Elapsed > 0 {
		return f.Elapsed.Seconds()
	}
	if tickRate <= 0 {
		tickRate = 60
	}
	return 1.0 / float64(tickRate)
}
