package core

// Action is a semantic input, abstracted from the physical trigger
// (key press, mouse tap, on-screen button) that produced it.
type Action int

const (
	ActionNone             Action = iota
	ActionFlap                    // Space, Up, tap on the play surface
	ActionToggleFullscreen        // F key, the [F] button
	ActionExitFullscreen          // Esc while fullscreen
	ActionScreenshot              // Ctrl+S
	ActionQuit                    // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionToggleFullscreen:
		return "ToggleFullscreen"
	case ActionExitFullscreen:
		return "ExitFullscreen"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
