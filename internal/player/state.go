package player

// State is the cue state of a controller.
type State int

const (
	Idle     State = iota // No cue playing
	PulseCue              // Timed cue after a fresh collision
	DragCue               // Continuous cue while scraping along a wall
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PulseCue:
		return "pulse"
	case DragCue:
		return "drag"
	default:
		return "unknown"
	}
}

// Active reports whether a cue is playing in this state.
func (s State) Active() bool {
	return s == PulseCue || s == DragCue
}
