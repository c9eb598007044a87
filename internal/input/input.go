package input

// State is the input held down for a single tick
type State struct {
	Up, Down    bool
	Left, Right bool
	Fire        bool
	// ToggleDebug is only set on the tick the toggle was pressed
	ToggleDebug bool
}

// Vertical is 1 when moving up and -1 when moving down. Down wins if
// both are held.
func (state State) Vertical() int {
	switch {
	case state.Down:
		return -1
	case state.Up:
		return 1
	}
	return 0
}

// Horizontal is 1 when moving right and -1 when moving left. Left wins if
// both are held.
func (state State) Horizontal() int {
	switch {
	case state.Left:
		return -1
	case state.Right:
		return 1
	}
	return 0
}
