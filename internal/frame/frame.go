// frame is the bundle of state handed to the world and its entities on
// every tick
package frame

import (
	"github.com/silbinarywolf/dragonfire/internal/input"
	"github.com/silbinarywolf/dragonfire/internal/renderer/target"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

// Grid is the logical coordinate space of the screen. The origin is the
// bottom-left corner and y goes up.
type Grid struct {
	Left, Right      float64
	Top, Bottom      float64
	CenterX, CenterY float64
	W, H             float64
}

func NewGrid(width, height float64) Grid {
	return Grid{
		Left:    0,
		Right:   width,
		Bottom:  0,
		Top:     height,
		CenterX: width / 2,
		CenterY: height / 2,
		W:       width,
		H:       height,
	}
}

type Args struct {
	// TickCount is the number of ticks since the game started
	TickCount int
	Inputs    input.State
	Grid      Grid
	// Outputs is the draw queue for this frame
	Outputs *target.Outputs
	// Surfaces is where sprites find their render targets
	Surfaces sprite.Surfaces
	// Debug draws collision bounds of everything rendered
	Debug bool
}
