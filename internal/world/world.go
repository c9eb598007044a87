package world

import (
	"github.com/silbinarywolf/dragonfire/internal/frame"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// World is one mode of the game, ie. the title screen or the game itself.
// Every world can be updated and rendered the same way.
type World interface {
	// Update advances the world by a tick. Returning false means the world
	// is finished and a new one should be spawned.
	Update(args *frame.Args) bool
	Render(args *frame.Args)
}

// Type picks which world to spawn
type Type int

const (
	TypeGame Type = iota
)

// Spawn creates a new world of the given type
func Spawn(worldType Type, args *frame.Args) World {
	switch worldType {
	case TypeGame:
		fallthrough
	default:
		return NewGame(args)
	}
}
