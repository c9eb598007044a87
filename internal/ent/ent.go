// ent is the entity package
package ent

import (
	"github.com/silbinarywolf/dragonfire/internal/frame"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

// ID is unique per entity for the life of a world, it is used to give
// every entity its own render targets
type ID uint32

// Kind tags each entity type
type Kind int

const (
	KindPlayer Kind = iota + 1
	KindEnemy
	KindLaser
)

func (kind Kind) String() string {
	switch kind {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindLaser:
		return "laser"
	}
	return "unknown"
}

// Entity is implemented by everything that lives in the game world
type Entity interface {
	ID() ID
	Kind() Kind
	Update(args *frame.Args)
	Render(args *frame.Args)
	OutOfBounds(grid frame.Grid) bool
	// Sprites are the render targets the entity owns
	Sprites() []*sprite.Sprite
}

// Target is anything a laser can hit
type Target interface {
	Sprite() *sprite.Sprite
}

// render queues s for drawing, outlining its bounds in debug mode
func render(args *frame.Args, s *sprite.Sprite) {
	args.Outputs.Add(s)
	if args.Debug {
		s.RenderBounds(args.Outputs.Debug)
	}
}
