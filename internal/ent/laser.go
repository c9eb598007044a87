package ent

import (
	"fmt"
	"strconv"

	"github.com/silbinarywolf/dragonfire/internal/asset"
	"github.com/silbinarywolf/dragonfire/internal/frame"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

// LaserType picks the graphics and damage of a laser
type LaserType int

const (
	LaserSmallGreen LaserType = iota + 1
	LaserSmallRed
)

const (
	// laserSize is the size of the render targets a laser is drawn into
	laserSize = 37
	// laserSpeed is how many pixels a laser travels per tick
	laserSpeed = 10
)

// Laser is the simplest bullet, it travels in a straight horizontal line
// at a fixed speed. It has two frames it alternates between.
type Laser struct {
	id      ID
	X, Y    float64
	Speed   float64
	Damage  int
	spriteA *sprite.Sprite
	spriteB *sprite.Sprite
}

var _ Entity = new(Laser)

// NewLaser creates a laser at x, y. ltr sends it left to right.
func NewLaser(id ID, laserType LaserType, x, y float64, ltr bool, surfaces sprite.Surfaces) *Laser {
	// The type of laser really only affects the graphics and the damage
	var pathA, pathB string
	switch laserType {
	case LaserSmallGreen:
		pathA, pathB = asset.LaserGreenA, asset.LaserGreenB
	case LaserSmallRed:
		pathA, pathB = asset.LaserRedA, asset.LaserRedB
	}
	const (
		widthA, heightA = 13, 37
		widthB, heightB = 9, 37
	)

	self := &Laser{
		id:     id,
		X:      x,
		Y:      y,
		Damage: 1,
		Speed:  laserSpeed,
	}
	if !ltr {
		self.Speed = -laserSpeed
	}

	suffix := strconv.FormatUint(uint64(id), 10)
	self.spriteA = sprite.New(surfaces, "lasera"+suffix, laserSize, laserSize)
	self.spriteA.Sprites().Submit(sprite.Primitive{
		X: (laserSize - widthA) / 2, Y: (laserSize - heightA) / 2,
		Angle: 270, W: widthA, H: heightA, Path: pathA,
	})
	self.spriteB = sprite.New(surfaces, "laserb"+suffix, laserSize, laserSize)
	self.spriteB.Sprites().Submit(sprite.Primitive{
		X: (laserSize - widthB) / 2, Y: (laserSize - heightB) / 2,
		Angle: 270, W: widthB, H: heightB, Path: pathB,
	})
	self.syncSprites()
	return self
}

func (self *Laser) ID() ID {
	return self.id
}

func (self *Laser) Kind() Kind {
	return KindLaser
}

func (self *Laser) Sprites() []*sprite.Sprite {
	return []*sprite.Sprite{self.spriteA, self.spriteB}
}

// Collides passes collision detection on to both frames of the laser
func (self *Laser) Collides(target Target) bool {
	if target == nil {
		return false
	}
	other := target.Sprite()
	return self.spriteA.Collides(other) || self.spriteB.Collides(other)
}

func (self *Laser) Update(args *frame.Args) {
	self.X += self.Speed
	self.syncSprites()
}

// OutOfBounds is true once the laser is further than its size beyond the
// edges of the grid
func (self *Laser) OutOfBounds(grid frame.Grid) bool {
	return self.X+laserSize < grid.Left ||
		self.X-laserSize > grid.Right ||
		self.Y+laserSize < grid.Bottom ||
		self.Y-laserSize > grid.Top
}

// Render alternates between the two frames, just to look a bit dynamic
func (self *Laser) Render(args *frame.Args) {
	self.syncSprites()
	if args.TickCount%2 == 0 {
		render(args, self.spriteA)
	} else {
		render(args, self.spriteB)
	}
}

func (self *Laser) syncSprites() {
	self.spriteA.X, self.spriteA.Y = self.X, self.Y
	self.spriteB.X, self.spriteB.Y = self.X, self.Y
}

func (self *Laser) String() string {
	return fmt.Sprintf("{x: %v, y: %v, spritea: %v, spriteb: %v, speed: %v, damage: %d}", self.X, self.Y, self.spriteA, self.spriteB, self.Speed, self.Damage)
}
