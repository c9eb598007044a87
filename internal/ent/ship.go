package ent

import (
	"math"

	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

const (
	// shipSize is the size of the render target every ship is drawn into
	shipSize = 128
)

// Ship is the basis for everything that flies, players and enemies. It
// means movement obeys the same rules for both.
type Ship struct {
	id     ID
	X, Y   float64
	Speed  float64
	sprite *sprite.Sprite

	dest    [2]float64
	hasDest bool
}

func (self *Ship) ID() ID {
	return self.id
}

func (self *Ship) Sprite() *sprite.Sprite {
	return self.sprite
}

func (self *Ship) Sprites() []*sprite.Sprite {
	return []*sprite.Sprite{self.sprite}
}

// SetDestination gives the ship somewhere to fly to
func (self *Ship) SetDestination(x, y float64) {
	self.dest = [2]float64{x, y}
	self.hasDest = true
}

// AtDestination is true once the ship has landed exactly on its destination
func (self *Ship) AtDestination() bool {
	return self.hasDest && self.X == self.dest[0] && self.Y == self.dest[1]
}

// Move flies toward the destination, if we have one, no faster than speed
func (self *Ship) Move() {
	if !self.hasDest {
		return
	}
	dx, dy := self.dest[0]-self.X, self.dest[1]-self.Y
	dist := math.Hypot(dx, dy)
	if dist <= self.Speed {
		self.X, self.Y = self.dest[0], self.dest[1]
		return
	}
	self.X += dx / dist * self.Speed
	self.Y += dy / dist * self.Speed
}

// syncSprite moves the sprite to where the ship is
func (self *Ship) syncSprite() {
	self.sprite.X = self.X
	self.sprite.Y = self.Y
}
