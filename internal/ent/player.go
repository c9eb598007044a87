package ent

import (
	"fmt"
	"math"

	"github.com/silbinarywolf/dragonfire/internal/asset"
	"github.com/silbinarywolf/dragonfire/internal/frame"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

const (
	// playerSpeed is how many pixels the player moves per tick
	playerSpeed = 5
	// immunityTicks is how long the player can't be hit after spawning
	immunityTicks = 60
)

// Player is the player's ship. Score, lives and suchlike are kept by the world.
type Player struct {
	Ship
	// ImmuneUntil is the tick the spawn immunity runs out
	ImmuneUntil int

	boundsLeft, boundsRight float64
	boundsBottom, boundsTop float64
}

var _ Entity = new(Player)

func NewPlayer(id ID, args *frame.Args) *Player {
	self := &Player{}
	self.id = id
	self.sprite = sprite.New(args.Surfaces, "player", shipSize, shipSize)
	// the ship image points up, the player should face right
	self.sprite.Sprites().Submit(sprite.Primitive{X: 13, Y: 26, Angle: 270, W: 112, H: 75, Path: asset.PlayerShip})

	// We will always spawn in the same place, mid-height and near the left edge
	self.X = 64
	self.Y = args.Grid.CenterY - 64
	self.Speed = playerSpeed

	self.boundsLeft = args.Grid.Left
	self.boundsBottom = args.Grid.Bottom
	self.boundsRight = args.Grid.Right - shipSize
	self.boundsTop = args.Grid.Top - shipSize

	self.ImmuneUntil = args.TickCount + immunityTicks
	self.syncSprite()
	return self
}

func (self *Player) Kind() Kind {
	return KindPlayer
}

func (self *Player) IsImmune(tickCount int) bool {
	return self.ImmuneUntil > tickCount
}

// Move only goes up/down/left/right, at full speed, without any tedious rotation
func (self *Player) Move(horizontal, vertical int) {
	if horizontal > 0 && self.X < self.boundsRight {
		self.X = math.Min(self.X+self.Speed, self.boundsRight)
	}
	if horizontal < 0 && self.X > self.boundsLeft {
		self.X = math.Max(self.X-self.Speed, self.boundsLeft)
	}
	if vertical > 0 && self.Y < self.boundsTop {
		self.Y = math.Min(self.Y+self.Speed, self.boundsTop)
	}
	if vertical < 0 && self.Y > self.boundsBottom {
		self.Y = math.Max(self.Y-self.Speed, self.boundsBottom)
	}
	self.syncSprite()
}

func (self *Player) Update(args *frame.Args) {
	self.Move(args.Inputs.Horizontal(), args.Inputs.Vertical())
}

// Fire spawns the bullets of the current weapon
func (self *Player) Fire(id ID, args *frame.Args) []*Laser {
	return []*Laser{
		NewLaser(id, LaserSmallRed, self.X+shipSize-laserSize, self.Y+(shipSize-laserSize)/2, true, args.Surfaces),
	}
}

func (self *Player) Render(args *frame.Args) {
	self.syncSprite()

	// flicker while immune
	if self.IsImmune(args.TickCount) {
		flicker := (self.ImmuneUntil - args.TickCount) % 10
		if flicker < 5 {
			self.sprite.Alpha = uint8(128 - flicker*10)
		} else {
			self.sprite.Alpha = uint8(128 + flicker*10 - 100)
		}
	} else {
		self.sprite.Alpha = 255
	}

	render(args, self.sprite)
}

// OutOfBounds is never true, the player is kept on screen by Move
func (self *Player) OutOfBounds(grid frame.Grid) bool {
	return false
}

func (self *Player) String() string {
	return fmt.Sprintf("{x: %v, y: %v, sprite: %v, immune_until: %d}", self.X, self.Y, self.sprite, self.ImmuneUntil)
}
