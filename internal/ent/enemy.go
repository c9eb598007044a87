package ent

import (
	"fmt"
	"strconv"

	"github.com/silbinarywolf/dragonfire/internal/asset"
	"github.com/silbinarywolf/dragonfire/internal/frame"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

// EnemyType picks the appearance and behaviour of an enemy
type EnemyType int

const (
	EnemySaucer EnemyType = iota + 1
)

const (
	// enemyFireInterval is the number of ticks between enemy shots
	enemyFireInterval = 90
)

// EnemySpawn describes an enemy in the world's schedule
type EnemySpawn struct {
	// Spawn is the tick, counted from the start of the world, the enemy appears on
	Spawn int
	Type  EnemyType
	// Path is the list of points the enemy flies through, it spawns on the first
	Path [][2]float64
}

// Enemy handles every enemy ship; the exact behaviour is defined by the
// spawn properties
type Enemy struct {
	Ship
	path     [][2]float64
	pathStep int
	spinning bool
	// nextFire is the tick the enemy next shoots on
	nextFire int
}

var _ Entity = new(Enemy)

func NewEnemy(id ID, spawn EnemySpawn, args *frame.Args) *Enemy {
	self := &Enemy{}
	self.id = id
	self.sprite = sprite.New(args.Surfaces, "enemy"+strconv.FormatUint(uint64(id), 10), shipSize, shipSize)

	switch spawn.Type {
	case EnemySaucer:
		self.sprite.Sprites().Submit(sprite.Primitive{X: 18, Y: 18, Angle: 0, W: 91, H: 91, Path: asset.UFOGreen})
		self.Speed = 2
		self.spinning = true
	}

	self.path = spawn.Path
	if len(self.path) > 0 {
		self.X = self.path[0][0]
		self.Y = self.path[0][1]
	}
	self.pathStep = 1
	self.nextFire = args.TickCount + enemyFireInterval
	self.syncSprite()
	return self
}

func (self *Enemy) Kind() Kind {
	return KindEnemy
}

// Move heads toward the next point on the path, bound by our speed
func (self *Enemy) Move() {
	if self.pathStep >= len(self.path) {
		return
	}
	next := self.path[self.pathStep]
	self.SetDestination(next[0], next[1])
	self.Ship.Move()
	if self.AtDestination() {
		self.pathStep++
	}
	self.syncSprite()
}

// PathDone is true once the last point of the path has been reached
func (self *Enemy) PathDone() bool {
	return self.pathStep >= len(self.path)
}

func (self *Enemy) Update(args *frame.Args) {
	self.Move()
	if self.spinning {
		self.sprite.Angle = float64((int(self.sprite.Angle) + 1) % 360)
	}
}

// CanFire is true when the enemy is due to shoot. Firing resets the timer.
func (self *Enemy) CanFire(tickCount int) bool {
	return tickCount >= self.nextFire
}

// Fire spawns all the bullets required for the current weapon
func (self *Enemy) Fire(id ID, args *frame.Args) []*Laser {
	self.nextFire = args.TickCount + enemyFireInterval
	return []*Laser{
		NewLaser(id, LaserSmallGreen, self.X-64, self.Y+64, false, args.Surfaces),
	}
}

func (self *Enemy) Render(args *frame.Args) {
	self.syncSprite()
	render(args, self.sprite)
}

func (self *Enemy) OutOfBounds(grid frame.Grid) bool {
	return self.X+shipSize < grid.Left ||
		self.X > grid.Right ||
		self.Y+shipSize < grid.Bottom ||
		self.Y > grid.Top
}

func (self *Enemy) String() string {
	return fmt.Sprintf("{x: %v, y: %v, sprite: %v, path: %v, path_step: %d, spinning: %v}", self.X, self.Y, self.sprite, self.path, self.pathStep, self.spinning)
}
