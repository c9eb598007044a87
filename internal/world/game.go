package world

import (
	"image/color"
	"log"
	"strconv"

	"github.com/kamstrup/intmap"

	"github.com/silbinarywolf/dragonfire/internal/asset"
	"github.com/silbinarywolf/dragonfire/internal/ent"
	"github.com/silbinarywolf/dragonfire/internal/frame"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

const (
	backdropWidth  = 256
	backdropHeight = 256
	// backdropScrollSpeed is how many pixels the backdrop moves per tick
	backdropScrollSpeed = 2

	startingLives = 3
)

// Render order, lowest first
const (
	zBackdrop = iota - 1
	zShips // entities keep the default z of 0
	zHUD
)

var hudColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// enemySchedule defines the appearance, type and path of every enemy
var enemySchedule = []ent.EnemySpawn{
	{Spawn: 60, Type: ent.EnemySaucer, Path: [][2]float64{{1200, 300}, {600, 300}, {600, 600}}},
	{Spawn: 240, Type: ent.EnemySaucer, Path: [][2]float64{{1200, 500}, {800, 500}, {800, 100}}},
	{Spawn: 420, Type: ent.EnemySaucer, Path: [][2]float64{{1200, 100}, {900, 400}, {1000, 550}}},
}

// releaser is implemented by surface registries that can drop surfaces
// once nothing draws into them
type releaser interface {
	Release(name string)
}

// Game is the world for when we're in game mode (as opposed to the title
// screen, end credits and suchlike)
type Game struct {
	backdropLeft  *sprite.Sprite
	backdropRight *sprite.Sprite
	hud           *sprite.Sprite

	player        *ent.Player
	lives         int
	playerBullets []*ent.Laser

	// epoch is the tick the world started on, enemies spawn relative to it
	epoch        int
	schedule     []ent.EnemySpawn
	enemyIndex   int
	enemies      []*ent.Enemy
	enemyBullets []*ent.Laser

	lastID ent.ID
}

var _ World = new(Game)

// NewGame sets up the static aspects of the world the player will travel in
func NewGame(args *frame.Args) *Game {
	return newGame(args, enemySchedule)
}

func newGame(args *frame.Args, schedule []ent.EnemySpawn) *Game {
	w := &Game{
		lives:    startingLives,
		epoch:    args.TickCount,
		schedule: schedule,
	}

	// The backdrop is split in two at a tile boundary near the middle,
	// both halves draw into the same surface
	grid := args.Grid
	divide := float64(int(grid.CenterX)/backdropWidth) * backdropWidth
	w.backdropLeft = newBackdrop(args.Surfaces, divide, grid.H)
	w.backdropLeft.X = 0
	w.backdropRight = newBackdrop(args.Surfaces, grid.W-divide, grid.H)
	w.backdropRight.X = divide

	w.hud = sprite.New(args.Surfaces, "hud", grid.W, grid.H)
	w.hud.Z = zHUD

	log.Printf("world: game started on tick %d", w.epoch)
	return w
}

func newBackdrop(surfaces sprite.Surfaces, width, height float64) *sprite.Sprite {
	s := sprite.New(surfaces, "backdrop", width, height)
	s.Z = zBackdrop
	for row := 0.0; row <= height; row += backdropHeight {
		for col := 0.0; col <= width+backdropWidth; col += backdropWidth {
			s.Sprites().Submit(sprite.Primitive{X: col, Y: row, W: backdropWidth, H: backdropHeight, Path: asset.Backdrop})
		}
	}
	return s
}

func (w *Game) nextID() ent.ID {
	w.lastID++
	return w.lastID
}

// Lives is how many ships the player has left, including the current one
func (w *Game) Lives() int {
	return w.lives
}

func (w *Game) Player() *ent.Player {
	return w.player
}

func (w *Game) Enemies() []*ent.Enemy {
	return w.enemies
}

func (w *Game) PlayerBullets() []*ent.Laser {
	return w.playerBullets
}

func (w *Game) EnemyBullets() []*ent.Laser {
	return w.enemyBullets
}

// Update is called every frame to update the world
func (w *Game) Update(args *frame.Args) bool {
	// Keep the backdrop scrolling, always...
	w.backdropLeft.SourceX += backdropScrollSpeed
	if w.backdropLeft.SourceX > backdropWidth {
		w.backdropLeft.SourceX = 0
	}
	w.backdropRight.SourceX = w.backdropLeft.SourceX

	// Check to see if the player needs creating
	if w.player == nil {
		if w.lives <= 0 {
			log.Printf("world: game over on tick %d", args.TickCount)
			return false
		}
		w.player = ent.NewPlayer(w.nextID(), args)
		log.Printf("world: player spawned with %d lives left", w.lives)
	}

	// Spawn any enemies that are due
	for w.enemyIndex < len(w.schedule) && args.TickCount >= w.epoch+w.schedule[w.enemyIndex].Spawn {
		w.enemies = append(w.enemies, ent.NewEnemy(w.nextID(), w.schedule[w.enemyIndex], args))
		w.enemyIndex++
	}

	w.player.Update(args)

	// Only one volley of player fire on screen at a time
	if len(w.playerBullets) == 0 && args.Inputs.Fire {
		w.playerBullets = append(w.playerBullets, w.player.Fire(w.nextID(), args)...)
	}
	for _, bullet := range w.playerBullets {
		bullet.Update(args)
	}

	for _, enemy := range w.enemies {
		enemy.Update(args)
		if enemy.CanFire(args.TickCount) {
			w.enemyBullets = append(w.enemyBullets, enemy.Fire(w.nextID(), args)...)
		}
	}
	for _, bullet := range w.enemyBullets {
		bullet.Update(args)
	}

	w.collide(args)

	// Purge anything that has left the screen
	w.playerBullets = w.purge(args, w.playerBullets, nil)
	w.enemyBullets = w.purge(args, w.enemyBullets, nil)
	return true
}

// collide checks player fire against enemies and enemy fire against the player
func (w *Game) collide(args *frame.Args) {
	hits := intmap.New[ent.ID, ent.ID](len(w.playerBullets) + len(w.enemyBullets))
	for _, bullet := range w.playerBullets {
		for _, enemy := range w.enemies {
			if _, ok := hits.Get(enemy.ID()); ok {
				continue
			}
			if bullet.Collides(enemy) {
				hits.Put(bullet.ID(), enemy.ID())
				hits.Put(enemy.ID(), bullet.ID())
				break
			}
		}
	}
	if w.player != nil && !w.player.IsImmune(args.TickCount) {
		for _, bullet := range w.enemyBullets {
			if bullet.Collides(w.player) {
				hits.Put(bullet.ID(), w.player.ID())
				w.killPlayer(args)
				break
			}
		}
	}
	if hits.Len() == 0 {
		return
	}
	w.playerBullets = w.purge(args, w.playerBullets, hits)
	w.enemyBullets = w.purge(args, w.enemyBullets, hits)
	enemies := w.enemies[:0]
	for _, enemy := range w.enemies {
		if _, ok := hits.Get(enemy.ID()); ok {
			w.release(args, enemy)
			continue
		}
		enemies = append(enemies, enemy)
	}
	for i := len(enemies); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = enemies
}

func (w *Game) killPlayer(args *frame.Args) {
	w.lives--
	log.Printf("world: player destroyed on tick %d, %d lives left", args.TickCount, w.lives)
	w.release(args, w.player)
	w.player = nil
}

// purge removes bullets that were hit or have left the screen. hits may be nil.
func (w *Game) purge(args *frame.Args, bullets []*ent.Laser, hits *intmap.Map[ent.ID, ent.ID]) []*ent.Laser {
	kept := bullets[:0]
	for _, bullet := range bullets {
		hit := false
		if hits != nil {
			_, hit = hits.Get(bullet.ID())
		}
		if hit || bullet.OutOfBounds(args.Grid) {
			w.release(args, bullet)
			continue
		}
		kept = append(kept, bullet)
	}
	for i := len(kept); i < len(bullets); i++ {
		bullets[i] = nil
	}
	return kept
}

// release lets go of the render targets of a removed entity
func (w *Game) release(args *frame.Args, entity ent.Entity) {
	r, ok := args.Surfaces.(releaser)
	if !ok {
		return
	}
	for _, s := range entity.Sprites() {
		r.Release(s.Name())
	}
}

// Render is called every frame to draw the world
func (w *Game) Render(args *frame.Args) {
	args.Outputs.Add(w.backdropLeft, w.backdropRight)

	if w.player != nil {
		w.player.Render(args)
	}
	for _, bullet := range w.playerBullets {
		bullet.Render(args)
	}
	for _, enemy := range w.enemies {
		enemy.Render(args)
	}
	for _, bullet := range w.enemyBullets {
		bullet.Render(args)
	}

	w.renderHUD(args)
}

// renderHUD redraws the lives counter. The HUD surface is cleared first so
// it doesn't pile up a label per frame.
func (w *Game) renderHUD(args *frame.Args) {
	if r, ok := args.Surfaces.Surface(w.hud.Name()).(interface{ Reset() }); ok {
		r.Reset()
	}
	w.hud.Reset()
	w.hud.Labels().Submit(sprite.Primitive{
		X:     16,
		Y:     args.Grid.Top - 16,
		Text:  "LIVES " + strconv.Itoa(w.lives),
		Color: hudColor,
	})
	args.Outputs.Add(w.hud)
}
