package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silbinarywolf/dragonfire/internal/ent"
	"github.com/silbinarywolf/dragonfire/internal/frame"
	"github.com/silbinarywolf/dragonfire/internal/input"
	"github.com/silbinarywolf/dragonfire/internal/renderer/target"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

func newArgs() (*frame.Args, *target.Targets) {
	targets := target.NewTargets()
	return &frame.Args{
		Grid:     frame.NewGrid(ScreenWidth, ScreenHeight),
		Outputs:  target.NewOutputs(),
		Surfaces: targets,
	}, targets
}

// step runs a single tick the same way the app does
func step(w World, args *frame.Args) bool {
	args.Outputs.Reset()
	ok := w.Update(args)
	if ok {
		w.Render(args)
	}
	args.TickCount++
	return ok
}

var stationaryEnemy = []ent.EnemySpawn{
	{Spawn: 0, Type: ent.EnemySaucer, Path: [][2]float64{{600, 300}}},
}

func TestBackdropSharesSurface(t *testing.T) {
	args, targets := newArgs()
	w := NewGame(args)

	backdrop, ok := targets.Lookup("backdrop")
	require.True(t, ok)
	// left half is 512 wide (4 columns), right half 768 (5 columns), 3 rows each
	assert.Len(t, backdrop.Primitives(sprite.KindSprite), 27)
	assert.Equal(t, 0.0, w.backdropLeft.X)
	assert.Equal(t, 512.0, w.backdropRight.X)
	assert.Equal(t, 768.0, w.backdropRight.W)
}

func TestBackdropScrolls(t *testing.T) {
	args, _ := newArgs()
	w := NewGame(args)

	for i := 0; i < 128; i++ {
		step(w, args)
	}
	assert.Equal(t, 256.0, w.backdropLeft.SourceX)
	assert.Equal(t, 256.0, w.backdropRight.SourceX)

	step(w, args)
	assert.Equal(t, 0.0, w.backdropLeft.SourceX)
	assert.Equal(t, 0.0, w.backdropRight.SourceX)
}

func TestPlayerSpawnsOnFirstUpdate(t *testing.T) {
	args, _ := newArgs()
	w := NewGame(args)
	require.Nil(t, w.Player())

	step(w, args)

	require.NotNil(t, w.Player())
	assert.Equal(t, startingLives, w.Lives())
}

func TestEnemiesSpawnOnSchedule(t *testing.T) {
	args, _ := newArgs()
	args.TickCount = 1000
	w := NewGame(args)

	for args.TickCount < 1000+60 {
		step(w, args)
	}
	assert.Empty(t, w.Enemies())

	step(w, args)
	require.Len(t, w.Enemies(), 1)
	assert.Equal(t, 1200.0-2, w.Enemies()[0].X)
}

func TestPlayerFiresOneVolleyAtATime(t *testing.T) {
	args, targets := newArgs()
	w := newGame(args, nil)
	args.Inputs = input.State{Fire: true}

	step(w, args)
	require.Len(t, w.PlayerBullets(), 1)
	first := w.PlayerBullets()[0]

	step(w, args)
	require.Len(t, w.PlayerBullets(), 1)
	assert.Same(t, first, w.PlayerBullets()[0])

	// fly off the right edge and get purged
	args.Inputs = input.State{}
	for i := 0; i < 120 && len(w.PlayerBullets()) > 0; i++ {
		step(w, args)
	}
	assert.Empty(t, w.PlayerBullets())
	_, ok := targets.Lookup(first.Sprites()[0].Name())
	assert.False(t, ok, "laser surfaces are released once purged")
}

func TestPlayerLaserDestroysEnemy(t *testing.T) {
	args, targets := newArgs()
	w := newGame(args, stationaryEnemy)
	step(w, args)
	require.Len(t, w.Enemies(), 1)
	enemy := w.Enemies()[0]
	enemyTarget := enemy.Sprite().Name()

	// lines the spin up with a quarter turn on the next update, as the
	// saucer is only hit while it's axis-aligned
	enemy.Sprite().Angle = 89
	w.playerBullets = append(w.playerBullets, ent.NewLaser(100, ent.LaserSmallRed, 600, 340, true, args.Surfaces))

	step(w, args)

	assert.Empty(t, w.Enemies())
	assert.Empty(t, w.PlayerBullets())
	_, ok := targets.Lookup(enemyTarget)
	assert.False(t, ok)
}

func TestPlayerLaserMissesSpinningEnemy(t *testing.T) {
	args, _ := newArgs()
	w := newGame(args, stationaryEnemy)
	step(w, args)

	w.playerBullets = append(w.playerBullets, ent.NewLaser(100, ent.LaserSmallRed, 600, 340, true, args.Surfaces))
	step(w, args)

	assert.Len(t, w.Enemies(), 1)
	assert.Len(t, w.PlayerBullets(), 1)
}

func TestEnemyLaserDestroysPlayer(t *testing.T) {
	args, _ := newArgs()
	w := newGame(args, nil)
	step(w, args)
	require.NotNil(t, w.Player())

	args.TickCount = 100
	w.enemyBullets = append(w.enemyBullets, ent.NewLaser(100, ent.LaserSmallGreen, 100, 330, false, args.Surfaces))
	step(w, args)

	assert.Nil(t, w.Player())
	assert.Equal(t, startingLives-1, w.Lives())
	assert.Empty(t, w.EnemyBullets())

	// respawns straight away
	step(w, args)
	assert.NotNil(t, w.Player())
}

func TestImmunePlayerIsNotHit(t *testing.T) {
	args, _ := newArgs()
	w := newGame(args, nil)
	step(w, args)

	w.enemyBullets = append(w.enemyBullets, ent.NewLaser(100, ent.LaserSmallGreen, 100, 330, false, args.Surfaces))
	step(w, args)

	assert.NotNil(t, w.Player())
	assert.Equal(t, startingLives, w.Lives())
	assert.Len(t, w.EnemyBullets(), 1)
}

func TestGameOver(t *testing.T) {
	args, _ := newArgs()
	w := newGame(args, nil)
	step(w, args)
	w.lives = 1

	args.TickCount = 100
	w.enemyBullets = append(w.enemyBullets, ent.NewLaser(100, ent.LaserSmallGreen, 100, 330, false, args.Surfaces))
	require.True(t, step(w, args))
	require.Equal(t, 0, w.Lives())

	assert.False(t, step(w, args))
}

func TestRenderOrder(t *testing.T) {
	args, targets := newArgs()
	w := newGame(args, stationaryEnemy)
	step(w, args)
	step(w, args)

	sorted := args.Outputs.Sorted()
	require.Len(t, sorted, 5)
	assert.Equal(t, "backdrop", sorted[0].Name())
	assert.Equal(t, "backdrop", sorted[1].Name())
	assert.Equal(t, "player", sorted[2].Name())
	assert.Equal(t, "enemy2", sorted[3].Name())
	assert.Equal(t, "hud", sorted[4].Name())

	hud, ok := targets.Lookup("hud")
	require.True(t, ok)
	labels := hud.Primitives(sprite.KindLabel)
	require.Len(t, labels, 1, "hud is redrawn, not appended to")
	assert.Equal(t, "LIVES 3", labels[0].Text)
	assert.Equal(t, 1, w.hud.Labels().Len())
}

func TestRenderDebugBounds(t *testing.T) {
	args, _ := newArgs()
	args.Debug = true
	w := newGame(args, nil)
	step(w, args)

	// just the player has any bounds
	assert.Len(t, args.Outputs.Debug.Primitives(sprite.KindLine), 4)
}

func TestSpawn(t *testing.T) {
	args, _ := newArgs()
	assert.IsType(t, &Game{}, Spawn(TypeGame, args))
}
