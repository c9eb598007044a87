package target

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

func TestTargetKeepsDrawOrderPerKind(t *testing.T) {
	target := New("ship")
	target.Output(sprite.KindSprite).Append(sprite.Primitive{Path: "a"})
	target.Output(sprite.KindSolid).Append(sprite.Primitive{W: 1})
	target.Output(sprite.KindSprite).Append(sprite.Primitive{Path: "b"})

	assert.Equal(t, []sprite.Primitive{{Path: "a"}, {Path: "b"}}, target.Primitives(sprite.KindSprite))
	assert.Equal(t, []sprite.Primitive{{W: 1}}, target.Primitives(sprite.KindSolid))
	assert.Empty(t, target.Primitives(sprite.KindLabel))
	assert.Equal(t, 3, target.Len())

	target.Reset()
	assert.Equal(t, 0, target.Len())
}

func TestTargetUnknownKind(t *testing.T) {
	target := New("ship")
	assert.Nil(t, target.Output(sprite.Kind(-1)))
	assert.Nil(t, target.Output(sprite.Kind(len(sprite.Kinds))))
	assert.Nil(t, target.Primitives(sprite.Kind(99)))
}

func TestTargetsCreateOnce(t *testing.T) {
	targets := NewTargets()
	_, ok := targets.Lookup("backdrop")
	require.False(t, ok)

	a := targets.Target("backdrop")
	b := targets.Surface("backdrop")
	assert.Same(t, a, b)
	assert.Equal(t, 1, targets.Len())

	targets.Release("backdrop")
	_, ok = targets.Lookup("backdrop")
	assert.False(t, ok)
}

func TestSpritesDrawIntoTargets(t *testing.T) {
	targets := NewTargets()
	s := sprite.New(targets, "enemy1", 128, 128)
	s.Sprites().Submit(sprite.Primitive{X: 18, Y: 18, W: 91, H: 91, Path: "sprites/ufo_green.png"})

	target, ok := targets.Lookup("enemy1")
	require.True(t, ok)
	assert.Equal(t, []sprite.Primitive{{X: 18, Y: 18, W: 91, H: 91, Path: "sprites/ufo_green.png"}}, target.Primitives(sprite.KindSprite))
}

func TestOutputsSortedByZ(t *testing.T) {
	targets := NewTargets()
	back := sprite.New(targets, "back", 1, 1)
	back.Z = -1
	first := sprite.New(targets, "first", 1, 1)
	second := sprite.New(targets, "second", 1, 1)
	front := sprite.New(targets, "front", 1, 1)
	front.Z = 10

	outputs := NewOutputs()
	outputs.Add(front, first, back, second)

	assert.Equal(t, []*sprite.Sprite{back, first, second, front}, outputs.Sorted())
	// queue order itself is untouched
	assert.Equal(t, []*sprite.Sprite{front, first, back, second}, outputs.Primitives)
}

func TestOutputsReset(t *testing.T) {
	targets := NewTargets()
	s := sprite.New(targets, "ship", 10, 10)
	s.Solids().Submit(sprite.Primitive{W: 10, H: 10})

	outputs := NewOutputs()
	outputs.Add(s)
	s.RenderBounds(outputs.Debug)
	require.NotZero(t, outputs.Debug.Len())

	outputs.Reset()

	assert.Empty(t, outputs.Primitives)
	assert.Equal(t, 0, outputs.Debug.Len())
	// the sprite's own target is not part of the frame queue
	target, _ := targets.Lookup("ship")
	assert.Equal(t, 1, target.Len())
}
