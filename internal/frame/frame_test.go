package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	grid := NewGrid(1280, 720)
	assert.Equal(t, Grid{
		Left:    0,
		Right:   1280,
		Top:     720,
		Bottom:  0,
		CenterX: 640,
		CenterY: 360,
		W:       1280,
		H:       720,
	}, grid)
}
