package renderer

import (
	"github.com/silbinarywolf/dragonfire/internal/renderer/internal/rendereriface"
)

// Image is a sprite loaded by the renderer
type Image = rendereriface.Image

// Images are loaded images by asset path
type Images = rendereriface.Images

type Screen = rendereriface.Screen

type Game = rendereriface.Game

// App is the implementation of the renderer
type App = appImplementation // appImplementation changes type based on build tags, we do this so function calls are inlined and cost less, checked with "go build -gcflags=-m=2"
