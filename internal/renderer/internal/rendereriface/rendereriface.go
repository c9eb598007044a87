package rendereriface

import (
	"image"

	"github.com/silbinarywolf/dragonfire/internal/renderer/target"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

type Image interface {
}

// Images are loaded images by asset path
type Images map[string]Image

// Game interface was copy-pasted out of Ebiten
type Game interface {
	Update() error
	Draw(screen Screen)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

type App interface {
	SetRunnableOnUnfocused(v bool)
	SetWindowSize(screenWidth, screenHeight int)
	SetWindowTitle(title string)
	SetTPS(tps int)
	RunGame(game Game) error
	NewImageFromImage(img image.Image) Image
}

// Screen draws in the logical grid, where y goes up from the bottom of
// the screen
type Screen interface {
	// DrawSprite composites everything drawn into the target onto the
	// screen, placed, cropped, rotated and faded by the attributes
	DrawSprite(attrs sprite.Attributes, t *target.Target, images Images)
	// DrawPrimitive draws straight onto the screen
	DrawPrimitive(kind sprite.Kind, p sprite.Primitive, images Images)
}
