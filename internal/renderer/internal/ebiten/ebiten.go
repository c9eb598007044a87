package ebiten

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/silbinarywolf/dragonfire/internal/renderer/internal/rendereriface"
	"github.com/silbinarywolf/dragonfire/internal/renderer/target"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

var _ rendereriface.App = new(App)

type App struct {
}

type ebitenGameAndScreen struct {
	rendereriface.Game
	screenDriver Screen
}

func (game *ebitenGameAndScreen) Draw(screen *ebiten.Image) {
	game.screenDriver.screen = screen
	game.Game.Draw(&game.screenDriver)
	game.screenDriver.disposeUnused()
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	ebiten.SetRunnableOnUnfocused(v)
}

func (app *App) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (app *App) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (app *App) SetTPS(tps int) {
	ebiten.SetTPS(tps)
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	return ebiten.NewImageFromImage(img)
}

func (app *App) RunGame(game rendereriface.Game) error {
	gameWrapper := ebitenGameAndScreen{}
	gameWrapper.Game = game
	gameWrapper.screenDriver.offscreens = make(map[string]*offscreen)
	return ebiten.RunGame(&gameWrapper)
}

type Screen struct {
	screen *ebiten.Image
	// offscreens are where render targets get drawn before being placed
	// on the screen, by target name
	offscreens map[string]*offscreen
}

type offscreen struct {
	image *ebiten.Image
	used  bool
}

var _ rendereriface.Screen = new(Screen)

func (driver *Screen) DrawSprite(attrs sprite.Attributes, t *target.Target, images rendereriface.Images) {
	if t == nil || attrs.SourceW <= 0 || attrs.SourceH <= 0 || attrs.Alpha == 0 {
		return
	}
	width := int(math.Ceil(attrs.SourceX + attrs.SourceW))
	height := int(math.Ceil(attrs.SourceY + attrs.SourceH))
	img := driver.offscreen(t.Name(), width, height)
	img.Clear()
	imgHeight := float64(img.Bounds().Dy())
	for _, kind := range sprite.Kinds {
		for _, p := range t.Primitives(kind) {
			drawPrimitive(img, imgHeight, kind, p, images)
		}
	}

	src := img.SubImage(image.Rect(
		int(attrs.SourceX), int(imgHeight-attrs.SourceY-attrs.SourceH),
		int(attrs.SourceX+attrs.SourceW), int(imgHeight-attrs.SourceY),
	)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(attrs.W/attrs.SourceW, attrs.H/attrs.SourceH)
	if attrs.Angle != 0 {
		op.GeoM.Translate(-attrs.W/2, -attrs.H/2)
		op.GeoM.Rotate(-attrs.Angle * math.Pi / 180)
		op.GeoM.Translate(attrs.W/2, attrs.H/2)
	}
	screenHeight := float64(driver.screen.Bounds().Dy())
	op.GeoM.Translate(attrs.X, screenHeight-attrs.Y-attrs.H)
	op.ColorScale.ScaleAlpha(float32(attrs.Alpha) / 255)
	driver.screen.DrawImage(src, op)
}

func (driver *Screen) DrawPrimitive(kind sprite.Kind, p sprite.Primitive, images rendereriface.Images) {
	drawPrimitive(driver.screen, float64(driver.screen.Bounds().Dy()), kind, p, images)
}

// offscreen returns an image at least width*height for the target. Targets
// shared by sprites with different source regions grow to fit them all.
func (driver *Screen) offscreen(name string, width, height int) *ebiten.Image {
	entry, ok := driver.offscreens[name]
	if ok {
		size := entry.image.Bounds().Size()
		if size.X < width || size.Y < height {
			if size.X > width {
				width = size.X
			}
			if size.Y > height {
				height = size.Y
			}
			entry.image.Deallocate()
			ok = false
		}
	}
	if !ok {
		entry = &offscreen{
			image: ebiten.NewImage(width, height),
		}
		driver.offscreens[name] = entry
	}
	entry.used = true
	return entry.image
}

// disposeUnused frees offscreen images for targets that weren't drawn
// this frame
func (driver *Screen) disposeUnused() {
	for name, entry := range driver.offscreens {
		if !entry.used {
			entry.image.Deallocate()
			delete(driver.offscreens, name)
			continue
		}
		entry.used = false
	}
}

// drawPrimitive draws p onto dst, flipping y so that 0 is the bottom of an
// image that is height pixels tall
func drawPrimitive(dst *ebiten.Image, height float64, kind sprite.Kind, p sprite.Primitive, images rendereriface.Images) {
	switch kind {
	case sprite.KindSolid:
		vector.DrawFilledRect(dst, float32(p.X), float32(height-p.Y-p.H), float32(p.W), float32(p.H), p.Color, false)
	case sprite.KindBorder:
		vector.StrokeRect(dst, float32(p.X), float32(height-p.Y-p.H), float32(p.W), float32(p.H), 1, p.Color, false)
	case sprite.KindLine:
		vector.StrokeLine(dst, float32(p.X), float32(height-p.Y), float32(p.X2), float32(height-p.Y2), 1, p.Color, false)
	case sprite.KindLabel:
		ebitenutil.DebugPrintAt(dst, p.Text, int(p.X), int(height-p.Y))
	case sprite.KindSprite:
		img, ok := images[p.Path].(*ebiten.Image)
		if !ok {
			return
		}
		size := img.Bounds().Size()
		if size.X == 0 || size.Y == 0 {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(p.W/float64(size.X), p.H/float64(size.Y))
		if p.Angle != 0 {
			op.GeoM.Translate(-p.W/2, -p.H/2)
			op.GeoM.Rotate(-p.Angle * math.Pi / 180)
			op.GeoM.Translate(p.W/2, p.H/2)
		}
		op.GeoM.Translate(p.X, height-p.Y-p.H)
		dst.DrawImage(img, op)
	}
}
