// headless is the headless mode driver for the game so we can avoid building the
// ebiten library into the binary, ie. for soak testing the simulation on a server
package headless

import (
	"image"
	"time"

	"github.com/silbinarywolf/dragonfire/internal/renderer/internal/rendereriface"
	"github.com/silbinarywolf/dragonfire/internal/renderer/target"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

const defaultTPS = 60

var _ rendereriface.App = new(App)

type App struct {
	tps int
}

func (app *App) SetRunnableOnUnfocused(v bool) {
	// n/a for headless
}

func (app *App) SetWindowSize(width, height int) {
	// n/a for headless
}

func (app *App) SetWindowTitle(title string) {
	// n/a for headless
}

func (app *App) SetTPS(tps int) {
	app.tps = tps
}

// RunGame updates then draws the game once per tick until Update returns
// an error
func (app *App) RunGame(game rendereriface.Game) error {
	tps := app.tps
	if tps <= 0 {
		tps = defaultTPS
	}
	// note(jae): 2021-03-18
	// this should probably align with how the Ebiten clock works
	// but I'm going to take a lazy shortcut.
	tick := time.NewTicker(time.Second / time.Duration(tps))
	defer tick.Stop()
	screen := &Screen{}
	for range tick.C {
		if err := game.Update(); err != nil {
			return err
		}
		game.Draw(screen)
	}
	return nil
}

func (app *App) NewImageFromImage(img image.Image) rendereriface.Image {
	// n/a for headless
	return nil
}

// Screen counts draw calls rather than drawing anything
type Screen struct {
	Sprites    int
	Primitives int
}

var _ rendereriface.Screen = new(Screen)

func (screen *Screen) DrawSprite(attrs sprite.Attributes, t *target.Target, images rendereriface.Images) {
	screen.Sprites++
}

func (screen *Screen) DrawPrimitive(kind sprite.Kind, p sprite.Primitive, images rendereriface.Images) {
	screen.Primitives++
}
