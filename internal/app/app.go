package app

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/silbinarywolf/dragonfire/internal/asset"
	"github.com/silbinarywolf/dragonfire/internal/frame"
	"github.com/silbinarywolf/dragonfire/internal/gameconf"
	"github.com/silbinarywolf/dragonfire/internal/input"
	"github.com/silbinarywolf/dragonfire/internal/input/device"
	"github.com/silbinarywolf/dragonfire/internal/monotime"
	"github.com/silbinarywolf/dragonfire/internal/renderer"
	"github.com/silbinarywolf/dragonfire/internal/renderer/target"
	"github.com/silbinarywolf/dragonfire/internal/sprite"
	"github.com/silbinarywolf/dragonfire/internal/world"
)

var debugTextColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

type App struct {
	renderer.App

	options        gameconf.Options
	hasInitialized bool

	images  renderer.Images
	targets *target.Targets
	outputs *target.Outputs

	worldType world.Type
	world     world.World
	args      frame.Args

	// sampleInput reads the devices, swapped out in tests
	sampleInput func() input.State
	// updateTime is how long the last tick took to update and render
	updateTime time.Duration
}

func New(options gameconf.Options) *App {
	app := &App{
		options:     options.WithDefaults(),
		sampleInput: device.Sample,
		worldType:   world.TypeGame,
	}
	app.targets = target.NewTargets()
	app.outputs = target.NewOutputs()
	app.args = frame.Args{
		Grid:     frame.NewGrid(world.ScreenWidth, world.ScreenHeight),
		Outputs:  app.outputs,
		Surfaces: app.targets,
		Debug:    app.options.Debug,
	}
	return app
}

func (app *App) Init() error {
	// Load assets
	paths, err := asset.Paths()
	if err != nil {
		return err
	}
	app.images = make(renderer.Images, len(paths))
	for _, path := range paths {
		img, err := asset.Decode(path)
		if err != nil {
			return err
		}
		app.images[path] = app.NewImageFromImage(img)
	}

	app.SetRunnableOnUnfocused(true)
	app.spawnWorld()
	return nil
}

// spawnWorld creates a new world of the current type. Surfaces left over
// from the last world are dropped so nothing it drew carries over.
func (app *App) spawnWorld() {
	app.targets = target.NewTargets()
	app.args.Surfaces = app.targets
	app.world = world.Spawn(app.worldType, &app.args)
}

// Update runs a single tick: sample input, update the world then render it
// into the frame queue
func (app *App) Update() error {
	if !app.hasInitialized {
		if err := app.Init(); err != nil {
			return errors.Wrap(err, "failed to initialize")
		}
		app.hasInitialized = true
	}

	startTime := monotime.Now()

	app.args.Inputs = app.sampleInput()
	if app.args.Inputs.ToggleDebug {
		app.args.Debug = !app.args.Debug
		log.Printf("debug bounds: %v", app.args.Debug)
	}

	app.outputs.Reset()
	if !app.world.Update(&app.args) {
		app.spawnWorld()
	}
	app.world.Render(&app.args)

	app.updateTime = monotime.Since(startTime)
	if app.args.Debug {
		app.outputs.Debug.Output(sprite.KindLabel).Append(sprite.Primitive{
			X:     8,
			Y:     24,
			Text:  fmt.Sprintf("tick: %d, update: %v, surfaces: %d", app.args.TickCount, app.updateTime, app.targets.Len()),
			Color: debugTextColor,
		})
	}

	app.args.TickCount++
	return nil
}

// Draw composites everything queued this tick, lowest z first, then the
// debug output over the top
func (app *App) Draw(screen renderer.Screen) {
	for _, s := range app.outputs.Sorted() {
		t, ok := app.targets.Lookup(s.Name())
		if !ok {
			continue
		}
		screen.DrawSprite(s.Attributes, t, app.images)
	}
	for _, kind := range sprite.Kinds {
		for _, p := range app.outputs.Debug.Primitives(kind) {
			screen.DrawPrimitive(kind, p, app.images)
		}
	}
}

func (app *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return world.ScreenWidth, world.ScreenHeight
}

func StartApp(options gameconf.Options) error {
	app := New(options)
	app.SetWindowSize(
		int(world.ScreenWidth*app.options.WindowScale),
		int(world.ScreenHeight*app.options.WindowScale),
	)
	app.SetWindowTitle(app.options.Title)
	app.SetTPS(app.options.TickRate)
	if err := app.App.RunGame(app); err != nil {
		return errors.Wrap(err, "game stopped")
	}
	return nil
}
