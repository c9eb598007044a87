package main

import (
	"flag"
	"log"

	"github.com/silbinarywolf/dragonfire/internal/app"
	"github.com/silbinarywolf/dragonfire/internal/gameconf"
)

func main() {
	var options gameconf.Options
	flag.StringVar(&options.Title, "title", gameconf.DefaultTitle, "window title")
	flag.Float64Var(&options.WindowScale, "scale", gameconf.DefaultWindowScale, "window size as a multiple of 1280x720")
	flag.BoolVar(&options.Debug, "debug", false, "draw collision bounds and frame timings (toggle in game with F1)")
	flag.IntVar(&options.TickRate, "tps", gameconf.DefaultTickRate, "ticks per second")
	flag.Parse()

	if err := app.StartApp(options); err != nil {
		log.Fatalf("%+v", err)
	}
}
