package main

import (
	"os"

	"github.com/silbinarywolf/dragonfire/cmd/dev-server/internal/devwebserver"
)

// main builds the game for the browser on request and serves it, so that
// refreshing the page picks up code changes
func main() {
	devwebserver.Serve(os.Args[1:])
}
