//go:build !headless
// +build !headless

package renderer

import (
	"github.com/silbinarywolf/dragonfire/internal/renderer/internal/ebiten"
)

type appImplementation = ebiten.App
