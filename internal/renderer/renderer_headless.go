//go:build headless
// +build headless

package renderer

import (
	"github.com/silbinarywolf/dragonfire/internal/renderer/headless"
)

type appImplementation = headless.App
