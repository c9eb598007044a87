//go:build !headless
// +build !headless

package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[Key]ebiten.Key{
	KeyA:     ebiten.KeyA,
	KeyD:     ebiten.KeyD,
	KeyS:     ebiten.KeyS,
	KeyW:     ebiten.KeyW,
	KeyUp:    ebiten.KeyArrowUp,
	KeyDown:  ebiten.KeyArrowDown,
	KeyLeft:  ebiten.KeyArrowLeft,
	KeyRight: ebiten.KeyArrowRight,
	KeySpace: ebiten.KeySpace,
	KeyF1:    ebiten.KeyF1,
}

var ebitenGamepadButtons = map[GamepadButton]ebiten.StandardGamepadButton{
	GamepadUp:    ebiten.StandardGamepadButtonLeftTop,
	GamepadDown:  ebiten.StandardGamepadButtonLeftBottom,
	GamepadLeft:  ebiten.StandardGamepadButtonLeftLeft,
	GamepadRight: ebiten.StandardGamepadButtonLeftRight,
	GamepadA:     ebiten.StandardGamepadButtonRightBottom,
}

var gamepadIDs []ebiten.GamepadID

func isKeyPressed(key Key) bool {
	k, ok := ebitenKeys[key]
	if !ok {
		return false
	}
	return ebiten.IsKeyPressed(k)
}

func isKeyJustPressed(key Key) bool {
	k, ok := ebitenKeys[key]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(k)
}

func isGamepadButtonPressed(button GamepadButton) bool {
	b, ok := ebitenGamepadButtons[button]
	if !ok {
		return false
	}
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, id := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	return false
}
