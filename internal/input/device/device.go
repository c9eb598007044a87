// device polls the keyboard and gamepads
package device

import "github.com/silbinarywolf/dragonfire/internal/input"

// Key represents a keyboard key.
type Key int32

// Only defining keys used by this game
//
// Keys are mapped onto ebiten keys in device_noheadless.go so that ebiten
// isn't included as a package for headless builds
const (
	KeyA Key = iota
	KeyD
	KeyS
	KeyW
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyF1
)

func IsKeyPressed(key Key) bool {
	return isKeyPressed(key)
}

// IsKeyJustPressed is true only on the tick the key went down
func IsKeyJustPressed(key Key) bool {
	return isKeyJustPressed(key)
}

// GamepadButton is a button on a standard layout gamepad
type GamepadButton int32

const (
	GamepadUp GamepadButton = iota
	GamepadDown
	GamepadLeft
	GamepadRight
	// GamepadA is the bottom face button
	GamepadA
)

// IsGamepadButtonPressed checks the button on every connected gamepad
//
// For headless builds, this always returns false
func IsGamepadButtonPressed(button GamepadButton) bool {
	return isGamepadButtonPressed(button)
}

// Sample reads the keyboard and gamepads
func Sample() input.State {
	return input.State{
		Up:          IsKeyPressed(KeyUp) || IsKeyPressed(KeyW) || IsGamepadButtonPressed(GamepadUp),
		Down:        IsKeyPressed(KeyDown) || IsKeyPressed(KeyS) || IsGamepadButtonPressed(GamepadDown),
		Left:        IsKeyPressed(KeyLeft) || IsKeyPressed(KeyA) || IsGamepadButtonPressed(GamepadLeft),
		Right:       IsKeyPressed(KeyRight) || IsKeyPressed(KeyD) || IsGamepadButtonPressed(GamepadRight),
		Fire:        IsKeyPressed(KeySpace) || IsGamepadButtonPressed(GamepadA),
		ToggleDebug: IsKeyJustPressed(KeyF1),
	}
}
