//go:build headless
// +build headless

package device

func isKeyPressed(key Key) bool {
	return false
}

func isKeyJustPressed(key Key) bool {
	return false
}

func isGamepadButtonPressed(button GamepadButton) bool {
	return false
}
