//go:build cgo
// +build cgo

package gui

import rl "github.com/gen2brain/raylib-go/raylib"

var digitKeys = [...]int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive, rl.KeySix}

// digitPressed reports a pressed number-row key as its value, for picking a
// rewrite depth directly.
func digitPressed() (int, bool) {
	for i, key := range digitKeys {
		if rl.IsKeyPressed(key) {
			return i + 1, true
		}
	}
	return 0, false
}

func cycleDirection() int {
	switch {
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyTab):
		return 1
	case rl.IsKeyPressed(rl.KeyLeft):
		return -1
	default:
		return 0
	}
}
