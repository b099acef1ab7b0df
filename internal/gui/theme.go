//go:build cgo
// +build cgo

package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/sapling/internal/plant"
)

var (
	colorBG       = rl.NewColor(18, 22, 26, 255)
	colorSoil     = rl.NewColor(34, 28, 22, 255)
	colorGround   = rl.NewColor(74, 58, 40, 255)
	colorText     = rl.NewColor(214, 209, 192, 255)
	colorTextDim  = rl.NewColor(138, 134, 120, 255)
	colorAccent   = rl.NewColor(126, 166, 96, 255)
	colorStatusBG = rl.NewColor(28, 34, 30, 230)
)

// partColor maps part types to the stable presentation palette. This is
// presentation-only; the core never sees colors.
func partColor(part plant.PartType) rl.Color {
	switch part {
	case plant.PartBranch:
		return rl.NewColor(150, 111, 67, 255)
	case plant.PartLeaf:
		return rl.NewColor(92, 148, 62, 255)
	default:
		// Stem and root share the dark trunk brown.
		return rl.NewColor(96, 66, 40, 255)
	}
}
