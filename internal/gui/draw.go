//go:build cgo
// +build cgo

package gui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/sapling/internal/plant"
)

func (ui *plantUI) draw() {
	ui.drawGround()
	ui.drawPlant()
	ui.drawHUD()
	ui.drawStatus()
}

func (ui *plantUI) drawGround() {
	groundY := int32(ui.session.Config().GroundY())
	rl.DrawRectangle(0, groundY, ui.width, ui.height-groundY, colorSoil)
	rl.DrawLineEx(
		rl.NewVector2(0, float32(groundY)),
		rl.NewVector2(float32(ui.width), float32(groundY)),
		2, colorGround)
}

func (ui *plantUI) drawPlant() {
	for _, seg := range ui.session.Segments() {
		rl.DrawLineEx(
			rl.NewVector2(float32(seg.Start.X), float32(seg.Start.Y)),
			rl.NewVector2(float32(seg.End.X), float32(seg.End.Y)),
			float32(seg.Width),
			partColor(seg.Part))
	}
}

func (ui *plantUI) drawHUD() {
	preset := ui.presets[ui.presetIdx]
	cfg := ui.session.Config()

	rl.DrawText(fmt.Sprintf("%s  (depth %d)", preset.Name, cfg.Iterations), 16, 14, 20, colorText)
	rl.DrawText(fmt.Sprintf("%d segments", ui.session.SegmentCount()), 16, 40, 16, colorTextDim)

	y := int32(64)
	for _, part := range []plant.PartType{plant.PartBranch, plant.PartLeaf, plant.PartRoot} {
		if ui.session.Growing(part) {
			rl.DrawText(fmt.Sprintf("%s growing...", part), 16, y, 16, colorAccent)
			y += 20
		}
	}

	help := "B branches  L leaves  G roots  R regrow  1-6 depth  tab preset  Q quit"
	rl.DrawText(help, 16, ui.height-28, 14, colorTextDim)
}

func (ui *plantUI) drawStatus() {
	if ui.status == "" || time.Now().After(ui.statusUntil) {
		return
	}
	width := rl.MeasureText(ui.status, 16)
	x := (ui.width - width) / 2
	rl.DrawRectangle(x-10, 70, width+20, 28, colorStatusBG)
	rl.DrawText(ui.status, x, 76, 16, colorText)
}
