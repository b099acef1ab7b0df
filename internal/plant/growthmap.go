package plant

import "math"

type gridCell struct {
	X int
	Y int
}

// GrowthMap records where growth has already been seeded, quantized to a
// fixed grid step. One map exists per part family so branches, leaves and
// roots suppress their own re-clustering independently.
type GrowthMap struct {
	step  float64
	cells map[gridCell]int
}

func NewGrowthMap(step float64) *GrowthMap {
	if step <= 0 {
		step = 1
	}
	return &GrowthMap{step: step, cells: make(map[gridCell]int)}
}

func (m *GrowthMap) Reset() {
	m.cells = make(map[gridCell]int)
}

func (m *GrowthMap) quantize(p Vec2) gridCell {
	return gridCell{
		X: int(math.Round(p.X / m.step)),
		Y: int(math.Round(p.Y / m.step)),
	}
}

func (m *GrowthMap) Mark(p Vec2) {
	m.cells[m.quantize(p)]++
}

// Occupied reports whether the point's own cell has been marked.
func (m *GrowthMap) Occupied(p Vec2) bool {
	return m.cells[m.quantize(p)] > 0
}

// BlockedNear reports whether any marked cell lies within minDist of p.
// Occupied cell counts stay small (tens per activation), so a linear scan
// over the map is fine.
func (m *GrowthMap) BlockedNear(p Vec2, minDist float64) bool {
	for c := range m.cells {
		center := Vec2{X: float64(c.X) * m.step, Y: float64(c.Y) * m.step}
		if center.DistanceTo(p) < minDist {
			return true
		}
	}
	return false
}
