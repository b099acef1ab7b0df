package plant

import "testing"

func TestGrowthMapMarkAndOccupied(t *testing.T) {
	m := NewGrowthMap(5)
	m.Mark(Vec2{X: 12, Y: 7})

	if !m.Occupied(Vec2{X: 11, Y: 6}) {
		t.Fatalf("points in the same quantized cell should read as occupied")
	}
	if m.Occupied(Vec2{X: 40, Y: 40}) {
		t.Fatalf("distant cell should not be occupied")
	}
}

func TestGrowthMapBlockedNear(t *testing.T) {
	m := NewGrowthMap(5)
	m.Mark(Vec2{X: 20, Y: 20})

	if !m.BlockedNear(Vec2{X: 25, Y: 20}, 10) {
		t.Fatalf("point within min distance should be blocked")
	}
	if m.BlockedNear(Vec2{X: 60, Y: 20}, 10) {
		t.Fatalf("point outside min distance should not be blocked")
	}
}

func TestGrowthMapReset(t *testing.T) {
	m := NewGrowthMap(5)
	m.Mark(Vec2{X: 20, Y: 20})
	m.Reset()

	if m.BlockedNear(Vec2{X: 20, Y: 20}, 50) {
		t.Fatalf("reset should clear all occupancy")
	}
}
