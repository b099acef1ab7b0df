package plant

import (
	"math"
	"testing"
)

func TestSegmentsIntersectCrossing(t *testing.T) {
	if !segmentsIntersect(Vec2{0, 0}, Vec2{10, 10}, Vec2{0, 10}, Vec2{10, 0}) {
		t.Fatalf("expected crossing diagonals to intersect")
	}
}

func TestSegmentsIntersectParallel(t *testing.T) {
	if segmentsIntersect(Vec2{0, 0}, Vec2{10, 0}, Vec2{0, 1}, Vec2{10, 1}) {
		t.Fatalf("parallel segments must not intersect")
	}
}

func TestSegmentsIntersectBoundingBoxReject(t *testing.T) {
	if segmentsIntersect(Vec2{0, 0}, Vec2{1, 1}, Vec2{5, 5}, Vec2{6, 6}) {
		t.Fatalf("disjoint bounding boxes must not intersect")
	}
}

func TestSegmentsIntersectDisjointOnLine(t *testing.T) {
	if segmentsIntersect(Vec2{0, 0}, Vec2{2, 2}, Vec2{0, 5}, Vec2{2, 4}) {
		t.Fatalf("lines crossing outside both segments must not count")
	}
}

func TestSharesEndpoint(t *testing.T) {
	if !sharesEndpoint(Vec2{0, 0}, Vec2{10, 0}, Vec2{10, 0}, Vec2{20, 0}, 0.5) {
		t.Fatalf("expected shared endpoint to be detected")
	}
	if sharesEndpoint(Vec2{0, 0}, Vec2{10, 0}, Vec2{15, 0}, Vec2{20, 0}, 0.5) {
		t.Fatalf("expected no shared endpoint")
	}
}

func TestHeadingDir(t *testing.T) {
	up := headingDir(0)
	if math.Abs(up.X) > 1e-9 || math.Abs(up.Y+1) > 1e-9 {
		t.Fatalf("heading 0 must point screen-up, got %+v", up)
	}
	right := headingDir(90)
	if math.Abs(right.X-1) > 1e-9 || math.Abs(right.Y) > 1e-9 {
		t.Fatalf("heading 90 must point right, got %+v", right)
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	if got := (Vec2{}).Normalized(); got != (Vec2{}) {
		t.Fatalf("normalizing the zero vector must stay zero, got %+v", got)
	}
}
