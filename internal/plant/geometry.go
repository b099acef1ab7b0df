package plant

import "math"

type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Length()
}

// headingDir converts a heading in degrees (0 = straight up, positive =
// clockwise) to a unit vector in screen coordinates where -Y is up.
func headingDir(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{math.Sin(rad), -math.Cos(rad)}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// segmentsIntersect reports whether segments a1-a2 and b1-b2 cross. Bounding
// boxes are rejected first, then the parametric line equations are solved and
// both parameters checked against [0,1].
func segmentsIntersect(a1, a2, b1, b2 Vec2) bool {
	if math.Max(a1.X, a2.X) < math.Min(b1.X, b2.X) ||
		math.Max(b1.X, b2.X) < math.Min(a1.X, a2.X) ||
		math.Max(a1.Y, a2.Y) < math.Min(b1.Y, b2.Y) ||
		math.Max(b1.Y, b2.Y) < math.Min(a1.Y, a2.Y) {
		return false
	}

	da := a2.Sub(a1)
	db := b2.Sub(b1)
	denom := da.X*db.Y - da.Y*db.X
	if denom == 0 {
		return false
	}
	diff := b1.Sub(a1)
	t := (diff.X*db.Y - diff.Y*db.X) / denom
	u := (diff.X*da.Y - diff.Y*da.X) / denom
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

func sharesEndpoint(a1, a2, b1, b2 Vec2, eps float64) bool {
	return a1.DistanceTo(b1) <= eps || a1.DistanceTo(b2) <= eps ||
		a2.DistanceTo(b1) <= eps || a2.DistanceTo(b2) <= eps
}
