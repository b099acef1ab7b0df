package plant

import (
	"fmt"
	"math"
)

// groundLineRatio places the ground line at 0.67 of the scene height; the
// plant grows upward from it and roots downward below it.
const groundLineRatio = 0.67

// Config is the construction-time surface of a plant session. None of its
// fields are runtime-mutable; regeneration builds a fresh session state from
// the same config.
type Config struct {
	Axiom      string
	Rules      map[rune]string
	Iterations int

	TurnAngle    float64 // degrees applied by '+' and '-'
	StepLength   float64
	LengthFactor float64 // '<' multiplier for step length and width
	StrokeWidth  float64

	SceneWidth  float64
	SceneHeight float64

	Seed int64

	// Tuning overrides growth heuristics; zero value means DefaultTuning.
	Tuning *Tuning
}

func (c Config) Validate() error {
	if c.Axiom == "" {
		return fmt.Errorf("axiom must not be empty")
	}
	if c.Iterations < 0 {
		return fmt.Errorf("iterations must be non-negative, got %d", c.Iterations)
	}
	for sym, rhs := range c.Rules {
		if rhs == "" {
			return fmt.Errorf("rule for %q has an empty replacement", string(sym))
		}
	}
	for name, v := range map[string]float64{
		"turn angle":    c.TurnAngle,
		"step length":   c.StepLength,
		"length factor": c.LengthFactor,
		"stroke width":  c.StrokeWidth,
		"scene width":   c.SceneWidth,
		"scene height":  c.SceneHeight,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s must be finite, got %v", name, v)
		}
	}
	if c.StepLength <= 0 {
		return fmt.Errorf("step length must be positive, got %v", c.StepLength)
	}
	if c.LengthFactor <= 0 || c.LengthFactor >= 1 {
		return fmt.Errorf("length factor must be in (0,1), got %v", c.LengthFactor)
	}
	if c.StrokeWidth <= 0 {
		return fmt.Errorf("stroke width must be positive, got %v", c.StrokeWidth)
	}
	if c.SceneWidth <= 0 || c.SceneHeight <= 0 {
		return fmt.Errorf("scene dimensions must be positive, got %vx%v", c.SceneWidth, c.SceneHeight)
	}
	return nil
}

// GroundY returns the y coordinate of the ground line.
func (c Config) GroundY() float64 {
	return groundLineRatio * c.SceneHeight
}

// Origin returns the plant's base position on the ground line.
func (c Config) Origin() Vec2 {
	return Vec2{X: c.SceneWidth / 2, Y: c.GroundY()}
}

func (c Config) tuning() Tuning {
	if c.Tuning != nil {
		return *c.Tuning
	}
	return DefaultTuning()
}
