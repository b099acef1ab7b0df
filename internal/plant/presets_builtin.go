package plant

import "fmt"

// Preset is a named, shareable plant definition. Rules map single-glyph
// strings to replacements so presets round-trip through JSON; Config
// converts them to the rune-keyed form the grammar uses.
type Preset struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Axiom       string            `json:"axiom"`
	Rules       map[string]string `json:"rules"`
	Iterations  int               `json:"iterations"`
	TurnAngle   float64           `json:"turn_angle"`
	StepLength  float64           `json:"step_length"`
	LengthFac   float64           `json:"length_factor"`
	StrokeWidth float64           `json:"stroke_width"`
}

// Config resolves the preset against a scene and seed.
func (p Preset) Config(sceneWidth, sceneHeight float64, seed int64) (Config, error) {
	rules := make(map[rune]string, len(p.Rules))
	for sym, rhs := range p.Rules {
		runes := []rune(sym)
		if len(runes) != 1 {
			return Config{}, fmt.Errorf("preset %s: rule symbol %q must be a single glyph", p.ID, sym)
		}
		rules[runes[0]] = rhs
	}
	cfg := Config{
		Axiom:        p.Axiom,
		Rules:        rules,
		Iterations:   p.Iterations,
		TurnAngle:    p.TurnAngle,
		StepLength:   p.StepLength,
		LengthFactor: p.LengthFac,
		StrokeWidth:  p.StrokeWidth,
		SceneWidth:   sceneWidth,
		SceneHeight:  sceneHeight,
		Seed:         seed,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("preset %s: %w", p.ID, err)
	}
	return cfg, nil
}

func FindPreset(presets []Preset, id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

func BuiltInPresets() []Preset {
	build := func(id, name, desc, axiom string, rules map[string]string, iterations int, angle, step, lengthFac, width float64) Preset {
		return Preset{
			ID:          id,
			Name:        name,
			Description: desc,
			Axiom:       axiom,
			Rules:       rules,
			Iterations:  iterations,
			TurnAngle:   angle,
			StepLength:  step,
			LengthFac:   lengthFac,
			StrokeWidth: width,
		}
	}

	return []Preset{
		build("sprout", "Sprout", "A young shoot with a pair of side buds.",
			"X", map[string]string{"X": "F[+X][-X]FX", "F": "FF"},
			3, 25.7, 10, 0.8, 4),
		build("fern", "Fern", "The classic fractal fern, dense and feathery.",
			"X", map[string]string{"X": "F+[[X]-X]-F[-FX]+X", "F": "FF"},
			4, 25, 5, 0.8, 3),
		build("bush", "Bush", "Short, wide and heavily forked.",
			"F", map[string]string{"F": "FF-[-F+F+F]+[+F-F-F]"},
			3, 22.5, 8, 0.8, 4),
		build("willow", "Weeping Willow", "Long drooping limbs over a rooted trunk.",
			"SFFX", map[string]string{"X": "F[++F[-FX]L][--F[+FX]L]RG"},
			4, 30, 12, 0.85, 5),
		build("seaweed", "Seaweed", "A wavy single strand that leans with the turn angle.",
			"F", map[string]string{"F": "FF-[-F+F]+[+F-F]"},
			3, 20, 9, 0.8, 3),
	}
}
