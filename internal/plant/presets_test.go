package plant

import "testing"

func TestBuiltInPresetsAllGenerate(t *testing.T) {
	for _, p := range BuiltInPresets() {
		cfg, err := p.Config(800, 600, 1)
		if err != nil {
			t.Fatalf("preset %s: %v", p.ID, err)
		}
		s, err := NewSession(cfg)
		if err != nil {
			t.Fatalf("preset %s: %v", p.ID, err)
		}
		if s.SegmentCount() == 0 {
			t.Fatalf("preset %s produced no segments", p.ID)
		}
	}
}

func TestPresetRejectsMultiGlyphSymbol(t *testing.T) {
	p := BuiltInPresets()[0]
	p.Rules = map[string]string{"XY": "F"}
	if _, err := p.Config(800, 600, 1); err == nil {
		t.Fatalf("expected rejection of multi-glyph rule symbol")
	}
}

func TestFindPreset(t *testing.T) {
	presets := BuiltInPresets()
	if _, ok := FindPreset(presets, "fern"); !ok {
		t.Fatalf("expected fern preset to exist")
	}
	if _, ok := FindPreset(presets, "cactus"); ok {
		t.Fatalf("did not expect a cactus preset")
	}
}
