package plant

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestNewSessionRejectsBadConfig(t *testing.T) {
	bad := []Config{
		func() Config { c := growthConfig(); c.Axiom = ""; return c }(),
		func() Config { c := growthConfig(); c.Iterations = -1; return c }(),
		func() Config { c := growthConfig(); c.StepLength = 0; return c }(),
		func() Config { c := growthConfig(); c.TurnAngle = math.NaN(); return c }(),
		func() Config { c := growthConfig(); c.Rules = map[rune]string{'X': ""}; return c }(),
		func() Config { c := growthConfig(); c.SceneHeight = -1; return c }(),
	}
	for i, cfg := range bad {
		if _, err := NewSession(cfg); err == nil {
			t.Fatalf("case %d: expected construction-time rejection", i)
		}
	}
}

func TestEndToEndSegmentCountMatchesExpansion(t *testing.T) {
	cfg := growthConfig()
	instructions, err := Generate(cfg.Axiom, cfg.Rules, cfg.Iterations)
	if err != nil {
		t.Fatalf("unexpected grammar error: %v", err)
	}
	expected := strings.Count(instructions, "F")

	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if s.SegmentCount() != expected {
		t.Fatalf("expected %d segments from the expansion, got %d", expected, s.SegmentCount())
	}
	for _, seg := range s.Segments() {
		switch seg.Part {
		case PartStem, PartBranch, PartRoot, PartLeaf:
		default:
			t.Fatalf("invalid part type %d", seg.Part)
		}
		for _, v := range []float64{seg.Start.X, seg.Start.Y, seg.End.X, seg.End.Y, seg.Width} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite geometry in %+v", seg)
			}
		}
	}
}

func TestGrowthActivationTerminatesAtStageCap(t *testing.T) {
	s, err := NewSession(growthConfig())
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := s.ActivateGrowth(PartRoot); err != nil {
		t.Fatalf("failed to activate root growth: %v", err)
	}
	for i := 0; i < 20; i++ {
		s.Tick(0.5)
	}
	if s.Growing(PartRoot) {
		t.Fatalf("root growth must return to idle after the stage cap")
	}

	settled := s.SegmentCount()
	for i := 0; i < 10; i++ {
		s.Tick(0.5)
	}
	if s.SegmentCount() != settled {
		t.Fatalf("idle session must not emit segments: %d -> %d", settled, s.SegmentCount())
	}
}

func TestActivateGrowthRejectsStem(t *testing.T) {
	s, err := NewSession(growthConfig())
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := s.ActivateGrowth(PartStem); err == nil {
		t.Fatalf("expected stem activation to be rejected")
	}
}

func TestTickAccumulatesToStageInterval(t *testing.T) {
	s, err := NewSession(growthConfig())
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := s.ActivateGrowth(PartLeaf); err != nil {
		t.Fatalf("failed to activate leaf growth: %v", err)
	}

	s.Tick(0.2)
	s.Tick(0.2)
	if s.Segments()[0].Age != 0 {
		t.Fatalf("no stage should run before the interval elapses")
	}
	s.Tick(0.1)
	if s.Segments()[0].Age != 1 {
		t.Fatalf("expected one executed stage to age pre-existing segments")
	}
}

func TestAgingAppliesOncePerStage(t *testing.T) {
	s, err := NewSession(growthConfig())
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	base := s.SegmentCount()
	if err := s.ActivateGrowth(PartBranch); err != nil {
		t.Fatalf("failed to activate branch growth: %v", err)
	}
	s.Tick(0.5)
	s.Tick(0.5)

	segs := s.Segments()
	for i := 0; i < base; i++ {
		if segs[i].Age != 2 {
			t.Fatalf("expected initial segment %d at age 2 after two stages, got %d", i, segs[i].Age)
		}
	}
}

func TestRegenerateReplacesPlantWholesale(t *testing.T) {
	cfg := growthConfig()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	base := s.SegmentCount()

	if err := s.ActivateGrowth(PartBranch); err != nil {
		t.Fatalf("failed to activate branch growth: %v", err)
	}
	for i := 0; i < 10; i++ {
		s.Tick(0.5)
	}
	if s.SegmentCount() <= base {
		t.Fatalf("expected growth to add segments, still at %d", s.SegmentCount())
	}

	if err := s.RegenerateWithIteration(cfg.Iterations); err != nil {
		t.Fatalf("failed to regenerate: %v", err)
	}
	if s.SegmentCount() != base {
		t.Fatalf("regeneration must rebuild the initial plant, got %d segments, want %d", s.SegmentCount(), base)
	}
	for _, part := range []PartType{PartBranch, PartLeaf, PartRoot} {
		if s.Growing(part) {
			t.Fatalf("regeneration must reset the %s stage machine", part)
		}
	}
	for _, seg := range s.Segments() {
		if seg.Age != 0 {
			t.Fatalf("regenerated segments must start at age 0, got %d", seg.Age)
		}
	}
}

func TestRegenerateRejectsExplosiveDepth(t *testing.T) {
	cfg := growthConfig()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	before := s.Segments()
	if err := s.RegenerateWithIteration(30); err == nil {
		t.Fatalf("expected blow-up rejection at depth 30")
	}
	// A failed regeneration must leave the previous plant visible.
	if !reflect.DeepEqual(before, s.Segments()) {
		t.Fatalf("failed regeneration must not disturb the current plant")
	}
}

func TestSessionsWithSameSeedAreIdentical(t *testing.T) {
	run := func() []Segment {
		s, err := NewSession(growthConfig())
		if err != nil {
			t.Fatalf("failed to create session: %v", err)
		}
		if err := s.ActivateGrowth(PartBranch); err != nil {
			t.Fatalf("failed to activate: %v", err)
		}
		if err := s.ActivateGrowth(PartLeaf); err != nil {
			t.Fatalf("failed to activate: %v", err)
		}
		for i := 0; i < 12; i++ {
			s.Tick(0.5)
		}
		return s.Segments()
	}

	if !reflect.DeepEqual(run(), run()) {
		t.Fatalf("same seed must reproduce the same plant")
	}
}
