package plant

import (
	"math"
	"math/rand/v2"
)

// rootAnchorTolerance is how close to the ground line a stem endpoint must
// sit to anchor the first root fan.
const rootAnchorTolerance = 6.0

// overlapEndpointEps: new segments trivially touch their parent at the
// shared endpoint; contacts within this distance are not counted as crossings.
const overlapEndpointEps = 1.0

// growthPhase is one part type's stage machine: Idle (Growing false) or
// Growing with a stage counter that terminates at the stage cap.
type growthPhase struct {
	Growing bool
	Stage   int
}

// tickOrder serializes stage execution when several part types are active
// on the same tick: leaves, then roots, then branches.
var tickOrder = [...]PartType{PartLeaf, PartRoot, PartBranch}

// Engine grows the segment store in discrete stages. It owns the per-type
// growth maps and stage machines; all randomness flows through the seeded
// RNG handed in at construction.
type Engine struct {
	cfg    Config
	tun    Tuning
	rng    *rand.Rand
	store  *Store
	maps   map[PartType]*GrowthMap
	phases map[PartType]*growthPhase
}

func NewEngine(cfg Config, tun Tuning, rng *rand.Rand, store *Store) *Engine {
	return &Engine{
		cfg:   cfg,
		tun:   tun,
		rng:   rng,
		store: store,
		maps: map[PartType]*GrowthMap{
			PartBranch: NewGrowthMap(tun.QuantizeStep),
			PartLeaf:   NewGrowthMap(tun.QuantizeStep),
			PartRoot:   NewGrowthMap(tun.QuantizeStep),
		},
		phases: map[PartType]*growthPhase{
			PartBranch: {},
			PartLeaf:   {},
			PartRoot:   {},
		},
	}
}

// Activate puts a part type's stage machine into Growing and clears its
// growth map and stage counter for the new activation.
func (e *Engine) Activate(part PartType) bool {
	ph, ok := e.phases[part]
	if !ok {
		return false
	}
	ph.Growing = true
	ph.Stage = 0
	e.maps[part].Reset()
	return true
}

func (e *Engine) Growing(part PartType) bool {
	ph, ok := e.phases[part]
	return ok && ph.Growing
}

// RunStages executes one stage for every active part type, in tickOrder.
func (e *Engine) RunStages() {
	for _, part := range tickOrder {
		if e.phases[part].Growing {
			e.runStage(part)
		}
	}
}

func (e *Engine) runStage(part PartType) {
	ph := e.phases[part]
	ph.Stage++
	if ph.Stage >= e.tun.StageCap {
		ph.Growing = false
		ph.Stage = 0
		return
	}

	before := e.store.Len()
	switch part {
	case PartBranch:
		e.growBranches(ph.Stage)
	case PartLeaf:
		e.growLeaves(ph.Stage)
	case PartRoot:
		e.growRoots(ph.Stage)
	}
	// Everything that existed before this stage ages by one; this stage's
	// children stay at age zero.
	e.store.AgeFirst(before)
}

func (e *Engine) growBranches(stage int) {
	cands := findCandidates(e.store.segments, candidateQuery{
		part:        PartBranch,
		gm:          e.maps[PartBranch],
		score:       branchScore(e.cfg),
		minDist:     e.tun.BranchSpacing,
		relaxedDist: e.tun.BranchSpacingRelaxed,
		maxAge:      -1,
		relaxBelow:  e.tun.RelaxThreshold,
		relaxCap:    e.tun.RelaxCap,
	})
	if len(cands) == 0 {
		return
	}

	want := e.tun.BranchBase + stage*e.tun.BranchPerStage
	for _, idx := range selectBiased(e.rng, len(cands), want, e.tun.SelectionBias) {
		parent := cands[idx]
		length := parent.Length()
		if length == 0 {
			continue
		}
		// Recheck against marks placed earlier in this same stage so two
		// candidates sharing a cell never both spawn children.
		if e.maps[PartBranch].BlockedNear(parent.End, e.tun.BranchSpacingRelaxed) {
			continue
		}
		for _, child := range e.branchChildren(parent, length) {
			if stage > e.tun.OverlapFreeStages && e.crossesExisting(child) {
				continue
			}
			e.store.Append(child)
		}
		e.maps[PartBranch].Mark(parent.End)
	}
}

// branchChildren derives 1-2 continuation segments from a branch candidate.
// Directions continue the parent's own heading within a jitter cone, pulled
// upward so the canopy reads as growing toward the light.
func (e *Engine) branchChildren(parent Segment, length float64) []Segment {
	base := directionHeading(parent.Direction())

	mainHeading := base + (e.rng.Float64()*2-1)*e.tun.BranchCone/2
	mainDir := biasVertical(headingDir(mainHeading), -e.tun.UpBias)
	children := []Segment{childSegment(parent, mainDir,
		length*e.tun.MainLengthFactor, parent.Width*e.tun.MainWidthFactor, PartBranch)}

	if e.rng.Float64() < e.tun.SideChildChance {
		sideHeading := base + (e.rng.Float64()*2-1)*e.tun.BranchCone
		sideDir := biasVertical(headingDir(sideHeading), -e.tun.UpBias)
		children = append(children, childSegment(parent, sideDir,
			length*e.tun.SideLengthFactor, parent.Width*e.tun.SideWidthFactor, PartBranch))
	}
	return children
}

func (e *Engine) growLeaves(stage int) {
	cands := findCandidates(e.store.segments, candidateQuery{
		part:        PartLeaf,
		gm:          e.maps[PartLeaf],
		score:       leafScore(e.cfg),
		minDist:     e.tun.LeafSpacing,
		relaxedDist: e.tun.LeafSpacingRelaxed,
		maxAge:      e.tun.LeafMaxAge,
		relaxBelow:  e.tun.RelaxThreshold + 1,
		relaxCap:    e.tun.RelaxCap,
	})
	if len(cands) == 0 {
		return
	}

	want := e.tun.LeafBase + stage*e.tun.LeafPerStage
	for _, idx := range selectBiased(e.rng, len(cands), want, e.tun.SelectionBias) {
		parent := cands[idx]
		if e.maps[PartLeaf].BlockedNear(parent.End, e.tun.LeafSpacingRelaxed) {
			continue
		}
		length := parent.Length() * e.tun.LeafLengthFactor
		if length == 0 {
			length = e.cfg.StepLength * e.tun.LeafLengthFactor
		}
		// Leaf clusters fan out in any direction around the site, with a
		// slight upward pull; the first leaf of the pair is the larger one.
		count := 1
		if e.rng.Float64() < e.tun.SideChildChance {
			count = 2
		}
		for i := 0; i < count; i++ {
			dir := biasVertical(headingDir(e.rng.Float64()*360), -e.tun.LeafUpBias)
			l := length
			w := parent.Width * e.tun.LeafWidthFactor
			if i > 0 {
				l *= 0.7
				w *= 0.75
			}
			e.store.Append(childSegment(parent, dir, l, w, PartLeaf))
		}
		e.maps[PartLeaf].Mark(parent.End)
	}
}

func (e *Engine) growRoots(stage int) {
	if !e.hasRoots() {
		e.seedRootFan()
		return
	}

	cands := findCandidates(e.store.segments, candidateQuery{
		part:        PartRoot,
		gm:          e.maps[PartRoot],
		score:       rootScore(e.cfg),
		minDist:     e.tun.RootSpacing,
		relaxedDist: e.tun.RootSpacingRelaxed,
		maxAge:      -1,
		relaxBelow:  e.tun.RelaxThreshold,
		relaxCap:    e.tun.RelaxCap,
	})
	if len(cands) == 0 {
		return
	}

	want := e.tun.RootBase + stage*e.tun.RootPerStage
	for _, idx := range selectBiased(e.rng, len(cands), want, e.tun.SelectionBias) {
		parent := cands[idx]
		length := parent.Length()
		if length == 0 {
			continue
		}
		if e.maps[PartRoot].BlockedNear(parent.End, e.tun.RootSpacingRelaxed) {
			continue
		}
		e.store.Append(childSegment(parent, e.rootDirection(),
			length*e.tun.MainLengthFactor, parent.Width*e.tun.MainWidthFactor, PartRoot))
		if e.rng.Float64() < e.tun.SideChildChance {
			e.store.Append(childSegment(parent, e.rootDirection(),
				length*e.tun.SideLengthFactor, parent.Width*e.tun.SideWidthFactor, PartRoot))
		}
		e.maps[PartRoot].Mark(parent.End)
	}
}

// rootDirection samples within the downward cone and applies the down bias.
func (e *Engine) rootDirection() Vec2 {
	rad := (e.rng.Float64()*2 - 1) * e.tun.RootCone / 2 * math.Pi / 180
	return biasVertical(Vec2{X: math.Sin(rad), Y: math.Cos(rad)}, e.tun.RootDownBias)
}

// seedRootFan synthesizes the very first roots: fans of 2-4 downward
// segments hung from ground-level stem endpoints, or from the center of the
// ground line when no stem reaches it. The fan center carries the taproot;
// laterals taper toward the edges.
func (e *Engine) seedRootFan() {
	groundY := e.cfg.GroundY()

	type anchor struct {
		pos      Vec2
		childGen int
	}
	var anchors []anchor
	for _, s := range e.store.segments {
		if s.Part != PartStem {
			continue
		}
		if math.Abs(s.Start.Y-groundY) <= rootAnchorTolerance {
			anchors = append(anchors, anchor{pos: s.Start, childGen: s.Generation + 1})
		}
		if len(anchors) >= 2 {
			break
		}
	}
	if len(anchors) == 0 {
		anchors = []anchor{{pos: Vec2{X: e.cfg.SceneWidth / 2, Y: groundY}}}
	}

	for _, a := range anchors {
		count := 2 + e.rng.IntN(3)
		for i := 0; i < count; i++ {
			off := 0.0
			if count > 1 {
				off = float64(i)/float64(count-1)*2 - 1
			}
			deg := off*e.tun.RootCone/2 + (e.rng.Float64()*2-1)*5
			rad := deg * math.Pi / 180
			dir := Vec2{X: math.Sin(rad), Y: math.Cos(rad)}
			taper := 1 - 0.45*math.Abs(off)
			e.store.Append(Segment{
				Start:      a.pos,
				End:        a.pos.Add(dir.Scale(e.cfg.StepLength * 1.2 * taper)),
				Width:      e.cfg.StrokeWidth * taper,
				Part:       PartRoot,
				Generation: a.childGen,
			})
		}
		e.maps[PartRoot].Mark(a.pos)
	}
}

func (e *Engine) hasRoots() bool {
	for _, s := range e.store.segments {
		if s.Part == PartRoot {
			return true
		}
	}
	return false
}

// crossesExisting reports whether the candidate child intersects any stored
// segment it does not already touch at an endpoint.
func (e *Engine) crossesExisting(child Segment) bool {
	for _, s := range e.store.segments {
		if sharesEndpoint(child.Start, child.End, s.Start, s.End, overlapEndpointEps) {
			continue
		}
		if segmentsIntersect(child.Start, child.End, s.Start, s.End) {
			return true
		}
	}
	return false
}

func childSegment(parent Segment, dir Vec2, length, width float64, part PartType) Segment {
	return Segment{
		Start:      parent.End,
		End:        parent.End.Add(dir.Scale(length)),
		Width:      width,
		Part:       part,
		Age:        0,
		Generation: parent.Generation + 1,
	}
}

// biasVertical shifts a unit direction's vertical component by delta and
// renormalizes. Negative delta pulls toward screen-up, positive toward
// screen-down.
func biasVertical(dir Vec2, delta float64) Vec2 {
	dir.Y += delta
	return dir.Normalized()
}

// directionHeading converts a direction vector to the turtle heading
// convention (degrees, 0 = up, clockwise positive).
func directionHeading(dir Vec2) float64 {
	return math.Atan2(dir.X, -dir.Y) * 180 / math.Pi
}
