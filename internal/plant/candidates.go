package plant

import (
	"math"
	"sort"
)

// terminalEpsilon is the quantization step used when matching segment end
// points against other segments' start points for terminal detection.
const terminalEpsilon = 1.0

func quantizePoint(p Vec2, step float64) gridCell {
	return gridCell{
		X: int(math.Round(p.X / step)),
		Y: int(math.Round(p.Y / step)),
	}
}

type candidateQuery struct {
	part        PartType
	gm          *GrowthMap
	score       scoreFunc
	minDist     float64
	relaxedDist float64
	maxAge      int // -1 disables the age filter
	relaxBelow  int
	relaxCap    int
}

// findCandidates returns the growth sites for a part type: terminal
// segments of that type (nothing already grows from their end) whose end is
// not blocked in the growth map and whose age passes the optional filter.
// Terminal detection uses a quantized start-point index, which yields the
// same candidate set as the pairwise scan it replaces.
//
// When too few terminals remain, adjacent-type segments are admitted
// regardless of terminality (stems as branch sites, branches as leaf sites,
// any root as a root site) up to a small cap, so growth never stalls once
// started. With a score function the result is sorted best-first, otherwise
// it stays in insertion order.
func findCandidates(segments []Segment, q candidateQuery) []Segment {
	starts := make(map[gridCell]int, len(segments))
	for _, s := range segments {
		starts[quantizePoint(s.Start, terminalEpsilon)]++
	}

	admitted := make([]bool, len(segments))
	var out []Segment
	for i, s := range segments {
		if s.Part != q.part {
			continue
		}
		if q.maxAge >= 0 && s.Age > q.maxAge {
			continue
		}
		if starts[quantizePoint(s.End, terminalEpsilon)] > 0 {
			continue
		}
		if q.gm != nil && q.gm.BlockedNear(s.End, q.minDist) {
			continue
		}
		admitted[i] = true
		out = append(out, s)
	}

	if len(out) < q.relaxBelow {
		extra := 0
		for i, s := range segments {
			if extra >= q.relaxCap {
				break
			}
			if admitted[i] || !relaxedSite(q.part, s.Part) {
				continue
			}
			if q.maxAge >= 0 && s.Age > q.maxAge {
				continue
			}
			if q.gm != nil && q.gm.BlockedNear(s.End, q.relaxedDist) {
				continue
			}
			out = append(out, s)
			extra++
		}
	}

	if q.score != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return q.score(out[i]) > q.score(out[j])
		})
	}
	return out
}

// relaxedSite reports whether a segment of type part may serve as a growth
// site for the given growth type once the terminal filter is relaxed.
func relaxedSite(growing, part PartType) bool {
	switch growing {
	case PartBranch:
		return part == PartStem
	case PartLeaf:
		return part == PartBranch
	case PartRoot:
		return part == PartRoot
	default:
		return false
	}
}
