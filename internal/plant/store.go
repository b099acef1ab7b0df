package plant

// groundSnapTolerance is how far above the ground line a root's start may
// sit before the normalization pass pulls the segment down onto it.
const groundSnapTolerance = 1.0

// Store holds every segment of the current plant instance. It is owned
// exclusively by the session: the growth engine appends to it and ages it,
// the renderer only ever sees copies from Segments.
type Store struct {
	segments []Segment
}

func NewStore(segments []Segment) *Store {
	return &Store{segments: segments}
}

func (s *Store) Len() int {
	return len(s.segments)
}

// Segments returns a copy of the current segment list, in creation order.
func (s *Store) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

func (s *Store) Append(seg Segment) {
	s.segments = append(s.segments, seg)
}

// AgeFirst increments the age of the first n segments by one. The growth
// engine calls it with the pre-emission length so newly created children
// stay at age zero for the stage that created them.
func (s *Store) AgeFirst(n int) {
	if n > len(s.segments) {
		n = len(s.segments)
	}
	for i := 0; i < n; i++ {
		s.segments[i].Age++
	}
}

// NormalizeRoots runs the one-time corrective pass over Root segments after
// interpretation. Roots whose end sits above their start get the end's
// vertical offset mirrored below the start (x untouched), and roots starting
// meaningfully above the ground line are translated straight down onto it,
// preserving their direction. Afterwards every root points downward from an
// at-or-below-ground position, which the root growth stage relies on.
func (s *Store) NormalizeRoots(groundY float64) {
	for i := range s.segments {
		seg := &s.segments[i]
		if seg.Part != PartRoot {
			continue
		}
		if seg.End.Y < seg.Start.Y {
			seg.End.Y = seg.Start.Y + (seg.Start.Y - seg.End.Y)
		}
		if seg.Start.Y < groundY-groundSnapTolerance {
			dy := groundY - seg.Start.Y
			seg.Start.Y += dy
			seg.End.Y += dy
		}
	}
}
