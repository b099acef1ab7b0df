package plant

// PartType classifies a drawn segment within the plant body.
type PartType int

const (
	PartStem PartType = iota
	PartBranch
	PartRoot
	PartLeaf
)

func (p PartType) String() string {
	switch p {
	case PartStem:
		return "stem"
	case PartBranch:
		return "branch"
	case PartRoot:
		return "root"
	case PartLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Segment is one oriented line element of the plant. Segments are created
// once and never repositioned afterwards, with two exceptions: Age ticks up
// each growth stage the segment survives, and Root segments may be corrected
// by the one-time normalization pass right after interpretation.
type Segment struct {
	Start      Vec2     `json:"start"`
	End        Vec2     `json:"end"`
	Width      float64  `json:"width"`
	Part       PartType `json:"part"`
	Age        int      `json:"age"`
	Generation int      `json:"generation"`
}

// Direction returns the segment's direction vector (End minus Start).
func (s Segment) Direction() Vec2 {
	return s.End.Sub(s.Start)
}

// Length returns the segment's euclidean length.
func (s Segment) Length() float64 {
	return s.Direction().Length()
}
