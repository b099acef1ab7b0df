package plant

// Instruction glyphs recognized by the interpreter. Anything else is a
// no-op, which lets axioms carry placeholder symbols such as 'X'.
const (
	symDraw       = 'F'
	symDrawRoot   = 'G'
	symDrawLeaf   = 'L'
	symTurnRight  = '+'
	symTurnLeft   = '-'
	symPush       = '['
	symPop        = ']'
	symLonger     = '>'
	symShorter    = '<'
	symSetStem    = 'S'
	symSetBranch  = 'B'
	symSetRoot    = 'R'
)

const (
	branchWidthFactor = 0.8
	stepGrowFactor    = 1.25
	leafWidthFactor   = 2.0
)

// turtleState is the interpreter cursor: ephemeral, copied whole onto the
// bracket stack and discarded once interpretation completes.
type turtleState struct {
	Pos        Vec2
	Heading    float64 // degrees, 0 = up
	Step       float64
	Width      float64
	Part       PartType
	Generation int
}

// Interpret walks the instruction string with a turtle cursor and returns
// the emitted segments in instruction order. The cursor starts at the
// plant origin heading straight up. A ']' with an empty stack restores the
// initial cursor state instead of failing; the generator must never abort
// mid-interpretation on malformed input.
func Interpret(instructions string, cfg Config) []Segment {
	initial := turtleState{
		Pos:   cfg.Origin(),
		Step:  cfg.StepLength,
		Width: cfg.StrokeWidth,
		Part:  PartStem,
	}
	cur := initial
	var stack []turtleState
	var segments []Segment

	for _, sym := range instructions {
		switch sym {
		case symDraw:
			end := cur.Pos.Add(headingDir(cur.Heading).Scale(cur.Step))
			segments = append(segments, Segment{
				Start:      cur.Pos,
				End:        end,
				Width:      cur.Width,
				Part:       cur.Part,
				Generation: cur.Generation,
			})
			cur.Pos = end
		case symDrawRoot:
			end := cur.Pos.Add(headingDir(cur.Heading).Scale(cur.Step))
			segments = append(segments, Segment{
				Start:      cur.Pos,
				End:        end,
				Width:      cur.Width,
				Part:       PartRoot,
				Generation: cur.Generation,
			})
			cur.Pos = end
		case symDrawLeaf:
			// Leaves hang off the cursor position without advancing it, so
			// later glyphs keep chaining from the same point.
			end := cur.Pos.Add(headingDir(cur.Heading).Scale(cur.Step / 2))
			segments = append(segments, Segment{
				Start:      cur.Pos,
				End:        end,
				Width:      cur.Width * leafWidthFactor,
				Part:       PartLeaf,
				Generation: cur.Generation,
			})
		case symTurnRight:
			cur.Heading += cfg.TurnAngle
		case symTurnLeft:
			cur.Heading -= cfg.TurnAngle
		case symPush:
			stack = append(stack, cur)
			cur.Part = PartBranch
			cur.Width *= branchWidthFactor
			cur.Generation++
		case symPop:
			if len(stack) == 0 {
				cur = initial
				break
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case symLonger:
			cur.Step *= stepGrowFactor
		case symShorter:
			cur.Step *= cfg.LengthFactor
			cur.Width *= cfg.LengthFactor
		case symSetStem:
			cur.Part = PartStem
		case symSetBranch:
			cur.Part = PartBranch
		case symSetRoot:
			cur.Part = PartRoot
		}
	}

	return segments
}
