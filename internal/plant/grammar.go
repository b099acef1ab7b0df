package plant

import (
	"fmt"
	"strings"
)

// MaxInstructionLength caps the rewritten instruction string. Doubling rules
// such as F->FF blow up exponentially with iteration count, so expansion is
// bounded and rejected rather than allowed to exhaust memory.
const MaxInstructionLength = 100000

// Generate rewrites axiom for the given number of iterations. Each pass
// replaces every symbol that has a rule with its right-hand side and copies
// every other symbol through unchanged, strictly left to right. The rewrite
// is deterministic and pure.
func Generate(axiom string, rules map[rune]string, iterations int) (string, error) {
	if iterations < 0 {
		return "", fmt.Errorf("iterations must be non-negative, got %d", iterations)
	}

	current := axiom
	for i := 0; i < iterations; i++ {
		var b strings.Builder
		b.Grow(len(current) * 2)
		for _, sym := range current {
			if rhs, ok := rules[sym]; ok {
				b.WriteString(rhs)
			} else {
				b.WriteRune(sym)
			}
			if b.Len() > MaxInstructionLength {
				return "", fmt.Errorf("instruction string exceeded %d symbols on iteration %d; reduce iterations or simplify rules", MaxInstructionLength, i+1)
			}
		}
		current = b.String()
	}

	return current, nil
}
