package plant

import (
	"math"
	"math/rand/v2"
)

// pickBiasedIndex draws an index in [0,n) biased toward low indices via a
// power curve on a uniform draw. power > 1 concentrates picks near 0, which
// is what the engine wants after sorting candidates best-first.
func pickBiasedIndex(rng *rand.Rand, n int, power float64) int {
	if n <= 0 {
		return 0
	}
	if power <= 0 {
		power = 1
	}
	idx := int(math.Pow(rng.Float64(), power) * float64(n))
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// selectBiased picks up to k distinct indices from [0,n), each drawn with
// the low-index bias of pickBiasedIndex. Order of selection is preserved.
func selectBiased(rng *rand.Rand, n, k int, power float64) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	taken := make(map[int]bool, k)
	out := make([]int, 0, k)
	// A few wasted draws on collisions are cheaper than reshuffling; the
	// attempt bound keeps selection total-time deterministic.
	for attempts := 0; len(out) < k && attempts < n*4+8; attempts++ {
		idx := pickBiasedIndex(rng, n, power)
		if taken[idx] {
			continue
		}
		taken[idx] = true
		out = append(out, idx)
	}
	// Top up from the best-ranked untaken indices so callers always get the
	// count they asked for.
	for idx := 0; len(out) < k && idx < n; idx++ {
		if taken[idx] {
			continue
		}
		taken[idx] = true
		out = append(out, idx)
	}
	return out
}
