package matching

import (
	"math/rand"

	"github.com/katalvlaran/roundpair/core"
)

// greedyPairs shuffles a local copy of people and pairs consecutive
// positions, skipping any position pair already used. It succeeds only when
// every person ends up matched.
//
// Complexity: O(n).
func greedyPairs(people []core.Person, used PairChecker, rng *rand.Rand) ([]core.Pair, bool) {
	// work on a local copy so the caller's order is preserved for backtracking
	var shuffled = append([]core.Person(nil), people...)
	core.ShufflePeople(shuffled, rng)

	var (
		pairs   = make([]core.Pair, 0, len(shuffled)/2)
		matched int
		i       int
		p       core.Pair
		err     error
	)
	for i = 0; i+1 < len(shuffled); i += 2 {
		if !pairable(shuffled[i], shuffled[i+1], used) {
			continue
		}
		if p, err = core.NewPair(shuffled[i], shuffled[i+1]); err != nil {
			continue
		}
		pairs = append(pairs, p)
		matched += 2
	}
	if matched != len(shuffled) {
		return nil, false
	}

	return pairs, true
}
