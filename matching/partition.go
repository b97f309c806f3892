package matching

import (
	"math/rand"

	"github.com/katalvlaran/roundpair/core"
)

// Partition splits people into disjoint pairs, none of which is reported as
// used by used.
//
// Stages:
//  1. Probe: fewer than len(people)/2 unused pairs ⇒ ErrInfeasible at once.
//  2. Greedy pass over a shuffled copy, pairing positions (0,1), (2,3), ….
//  3. Backtracking over people in the given order when the greedy pass
//     leaves anyone unmatched.
//
// Contracts:
//   - len(people) must be even; otherwise ErrOddPopulation.
//   - people must be distinct.
//   - used==nil means no pair is used; rng==nil uses core.DefaultSeed.
//   - The input slice is never modified.
//
// Complexity: O(n²) for the probe, O(n) for the greedy pass; the fallback is
// exponential in the worst case, bounded by WithStepLimit when set.
func Partition(people []core.Person, used PairChecker, rng *rand.Rand, opts ...Option) ([]core.Pair, error) {
	var o = DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	var stats = o.Stats
	if stats == nil {
		stats = &Stats{}
	}
	*stats = Stats{}

	if len(people)%2 != 0 {
		return nil, ErrOddPopulation
	}
	if len(people) == 0 {
		return []core.Pair{}, nil
	}
	if used == nil {
		used = noPairs{}
	}
	if rng == nil {
		rng = core.NewRand(0)
	}

	if !Probe(people, used) {
		return nil, ErrInfeasible
	}

	if pairs, ok := greedyPairs(people, used, rng); ok {
		stats.Greedy = true
		return pairs, nil
	}

	return backtrack(people, used, rng, o.StepLimit, stats)
}

// Probe reports whether people holds at least len(people)/2 unused pairs.
// It is a necessary condition only: passing the probe does not guarantee a
// perfect matching exists. The scan stops as soon as the quota is met.
//
// Complexity: O(n²) worst case.
func Probe(people []core.Person, used PairChecker) bool {
	if used == nil {
		used = noPairs{}
	}
	var (
		need  = len(people) / 2
		found int
		i, j  int
	)
	if need == 0 {
		return true
	}
	for i = 0; i < len(people); i++ {
		for j = i + 1; j < len(people); j++ {
			if people[i] != people[j] && !used.Used(people[i], people[j]) {
				found++
				if found >= need {
					return true
				}
			}
		}
	}

	return false
}

// pairable reports whether a and b may form a new pair.
func pairable(a, b core.Person, used PairChecker) bool {
	return a != b && !used.Used(a, b)
}
