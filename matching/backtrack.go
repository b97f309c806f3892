package matching

import (
	"math/rand"

	"github.com/katalvlaran/roundpair/core"
)

// frame is one level of the matching search: person is fixed, cands holds
// its valid partners in random order, next is the index of the partner to
// try on the following visit.
type frame struct {
	person int
	cands  []int
	next   int
}

// backtrack searches for a perfect matching with an explicit stack instead of
// recursion. Each frame fixes the first unmatched person and tries its valid
// partners in random order; a frame revisited after a failed child first
// undoes the pairing it made last, then moves on to the next candidate.
//
// The search is exhaustive unless limit > 0, in which case it stops with
// ErrStepLimit after limit tentative pairings.
//
// Complexity: exponential worst case; stack depth ≤ n/2.
func backtrack(people []core.Person, used PairChecker, rng *rand.Rand, limit int, stats *Stats) ([]core.Pair, error) {
	var (
		n       = len(people)
		matched = make([]bool, n)
		pairs   = make([]core.Pair, 0, n/2)
		stack   = make([]frame, 0, n/2)
		top     *frame
		u, v    int
		p       core.Pair
	)

	open := func(at int) frame {
		matched[at] = true
		stats.Frames++
		var cands []int
		var j int
		for j = 0; j < n; j++ {
			if !matched[j] && pairable(people[at], people[j], used) {
				cands = append(cands, j)
			}
		}
		rng.Shuffle(len(cands), func(a, b int) { cands[a], cands[b] = cands[b], cands[a] })

		return frame{person: at, cands: cands}
	}

	if u = firstUnmatched(matched, 0); u < 0 {
		return pairs, nil
	}
	stack = append(stack, open(u))

	for len(stack) > 0 {
		top = &stack[len(stack)-1]

		// revisited after a failed child: release the partner tried last
		if top.next > 0 {
			matched[top.cands[top.next-1]] = false
			pairs = pairs[:len(pairs)-1]
		}
		if top.next == len(top.cands) {
			matched[top.person] = false
			stack = stack[:len(stack)-1]
			continue
		}

		stats.Steps++
		if limit > 0 && stats.Steps > limit {
			return nil, ErrStepLimit
		}

		v = top.cands[top.next]
		top.next++
		matched[v] = true
		// candidates passed pairable, so the members differ
		p, _ = core.NewPair(people[top.person], people[v])
		pairs = append(pairs, p)

		if u = firstUnmatched(matched, top.person+1); u < 0 {
			return pairs, nil
		}
		stack = append(stack, open(u))
	}

	return nil, ErrInfeasible
}

// firstUnmatched returns the lowest index ≥ from that is not matched, or -1.
func firstUnmatched(matched []bool, from int) int {
	var i int
	for i = from; i < len(matched); i++ {
		if !matched[i] {
			return i
		}
	}

	return -1
}
