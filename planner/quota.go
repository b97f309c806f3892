package planner

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/roundpair/core"
)

// PairChecker answers whether two people were already grouped together.
// *core.Ledger satisfies it.
type PairChecker interface {
	Used(a, b core.Person) bool
}

type noPairs struct{}

func (noPairs) Used(core.Person, core.Person) bool { return false }

// Quota tracks committed Trio participation against the pigeonhole band
// [base, base+1] of a whole session. A Trio is admissible when committing it
// keeps every person able to finish inside the band with the rounds left:
//
//   - nobody exceeds base+1;
//   - at most extra people reach base+1;
//   - people still below base can all be served by the remaining rounds.
//
// If every round commits an admissible Trio, the session ends fair.
type Quota struct {
	index  map[core.Person]int
	counts []int
	base   int
	extra  int
	rounds int
	done   int
}

// NewQuota returns an empty Quota for population over rounds rounds.
func NewQuota(population []core.Person, rounds int) *Quota {
	var n = len(population)
	var q = &Quota{
		index:  make(map[core.Person]int, n),
		counts: make([]int, n),
		rounds: rounds,
	}
	var i int
	for i = range population {
		q.index[population[i]] = i
	}
	if n > 0 && rounds > 0 {
		q.base = rounds * trioSize / n
		q.extra = rounds*trioSize - q.base*n
	}

	return q
}

// Count returns how many committed Trios p was in.
func (q *Quota) Count(p core.Person) int { return q.counts[q.index[p]] }

// Remaining returns the number of rounds not yet committed.
func (q *Quota) Remaining() int { return q.rounds - q.done }

// Commit records one committed round's Trio.
func (q *Quota) Commit(trio []core.Person) {
	var p core.Person
	for _, p = range trio {
		if i, ok := q.index[p]; ok {
			q.counts[i]++
		}
	}
	q.done++
}

// Admits reports whether trio is admissible for the next round.
// Complexity: O(n).
func (q *Quota) Admits(trio []core.Person) bool {
	if len(trio) != trioSize {
		return false
	}
	var s = q.snapshot()
	var (
		c [trioSize]int
		i int
	)
	for i = range trio {
		idx, ok := q.index[trio[i]]
		if !ok {
			return false
		}
		c[i] = q.counts[idx]
	}

	return s.admits(c[0], c[1], c[2])
}

// room is how many more Trios p may join before leaving the band.
func (q *Quota) room(p core.Person) int {
	return max(0, q.base+1-q.Count(p))
}

// band is the O(1) admissibility state of one round.
type band struct {
	base, rem int
	extraLeft int // people that may still reach base+1
	mandatory int // Σ max(0, base − count)
	maxNeed   int // max(base − count)
	atMax     int // people with base − count == maxNeed
}

func (q *Quota) snapshot() band {
	var b = band{base: q.base, rem: q.Remaining(), extraLeft: q.extra}
	var (
		c    int
		need int
	)
	for _, c = range q.counts {
		if c == q.base+1 {
			b.extraLeft--
		}
		if need = q.base - c; need > 0 {
			b.mandatory += need
			switch {
			case need > b.maxNeed:
				b.maxNeed, b.atMax = need, 1
			case need == b.maxNeed:
				b.atMax++
			}
		}
	}

	return b
}

// admits takes the current counts of the three members.
func (b band) admits(c ...int) bool {
	if b.rem <= 0 {
		return false
	}
	var (
		atBase, below, topped int
		x                     int
	)
	for _, x = range c {
		switch {
		case x > b.base:
			return false
		case x == b.base:
			atBase++
		default:
			below++
			if b.base-x == b.maxNeed {
				topped++
			}
		}
	}
	if atBase > b.extraLeft {
		return false
	}
	if b.mandatory-below > trioSize*(b.rem-1) {
		return false
	}
	if b.maxNeed > b.rem-1 && topped < b.atMax {
		return false
	}

	return true
}

// Pick chooses a Trio without a used pair, different from exclude.
//
// People are tried in order of decreasing need (base − count), ties broken
// by rng, and the first admissible Trio in that order wins. When no
// admissible Trio exists, Pick falls back to the first pair-free Trio in the
// same order, so the round can still be built at the price of fairness.
// ok is false when no pair-free Trio exists at all.
//
// q == nil skips the fairness phase; used == nil treats every pair as new.
//
// Complexity: O(n³) worst case.
func Pick(population []core.Person, q *Quota, used PairChecker, exclude []core.Person, rng *rand.Rand) ([]core.Person, bool) {
	if len(population) < trioSize {
		return nil, false
	}
	if used == nil {
		used = noPairs{}
	}
	if rng == nil {
		rng = core.NewRand(0)
	}

	var order = append([]core.Person(nil), population...)
	core.ShufflePeople(order, rng)

	var skip = func(a, b, c core.Person) bool { return sameTrio([]core.Person{a, b, c}, exclude) }

	if q != nil {
		sort.SliceStable(order, func(i, j int) bool { return q.Count(order[i]) < q.Count(order[j]) })
		var s = q.snapshot()
		if t, ok := firstTrio(order, used, func(a, b, c core.Person) bool {
			return !skip(a, b, c) && s.admits(q.Count(a), q.Count(b), q.Count(c))
		}); ok {
			return t, true
		}
	}

	return firstTrio(order, used, func(a, b, c core.Person) bool { return !skip(a, b, c) })
}

// firstTrio scans order lexicographically for a pair-free Trio accepted by
// accept.
func firstTrio(order []core.Person, used PairChecker, accept func(a, b, c core.Person) bool) ([]core.Person, bool) {
	var (
		n       = len(order)
		i, j, k int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if used.Used(order[i], order[j]) {
				continue
			}
			for k = j + 1; k < n; k++ {
				if used.Used(order[i], order[k]) || used.Used(order[j], order[k]) {
					continue
				}
				if accept(order[i], order[j], order[k]) {
					return []core.Person{order[i], order[j], order[k]}, true
				}
			}
		}
	}

	return nil, false
}

// PairFree reports whether no two members of trio are used.
func PairFree(trio []core.Person, used PairChecker) bool {
	if used == nil {
		return true
	}
	var i, j int
	for i = 0; i < len(trio); i++ {
		for j = i + 1; j < len(trio); j++ {
			if used.Used(trio[i], trio[j]) {
				return false
			}
		}
	}

	return true
}

// sameTrio reports whether a and b hold the same members in any order.
func sameTrio(a, b []core.Person) bool {
	if len(a) != len(b) {
		return false
	}
	var (
		p     core.Person
		found bool
		x     core.Person
	)
	for _, p = range a {
		found = false
		for _, x = range b {
			if x == p {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
