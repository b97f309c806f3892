// Package planner schedules Trio participation across a whole session before
// any round is generated.
//
// For an odd population of n people over R rounds there are 3·R trio slots.
// Targets spreads them so that per-person targets differ by at most one
// (the pigeonhole optimum); Plan then proposes one Trio per round by weighted
// sampling on each person's remaining deficit.
//
// A Plan is a proposal only. Quota tracks the Trios actually committed, and
// the session generator replaces a candidate through Pick or Perturb when it
// repeats a used pair, leaves the fairness band, or blocks a round.
package planner

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/roundpair/core"
)

// trioSize is the number of members in the single odd-population group.
const trioSize = 3

// ErrInvalidRounds is returned when the requested round count is not positive.
var ErrInvalidRounds = errors.New("planner: rounds must be positive")

// ErrRoundOutOfRange is returned when a round index is outside the plan.
var ErrRoundOutOfRange = errors.New("planner: round index out of range")

// Plan is the per-round sequence of proposed Trio candidates.
// For an even population every candidate is nil.
type Plan struct {
	// Targets holds the intended trio participation per person, aligned with
	// the population order passed to New.
	Targets []int

	// Assigned holds how many proposed Trios each person was placed in.
	Assigned []int

	candidates [][]core.Person
}

// Targets returns per-person trio participation targets for n people over
// rounds rounds: base = 3·rounds / n, and the first 3·rounds mod n people get
// base+1. An even n needs no trios and yields all zeros.
//
// Complexity: O(n).
func Targets(n, rounds int) []int {
	if n <= 0 {
		return nil
	}
	var out = make([]int, n)
	if n%2 == 0 || rounds <= 0 {
		return out
	}
	var (
		slots = rounds * trioSize
		base  = slots / n
		extra = slots % n
		i     int
	)
	for i = 0; i < n; i++ {
		out[i] = base
		if i < extra {
			out[i]++
		}
	}

	return out
}

// New builds a Plan for population over rounds rounds, drawing from rng.
// An even population gets rounds empty candidates and consumes no randomness.
//
// For an odd population, each round selects three people by weighted sampling
// without replacement with weight max(0, target − assigned). When fewer than
// three people still carry positive weight, the rest of the Trio is drawn
// uniformly from people not yet chosen this round.
//
// Complexity: O(R·n) for R rounds.
func New(population []core.Person, rounds int, rng *rand.Rand) (*Plan, error) {
	if err := core.ValidatePopulation(population); err != nil {
		return nil, err
	}
	if rounds <= 0 {
		return nil, ErrInvalidRounds
	}
	if rng == nil {
		rng = core.NewRand(0)
	}

	var n = len(population)
	var p = &Plan{
		Targets:    Targets(n, rounds),
		Assigned:   make([]int, n),
		candidates: make([][]core.Person, rounds),
	}
	if n%2 == 0 || n < trioSize {
		return p, nil
	}

	var (
		weights = make([]int, n)
		r, i    int
		picked  []int
		trio    []core.Person
	)
	for r = 0; r < rounds; r++ {
		for i = 0; i < n; i++ {
			weights[i] = p.Targets[i] - p.Assigned[i]
			if weights[i] < 0 {
				weights[i] = 0
			}
		}
		picked = sampleWeighted(weights, trioSize, rng)
		if len(picked) < trioSize {
			picked = fillUniform(picked, n, trioSize, rng)
		}
		trio = make([]core.Person, 0, trioSize)
		for _, i = range picked {
			trio = append(trio, population[i])
			p.Assigned[i]++
		}
		p.candidates[r] = trio
	}

	return p, nil
}

// Rounds returns the number of rounds covered by the plan.
func (p *Plan) Rounds() int { return len(p.candidates) }

// Candidate returns a copy of round r's proposed Trio; nil means no Trio.
func (p *Plan) Candidate(r int) ([]core.Person, error) {
	if r < 0 || r >= len(p.candidates) {
		return nil, ErrRoundOutOfRange
	}
	if p.candidates[r] == nil {
		return nil, nil
	}

	return append([]core.Person(nil), p.candidates[r]...), nil
}

// SetCandidate replaces round r's proposed Trio. Only the adaptive adjustment
// in the session generator calls it, and only for the round in progress.
func (p *Plan) SetCandidate(r int, trio []core.Person) error {
	if r < 0 || r >= len(p.candidates) {
		return ErrRoundOutOfRange
	}
	p.candidates[r] = append([]core.Person(nil), trio...)

	return nil
}

// sampleWeighted draws up to k distinct indices with probability proportional
// to weights, zeroing each chosen weight. The cumulative scan stops as soon as
// the running sum exceeds the draw. weights is modified in place.
//
// Complexity: O(k·n).
func sampleWeighted(weights []int, k int, rng *rand.Rand) []int {
	var (
		out   = make([]int, 0, k)
		total int
		w     int
		i     int
		x     int
		cum   int
	)
	for len(out) < k {
		total = 0
		for _, w = range weights {
			total += w
		}
		if total == 0 {
			break
		}
		x = rng.Intn(total)
		cum = 0
		for i, w = range weights {
			cum += w
			if x < cum {
				out = append(out, i)
				weights[i] = 0
				break
			}
		}
	}

	return out
}

// fillUniform extends picked to k distinct indices in [0,n) by uniform draws
// over indices not already picked.
func fillUniform(picked []int, n, k int, rng *rand.Rand) []int {
	var taken = make(map[int]struct{}, k)
	var i int
	for _, i = range picked {
		taken[i] = struct{}{}
	}
	var rest = make([]int, 0, n-len(picked))
	for i = 0; i < n; i++ {
		if _, ok := taken[i]; !ok {
			rest = append(rest, i)
		}
	}
	var j int
	for len(picked) < k && len(rest) > 0 {
		j = rng.Intn(len(rest))
		picked = append(picked, rest[j])
		rest = append(rest[:j], rest[j+1:]...)
	}

	return picked
}
