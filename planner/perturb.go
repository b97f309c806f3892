package planner

import (
	"math/rand"

	"github.com/katalvlaran/roundpair/core"
)

// perturbStep is the attempt span after which one more member is swapped.
const perturbStep = 50

// maxExtraSwaps caps the escalation on top of the first swap.
const maxExtraSwaps = 2

// perturbTries bounds the random swap draws before falling back to Pick.
const perturbTries = 8

// Perturb returns a different Trio close to trio: 1 + min(attempt/50, 2)
// members are swapped for outsiders, drawn with weight proportional to
// their remaining room in q. A swap result is kept only if it has no used
// pair and q admits it; after perturbTries rejected draws the Trio comes
// from Pick instead.
//
// A candidate that is not a Trio, or a population with nobody outside the
// Trio, is returned unchanged, as is trio itself when nothing else fits.
// q == nil draws outsiders uniformly and skips the fairness check.
//
// Complexity: O(t·s·n) for t draws of s swaps, plus Pick on fallback.
func Perturb(trio, population []core.Person, attempt int, q *Quota, used PairChecker, rng *rand.Rand) []core.Person {
	var out = append([]core.Person(nil), trio...)
	if len(out) != trioSize || len(population) <= trioSize {
		return out
	}
	if rng == nil {
		rng = core.NewRand(0)
	}
	if used == nil {
		used = noPairs{}
	}

	var (
		swaps = 1 + min(attempt/perturbStep, maxExtraSwaps)
		cand  []core.Person
		t     int
	)
	for t = 0; t < perturbTries; t++ {
		cand = swapMembers(out, population, swaps, q, rng)
		if sameTrio(cand, trio) || !PairFree(cand, used) {
			continue
		}
		if q == nil || q.Admits(cand) {
			return cand
		}
	}

	if next, ok := Pick(population, q, used, trio, rng); ok {
		return next
	}

	return out
}

// swapMembers replaces swaps random positions of trio with outsiders.
func swapMembers(trio, population []core.Person, swaps int, q *Quota, rng *rand.Rand) []core.Person {
	var out = append([]core.Person(nil), trio...)
	var (
		s       int
		inTrio  map[core.Person]struct{}
		outside []core.Person
		weights []int
		picked  []int
		p       core.Person
	)
	for s = 0; s < swaps; s++ {
		inTrio = map[core.Person]struct{}{out[0]: {}, out[1]: {}, out[2]: {}}
		outside, weights = outside[:0], weights[:0]
		for _, p = range population {
			if _, ok := inTrio[p]; ok {
				continue
			}
			outside = append(outside, p)
			if q != nil {
				weights = append(weights, q.room(p)+1)
			} else {
				weights = append(weights, 1)
			}
		}
		if len(outside) == 0 {
			break
		}
		picked = sampleWeighted(weights, 1, rng)
		out[rng.Intn(trioSize)] = outside[picked[0]]
	}

	return out
}
