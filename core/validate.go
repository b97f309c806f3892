// Package core - validation helpers shared by the planner, the partitioner
// and the session generator.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input; only sentinel errors from types.go,
//     wrapped with %w when a detail (person, pair) helps the caller.
package core

import "fmt"

// ValidatePopulation checks that people has at least two members, that no
// identifier is empty and that no identifier repeats.
//
// Complexity: O(n) time, O(n) extra space.
func ValidatePopulation(people []Person) error {
	if len(people) < 2 {
		return ErrTooFewPeople
	}
	var seen = make(map[Person]struct{}, len(people))
	var p Person
	for _, p = range people {
		if p == "" {
			return ErrEmptyPerson
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicatePerson, p)
		}
		seen[p] = struct{}{}
	}

	return nil
}

// ValidateArrangement re-checks arr against the ledger's population and
// history:
//  1. every group has 2 or 3 members;
//  2. every member belongs to the population and appears exactly once;
//  3. every person of the population is covered;
//  4. an even population has no Trio, an odd one has exactly one;
//  5. no constituent pair is already in the ledger.
//
// Complexity: O(n).
func ValidateArrangement(arr Arrangement, l *Ledger) error {
	var (
		seen  = make(map[Person]struct{}, len(l.order))
		trios int
		g     Group
		p     Person
		pr    Pair
	)
	for _, g = range arr.Groups {
		if len(g.Members) != 2 && len(g.Members) != 3 {
			return fmt.Errorf("%w: got %d", ErrGroupSize, len(g.Members))
		}
		if g.IsTrio() {
			trios++
		}
		for _, p = range g.Members {
			if !l.Contains(p) {
				return fmt.Errorf("%w: %q", ErrUnknownPerson, p)
			}
			if _, dup := seen[p]; dup {
				return fmt.Errorf("%w: %q appears twice", ErrCoverage, p)
			}
			seen[p] = struct{}{}
		}
	}
	if len(seen) != len(l.order) {
		return fmt.Errorf("%w: %d of %d people placed", ErrCoverage, len(seen), len(l.order))
	}

	var wantTrios int
	if len(l.order)%2 == 1 {
		wantTrios = 1
	}
	if trios != wantTrios {
		return fmt.Errorf("%w: got %d, want %d", ErrShape, trios, wantTrios)
	}

	for _, pr = range arr.Pairs() {
		if l.UsedPair(pr) {
			return fmt.Errorf("%w: %s", ErrPairReused, pr)
		}
	}

	return nil
}
