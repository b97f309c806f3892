// Package core defines the central Person, Pair, Group and Arrangement types,
// and the Ledger that records every pairing consumed during a session.
//
// This file declares the value types, their sentinel errors, and the small
// constructors that keep Pair values canonical.
//
// Errors:
//
//	ErrSamePerson      - a Pair was requested for one person twice.
//	ErrEmptyPerson     - a Person identifier is the empty string.
//	ErrDuplicatePerson - the population lists the same Person twice.
//	ErrTooFewPeople    - the population has fewer than two people.
//	ErrUnknownPerson   - a Group references someone outside the population.
//	ErrGroupSize       - a Group has neither 2 nor 3 members.
//	ErrCoverage        - an Arrangement omits or repeats a person.
//	ErrShape           - an Arrangement has the wrong number of Trios.
//	ErrPairReused      - an Arrangement contains a pair already in the Ledger.
package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core operations.
var (
	// ErrSamePerson indicates a Pair was built from one Person twice.
	ErrSamePerson = errors.New("core: pair members must differ")

	// ErrEmptyPerson indicates a Person identifier is the empty string.
	ErrEmptyPerson = errors.New("core: person identifier is empty")

	// ErrDuplicatePerson indicates the population contains the same Person twice.
	ErrDuplicatePerson = errors.New("core: duplicate person in population")

	// ErrTooFewPeople indicates a population smaller than two.
	ErrTooFewPeople = errors.New("core: population needs at least two people")

	// ErrUnknownPerson indicates a Group member that is not part of the population.
	ErrUnknownPerson = errors.New("core: person not in population")

	// ErrGroupSize indicates a Group whose size is neither 2 nor 3.
	ErrGroupSize = errors.New("core: group must have 2 or 3 members")

	// ErrCoverage indicates an Arrangement that is not an exact partition.
	ErrCoverage = errors.New("core: arrangement does not cover population exactly")

	// ErrShape indicates a Trio count inconsistent with the population parity.
	ErrShape = errors.New("core: arrangement has wrong trio count")

	// ErrPairReused indicates an Arrangement repeats an already used pair.
	ErrPairReused = errors.New("core: pair already used")
)

// Person is an opaque participant identifier.
type Person string

// Pair is an unordered pair of distinct people, stored canonically with A < B
// so that it can be used directly as a map key.
type Pair struct {
	A Person
	B Person
}

// NewPair returns the canonical Pair for a and b.
// Complexity: O(1).
func NewPair(a, b Person) (Pair, error) {
	if a == b {
		return Pair{}, ErrSamePerson
	}

	return canonical(a, b), nil
}

// canonical orders a and b without checking for equality.
func canonical(a, b Person) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

// Has reports whether p contains x.
func (p Pair) Has(x Person) bool { return p.A == x || p.B == x }

// String renders the pair as "A-B".
func (p Pair) String() string { return string(p.A) + "-" + string(p.B) }

// Group is one unit of an Arrangement: a Pair or a Trio in display order.
// Display order never affects identity; Pairs() is always canonical.
type Group struct {
	Members []Person
}

// IsTrio reports whether the group has three members.
func (g Group) IsTrio() bool { return len(g.Members) == 3 }

// Pairs returns the canonical constituent pairs of g: one for a Pair, three
// for a Trio, nil for any other size.
//
// Complexity: O(1).
func (g Group) Pairs() []Pair {
	var m = g.Members
	switch len(m) {
	case 2:
		return []Pair{canonical(m[0], m[1])}
	case 3:
		return []Pair{
			canonical(m[0], m[1]),
			canonical(m[0], m[2]),
			canonical(m[1], m[2]),
		}
	default:
		return nil
	}
}

// Arrangement is one round's ordered partition of the population.
type Arrangement struct {
	Groups []Group
}

// People returns every member of every group in display order.
func (a Arrangement) People() []Person {
	var out = make([]Person, 0, 2*len(a.Groups)+1)
	var g Group
	for _, g = range a.Groups {
		out = append(out, g.Members...)
	}

	return out
}

// Trio returns the arrangement's Trio, if any.
func (a Arrangement) Trio() (Group, bool) {
	var g Group
	for _, g = range a.Groups {
		if g.IsTrio() {
			return g, true
		}
	}

	return Group{}, false
}

// Pairs returns every canonical pair consumed by the arrangement, including
// the three pairs decomposed from a Trio.
func (a Arrangement) Pairs() []Pair {
	var out = make([]Pair, 0, len(a.Groups)+2)
	var g Group
	for _, g = range a.Groups {
		out = append(out, g.Pairs()...)
	}

	return out
}

// Clone returns a deep copy so callers cannot mutate committed history.
func (a Arrangement) Clone() Arrangement {
	var out = Arrangement{Groups: make([]Group, len(a.Groups))}
	var i int
	for i = range a.Groups {
		out.Groups[i] = Group{Members: append([]Person(nil), a.Groups[i].Members...)}
	}

	return out
}

// NumberedPopulation returns the people "1".."n", used when participants are
// identified by number rather than by name.
func NumberedPopulation(n int) []Person {
	if n < 0 {
		n = 0
	}
	var out = make([]Person, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = Person(strconv.Itoa(i + 1))
	}

	return out
}

// PairCount returns C(n,2), the number of distinct pairs among n people.
// Complexity: O(1).
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
