package core

import (
	"fmt"
	"sort"
)

// Ledger is the cumulative set of pairs consumed by committed arrangements.
//
// Pairs are stored as a mirrored adjacency map, used[a][b] and used[b][a],
// so a lookup is two map reads regardless of argument order. The ledger also
// keeps a running count of pairs that are still available, updated on every
// Commit, so callers never recompute C(n,2) minus the ledger size.
//
// A Ledger only grows. It is not safe for concurrent use.
type Ledger struct {
	members   map[Person]struct{}
	order     []Person
	used      map[Person]map[Person]struct{}
	usedCount int
	total     int
}

// NewLedger creates an empty ledger scoped to population.
// The population is validated with ValidatePopulation.
//
// Complexity: O(n).
func NewLedger(population []Person) (*Ledger, error) {
	if err := ValidatePopulation(population); err != nil {
		return nil, err
	}
	var l = &Ledger{
		members: make(map[Person]struct{}, len(population)),
		order:   append([]Person(nil), population...),
		used:    make(map[Person]map[Person]struct{}, len(population)),
		total:   PairCount(len(population)),
	}
	var p Person
	for _, p = range population {
		l.members[p] = struct{}{}
	}

	return l, nil
}

// Used reports whether a and b have already been grouped together.
// Complexity: O(1).
func (l *Ledger) Used(a, b Person) bool {
	var row, ok = l.used[a]
	if !ok {
		return false
	}
	_, ok = row[b]

	return ok
}

// UsedPair reports whether p is in the ledger.
func (l *Ledger) UsedPair(p Pair) bool { return l.Used(p.A, p.B) }

// Conflicts returns the constituent pairs of g that are already in the ledger.
func (l *Ledger) Conflicts(g Group) []Pair {
	var out []Pair
	var p Pair
	for _, p = range g.Pairs() {
		if l.UsedPair(p) {
			out = append(out, p)
		}
	}

	return out
}

// Contains reports whether x belongs to the ledger's population.
func (l *Ledger) Contains(x Person) bool {
	_, ok := l.members[x]

	return ok
}

// Population returns a copy of the population in its original order.
func (l *Ledger) Population() []Person { return append([]Person(nil), l.order...) }

// Len returns the number of pairs consumed so far.
func (l *Ledger) Len() int { return l.usedCount }

// Total returns C(n,2) for the ledger's population.
func (l *Ledger) Total() int { return l.total }

// Available returns the number of pairs never used so far.
func (l *Ledger) Available() int { return l.total - l.usedCount }

// Pairs returns every consumed pair in sorted order.
// Complexity: O(k log k) for k consumed pairs.
func (l *Ledger) Pairs() []Pair {
	var out = make([]Pair, 0, l.usedCount)
	var (
		a, b Person
		row  map[Person]struct{}
	)
	for a, row = range l.used {
		for b = range row {
			if a < b {
				out = append(out, Pair{A: a, B: b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// Commit validates arr against the ledger and records all of its pairs.
// Either every pair of arr is added or, on error, none is.
//
// Complexity: O(n) for an arrangement over n people.
func (l *Ledger) Commit(arr Arrangement) error {
	if err := ValidateArrangement(arr, l); err != nil {
		return fmt.Errorf("commit arrangement: %w", err)
	}
	var p Pair
	for _, p = range arr.Pairs() {
		l.add(p)
	}

	return nil
}

// add mirrors p into the adjacency map and bumps the running count.
func (l *Ledger) add(p Pair) {
	if l.UsedPair(p) {
		return
	}
	l.link(p.A, p.B)
	l.link(p.B, p.A)
	l.usedCount++
}

func (l *Ledger) link(a, b Person) {
	var row, ok = l.used[a]
	if !ok {
		row = make(map[Person]struct{})
		l.used[a] = row
	}
	row[b] = struct{}{}
}
