// Package fairness reports how evenly Trio membership was spread over a
// session, and how much of the pair space the session consumed.
//
// With T committed Trios over an odd population of n people there are 3·T
// trio slots, so the best any schedule can do is give everyone either
// ⌊3T/n⌋ or ⌊3T/n⌋+1 slots. A session is fair when observed counts differ by
// at most one.
package fairness

import "github.com/katalvlaran/roundpair/core"

// Report summarizes Trio participation over committed rounds.
type Report struct {
	// TotalTrios is the number of committed Trios.
	TotalTrios int

	// OptimalMin and OptimalMax bound the pigeonhole-optimal participation.
	OptimalMin int
	OptimalMax int

	// ActualMin and ActualMax are the observed extremes.
	ActualMin int
	ActualMax int

	// Counts maps every person to the number of Trios they were in.
	Counts map[core.Person]int

	// Order is the population order, for stable rendering of Counts.
	Order []core.Person

	// IsFair holds iff ActualMax − ActualMin ≤ 1.
	IsFair bool
}

// Compute builds a Report from committed history. Even populations never
// form Trios, so Compute returns nil for them (and for empty populations).
//
// Complexity: O(R·g + n) for R rounds of g groups over n people.
func Compute(population []core.Person, history []core.Arrangement) *Report {
	var n = len(population)
	if n == 0 || n%2 == 0 {
		return nil
	}

	var r = &Report{
		Counts: make(map[core.Person]int, n),
		Order:  append([]core.Person(nil), population...),
	}
	var (
		p    core.Person
		arr  core.Arrangement
		trio core.Group
		ok   bool
	)
	for _, p = range population {
		r.Counts[p] = 0
	}
	for _, arr = range history {
		if trio, ok = arr.Trio(); !ok {
			continue
		}
		r.TotalTrios++
		for _, p = range trio.Members {
			if _, known := r.Counts[p]; known {
				r.Counts[p]++
			}
		}
	}

	r.OptimalMin = r.TotalTrios * 3 / n
	r.OptimalMax = r.OptimalMin + 1

	r.ActualMin = r.Counts[population[0]]
	r.ActualMax = r.ActualMin
	var c int
	for _, p = range population {
		c = r.Counts[p]
		r.ActualMin = min(r.ActualMin, c)
		r.ActualMax = max(r.ActualMax, c)
	}
	r.IsFair = r.ActualMax-r.ActualMin <= 1

	return r
}

// Forecast is the pre-generation view of the Trio plan: PeopleAtMin people
// will sit in Min Trios and PeopleAtMax people in Max Trios.
type Forecast struct {
	// Needed is false for even populations, where no Trio is formed.
	Needed      bool
	Slots       int
	Min         int
	Max         int
	PeopleAtMin int
	PeopleAtMax int
}

// NewForecast computes the optimal Trio split for n people over rounds rounds.
// Complexity: O(1).
func NewForecast(n, rounds int) Forecast {
	if n <= 0 || n%2 == 0 || rounds <= 0 {
		return Forecast{}
	}
	var f = Forecast{Needed: true, Slots: rounds * 3}
	f.Min = f.Slots / n
	f.Max = f.Min + 1
	f.PeopleAtMax = f.Slots - n*f.Min
	f.PeopleAtMin = n - f.PeopleAtMax

	return f
}

// Usage describes how much of the pair space a session consumed.
type Usage struct {
	Used  int
	Total int
	Rate  float64
}

// PairUsage returns used/total, with a zero rate when total is zero.
func PairUsage(used, total int) Usage {
	var u = Usage{Used: used, Total: total}
	if total > 0 {
		u.Rate = float64(used) / float64(total)
	}

	return u
}
