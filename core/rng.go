// Package core - RNG utilities shared by the planner, the partitioner and the
// session generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical sessions.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A session owns exactly one stream.
package core

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// ShufflePeople performs an in-place Fisher–Yates shuffle of people using rng.
// If rng==nil, the DefaultSeed stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func ShufflePeople(people []Person, rng *rand.Rand) {
	var n = len(people)
	if n <= 1 {
		return
	}
	var r = rng
	if r == nil {
		r = NewRand(0)
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		people[i], people[j] = people[j], people[i]
	}
}
