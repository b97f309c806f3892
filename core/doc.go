// Package core provides the value types and the usage ledger shared by every
// roundpair package.
//
// A session splits a fixed population into groups of two, plus one group of
// three when the population is odd, over several rounds. Two people may be
// grouped together at most once per session; the Ledger is the single source
// of truth for that rule.
//
// Types:
//
//   - Person: opaque identifier (a name, or "1".."n" in numbered mode)
//   - Pair: canonical unordered pair, usable as a map key
//   - Group: a Pair or Trio in display order; Pairs() is canonical
//   - Arrangement: one round's ordered groups
//   - Ledger: every pair consumed so far, with a running available count
//
// Ledger layout:
//
//	used[a][b] = struct{}{}   and   used[b][a] = struct{}{}
//
// so Used(a, b) == Used(b, a) in O(1), and Available() == C(n,2) − Len()
// holds after every Commit.
//
// Validation:
//
//	ValidatePopulation: ≥2 people, no empty or duplicate identifiers.
//	ValidateArrangement: exact coverage, correct Trio count, no reused pair.
//
// Nothing in this package logs or panics on user input; failures are the
// sentinel errors declared in types.go.
package core
