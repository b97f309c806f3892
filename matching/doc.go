// Package matching builds one round's pairs: a perfect matching over an even
// set of people that avoids every pair already recorded in a ledger.
//
// Algorithm:
//
//   - Probe: count unused pairs; fewer than n/2 ⇒ ErrInfeasible.
//   - Greedy: shuffle, pair positions (0,1), (2,3), …; O(n), succeeds
//     most of the time while the ledger is sparse.
//   - Backtrack: explicit-stack perfect-matching search. Each frame fixes
//     the first unmatched person and tries its unused partners in random
//     order, so repeated calls with identical input still diversify output.
//
// Options:
//
//   - WithStepLimit(n)  bounds the backtracking search (ErrStepLimit).
//   - WithStats(&s)     reports greedy/backtracking diagnostics.
//
// Errors:
//
//   - ErrOddPopulation  if len(people) is odd.
//   - ErrInfeasible     if no perfect matching of unused pairs exists.
//   - ErrStepLimit      if the step limit was reached first.
//
// All randomness comes from the caller's *rand.Rand, so a fixed seed fixes
// the result.
package matching
