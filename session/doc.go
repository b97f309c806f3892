// Package session generates a sequence of rounds in which nobody is grouped
// with the same person twice.
//
// A Generator owns everything one session needs: the usage ledger, the Trio
// plan and the committed history. Its single entry point is Generate; the
// remaining methods are read-only accessors for rendering and reporting.
//
// Round construction (Builder):
//
//	trio candidate ─► carve out Trio ─► matching.Partition(rest) ─►
//	randomize presentation ─► re-validate ─► Arrangement
//
// Session loop (Generator):
//
//	Idle ─► Generating(r) ─► RoundCommitted(r) ─► … ─► Done
//	                     └─► RoundFailed(r) ─► PartiallyDone
//
// Round r gets min(50 + 10·r, 200) attempts by default. Every attempt after
// the first reshuffles the population; every 20th perturbs the Trio
// candidate. The first arrangement that validates is committed whole.
//
// Randomness: one *rand.Rand, consumed by the planner first and then by each
// round's attempts in order, so WithSeed(s) reproduces a session exactly.
//
// Logging: WithLogger attaches a zerolog.Logger; by default nothing is logged.
package session
