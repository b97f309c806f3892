package matching

import (
	"errors"

	"github.com/katalvlaran/roundpair/core"
)

var (
	// ErrOddPopulation is returned when Partition receives an odd number of
	// people. Callers remove the Trio before partitioning.
	ErrOddPopulation = errors.New("matching: odd number of people")

	// ErrInfeasible is returned when no perfect matching of unused pairs exists.
	ErrInfeasible = errors.New("matching: no valid pairing")

	// ErrStepLimit is returned when WithStepLimit is set and the backtracking
	// search runs out of steps before finding or refuting a matching.
	ErrStepLimit = errors.New("matching: search step limit reached")
)

// PairChecker answers whether two people were already grouped together.
// *core.Ledger satisfies it.
type PairChecker interface {
	Used(a, b core.Person) bool
}

var _ PairChecker = (*core.Ledger)(nil)

// noPairs is the checker used when callers pass nil: nothing is used yet.
type noPairs struct{}

func (noPairs) Used(core.Person, core.Person) bool { return false }

// Stats reports how a Partition call found its answer.
type Stats struct {
	// Greedy is true when the greedy pass alone produced the matching.
	Greedy bool

	// Frames counts backtracking frames opened (one per person fixed).
	Frames int

	// Steps counts tentative pairings tried by the backtracking search.
	Steps int
}

// Option configures optional behavior of Partition.
type Option func(*Options)

// Options holds configurable parameters for Partition.
type Options struct {
	// StepLimit bounds the backtracking search; 0 means exhaustive.
	StepLimit int

	// Stats, if non-nil, receives diagnostics for the call.
	Stats *Stats
}

// DefaultOptions returns an exhaustive search with no diagnostics.
func DefaultOptions() Options {
	return Options{StepLimit: 0, Stats: nil}
}

// WithStepLimit bounds the number of tentative pairings in the backtracking
// search. Panics on a negative limit.
func WithStepLimit(limit int) Option {
	if limit < 0 {
		panic("matching: WithStepLimit(limit<0)")
	}
	return func(o *Options) { o.StepLimit = limit }
}

// WithStats records diagnostics into s. Panics on nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("matching: WithStats(nil)")
	}
	return func(o *Options) { o.Stats = s }
}
