// SPDX-License-Identifier: MIT
// Package: roundpair/session
//
// options.go: functional options for Generator.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     Generate itself never panics.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package session

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roundpair/core"
)

// Attempt budget defaults: round r gets min(50 + 10·r, 200) attempts.
const (
	DefaultAttemptBase = 50
	DefaultAttemptStep = 10
	DefaultAttemptMax  = 200

	// DefaultTrioAdjustEvery is the attempt period of Trio perturbation.
	DefaultTrioAdjustEvery = 20
)

// Option customizes a Generator before its session starts.
type Option func(*config)

type config struct {
	rng             *rand.Rand
	logger          zerolog.Logger
	attemptBase     int
	attemptStep     int
	attemptMax      int
	trioAdjustEvery int
	stepLimit       int
}

func newConfig(opts ...Option) config {
	var c = config{
		logger:          zerolog.Nop(),
		attemptBase:     DefaultAttemptBase,
		attemptStep:     DefaultAttemptStep,
		attemptMax:      DefaultAttemptMax,
		trioAdjustEvery: DefaultTrioAdjustEvery,
	}
	var fn Option
	for _, fn = range opts {
		fn(&c)
	}
	if c.rng == nil {
		c.rng = core.NewRand(0)
	}

	return c
}

// budget returns the attempt budget of 0-based round r.
func (c config) budget(r int) int {
	return min(c.attemptBase+c.attemptStep*r, c.attemptMax)
}

// WithSeed seeds the session's single random stream.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = core.NewRand(seed) }
}

// WithRand supplies the session's random stream. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("session: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithLogger attaches a zerolog logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithAttemptBudget sets the per-round budget min(base + step·r, max).
// Panics if base ≤ 0, step < 0 or max < base.
func WithAttemptBudget(base, step, max int) Option {
	if base <= 0 || step < 0 || max < base {
		panic("session: WithAttemptBudget(base<=0 || step<0 || max<base)")
	}
	return func(c *config) {
		c.attemptBase, c.attemptStep, c.attemptMax = base, step, max
	}
}

// WithTrioAdjustEvery sets how often (in attempts) the Trio candidate is
// perturbed. Panics if k ≤ 0.
func WithTrioAdjustEvery(k int) Option {
	if k <= 0 {
		panic("session: WithTrioAdjustEvery(k<=0)")
	}
	return func(c *config) { c.trioAdjustEvery = k }
}

// WithStepLimit bounds each backtracking search (see matching.WithStepLimit).
// Zero, the default, keeps the search exhaustive. Panics if n < 0.
func WithStepLimit(n int) Option {
	if n < 0 {
		panic("session: WithStepLimit(n<0)")
	}
	return func(c *config) { c.stepLimit = n }
}
