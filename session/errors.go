// SPDX-License-Identifier: MIT
// Package: roundpair/session
//
// errors.go: sentinel and typed errors for the session package.
//
// Error policy:
//   - Generate returns an error only for unusable input or a spent generator.
//   - Infeasible requests and exhausted rounds are ordinary outcomes: they
//     are reported through Result.Cause, never through the error return.
//   - Callers branch with errors.Is / errors.As, never on message text.

package session

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRounds indicates a non-positive round count.
	ErrInvalidRounds = errors.New("session: rounds must be positive")

	// ErrSessionUsed indicates Generate was called twice on one Generator.
	// The ledger and plan belong to a single session; start a new Generator.
	ErrSessionUsed = errors.New("session: generator already used")

	// ErrIndexOutOfRange indicates an arrangement index outside the history.
	ErrIndexOutOfRange = errors.New("session: arrangement index out of range")

	// ErrInfeasibleRequest indicates rounds·⌊n/2⌋ exceeds C(n,2); no round
	// is attempted.
	ErrInfeasibleRequest = errors.New("session: requested rounds exceed available pairs")

	// ErrRoundExhausted indicates a round used its whole attempt budget.
	ErrRoundExhausted = errors.New("session: round attempts exhausted")

	// ErrTrioConflict indicates a Trio candidate contains an already used pair.
	ErrTrioConflict = errors.New("session: trio repeats a used pair")

	// ErrValidation indicates a built arrangement failed the ledger re-check.
	// It is treated as a failed attempt and retried.
	ErrValidation = errors.New("session: arrangement failed validation")
)

// RoundExhaustedError names the round that could not be built.
// errors.Is(err, ErrRoundExhausted) reports true; Unwrap exposes the failure
// of the last attempt.
type RoundExhaustedError struct {
	// Round is the 0-based index of the failing round; it also equals the
	// number of rounds committed before it.
	Round int

	// Attempts is the budget spent on the round.
	Attempts int

	// Last is the error returned by the final attempt.
	Last error
}

func (e *RoundExhaustedError) Error() string {
	return fmt.Sprintf("session: only %d round(s) generated; round %d found no arrangement without repeated pairs after %d attempts",
		e.Round, e.Round+1, e.Attempts)
}

// Is matches ErrRoundExhausted.
func (e *RoundExhaustedError) Is(target error) bool { return target == ErrRoundExhausted }

// Unwrap returns the last attempt's failure.
func (e *RoundExhaustedError) Unwrap() error { return e.Last }
