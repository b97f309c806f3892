// Package render turns a finished session into text for people: a
// copy-ready message per round, a terminal table, CSV for spreadsheets and a
// TOML record of the whole session.
//
// Every function is a pure transformation of a Snapshot or an Arrangement.
// Nothing here touches the generator's state.
package render

import (
	"time"

	"github.com/katalvlaran/roundpair/core"
	"github.com/katalvlaran/roundpair/fairness"
	"github.com/katalvlaran/roundpair/session"
)

// Snapshot is an immutable copy of a session's outcome.
type Snapshot struct {
	ID          string
	GeneratedAt time.Time
	People      []core.Person
	Requested   int
	Completed   int
	Diagnostic  string
	Rounds      []core.Arrangement
	Fairness    *fairness.Report
	Usage       fairness.Usage
}

// NewSnapshot copies everything render needs out of g.
func NewSnapshot(g *session.Generator, now time.Time) Snapshot {
	var res = g.Result()

	return Snapshot{
		ID:          g.ID(),
		GeneratedAt: now,
		People:      g.Population(),
		Requested:   res.Requested,
		Completed:   res.Completed,
		Diagnostic:  res.Diagnostic,
		Rounds:      g.History(),
		Fairness:    g.FairnessReport(),
		Usage:       g.Usage(),
	}
}

// groupCells returns the three member columns of g, padding Pairs with "".
func groupCells(g core.Group) [3]string {
	var out [3]string
	var i int
	for i = 0; i < len(g.Members) && i < 3; i++ {
		out[i] = string(g.Members[i])
	}

	return out
}
