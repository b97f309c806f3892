package render

import (
	"fmt"
	"io"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/roundpair/core"
)

const currentSchemaVersion = 1

type sessionSchema struct {
	Version     int             `toml:"version"`
	ID          string          `toml:"id"`
	GeneratedAt time.Time       `toml:"generated_at"`
	People      []string        `toml:"people"`
	Requested   int             `toml:"requested"`
	Completed   int             `toml:"completed"`
	Diagnostic  string          `toml:"diagnostic,omitempty"`
	Usage       usageSchema     `toml:"usage"`
	Fairness    *fairnessSchema `toml:"fairness,omitempty"`
	Rounds      []roundSchema   `toml:"rounds"`
}

type usageSchema struct {
	Used  int     `toml:"used"`
	Total int     `toml:"total"`
	Rate  float64 `toml:"rate"`
}

type fairnessSchema struct {
	TotalTrios int            `toml:"total_trios"`
	OptimalMin int            `toml:"optimal_min"`
	OptimalMax int            `toml:"optimal_max"`
	ActualMin  int            `toml:"actual_min"`
	ActualMax  int            `toml:"actual_max"`
	IsFair     bool           `toml:"is_fair"`
	Counts     map[string]int `toml:"counts"`
}

type roundSchema struct {
	Index  int        `toml:"index"`
	Groups [][]string `toml:"groups"`
}

func toSchema(s Snapshot) sessionSchema {
	var out = sessionSchema{
		Version:     currentSchemaVersion,
		ID:          s.ID,
		GeneratedAt: s.GeneratedAt.UTC().Truncate(time.Second),
		People:      peopleStrings(s.People),
		Requested:   s.Requested,
		Completed:   s.Completed,
		Diagnostic:  s.Diagnostic,
		Usage:       usageSchema{Used: s.Usage.Used, Total: s.Usage.Total, Rate: s.Usage.Rate},
		Rounds:      make([]roundSchema, len(s.Rounds)),
	}

	var (
		r  int
		g  core.Group
		rs roundSchema
	)
	for r = range s.Rounds {
		rs = roundSchema{Index: r + 1, Groups: make([][]string, 0, len(s.Rounds[r].Groups))}
		for _, g = range s.Rounds[r].Groups {
			rs.Groups = append(rs.Groups, peopleStrings(g.Members))
		}
		out.Rounds[r] = rs
	}

	if f := s.Fairness; f != nil {
		var fs = &fairnessSchema{
			TotalTrios: f.TotalTrios,
			OptimalMin: f.OptimalMin,
			OptimalMax: f.OptimalMax,
			ActualMin:  f.ActualMin,
			ActualMax:  f.ActualMax,
			IsFair:     f.IsFair,
			Counts:     make(map[string]int, len(f.Counts)),
		}
		var (
			p core.Person
			c int
		)
		for p, c = range f.Counts {
			fs.Counts[string(p)] = c
		}
		out.Fairness = fs
	}

	return out
}

// TOML writes s as a self-describing TOML document.
func TOML(w io.Writer, s Snapshot) error {
	var enc = toml.NewEncoder(w)
	if err := enc.Encode(toSchema(s)); err != nil {
		return fmt.Errorf("encode session toml: %w", err)
	}

	return nil
}

func peopleStrings(people []core.Person) []string {
	var out = make([]string, len(people))
	var i int
	for i = range people {
		out[i] = string(people[i])
	}

	return out
}
