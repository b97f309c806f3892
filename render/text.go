package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/roundpair/core"
)

// timeLayout is the footer timestamp format.
const timeLayout = "2006.01.02 15:04"

// separator underlines the text block header.
var separator = strings.Repeat("=", 30)

// Text renders round index (0-based) as a message ready to paste into chat:
//
//	Round 1 pairing
//	==============================
//	Group 1: ann ↔ ben
//	Group 2: cat ↔ dan ↔ eve (trio)
//
//	Generated: 2026.10.19 14:03
//	Nobody is paired with the same person twice.
func Text(arr core.Arrangement, index int, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Round %d pairing\n", index+1)
	b.WriteString(separator)
	b.WriteByte('\n')

	var (
		i     int
		g     core.Group
		names []string
		m     core.Person
	)
	for i, g = range arr.Groups {
		names = names[:0]
		for _, m = range g.Members {
			names = append(names, string(m))
		}
		fmt.Fprintf(&b, "Group %d: %s", i+1, strings.Join(names, " ↔ "))
		if g.IsTrio() {
			b.WriteString(" (trio)")
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "Generated: %s\n", now.Format(timeLayout))
	b.WriteString("Nobody is paired with the same person twice.")

	return b.String()
}

// Summary renders the fairness and usage statistics of s.
func Summary(s Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds generated: %d of %d\n", s.Completed, s.Requested)
	fmt.Fprintf(&b, "Pairs used: %d of %d (%.1f%%)\n", s.Usage.Used, s.Usage.Total, s.Usage.Rate*100)

	if f := s.Fairness; f != nil {
		var verdict = "optimal"
		if !f.IsFair {
			verdict = "uneven"
		}
		fmt.Fprintf(&b, "Trio participation: min %d, max %d (optimal band %d-%d): %s\n",
			f.ActualMin, f.ActualMax, f.OptimalMin, f.OptimalMax, verdict)
		var p core.Person
		for _, p = range f.Order {
			fmt.Fprintf(&b, "  %s: %d\n", p, f.Counts[p])
		}
	}
	if s.Diagnostic != "" {
		fmt.Fprintf(&b, "Note: %s\n", s.Diagnostic)
	}

	return strings.TrimRight(b.String(), "\n")
}
