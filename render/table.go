package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/roundpair/core"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	trio   lipgloss.Style
	border lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		cell:   lipgloss.NewStyle().Padding(0, 1),
		trio:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("203")),
		border: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Table renders round index (0-based) as a bordered terminal table with one
// row per group; the Trio row is highlighted.
func Table(arr core.Arrangement, index int) string {
	var st = newStyles()

	var rows = make([][]string, 0, len(arr.Groups))
	var (
		i     int
		g     core.Group
		cells [3]string
	)
	for i, g = range arr.Groups {
		cells = groupCells(g)
		rows = append(rows, []string{"Group " + strconv.Itoa(i+1), cells[0], cells[1], cells[2]})
	}

	var t = table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.border).
		Headers("Group", "First", "Second", "Third").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return st.header
			}
			if row >= 0 && row < len(arr.Groups) && arr.Groups[row].IsTrio() {
				return st.trio
			}
			return st.cell
		})

	return lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Round "+strconv.Itoa(index+1)),
		t.Render(),
	)
}
