package script

import (
	"github.com/charmbracelet/lipgloss"
)

const arrow = " → "

var (
	nodeStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().Faint(true)
)

// Render draws values as a chain of boxed nodes joined by arrows. When width
// is positive, the chain wraps onto a new row before it would exceed width
// columns; a row always holds at least one node.
func Render(values []string, width int) string {
	if len(values) == 0 {
		return emptyStyle.Render("(empty)")
	}

	var rows []string
	var row []string
	rowWidth := 0
	for i, v := range values {
		box := nodeStyle.Render(v)
		if i > 0 {
			box = lipgloss.JoinHorizontal(lipgloss.Center, arrow, box)
		}
		w := lipgloss.Width(box)
		if width > 0 && len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, box)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
