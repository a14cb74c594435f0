package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshTable rebuilds the point table from the current scene
func (m *Model) refreshTable() {
	s := m.scene
	inZoom := make(map[int]bool, len(s.InZoom))
	for _, i := range s.InZoom {
		inZoom[i] = true
	}
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "x", Width: 8},
		{Title: "y", Width: 8},
		{Title: "distance", Width: 9},
		{Title: "normalized", Width: 10},
		{Title: "zoom", Width: 5},
	}
	rows := make([]table.Row, 0, len(s.Points))
	for i, p := range s.Points {
		z := ""
		if inZoom[i] {
			z = "yes"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.4f", p[0]),
			fmt.Sprintf("%.4f", p[1]),
			fmt.Sprintf("%.4f", s.Result.Distances[i]),
			fmt.Sprintf("%.4f", s.Result.Normalized[i]),
			z,
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func (m Model) tableWidth() int {
	w := 0
	for _, c := range m.tbl.Columns() {
		w += c.Width + 2
	}
	return w
}
