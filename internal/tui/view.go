package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scatterzoom/internal/scatter"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarW-2, l.contentH-2)
	}

	// Header
	header := titleStyle.Render(" scatterzoom ─ distance-colored scatter with zoom ")
	header = lipgloss.NewStyle().Width(l.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarW).Render(m.l.View())
	}

	var plotView string
	switch {
	case m.showTable:
		tw := min(l.plot.w-4, max(32, m.tableWidth()))
		m.tbl.SetWidth(tw)
		m.tbl.SetHeight(min(l.plot.h-2, 20))
		box := boxStyle.Width(tw + 2).Render(m.tbl.View())
		plotView = lipgloss.Place(l.plot.w, l.plot.h, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(l.plot.w)
		m.ta.SetHeight(min(l.plot.h, 12))
		plotView = lipgloss.NewStyle().Width(l.plot.w).Height(l.plot.h).Render(m.ta.View())
	default:
		plotView = m.renderPlots(l).String()
	}

	// Body row
	body := plotView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// mouse coords at bottom-right
	coords := ""
	if m.hoverHasXY {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.4f y=%.4f  ", m.hoverXY[0], m.hoverXY[1]))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

// renderPlots composes the main plot, the zoomed view and the colorbar on
// one canvas covering l.plot.
func (m Model) renderPlots(l layout) *canvas {
	c := newCanvas(l.plot.w, l.plot.h)
	local := func(r rect) rect {
		return rect{x: r.x - l.plot.x, y: r.y - l.plot.y, w: r.w, h: r.h}
	}
	if m.scene == nil {
		return c
	}
	hover := -1
	if m.hovering || m.inspectPopup != "" {
		hover = m.hoverIdx
	}

	m.drawPanel(c, local(l.mainPanel), local(l.main), m.mainViewport(l), m.scene.Main,
		plotOpts{grid: m.showGrid, outline: true, hover: hover})
	m.drawColorbar(c, local(l.bar))

	if m.scene.Config.Layout == scatter.LayoutSide {
		m.drawPanel(c, local(l.zoomPanel), local(l.zoom), m.zoomViewport(l), m.scene.Zoomed,
			plotOpts{grid: m.showGrid, hover: hover})
	} else {
		m.drawInset(c, local(l.zoomBox), local(l.zoom), m.zoomViewport(l), hover)
	}

	if m.inspectPopup != "" {
		m.drawPopup(c, m.inspectPopup)
	}
	return c
}

// drawPopup draws a bordered text box at the left middle of the plot area.
func (m Model) drawPopup(c *canvas, text string) {
	lines := strings.Split(text, "\n")
	w := 0
	for _, ln := range lines {
		w = max(w, len([]rune(ln)))
	}
	w = min(w+4, min(48, c.w))
	h := min(len(lines)+2, c.h)
	x := 1
	y := max(0, (c.h-h)/2)
	c.box(x, y, w, h, borderHex)
	for i, ln := range lines {
		if i+1 >= h-1 {
			break
		}
		rs := []rune(ln)
		if len(rs) > w-4 {
			rs = rs[:max(0, w-4)]
		}
		c.text(x+2, y+1+i, string(rs), "")
	}
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"wasd move region",
		"[ ] resize",
		"v layout",
		"Tab cmaps",
		"n reseed",
		"p paste",
		"t table",
		"i inspect",
		"e export",
		"g grid",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
