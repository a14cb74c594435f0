package tui

import (
	"fmt"
	"log"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"scatterzoom/internal/export"
	"scatterzoom/internal/geom"
	"scatterzoom/internal/scatter"
)

// zoomStep is how far w/a/s/d move the zoom region, as a fraction of its size.
const zoomStep = 0.25

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarW-2, max(4, m.height-headerH-footerH-2))
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showTable {
			switch msg.String() {
			case "t", "esc":
				m.showTable = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			m.inspectPopup = ""
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "0":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "w", "a", "s", "d":
			z := m.scene.Zoom()
			dx := (z.Max[0] - z.Min[0]) * zoomStep
			dy := (z.Max[1] - z.Min[1]) * zoomStep
			switch msg.String() {
			case "w":
				z = geom.Shift(z, 0, dy)
			case "s":
				z = geom.Shift(z, 0, -dy)
			case "a":
				z = geom.Shift(z, -dx, 0)
			case "d":
				z = geom.Shift(z, dx, 0)
			}
			m.rezoom(z)
		case "[":
			m.rezoom(geom.Scale(m.scene.Zoom(), 1/1.2))
		case "]":
			m.rezoom(geom.Scale(m.scene.Zoom(), 1.2))
		case "v":
			s, err := m.scene.WithLayout(m.scene.Config.Layout.Next())
			if err != nil {
				m.status = "layout error: " + err.Error()
				break
			}
			m.setScene(s)
			m.status = "layout: " + s.Config.Layout.String()
		case "g":
			m.showGrid = !m.showGrid
			m.status = fmt.Sprintf("grid: %v", m.showGrid)
		case "n":
			s, err := m.scene.WithSeed(m.scene.Config.Seed + 1)
			if err != nil {
				m.status = "regenerate error: " + err.Error()
				break
			}
			m.setScene(s)
			log.Printf("regenerated cloud: seed=%d n=%d", s.Config.Seed, len(s.Points))
			m.status = fmt.Sprintf("seed: %d", s.Config.Seed)
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarW-2, max(4, m.height-headerH-footerH-2))
				m.selectCurrentColorMap()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(cmapItem); ok {
					m.applyColorMap(it.title)
				}
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "t":
			m.showTable = true
			m.refreshTable()
			m.status = fmt.Sprintf("points: %d, in zoom: %d", len(m.scene.Points), len(m.scene.InZoom))
		case "h":
			m.helpVisible = !m.helpVisible
		case "i":
			m.inspect()
		case "e":
			m.exportFigure()
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		d, err := geom.ParseWKTData(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		var s *scatter.Scene
		switch {
		case d.Ref != nil:
			s, err = m.scene.WithRef(*d.Ref)
		default:
			s, err = m.scene.WithPoints(d.Points)
		}
		if err != nil {
			m.status = "paste error: " + err.Error()
			return m, nil
		}
		m.setScene(s)
		// reset viewport for immediate visibility
		m.zoom = 1.0
		m.offsetX, m.offsetY = 0, 0
		m.status = fmt.Sprintf("applied WKT  pts=%d ref=(%g, %g)", len(s.Points), s.Ref()[0], s.Ref()[1])
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m *Model) rezoom(z orb.Bound) {
	s, err := m.scene.WithZoom(z)
	if err != nil {
		m.status = "zoom region error: " + err.Error()
		return
	}
	m.setScene(s)
	m.status = fmt.Sprintf("zoom region x=[%.2f, %.2f] y=[%.2f, %.2f]  points: %d",
		z.Min[0], z.Max[0], z.Min[1], z.Max[1], len(s.InZoom))
}

// hover tracks the mouse over either plot and finds the nearest point.
func (m *Model) hover(x, y int) {
	l := m.layout()
	var vp viewport
	var r rect
	switch {
	case l.zoom.contains(x, y):
		vp, r = m.zoomViewport(l), l.zoom
	case l.main.contains(x, y):
		vp, r = m.mainViewport(l), l.main
	default:
		m.hovering = false
		m.hoverHasXY = false
		m.hoverIdx = -1
		return
	}
	m.hovering = true
	px, py, ok := vp.cellToXY(x-r.x, y-r.y)
	m.hoverHasXY = ok
	if !ok {
		m.hoverIdx = -1
		return
	}
	m.hoverXY = orb.Point{px, py}
	if i, ok := m.scene.Index.Nearest(m.hoverXY); ok {
		m.hoverIdx = i
	} else {
		m.hoverIdx = -1
	}
}

// inspect describes the point nearest the cursor, or the view center.
func (m *Model) inspect() {
	target := m.hoverXY
	if !m.hoverHasXY {
		l := m.layout()
		vp := m.mainViewport(l)
		x, y, ok := vp.cellToXY(l.main.w/2, l.main.h/2)
		if !ok {
			m.inspectPopup = "no point nearby"
			m.status = m.inspectPopup
			return
		}
		target = orb.Point{x, y}
	}
	i, ok := m.scene.Index.Nearest(target)
	if !ok {
		m.inspectPopup = "no point nearby"
		m.status = m.inspectPopup
		return
	}
	s := m.scene
	p := s.Points[i]
	inZoom := s.Zoom().Contains(p)
	meta := []string{
		fmt.Sprintf("point: #%d", i+1),
		fmt.Sprintf("x=%.6f y=%.6f", p[0], p[1]),
		fmt.Sprintf("distance: %.6f", s.Result.Distances[i]),
		fmt.Sprintf("normalized: %.6f", s.Result.Normalized[i]),
		fmt.Sprintf("color: %s", m.pointHex[i]),
		fmt.Sprintf("in zoom: %v", inZoom),
		fmt.Sprintf("ref: (%g, %g)  seed: %d", s.Ref()[0], s.Ref()[1], s.Config.Seed),
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.hoverIdx = i
	m.status = "inspect popup"
}

func (m *Model) exportFigure() {
	if err := export.Save(m.opts.ExportPath, m.scene, m.opts.Export); err != nil {
		log.Printf("export %s: %v", m.opts.ExportPath, err)
		m.status = "export error: " + err.Error()
		return
	}
	log.Printf("exported %s (%s layout)", m.opts.ExportPath, m.scene.Config.Layout)
	m.status = "exported: " + m.opts.ExportPath
}
