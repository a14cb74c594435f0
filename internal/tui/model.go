package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"scatterzoom/internal/colormap"
	"scatterzoom/internal/export"
	"scatterzoom/internal/scatter"
)

// Options configures the viewer beyond the scene itself.
type Options struct {
	// ExportPath is where "e" writes the figure.
	ExportPath string
	Export     export.Options
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showGrid    bool

	// main plot zoom and pan
	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data
	scene    *scatter.Scene
	pointHex []string // faded marker color per point

	opts Options

	// color map picker
	l     list.Model
	items []list.Item

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverIdx   int
	hoverHasXY bool
	hoverXY    orb.Point

	// point table
	showTable bool
	tbl       table.Model
}

func New(s *scatter.Scene, opts Options) Model {
	m := Model{
		helpVisible: true,
		showGrid:    true,
		zoom:        1.0,
		status:      "scatterzoom ready",
		hoverIdx:    -1,
		opts:        opts,
	}
	if m.opts.ExportPath == "" {
		m.opts.ExportPath = "scatter.png"
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Color maps"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT: POINT(x y) moves the reference, MULTIPOINT((x y),...) replaces the cloud. Enter to apply; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.setScene(s)
	m.refreshColorMaps()
	return m
}

// setScene swaps in a rebuilt scene and recomputes per-point colors.
func (m *Model) setScene(s *scatter.Scene) {
	m.scene = s
	m.hoverIdx = -1
	m.pointHex = make([]string, len(s.Points))
	for i, c := range s.Result.Colors {
		m.pointHex[i] = colormap.Hex(colormap.Fade(c, plotBg, s.Config.Alpha))
	}
	if m.showTable {
		m.refreshTable()
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Scene returns the scene currently on screen.
func (m Model) Scene() *scatter.Scene { return m.scene }
