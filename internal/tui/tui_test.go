package tui

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"scatterzoom/internal/scatter"
)

func newTestModel(t *testing.T, l scatter.Layout) Model {
	t.Helper()
	cfg := scatter.DefaultConfig()
	cfg.Layout = l
	s, err := scatter.Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	m := New(s, Options{ExportPath: filepath.Join(t.TempDir(), "out.png")})
	return send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func countCells(c *canvas, r rect, pred func(cell) bool) int {
	n := 0
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			if pred(c.at(x, y)) {
				n++
			}
		}
	}
	return n
}

func isBraille(c cell) bool { return c.r >= 0x2801 && c.r <= 0x28FF }

func TestViewInset(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	out := m.View()
	if out == "" {
		t.Fatal("empty view")
	}
	for _, want := range []string{"Scatterplot with Viridis Color Temperature Scale", "X Axis", "Color Temperature"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestRenderPlotsInset(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	l := m.layout()
	c := m.renderPlots(l)
	mainLocal := rect{x: l.main.x - l.plot.x, y: l.main.y - l.plot.y, w: l.main.w, h: l.main.h}
	if n := countCells(c, mainLocal, isBraille); n == 0 {
		t.Fatal("no points drawn in main plot")
	}
	if n := countCells(c, mainLocal, func(cl cell) bool { return cl.fg == zoomHex }); n == 0 {
		t.Fatal("zoom outline missing")
	}
	box := rect{x: l.zoomBox.x - l.plot.x, y: l.zoomBox.y - l.plot.y, w: l.zoomBox.w, h: l.zoomBox.h}
	if c.at(box.x, box.y).r != '╭' {
		t.Fatalf("inset corner=%q", c.at(box.x, box.y).r)
	}
	bar := rect{x: l.bar.x - l.plot.x, y: l.bar.y - l.plot.y, w: l.bar.w, h: l.bar.h}
	if n := countCells(c, bar, func(cl cell) bool { return cl.r == '█' }); n == 0 {
		t.Fatal("colorbar missing")
	}
}

func TestInsetSitsInsideMainPlot(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	l := m.layout()
	if l.zoomBox.x+l.zoomBox.w != l.main.x+l.main.w || l.zoomBox.y != l.main.y {
		t.Fatalf("inset %+v not at upper right of %+v", l.zoomBox, l.main)
	}
	if l.zoomBox.w >= l.main.w || l.zoomBox.h >= l.main.h {
		t.Fatalf("inset %+v too large for %+v", l.zoomBox, l.main)
	}
}

func TestLayoutToggle(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("v"))
	if m.scene.Config.Layout != scatter.LayoutSide {
		t.Fatalf("layout=%v", m.scene.Config.Layout)
	}
	out := m.View()
	if !strings.Contains(out, "Zoomed-In Scatterplot") {
		t.Fatal("side view missing zoomed title")
	}
	l := m.layout()
	if l.zoom.x <= l.main.x+l.main.w {
		t.Fatalf("side zoom %+v overlaps main %+v", l.zoom, l.main)
	}
	m = send(t, m, key("v"))
	if m.scene.Config.Layout != scatter.LayoutInset {
		t.Fatalf("layout=%v", m.scene.Config.Layout)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestReseed(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	first := m.scene.Points[0]
	m = send(t, m, key("n"))
	if m.scene.Config.Seed != 1 {
		t.Fatalf("seed=%d", m.scene.Config.Seed)
	}
	if m.scene.Points[0] == first {
		t.Fatal("cloud not regenerated")
	}
	if len(m.pointHex) != len(m.scene.Points) {
		t.Fatalf("colors=%d points=%d", len(m.pointHex), len(m.scene.Points))
	}
}

func TestMoveAndResizeZoomRegion(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("d"))
	if z := m.scene.Zoom(); z.Min[0] != 4.5 || z.Max[0] != 6.5 || z.Min[1] != 5 {
		t.Fatalf("zoom after d=%v", z)
	}
	m = send(t, m, key("w"))
	if z := m.scene.Zoom(); z.Min[1] != 5.5 {
		t.Fatalf("zoom after w=%v", z)
	}
	m = send(t, m, key("]"))
	if z := m.scene.Zoom(); math.Abs((z.Max[0]-z.Min[0])-2.4) > 1e-9 {
		t.Fatalf("zoom after ]=%v", z)
	}
	for _, i := range m.scene.InZoom {
		if !m.scene.Zoom().Contains(m.scene.Points[i]) {
			t.Fatalf("stale in-zoom index %d", i)
		}
	}
}

func TestPanAndZoomReset(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("+"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.zoom <= 1 || m.offsetX != 2 {
		t.Fatalf("zoom=%v offX=%d", m.zoom, m.offsetX)
	}
	m = send(t, m, key("0"))
	if m.zoom != 1 || m.offsetX != 0 || m.offsetY != 0 {
		t.Fatalf("reset zoom=%v off=%d,%d", m.zoom, m.offsetX, m.offsetY)
	}
}

func TestPasteReference(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("p"))
	if !m.pasteMode {
		t.Fatal("paste mode not entered")
	}
	m.ta.SetValue("POINT(0 0)")
	m = send(t, m, key("enter"))
	if m.pasteMode {
		t.Fatal("paste mode still on")
	}
	if m.scene.Ref() != (orb.Point{0, 0}) {
		t.Fatalf("ref=%v", m.scene.Ref())
	}
}

func TestPasteErrorsKeepScene(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	before := m.scene

	m = send(t, m, key("p"))
	m.ta.SetValue("POLYGON((0 0,1 0,1 1,0 0))")
	m = send(t, m, key("enter"))
	if !strings.HasPrefix(m.status, "wkt error") || m.scene != before {
		t.Fatalf("status=%q", m.status)
	}

	m.ta.SetValue("MULTIPOINT((5 7),(5 7))")
	m = send(t, m, key("enter"))
	if !strings.HasPrefix(m.status, "paste error") || m.scene != before {
		t.Fatalf("status=%q", m.status)
	}

	m = send(t, m, key("esc"))
	if m.pasteMode {
		t.Fatal("esc did not leave paste mode")
	}
}

func TestPasteCloud(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("p"))
	m.ta.SetValue("MULTIPOINT((5 7),(5 8),(6 7))")
	m = send(t, m, key("enter"))
	want := []float64{0, 1, 1}
	for i, v := range m.scene.Result.Normalized {
		if v != want[i] {
			t.Fatalf("norm[%d]=%v want %v", i, v, want[i])
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := viewport{view: orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 10}}, zoom: 1.5, offX: 3, offY: -2, w: 80, h: 30}
	mx, my, ok := vp.microXY(2.5, 7.5)
	if !ok {
		t.Fatal("microXY failed")
	}
	x, y, ok := vp.microToXY(float64(mx), float64(my))
	if !ok {
		t.Fatal("microToXY failed")
	}
	// one micro pixel is at most view/zoom/(2w) wide
	if math.Abs(x-2.5) > 0.1 || math.Abs(y-7.5) > 0.1 {
		t.Fatalf("round trip=(%v,%v)", x, y)
	}
	if _, _, ok := (viewport{w: 10, h: 10, zoom: 1}).microXY(1, 1); ok {
		t.Fatal("expected failure on empty view")
	}
}

func TestHoverAndInspect(t *testing.T) {
	m := newTestModel(t, scatter.LayoutSide)
	l := m.layout()
	m = send(t, m, tea.MouseMsg{X: l.main.x + l.main.w/3, Y: l.main.y + l.main.h/2, Action: tea.MouseActionMotion})
	if !m.hovering || !m.hoverHasXY || m.hoverIdx < 0 {
		t.Fatalf("hover=%v xy=%v idx=%d", m.hovering, m.hoverHasXY, m.hoverIdx)
	}
	m = send(t, m, key("i"))
	if !strings.Contains(m.inspectPopup, "distance:") || !strings.Contains(m.inspectPopup, "normalized:") {
		t.Fatalf("popup=%q", m.inspectPopup)
	}
	if !strings.Contains(m.View(), "normalized:") {
		t.Fatal("popup not rendered")
	}
	m = send(t, m, key("esc"))
	if m.inspectPopup != "" {
		t.Fatal("esc did not close popup")
	}
	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if m.hovering || m.hoverIdx != -1 {
		t.Fatal("hover not cleared outside plots")
	}
}

func TestTable(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("t"))
	if !m.showTable {
		t.Fatal("table not shown")
	}
	if n := len(m.tbl.Rows()); n != len(m.scene.Points) {
		t.Fatalf("rows=%d", n)
	}
	zoomed := 0
	for _, r := range m.tbl.Rows() {
		if r[5] == "yes" {
			zoomed++
		}
	}
	if zoomed != len(m.scene.InZoom) {
		t.Fatalf("zoom rows=%d want %d", zoomed, len(m.scene.InZoom))
	}
	if !strings.Contains(m.View(), "normalized") {
		t.Fatal("table header not rendered")
	}
	m = send(t, m, key("t"))
	if m.showTable {
		t.Fatal("table still shown")
	}
}

func TestColorMapPicker(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("tab"))
	if !m.showSidebar {
		t.Fatal("sidebar not shown")
	}
	target := -1
	for i, it := range m.items {
		if it.(cmapItem).title == "plasma" {
			target = i
		}
	}
	if target < 0 {
		t.Fatal("plasma not listed")
	}
	m.l.Select(target)
	m = send(t, m, key("enter"))
	if m.scene.Config.ColorMap != "plasma" {
		t.Fatalf("color map=%q", m.scene.Config.ColorMap)
	}
	if !strings.Contains(m.scene.Main.Title, "Plasma") {
		t.Fatalf("title=%q", m.scene.Main.Title)
	}
}

func TestExport(t *testing.T) {
	m := newTestModel(t, scatter.LayoutInset)
	m = send(t, m, key("e"))
	if !strings.HasPrefix(m.status, "exported") {
		t.Fatalf("status=%q", m.status)
	}
	if _, err := os.Stat(m.opts.ExportPath); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0, "#111111")
	b.setPixel(3, 3, "")
	b.setPixel(-1, 0, "#ffffff")
	b.setPixel(4, 0, "#ffffff")
	c := newCanvas(2, 1)
	b.paint(c, 0, 0)
	if got := c.at(0, 0); got.r != 0x2801 || got.fg != "#111111" {
		t.Fatalf("cell0=%+v", got)
	}
	if got := c.at(1, 0); got.r != 0x2880 || got.fg != "" {
		t.Fatalf("cell1=%+v", got)
	}
}
