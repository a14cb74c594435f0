package tui

import (
	"math"

	"github.com/paulmach/orb"

	"scatterzoom/internal/colormap"
	"scatterzoom/internal/geom"
	"scatterzoom/internal/scatter"
)

// viewport projects a data window onto a braille area with zoom and pan.
type viewport struct {
	view       orb.Bound
	zoom       float64
	offX, offY int // in cells
	w, h       int // in cells
}

// microXY maps data coords into a 2x4 microgrid per cell for braille rendering.
func (v viewport) microXY(x, y float64) (int, int, bool) {
	if !geom.Valid(v.view) || v.w <= 0 || v.h <= 0 {
		return 0, 0, false
	}
	nx := (x - v.view.Min[0]) / (v.view.Max[0] - v.view.Min[0])
	ny := (y - v.view.Min[1]) / (v.view.Max[1] - v.view.Min[1])
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*v.zoom
	zy := 0.5 + (ny-0.5)*v.zoom
	wMic := v.w * 2
	hMic := v.h * 4
	sx := int(math.Floor(zx*float64(wMic-1)+0.5)) + v.offX*2
	sy := int(math.Floor((1.0-zy)*float64(hMic-1)+0.5)) + v.offY*4
	return sx, sy, true
}

// microToXY is the inverse of microXY.
func (v viewport) microToXY(mx, my float64) (float64, float64, bool) {
	if !geom.Valid(v.view) || v.w <= 1 || v.h <= 1 {
		return 0, 0, false
	}
	zx := (mx - float64(v.offX*2)) / float64(v.w*2-1)
	zy := 1.0 - (my-float64(v.offY*4))/float64(v.h*4-1)
	nx := 0.5 + (zx-0.5)/v.zoom
	ny := 0.5 + (zy-0.5)/v.zoom
	x := v.view.Min[0] + nx*(v.view.Max[0]-v.view.Min[0])
	y := v.view.Min[1] + ny*(v.view.Max[1]-v.view.Min[1])
	return x, y, true
}

// cellToXY converts a cell coordinate back to data coords at the cell center.
func (v viewport) cellToXY(cx, cy int) (float64, float64, bool) {
	return v.microToXY(float64(cx*2)+0.5, float64(cy*4)+1.5)
}

// visible returns the data window currently on screen.
func (v viewport) visible() (orb.Bound, bool) {
	x0, y0, ok := v.microToXY(0, float64(v.h*4-1))
	if !ok {
		return orb.Bound{}, false
	}
	x1, y1, _ := v.microToXY(float64(v.w*2-1), 0)
	return orb.Bound{Min: orb.Point{x0, y0}, Max: orb.Point{x1, y1}}, true
}

func (m Model) mainViewport(l layout) viewport {
	return viewport{view: m.scene.Limits, zoom: m.zoom, offX: m.offsetX, offY: m.offsetY, w: l.main.w, h: l.main.h}
}

func (m Model) zoomViewport(l layout) viewport {
	return viewport{view: m.scene.Zoom(), zoom: 1, w: l.zoom.w, h: l.zoom.h}
}

type plotOpts struct {
	grid    bool
	outline bool
	hover   int // point index, -1 for none
}

// drawPlot renders the cloud into the braille area r of c.
func (m Model) drawPlot(c *canvas, r rect, vp viewport, o plotOpts) {
	if o.grid {
		const div = 4
		for i := 0; i <= div; i++ {
			gx := r.x + i*(r.w-1)/div
			for y := r.y; y < r.y+r.h; y++ {
				c.set(gx, y, '·', gridHex)
			}
			gy := r.y + i*(r.h-1)/div
			for x := r.x; x < r.x+r.w; x++ {
				c.set(x, gy, '·', gridHex)
			}
		}
	}

	br := newBrailleBuf(r.w, r.h)
	for i, p := range m.scene.Points {
		mx, my, ok := vp.microXY(p[0], p[1])
		if !ok {
			continue
		}
		br.setPixel(mx, my, m.pointHex[i])
	}
	if o.outline {
		ring := geom.Ring(m.scene.Zoom())
		var prev *[2]int
		for _, p := range ring {
			mx, my, ok := vp.microXY(p[0], p[1])
			if !ok {
				continue
			}
			if prev != nil {
				br.drawLineMicro(prev[0], prev[1], mx, my, zoomHex)
			}
			prev = &[2]int{mx, my}
		}
	}
	br.paint(c, r.x, r.y)

	// Hover highlight: draw an orange circle at the hovered point cell
	if o.hover >= 0 && o.hover < len(m.scene.Points) {
		p := m.scene.Points[o.hover]
		if mx, my, ok := vp.microXY(p[0], p[1]); ok {
			cx, cy := mx/2, my/4
			if mx >= 0 && my >= 0 && cx < r.w && cy < r.h {
				c.set(r.x+cx, r.y+cy, '◯', hoverHex)
			}
		}
	}
}

// drawPanel draws a titled plot with tick labels. p is the whole panel,
// r its braille area; both in canvas coords.
func (m Model) drawPanel(c *canvas, p, r rect, vp viewport, labels scatter.Labels, o plotOpts) {
	if labels.Y != "" {
		c.text(p.x, p.y, labels.Y, dimHex)
	}
	title := []rune(labels.Title)
	tx := p.x + len([]rune(labels.Y)) + 1
	if tw := p.x + p.w - tx; tw > 0 {
		if len(title) > tw {
			title = title[:tw]
		}
		c.boldText(tx+(tw-len(title))/2, p.y, string(title), accentHex)
	}

	m.drawPlot(c, r, vp, o)

	vis, ok := vp.visible()
	if !ok {
		return
	}
	// y ticks in the gutter
	for _, row := range []int{0, (r.h - 1) / 2, r.h - 1} {
		frac := 1 - float64(row)/float64(max(1, r.h-1))
		v := vis.Min[1] + frac*(vis.Max[1]-vis.Min[1])
		s := tick(v)
		c.text(r.x-1-len(s), r.y+row, s, dimHex)
	}
	// x ticks under the plot, axis label below them
	lo, hi := tick(vis.Min[0]), tick(vis.Max[0])
	c.text(r.x, r.y+r.h, lo, dimHex)
	c.text(r.x+r.w-len(hi), r.y+r.h, hi, dimHex)
	c.centerText(r.x, r.y+r.h+1, r.w, labels.X, dimHex)
}

// drawInset draws the zoomed view as a bordered box over the main plot.
func (m Model) drawInset(c *canvas, box, r rect, vp viewport, hover int) {
	c.box(box.x, box.y, box.w, box.h, borderHex)
	z := m.scene.Zoom()
	label := " " + tick(z.Min[0]) + "–" + tick(z.Max[0]) + " "
	if len([]rune(label)) <= box.w-2 {
		c.text(box.x+1, box.y, label, dimHex)
	}
	m.drawPlot(c, r, vp, plotOpts{hover: hover})
}

// drawColorbar draws the distance scale, 0 at the top.
func (m Model) drawColorbar(c *canvas, b rect) {
	top := b.y + 1
	n := max(2, b.h-3)
	cm := m.scene.ColorMap
	lo, hi := cm.Min(), cm.Max()
	for row := 0; row < n; row++ {
		frac := float64(row) / float64(n-1)
		col, err := cm.At(lo + frac*(hi-lo))
		if err != nil {
			continue
		}
		hex := colormap.Hex(col)
		for x := 1; x <= 3; x++ {
			c.set(b.x+x, top+row, '█', hex)
		}
	}
	for _, row := range []int{0, (n - 1) / 2, n - 1} {
		frac := float64(row) / float64(n-1)
		c.text(b.x+5, top+row, tick(lo+frac*(hi-lo)), dimHex)
	}
	label := []rune(scatter.ColorbarLabel)
	start := top + max(0, (n-len(label))/2)
	for i, r := range label {
		if i >= n {
			break
		}
		c.set(b.x+b.w-1, start+i, r, dimHex)
	}
}
