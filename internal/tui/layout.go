package tui

import "scatterzoom/internal/scatter"

const (
	sidebarW  = 28
	headerH   = 1
	footerH   = 2
	gutterW   = 8
	colorbarW = 12
)

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout is the screen geometry of one frame. View draws with it and mouse
// handling reads it back, so both always agree.
type layout struct {
	contentW, contentH int
	plot               rect // everything right of the sidebar
	mainPanel          rect
	main               rect // braille area of the main plot
	bar                rect
	zoomPanel          rect // side layout only
	zoomBox            rect // inset layout only
	zoom               rect // braille area of the zoomed view
}

func (m Model) layout() layout {
	var l layout
	l.contentW = max(10, m.width)
	l.contentH = max(4, m.height-headerH-footerH)

	px := 0
	if m.showSidebar {
		px = sidebarW + 1
	}
	l.plot = rect{x: px, y: headerH, w: max(10, l.contentW-px), h: l.contentH}

	inner := func(p rect) rect {
		return rect{x: p.x + gutterW, y: p.y + 1, w: max(4, p.w-gutterW), h: max(2, p.h-3)}
	}

	if m.scene != nil && m.scene.Config.Layout == scatter.LayoutSide {
		left := l.plot.w / 2
		l.mainPanel = rect{x: l.plot.x, y: l.plot.y, w: max(gutterW+4, left-colorbarW), h: l.plot.h}
		l.bar = rect{x: l.mainPanel.x + l.mainPanel.w, y: l.plot.y, w: colorbarW, h: l.plot.h}
		l.zoomPanel = rect{x: l.bar.x + l.bar.w, y: l.plot.y, w: max(gutterW+4, l.plot.w-left), h: l.plot.h}
		l.main = inner(l.mainPanel)
		l.zoom = inner(l.zoomPanel)
		return l
	}

	l.mainPanel = rect{x: l.plot.x, y: l.plot.y, w: max(gutterW+4, l.plot.w-colorbarW), h: l.plot.h}
	l.bar = rect{x: l.mainPanel.x + l.mainPanel.w, y: l.plot.y, w: colorbarW, h: l.plot.h}
	l.main = inner(l.mainPanel)
	iw := min(l.main.w, max(12, l.main.w*3/10))
	ih := min(l.main.h, max(5, l.main.h*3/10))
	l.zoomBox = rect{x: l.main.x + l.main.w - iw, y: l.main.y, w: iw, h: ih}
	l.zoom = rect{x: l.zoomBox.x + 1, y: l.zoomBox.y + 1, w: max(1, iw-2), h: max(1, ih-2)}
	return l
}
