package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r    rune
	fg   string
	bold bool
}

// canvas is a fixed-size grid of styled cells. Panels are composed on it
// before it is flattened into terminal lines.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	w, h = max(0, w), max(0, h)
	cells := make([][]cell, h)
	for y := range cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) set(x, y int, r rune, fg string) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, fg: fg}
}

func (c *canvas) at(x, y int) cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return cell{}
	}
	return c.cells[y][x]
}

// text writes s starting at (x, y), clipped to the canvas.
func (c *canvas) text(x, y int, s, fg string) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, fg)
	}
}

func (c *canvas) boldText(x, y int, s, fg string) {
	for i, r := range []rune(s) {
		if x+i < 0 || y < 0 || x+i >= c.w || y >= c.h {
			continue
		}
		c.cells[y][x+i] = cell{r: r, fg: fg, bold: true}
	}
}

// centerText writes s centered within [x, x+w).
func (c *canvas) centerText(x, y, w int, s, fg string) {
	rs := []rune(s)
	if len(rs) > w {
		rs = rs[:max(0, w)]
	}
	c.text(x+(w-len(rs))/2, y, string(rs), fg)
}

// fill blanks the rectangle.
func (c *canvas) fill(x, y, w, h int) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.set(xx, yy, ' ', "")
		}
	}
}

// box draws a rounded border and clears its interior.
func (c *canvas) box(x, y, w, h int, fg string) {
	if w < 2 || h < 2 {
		return
	}
	c.fill(x, y, w, h)
	for xx := x + 1; xx < x+w-1; xx++ {
		c.set(xx, y, '─', fg)
		c.set(xx, y+h-1, '─', fg)
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		c.set(x, yy, '│', fg)
		c.set(x+w-1, yy, '│', fg)
	}
	c.set(x, y, '╭', fg)
	c.set(x+w-1, y, '╮', fg)
	c.set(x, y+h-1, '╰', fg)
	c.set(x+w-1, y+h-1, '╯', fg)
}

// lines flattens the canvas, grouping runs of equally styled cells.
func (c *canvas) lines() []string {
	out := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		row := c.cells[y]
		for x := 0; x < len(row); {
			st := row[x]
			end := x
			var run []rune
			for end < len(row) && row[end].fg == st.fg && row[end].bold == st.bold {
				run = append(run, row[end].r)
				end++
			}
			sb.WriteString(styleFor(st.fg, st.bold).Render(string(run)))
			x = end
		}
		out[y] = sb.String()
	}
	return out
}

func (c *canvas) String() string {
	return strings.Join(c.lines(), "\n")
}

func styleFor(fg string, bold bool) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bold {
		s = s.Bold(true)
	}
	return s
}
