// Package geom holds the plane geometry shared by the renderers: bounds,
// padding, the zoom-region index and WKT input.
package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// BoundOf returns the bound of pts extended by any extra bounds.
func BoundOf(pts []orb.Point, extra ...orb.Bound) orb.Bound {
	var b orb.Bound
	started := false
	for _, p := range pts {
		if !started {
			b = orb.Bound{Min: p, Max: p}
			started = true
			continue
		}
		b = b.Extend(p)
	}
	for _, e := range extra {
		if !started {
			b = e
			started = true
			continue
		}
		b = b.Union(e)
	}
	return b
}

// Pad grows b by frac of its size on every side. Zero-size axes grow by
// frac units so the result is always drawable.
func Pad(b orb.Bound, frac float64) orb.Bound {
	dx := (b.Max[0] - b.Min[0]) * frac
	dy := (b.Max[1] - b.Min[1]) * frac
	if dx == 0 {
		dx = frac
	}
	if dy == 0 {
		dy = frac
	}
	return orb.Bound{
		Min: orb.Point{b.Min[0] - dx, b.Min[1] - dy},
		Max: orb.Point{b.Max[0] + dx, b.Max[1] + dy},
	}
}

// Valid reports whether b has positive finite extent on both axes.
func Valid(b orb.Bound) bool {
	for _, v := range []float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return b.Max[0] > b.Min[0] && b.Max[1] > b.Min[1]
}

// Shift moves b by (dx, dy).
func Shift(b orb.Bound, dx, dy float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.Min[0] + dx, b.Min[1] + dy},
		Max: orb.Point{b.Max[0] + dx, b.Max[1] + dy},
	}
}

// Scale resizes b around its center by factor f.
func Scale(b orb.Bound, f float64) orb.Bound {
	c := b.Center()
	hw := (b.Max[0] - b.Min[0]) / 2 * f
	hh := (b.Max[1] - b.Min[1]) / 2 * f
	return orb.Bound{
		Min: orb.Point{c[0] - hw, c[1] - hh},
		Max: orb.Point{c[0] + hw, c[1] + hh},
	}
}

// Ring returns the closed outline of b, counter-clockwise from Min.
func Ring(b orb.Bound) []orb.Point {
	return []orb.Point{
		b.Min,
		{b.Max[0], b.Min[1]},
		b.Max,
		{b.Min[0], b.Max[1]},
		b.Min,
	}
}
