// Package colormap provides the color scales used to map normalized
// distances to colors. Every scale satisfies gonum's palette.ColorMap so
// callers can plug in any other gonum map as well.
package colormap

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// Linear interpolates between evenly spaced color stops.
type Linear struct {
	name     string
	stops    []colorful.Color
	min, max float64
	alpha    float64
}

// NewLinear builds a map over the given 8-bit RGB stops, ranged [0,1].
func NewLinear(name string, rgb [][3]uint8) *Linear {
	stops := make([]colorful.Color, len(rgb))
	for i, c := range rgb {
		stops[i] = colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
	}
	return &Linear{name: name, stops: stops, min: 0, max: 1, alpha: 1}
}

func (l *Linear) Name() string { return l.name }

// At returns the color at v. Values outside [Min, Max] return gonum's
// palette.ErrUnderflow or palette.ErrOverflow, NaN returns palette.ErrNaN.
func (l *Linear) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < l.min:
		return nil, palette.ErrUnderflow
	case v > l.max:
		return nil, palette.ErrOverflow
	}
	if len(l.stops) == 1 || l.max == l.min {
		return l.toColor(l.stops[0]), nil
	}
	pos := (v - l.min) / (l.max - l.min) * float64(len(l.stops)-1)
	i := int(pos)
	if i >= len(l.stops)-1 {
		return l.toColor(l.stops[len(l.stops)-1]), nil
	}
	return l.toColor(l.stops[i].BlendRgb(l.stops[i+1], pos-float64(i))), nil
}

func (l *Linear) toColor(c colorful.Color) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(l.alpha*255 + 0.5)}
}

func (l *Linear) Max() float64       { return l.max }
func (l *Linear) SetMax(v float64)   { l.max = v }
func (l *Linear) Min() float64       { return l.min }
func (l *Linear) SetMin(v float64)   { l.min = v }
func (l *Linear) Alpha() float64     { return l.alpha }
func (l *Linear) SetAlpha(a float64) { l.alpha = a }

// Palette samples n colors evenly across [Min, Max].
func (l *Linear) Palette(n int) palette.Palette {
	return Sample(l, n)
}

// Colors is a fixed palette.Palette.
type Colors []color.Color

func (c Colors) Colors() []color.Color { return c }

// Sample evaluates cm at n evenly spaced values from Min to Max.
func Sample(cm palette.ColorMap, n int) Colors {
	if n <= 0 {
		return nil
	}
	out := make(Colors, 0, n)
	lo, hi := cm.Min(), cm.Max()
	for i := 0; i < n; i++ {
		v := lo
		if n > 1 {
			v = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		c, err := cm.At(v)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Hex renders c as #rrggbb, ignoring alpha. Fully transparent colors
// return an empty string.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return ""
	}
	return cf.Clamped().Hex()
}

// Fade approximates drawing c with the given opacity over bg.
func Fade(c, bg color.Color, alpha float64) color.Color {
	fg, ok := colorful.MakeColor(c)
	if !ok {
		return bg
	}
	back, ok := colorful.MakeColor(bg)
	if !ok {
		return fg
	}
	if alpha >= 1 {
		return fg
	}
	if alpha <= 0 {
		return back
	}
	return fg.BlendRgb(back, 1-alpha).Clamped()
}

// WithAlpha returns c as a non-premultiplied color with opacity alpha.
func WithAlpha(c color.Color, alpha float64) color.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return color.NRGBA{}
	}
	r, g, b := cf.Clamped().RGB255()
	a := math.Max(0, math.Min(1, alpha))
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}
