// Package scatter assembles a plottable scene: the generated cloud, its
// distance colors, the zoom region and the labels both renderers share.
package scatter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"scatterzoom/internal/cloud"
	"scatterzoom/internal/colorize"
	"scatterzoom/internal/colormap"
	"scatterzoom/internal/geom"
)

var (
	ErrConfig = errors.New("scatter: invalid config")
	ErrLayout = errors.New("scatter: unknown layout")
	ErrParse  = errors.New("scatter: malformed value")
)

// Layout places the zoomed view relative to the main plot.
type Layout int

const (
	// LayoutInset draws the zoomed view inside the main axes, upper right.
	LayoutInset Layout = iota
	// LayoutSide draws the zoomed view as a second panel.
	LayoutSide
)

func (l Layout) String() string {
	switch l {
	case LayoutInset:
		return "inset"
	case LayoutSide:
		return "side"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// Next cycles between layouts.
func (l Layout) Next() Layout {
	if l == LayoutInset {
		return LayoutSide
	}
	return LayoutInset
}

func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inset", "insert", "":
		return LayoutInset, nil
	case "side", "next":
		return LayoutSide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrLayout, s)
}

type Config struct {
	Seed       int64
	N          int
	Span       float64
	Ref        orb.Point
	Zoom       orb.Bound
	ColorMap   string
	Degenerate colorize.DegeneratePolicy
	Fill       float64
	Layout     Layout
	// Alpha is the marker opacity.
	Alpha float64
}

// DefaultZoom is the region shown in the zoomed view.
var DefaultZoom = orb.Bound{Min: orb.Point{4, 5}, Max: orb.Point{6, 7}}

func DefaultConfig() Config {
	return Config{
		Seed:       cloud.DefaultSeed,
		N:          cloud.DefaultSize,
		Span:       cloud.DefaultSpan,
		Ref:        cloud.DefaultRef,
		Zoom:       DefaultZoom,
		ColorMap:   colormap.DefaultName,
		Degenerate: colorize.DegenerateError,
		Layout:     LayoutInset,
		Alpha:      0.8,
	}
}

func (c Config) Validate() error {
	switch {
	case c.N < 1:
		return fmt.Errorf("%w: n=%d", ErrConfig, c.N)
	case !(c.Span > 0) || math.IsInf(c.Span, 0):
		return fmt.Errorf("%w: span=%v", ErrConfig, c.Span)
	case !geom.Valid(c.Zoom):
		return fmt.Errorf("%w: zoom=%v", ErrConfig, c.Zoom)
	case !(c.Alpha > 0 && c.Alpha <= 1):
		return fmt.Errorf("%w: alpha=%v", ErrConfig, c.Alpha)
	case c.Layout != LayoutInset && c.Layout != LayoutSide:
		return fmt.Errorf("%w: %v", ErrLayout, c.Layout)
	}
	return nil
}

// ParsePoint reads "x,y".
func ParsePoint(s string) (orb.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return orb.Point{}, err
	}
	return orb.Point{v[0], v[1]}, nil
}

// ParseBound reads "x1,x2,y1,y2".
func ParseBound(s string) (orb.Bound, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return orb.Bound{}, err
	}
	b := orb.Bound{
		Min: orb.Point{math.Min(v[0], v[1]), math.Min(v[2], v[3])},
		Max: orb.Point{math.Max(v[0], v[1]), math.Max(v[2], v[3])},
	}
	if !geom.Valid(b) {
		return orb.Bound{}, fmt.Errorf("%w: empty region %q", ErrParse, s)
	}
	return b, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d comma-separated numbers, got %q", ErrParse, n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrParse, p, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: non-finite %q", ErrParse, p)
		}
		out[i] = f
	}
	return out, nil
}
