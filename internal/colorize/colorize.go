// Package colorize colors points by their min-max normalized distance to a
// reference point.
package colorize

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/plot/palette"
)

var (
	ErrNoPoints        = errors.New("colorize: no points")
	ErrNonFinite       = errors.New("colorize: non-finite coordinate")
	ErrDegenerateRange = errors.New("colorize: all points are equidistant from the reference")
	ErrFillRange       = errors.New("colorize: fill value outside [0,1]")
	ErrNoColorMap      = errors.New("colorize: nil color map")
	ErrPolicy          = errors.New("colorize: unknown degenerate policy")
)

// DegeneratePolicy decides what Normalize does when every distance is equal.
type DegeneratePolicy int

const (
	// DegenerateError fails with ErrDegenerateRange.
	DegenerateError DegeneratePolicy = iota
	// DegenerateConstant maps every point to Options.Fill.
	DegenerateConstant
)

func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateError:
		return "error"
	case DegenerateConstant:
		return "constant"
	}
	return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
}

// ParsePolicy accepts "error" or "constant".
func ParsePolicy(s string) (DegeneratePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "":
		return DegenerateError, nil
	case "constant", "const":
		return DegenerateConstant, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrPolicy, s)
}

type Options struct {
	Degenerate DegeneratePolicy
	Fill       float64
}

// Result holds parallel per-point slices.
type Result struct {
	Distances  []float64
	Normalized []float64
	Colors     []color.Color
	Min, Max   float64
}

// Distances returns the Euclidean distance of every point to ref.
func Distances(points []orb.Point, ref orb.Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = planar.Distance(p, ref)
	}
	return out
}

// Normalize rescales dist to [0,1] so the smallest value maps to 0 and the
// largest to 1.
func Normalize(dist []float64, opts Options) (norm []float64, lo, hi float64, err error) {
	if len(dist) == 0 {
		return nil, 0, 0, ErrNoPoints
	}
	lo, hi = dist[0], dist[0]
	for _, d := range dist {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, 0, 0, ErrNonFinite
		}
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	norm = make([]float64, len(dist))
	if hi == lo {
		switch opts.Degenerate {
		case DegenerateError:
			return nil, lo, hi, ErrDegenerateRange
		case DegenerateConstant:
			if !(opts.Fill >= 0 && opts.Fill <= 1) {
				return nil, lo, hi, ErrFillRange
			}
			for i := range norm {
				norm[i] = opts.Fill
			}
			return norm, lo, hi, nil
		default:
			return nil, lo, hi, fmt.Errorf("%w: %v", ErrPolicy, opts.Degenerate)
		}
	}
	span := hi - lo
	for i, d := range dist {
		switch d {
		case lo:
			norm[i] = 0
		case hi:
			norm[i] = 1
		default:
			norm[i] = (d - lo) / span
		}
	}
	return norm, lo, hi, nil
}

// Colorize computes distances to ref, normalizes them and maps each value
// through cm.
func Colorize(points []orb.Point, ref orb.Point, cm palette.ColorMap, opts Options) (Result, error) {
	if cm == nil {
		return Result{}, ErrNoColorMap
	}
	if len(points) == 0 {
		return Result{}, ErrNoPoints
	}
	if !finite(ref) {
		return Result{}, fmt.Errorf("%w: reference %v", ErrNonFinite, ref)
	}
	for i, p := range points {
		if !finite(p) {
			return Result{}, fmt.Errorf("%w: point %d %v", ErrNonFinite, i, p)
		}
	}
	dist := Distances(points, ref)
	norm, lo, hi, err := Normalize(dist, opts)
	if err != nil {
		return Result{}, err
	}
	colors := make([]color.Color, len(norm))
	for i, v := range norm {
		c, err := cm.At(v)
		if err != nil {
			return Result{}, fmt.Errorf("colorize: color for point %d (%v): %w", i, v, err)
		}
		colors[i] = c
	}
	return Result{Distances: dist, Normalized: norm, Colors: colors, Min: lo, Max: hi}, nil
}

func finite(p orb.Point) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
