// Package cloud generates the synthetic point cloud that gets plotted.
package cloud

import (
	"errors"
	"math/rand"

	"github.com/paulmach/orb"
)

const (
	DefaultSize = 100
	DefaultSpan = 10.0
	DefaultSeed = 0
)

// DefaultRef is the distance origin used for color mapping.
var DefaultRef = orb.Point{5, 7}

var (
	ErrSize = errors.New("cloud: size must be at least 1")
	ErrSpan = errors.New("cloud: span must be positive")
	ErrRand = errors.New("cloud: nil random source")
)

// NewRand returns a generator seeded for reproducible clouds.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate draws n points uniformly in [0,span)x[0,span).
// All x coordinates are drawn before the y coordinates.
func Generate(r *rand.Rand, n int, span float64) ([]orb.Point, error) {
	if r == nil {
		return nil, ErrRand
	}
	if n < 1 {
		return nil, ErrSize
	}
	if !(span > 0) {
		return nil, ErrSpan
	}
	pts := make([]orb.Point, n)
	for i := range pts {
		pts[i][0] = r.Float64() * span
	}
	for i := range pts {
		pts[i][1] = r.Float64() * span
	}
	return pts, nil
}
