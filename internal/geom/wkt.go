package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

var (
	ErrEmptyWKT       = errors.New("geom: empty wkt")
	ErrUnsupportedWKT = errors.New("geom: unsupported wkt type")
)

// ParseWKTData reads pasted WKT. POINT sets a new reference point,
// MULTIPOINT replaces the cloud.
func ParseWKTData(s string) (Data, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Data{}, ErrEmptyWKT
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Data{}, fmt.Errorf("geom: wkt: %w", err)
	}
	switch v := g.(type) {
	case orb.Point:
		p := v
		return Data{Ref: &p, Bound: v.Bound()}, nil
	case orb.MultiPoint:
		if len(v) == 0 {
			return Data{}, fmt.Errorf("%w: empty multipoint", ErrEmptyWKT)
		}
		pts := make([]orb.Point, len(v))
		copy(pts, v)
		return Data{Points: pts, Bound: v.Bound()}, nil
	default:
		return Data{}, fmt.Errorf("%w: %s", ErrUnsupportedWKT, g.GeoJSONType())
	}
}
