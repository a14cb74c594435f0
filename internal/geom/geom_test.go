package geom

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
)

func TestBoundOfIncludesExtra(t *testing.T) {
	pts := []orb.Point{{1, 2}, {3, 1}}
	zoom := orb.Bound{Min: orb.Point{4, 5}, Max: orb.Point{6, 7}}
	b := BoundOf(pts, zoom)
	want := orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{6, 7}}
	if b != want {
		t.Fatalf("bound=%v want %v", b, want)
	}
	if got := BoundOf(nil, zoom); got != zoom {
		t.Fatalf("extra only=%v", got)
	}
}

func TestPad(t *testing.T) {
	b := Pad(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{10, 20}}, 0.5)
	want := orb.Bound{Min: orb.Point{-5, -10}, Max: orb.Point{15, 30}}
	if b != want {
		t.Fatalf("pad=%v want %v", b, want)
	}
	flat := Pad(orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{1, 1}}, 0.05)
	if !Valid(flat) {
		t.Fatalf("padded point bound not drawable: %v", flat)
	}
}

func TestShiftScaleRing(t *testing.T) {
	b := orb.Bound{Min: orb.Point{4, 5}, Max: orb.Point{6, 7}}
	if got := Shift(b, 1, -1); got != (orb.Bound{Min: orb.Point{5, 4}, Max: orb.Point{7, 6}}) {
		t.Fatalf("shift=%v", got)
	}
	if got := Scale(b, 2); got != (orb.Bound{Min: orb.Point{3, 4}, Max: orb.Point{7, 8}}) {
		t.Fatalf("scale=%v", got)
	}
	r := Ring(b)
	if len(r) != 5 || r[0] != r[4] {
		t.Fatalf("ring=%v", r)
	}
}

func TestIndexWithinMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pts := make([]orb.Point, 300)
	for i := range pts {
		pts[i] = orb.Point{rng.Float64() * 10, rng.Float64() * 10}
	}
	// points on the region edge count as inside
	pts = append(pts, orb.Point{4, 5}, orb.Point{6, 7})
	ix := NewIndex(pts)
	zoom := orb.Bound{Min: orb.Point{4, 5}, Max: orb.Point{6, 7}}
	got := ix.Within(zoom)
	var want []int
	for i, p := range pts {
		if zoom.Contains(p) {
			want = append(want, i)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("within=%d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("within[%d]=%d want %d", i, got[i], want[i])
		}
	}
}

func TestIndexNearest(t *testing.T) {
	pts := []orb.Point{{0, 0}, {5, 5}, {9, 1}}
	ix := NewIndex(pts)
	i, ok := ix.Nearest(orb.Point{8, 2})
	if !ok || i != 2 {
		t.Fatalf("nearest=%d ok=%v", i, ok)
	}
	if ix.Point(i) != pts[2] {
		t.Fatalf("point=%v", ix.Point(i))
	}
	if _, ok := NewIndex(nil).Nearest(orb.Point{}); ok {
		t.Fatal("expected no nearest in empty index")
	}
}

func TestParseWKTData(t *testing.T) {
	d, err := ParseWKTData("POINT(1 2)")
	if err != nil {
		t.Fatalf("point: %v", err)
	}
	if d.Ref == nil || *d.Ref != (orb.Point{1, 2}) || d.Points != nil {
		t.Fatalf("point data=%+v", d)
	}

	d, err = ParseWKTData("MULTIPOINT((1 2),(3 4),(5 0))")
	if err != nil {
		t.Fatalf("multipoint: %v", err)
	}
	if len(d.Points) != 3 || d.Ref != nil {
		t.Fatalf("multipoint data=%+v", d)
	}
	if d.Bound != (orb.Bound{Min: orb.Point{1, 0}, Max: orb.Point{5, 4}}) {
		t.Fatalf("bound=%v", d.Bound)
	}

	if _, err := ParseWKTData("  "); !errors.Is(err, ErrEmptyWKT) {
		t.Fatalf("empty err=%v", err)
	}
	if _, err := ParseWKTData("LINESTRING(0 0,1 1)"); !errors.Is(err, ErrUnsupportedWKT) {
		t.Fatalf("linestring err=%v", err)
	}
	if _, err := ParseWKTData("POINT(a b)"); err == nil {
		t.Fatal("expected parse error")
	}
}
