package geom

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// pointTol is the half-width of the rectangle stored for each point.
const pointTol = 1e-9

type entry struct {
	idx int
	pt  orb.Point
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect {
	return rtreego.Point{e.pt[0], e.pt[1]}.ToRect(pointTol)
}

// Index answers region and nearest-point queries over a fixed cloud.
type Index struct {
	tree *rtreego.Rtree
	pts  []orb.Point
}

// NewIndex bulk-loads pts into an R-tree.
func NewIndex(pts []orb.Point) *Index {
	objs := make([]rtreego.Spatial, len(pts))
	for i, p := range pts {
		objs[i] = &entry{idx: i, pt: p}
	}
	return &Index{tree: rtreego.NewTree(2, 25, 50, objs...), pts: pts}
}

func (ix *Index) Len() int { return len(ix.pts) }

// Within returns the sorted indices of points inside b, edges included.
func (ix *Index) Within(b orb.Bound) []int {
	if ix == nil || len(ix.pts) == 0 {
		return nil
	}
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w < 0 || h < 0 {
		return nil
	}
	rect, err := rtreego.NewRect(
		rtreego.Point{b.Min[0] - pointTol, b.Min[1] - pointTol},
		[]float64{w + 2*pointTol, h + 2*pointTol},
	)
	if err != nil {
		return nil
	}
	var out []int
	for _, s := range ix.tree.SearchIntersect(rect) {
		e := s.(*entry)
		// the tree matches on tolerance rectangles; confirm exactly
		if b.Contains(e.pt) {
			out = append(out, e.idx)
		}
	}
	sort.Ints(out)
	return out
}

// Nearest returns the index of the point closest to p.
func (ix *Index) Nearest(p orb.Point) (int, bool) {
	if ix == nil || len(ix.pts) == 0 {
		return 0, false
	}
	s := ix.tree.NearestNeighbor(rtreego.Point{p[0], p[1]})
	if s == nil {
		return 0, false
	}
	return s.(*entry).idx, true
}

func (ix *Index) Point(i int) orb.Point { return ix.pts[i] }
