package geom

import "github.com/paulmach/orb"

// Data is what a pasted WKT string contributes to the scene. At most one of
// Points and Ref is set.
type Data struct {
	Points []orb.Point
	Ref    *orb.Point
	Bound  orb.Bound
}
