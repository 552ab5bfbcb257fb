// Package prism is a convex-shape intersection library.
//
// The entry point is Intersects, which accepts any two shape.Shape values.
// Pairs with a cheap closed-form answer (sphere-sphere, box-box,
// triangle-triangle) are routed to the analytic routines in
// package intersect; every other pair falls through to the generic GJK
// algorithm in package gjk. Both paths agree on boundary semantics:
// touching counts as intersecting.
//
// Everything in this module is a pure function over immutable values, so
// any number of goroutines may run queries concurrently without locking.
package prism

import (
	"github.com/akmonengine/prism/gjk"
	"github.com/akmonengine/prism/intersect"
	"github.com/akmonengine/prism/shape"
)

// Intersects reports whether two convex shapes overlap, touching included.
// The result is symmetric: Intersects(a, b) == Intersects(b, a).
func Intersects(a, b shape.Shape) bool {
	// Route pairs with a closed-form test away from GJK
	switch sa := a.(type) {
	case shape.Sphere:
		if sb, ok := b.(shape.Sphere); ok {
			return intersect.SphereSphereOverlap(sa, sb)
		}
	case shape.AABB:
		if sb, ok := b.(shape.AABB); ok {
			return intersect.AABBOverlap(sa, sb)
		}
	case shape.Triangle:
		if sb, ok := b.(shape.Triangle); ok {
			return intersect.TriangleTriangle(sa.V0, sa.V1, sa.V2, sb.V0, sb.V1, sb.V2)
		}
	}

	return gjk.Intersects(a, b)
}
