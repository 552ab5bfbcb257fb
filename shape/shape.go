// Package shape provides immutable convex shape values and their support
// mappings for GJK-based collision queries.
//
// Every shape implements Support: given a query direction, return the point
// of the shape farthest along that direction. GJK correctness depends on the
// support point being exact - for any direction d, dot(Support(d), d) must
// equal the true maximum of dot(p, d) over all points p of the shape.
//
// Shapes are plain value types in world space. They carry no transform and
// no mutable state, so values may be shared freely across goroutines.
package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape is the capability GJK needs from a convex volume.
type Shape interface {
	// Support returns the point of the shape farthest along direction.
	// The direction does not need to be normalized. A zero direction is
	// never an error; each shape documents its deterministic fallback.
	Support(direction mgl64.Vec3) mgl64.Vec3

	// Centroid returns a rough interior point, used to seed the initial
	// GJK search direction.
	Centroid() mgl64.Vec3
}

// Point is a degenerate convex shape: a single location.
type Point mgl64.Vec3

// Support returns the point itself regardless of direction.
func (p Point) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3(p)
}

func (p Point) Centroid() mgl64.Vec3 {
	return mgl64.Vec3(p)
}

// Sphere is a ball around Center with the given Radius.
// A zero radius degrades to point behavior.
type Sphere struct {
	Center mgl64.Vec3
	Radius float64
}

// Support returns the surface point farthest along direction.
// For a (near) zero direction the center is returned, so degenerate
// queries stay deterministic instead of dividing by zero.
func (s Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if direction.LenSqr() < EpsilonSq {
		return s.Center
	}
	return s.Center.Add(direction.Normalize().Mul(s.Radius))
}

func (s Sphere) Centroid() mgl64.Vec3 {
	return s.Center
}

// Triangle is the convex hull of three vertices.
// Collinear or coincident vertices are allowed; the support mapping still
// returns the extreme vertex.
type Triangle struct {
	V0, V1, V2 mgl64.Vec3
}

// Support returns the vertex with the maximum dot product with direction.
// Ties keep the earliest vertex in V0, V1, V2 order, so the result is
// deterministic for symmetric directions.
func (t Triangle) Support(direction mgl64.Vec3) mgl64.Vec3 {
	best := t.V0
	bestDot := t.V0.Dot(direction)

	if d := t.V1.Dot(direction); d > bestDot {
		best, bestDot = t.V1, d
	}
	if d := t.V2.Dot(direction); d > bestDot {
		best = t.V2
	}
	return best
}

func (t Triangle) Centroid() mgl64.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3.0)
}

// Segment is the convex hull of two endpoints. A zero-length segment
// degrades to point behavior.
type Segment struct {
	Start, End mgl64.Vec3
}

// Support returns the endpoint with the larger dot product with direction.
// Ties keep Start.
func (s Segment) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if s.End.Dot(direction) > s.Start.Dot(direction) {
		return s.End
	}
	return s.Start
}

// Centroid returns the midpoint.
func (s Segment) Centroid() mgl64.Vec3 {
	return s.Start.Add(s.End).Mul(0.5)
}

// tangentBasis returns two unit vectors orthogonal to normal and to each
// other. The selection is deterministic for a given normal.
func tangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var tangent1 mgl64.Vec3
	if math.Abs(normal.X()) > 0.9 {
		tangent1 = mgl64.Vec3{0, 1, 0}
	} else {
		tangent1 = mgl64.Vec3{1, 0, 0}
	}

	tangent1 = tangent1.Sub(normal.Mul(tangent1.Dot(normal))).Normalize()
	tangent2 := normal.Cross(tangent1).Normalize()

	return tangent1, tangent2
}
