package intersect

import (
	"github.com/akmonengine/prism/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// ClosestPointOnLine returns the point on the infinite line through a and b
// closest to point. Coincident a and b degrade to returning a.
func ClosestPointOnLine(point, a, b mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.LenSqr()
	if lenSq < shape.EpsilonSq {
		return a
	}

	t := point.Sub(a).Dot(ab) / lenSq
	return a.Add(ab.Mul(t))
}

// ClosestPointOnSegment returns the point on segment [a, b] closest to
// point. A zero-length segment degrades to returning a.
func ClosestPointOnSegment(point, a, b mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	lenSq := ab.LenSqr()
	if lenSq < shape.EpsilonSq {
		return a
	}

	t := point.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// ClosestPointOnTriangle returns the point of triangle (a, b, c) closest to
// point, via the full Voronoi-region case analysis (Ericson, "Real-Time
// Collision Detection" Ch. 5.1.5): three vertex regions, three edge
// regions, then the face interior. The region logic intentionally mirrors
// the triangle sub-routine of the GJK simplex refinement.
//
// Degenerate (collinear or coincident) vertices fall through the region
// tests and resolve to a vertex or edge point, never a division by zero.
func ClosestPointOnTriangle(point, a, b, c mgl64.Vec3) mgl64.Vec3 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	ap := point.Sub(a)

	// Vertex region A
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	// Vertex region B
	bp := point.Sub(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	// Edge region AB
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		denom := d1 - d3
		if denom < shape.Epsilon {
			return a
		}
		return a.Add(ab.Mul(d1 / denom))
	}

	// Vertex region C
	cp := point.Sub(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	// Edge region AC
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		denom := d2 - d6
		if denom < shape.Epsilon {
			return a
		}
		return a.Add(ac.Mul(d2 / denom))
	}

	// Edge region BC
	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		denom := (d4 - d3) + (d5 - d6)
		if denom < shape.Epsilon {
			return b
		}
		return b.Add(c.Sub(b).Mul((d4 - d3) / denom))
	}

	// Face region: interpolate with the barycentric weights
	denom := va + vb + vc
	if denom < shape.Epsilon {
		// Degenerate triangle, every region test fell through
		return a
	}
	v := vb / denom
	w := vc / denom
	return a.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// ClosestPointOnAABB returns the point of the box closest to point, by
// clamping each component into the box interval. A point inside the box is
// returned unchanged.
func ClosestPointOnAABB(point mgl64.Vec3, box shape.AABB) mgl64.Vec3 {
	closest := point
	for axis := 0; axis < 3; axis++ {
		if closest[axis] < box.Min[axis] {
			closest[axis] = box.Min[axis]
		}
		if closest[axis] > box.Max[axis] {
			closest[axis] = box.Max[axis]
		}
	}
	return closest
}

// ClosestPointOnSphere returns the surface point of the sphere closest to
// point. A point at the sphere center projects along +X so the result stays
// deterministic.
func ClosestPointOnSphere(point mgl64.Vec3, s shape.Sphere) mgl64.Vec3 {
	offset := point.Sub(s.Center)
	if offset.LenSqr() < shape.EpsilonSq {
		offset = mgl64.Vec3{1, 0, 0}
	}
	return s.Center.Add(offset.Normalize().Mul(s.Radius))
}

// ClosestPointsSegments computes the closest points between segments
// [p1, q1] and [p2, q2] (Ericson Ch. 5.1.9). It returns the witness points
// and their segment parameters s, t in [0, 1].
//
// Degenerate segments (either or both reduced to a point) are handled
// before the general 2x2 solve. For (near) parallel segments the solve
// degenerates; s is pinned to 0 and t follows by projection, which yields a
// correct minimum distance, with the witness pair chosen canonically at the
// start of the first segment.
func ClosestPointsSegments(p1, q1, p2, q2 mgl64.Vec3) (c1, c2 mgl64.Vec3, s, t float64) {
	d1 := q1.Sub(p1)
	d2 := q2.Sub(p2)
	r := p1.Sub(p2)

	a := d1.LenSqr()
	e := d2.LenSqr()
	f := d2.Dot(r)

	// Both segments are points
	if a < shape.EpsilonSq && e < shape.EpsilonSq {
		return p1, p2, 0, 0
	}

	// First segment is a point
	if a < shape.EpsilonSq {
		t = clamp01(f / e)
		return p1, p2.Add(d2.Mul(t)), 0, t
	}

	c := d1.Dot(r)

	// Second segment is a point
	if e < shape.EpsilonSq {
		s = clamp01(-c / a)
		return p1.Add(d1.Mul(s)), p2, s, 0
	}

	b := d1.Dot(d2)
	denom := a*e - b*b

	// Parallel segments leave the system singular; pick s = 0
	if denom > shape.Epsilon {
		s = clamp01((b*f - c*e) / denom)
	} else {
		s = 0
	}

	t = (b*s + f) / e

	// Clamping t may move it off the segment; recompute s against the
	// clamped t and clamp again.
	if t < 0 {
		t = 0
		s = clamp01(-c / a)
	} else if t > 1 {
		t = 1
		s = clamp01((b - c) / a)
	}

	return p1.Add(d1.Mul(s)), p2.Add(d2.Mul(t)), s, t
}

// Barycentric computes the barycentric coordinates (u, v, w) of point with
// respect to triangle (a, b, c), with u + v + w = 1 and
// p = u*a + v*b + w*c for points in the triangle plane. A degenerate
// triangle yields (1, 0, 0).
func Barycentric(point, a, b, c mgl64.Vec3) (u, v, w float64) {
	v0 := b.Sub(a)
	v1 := c.Sub(a)
	v2 := point.Sub(a)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom < shape.EpsilonSq {
		return 1, 0, 0
	}

	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

// PointInTriangle reports whether a point (assumed on the triangle plane)
// lies inside triangle (a, b, c), boundary included within Epsilon.
func PointInTriangle(point, a, b, c mgl64.Vec3) bool {
	u, v, w := Barycentric(point, a, b, c)
	return u >= -shape.Epsilon && v >= -shape.Epsilon && w >= -shape.Epsilon
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
