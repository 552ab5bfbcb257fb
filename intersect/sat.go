package intersect

import (
	"math"

	"github.com/akmonengine/prism/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// TriangleTriangle reports whether two triangles intersect, by the
// separating axis theorem. Touching triangles count as intersecting.
//
// Axis set: the two face normals, the nine cross products of edge pairs,
// and the six in-plane edge perpendiculars (face normal crossed with each
// own edge). The edge perpendiculars are what decides coplanar pairs,
// where every edge-edge cross product degenerates to the shared normal.
// A cheap bounding-box rejection runs first. Near-zero axes cannot
// separate anything and are skipped.
func TriangleTriangle(a0, a1, a2, b0, b1, b2 mgl64.Vec3) bool {
	// Bounding-box early out
	if !triangleBounds(a0, a1, a2).Overlaps(triangleBounds(b0, b1, b2)) {
		return false
	}

	edgesA := [3]mgl64.Vec3{a1.Sub(a0), a2.Sub(a1), a0.Sub(a2)}
	edgesB := [3]mgl64.Vec3{b1.Sub(b0), b2.Sub(b1), b0.Sub(b2)}

	// Face normals
	normalA := edgesA[0].Cross(edgesA[1])
	normalB := edgesB[0].Cross(edgesB[1])

	if separatedOnAxis(normalA, a0, a1, a2, b0, b1, b2) {
		return false
	}
	if separatedOnAxis(normalB, a0, a1, a2, b0, b1, b2) {
		return false
	}

	// Edge-edge cross products
	for _, ea := range edgesA {
		for _, eb := range edgesB {
			if separatedOnAxis(ea.Cross(eb), a0, a1, a2, b0, b1, b2) {
				return false
			}
		}
	}

	// In-plane edge perpendiculars, covering the coplanar case
	for _, ea := range edgesA {
		if separatedOnAxis(normalA.Cross(ea), a0, a1, a2, b0, b1, b2) {
			return false
		}
	}
	for _, eb := range edgesB {
		if separatedOnAxis(normalB.Cross(eb), a0, a1, a2, b0, b1, b2) {
			return false
		}
	}

	return true
}

// separatedOnAxis projects both triangles onto axis and reports whether a
// gap beyond Epsilon separates the projections. A (near) zero axis cannot
// separate anything and is skipped.
func separatedOnAxis(axis, a0, a1, a2, b0, b1, b2 mgl64.Vec3) bool {
	lenSq := axis.LenSqr()
	if lenSq < shape.EpsilonSq {
		return false
	}

	minA, maxA := projectTriangle(axis, a0, a1, a2)
	minB, maxB := projectTriangle(axis, b0, b1, b2)

	// Scale the tolerance by the axis length, projections are not normalized
	tolerance := shape.Epsilon * math.Sqrt(lenSq)
	return minA > maxB+tolerance || minB > maxA+tolerance
}

func projectTriangle(axis, v0, v1, v2 mgl64.Vec3) (min, max float64) {
	min = axis.Dot(v0)
	max = min

	for _, v := range [2]mgl64.Vec3{v1, v2} {
		d := axis.Dot(v)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func triangleBounds(v0, v1, v2 mgl64.Vec3) shape.AABB {
	bounds := shape.AABB{Min: v0, Max: v0}
	for _, v := range [2]mgl64.Vec3{v1, v2} {
		for axis := 0; axis < 3; axis++ {
			if v[axis] < bounds.Min[axis] {
				bounds.Min[axis] = v[axis]
			}
			if v[axis] > bounds.Max[axis] {
				bounds.Max[axis] = v[axis]
			}
		}
	}
	return bounds
}
