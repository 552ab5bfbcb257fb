package shape

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box.
// Invariant: Min is componentwise less than or equal to Max.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap. Touching faces count as overlap.
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// Support selects Max or Min per axis following the direction's sign.
// A zero component selects Max, which keeps the result deterministic.
func (a AABB) Support(direction mgl64.Vec3) mgl64.Vec3 {
	x, y, z := a.Max.X(), a.Max.Y(), a.Max.Z()

	if direction.X() < 0 {
		x = a.Min.X()
	}
	if direction.Y() < 0 {
		y = a.Min.Y()
	}
	if direction.Z() < 0 {
		z = a.Min.Z()
	}

	return mgl64.Vec3{x, y, z}
}

// Centroid returns the box midpoint.
func (a AABB) Centroid() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}
