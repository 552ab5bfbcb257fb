package intersect

import "github.com/akmonengine/prism/shape"

// SphereSphereOverlap reports whether two spheres overlap. Touching spheres
// (center distance equal to the radius sum) count as overlapping.
func SphereSphereOverlap(a, b shape.Sphere) bool {
	distSq := a.Center.Sub(b.Center).LenSqr()
	radiusSum := a.Radius + b.Radius
	return distSq <= radiusSum*radiusSum
}

// AABBOverlap reports whether two boxes overlap. Touching faces count.
// Equivalent to a.Overlaps(b); kept here so callers of the analytic library
// have the complete set of pairwise fast paths in one place.
func AABBOverlap(a, b shape.AABB) bool {
	return a.Overlaps(b)
}
