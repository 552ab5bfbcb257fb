package shape

import "github.com/go-gl/mathgl/mgl64"

// Plane is an infinite plane defined by the equation Normal·p + Distance = 0.
// Normal must be normalized; Distance is the signed distance of the origin
// along the normal.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

// PlaneSide classifies a point relative to a plane.
type PlaneSide int

const (
	PlaneBack PlaneSide = iota - 1
	PlaneOn
	PlaneFront
)

// PlaneFromPointNormal builds the plane through point with the given normal.
// The normal is normalized internally; a (near) zero normal falls back to +Y.
func PlaneFromPointNormal(point, normal mgl64.Vec3) Plane {
	n := mgl64.Vec3{0, 1, 0}
	if normal.LenSqr() >= EpsilonSq {
		n = normal.Normalize()
	}

	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// DistanceTo returns the signed distance from point to the plane, positive
// on the side the normal points to.
func (p Plane) DistanceTo(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) + p.Distance
}

// Side classifies point against the plane, treating distances within
// Epsilon as lying on the plane.
func (p Plane) Side(point mgl64.Vec3) PlaneSide {
	dist := p.DistanceTo(point)

	switch {
	case dist > Epsilon:
		return PlaneFront
	case dist < -Epsilon:
		return PlaneBack
	default:
		return PlaneOn
	}
}
