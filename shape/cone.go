package shape

import "github.com/go-gl/mathgl/mgl64"

// Cone is a finite cone: an apex, a unit axis pointing from the apex toward
// the base, a height along that axis and a base-circle radius.
//
// Zero height or zero radius degrade gracefully: the support mapping then
// behaves like a segment or a point.
type Cone struct {
	Apex       mgl64.Vec3
	Axis       mgl64.Vec3 // unit length, apex -> base
	Height     float64
	BaseRadius float64
}

// ConeFromAxisDirection builds a cone from an apex and an axis direction.
// The axis is normalized internally; a (near) zero axis falls back to +Y so
// degenerate input still yields a usable value.
func ConeFromAxisDirection(apex, axisDirection mgl64.Vec3, height, baseRadius float64) Cone {
	axis := mgl64.Vec3{0, 1, 0}
	if axisDirection.LenSqr() >= EpsilonSq {
		axis = axisDirection.Normalize()
	}

	return Cone{
		Apex:       apex,
		Axis:       axis,
		Height:     height,
		BaseRadius: baseRadius,
	}
}

// BaseCenter returns the center of the base circle.
func (c Cone) BaseCenter() mgl64.Vec3 {
	return c.Apex.Add(c.Axis.Mul(c.Height))
}

// Support returns the cone point farthest along direction.
//
// The extreme point of a finite cone is either the apex or a point on the
// base-circle boundary. The base-circle candidate is found analytically by
// projecting the direction onto the plane perpendicular to the axis:
// base-center + baseRadius * normalize(direction - dot(direction, axis)*axis).
// When the direction is parallel to the axis all base-circle points tie, so
// a canonical tangent of the axis is used to keep the result deterministic.
func (c Cone) Support(direction mgl64.Vec3) mgl64.Vec3 {
	if direction.LenSqr() < EpsilonSq {
		return c.Apex
	}

	baseCenter := c.BaseCenter()

	// Radial component of the direction, in the base plane.
	radial := direction.Sub(c.Axis.Mul(direction.Dot(c.Axis)))

	var rim mgl64.Vec3
	if radial.LenSqr() < EpsilonSq {
		tangent, _ := tangentBasis(c.Axis)
		rim = baseCenter.Add(tangent.Mul(c.BaseRadius))
	} else {
		rim = baseCenter.Add(radial.Normalize().Mul(c.BaseRadius))
	}

	if c.Apex.Dot(direction) >= rim.Dot(direction) {
		return c.Apex
	}
	return rim
}

// Centroid returns the midpoint of the axis, a cheap interior point.
func (c Cone) Centroid() mgl64.Vec3 {
	return c.Apex.Add(c.Axis.Mul(c.Height * 0.5))
}
