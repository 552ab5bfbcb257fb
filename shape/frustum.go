package shape

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane indices within a Frustum.
const (
	FrustumNear = iota
	FrustumFar
	FrustumLeft
	FrustumRight
	FrustumTop
	FrustumBottom
)

// Frustum is the convex volume bounded by six planes, e.g. a camera view
// volume. Normals face inward: a point is inside when its signed distance
// to every plane is non-negative.
//
// The eight corner points are precomputed at construction so the support
// mapping is a plain argmax over corners.
type Frustum struct {
	Planes  [6]Plane
	Corners [8]mgl64.Vec3
}

// FrustumFromCamera builds a view frustum from pinhole camera parameters.
// forward and up do not need to be normalized or exactly orthogonal; the
// basis is re-orthogonalized internally. verticalFov is in radians.
func FrustumFromCamera(eye, forward, up mgl64.Vec3, verticalFov, aspect, near, far float64) Frustum {
	fwd := mgl64.Vec3{0, 0, -1}
	if forward.LenSqr() >= EpsilonSq {
		fwd = forward.Normalize()
	}

	right := fwd.Cross(up)
	if right.LenSqr() < EpsilonSq {
		// up is parallel to forward, pick any perpendicular basis
		right, _ = tangentBasis(fwd)
	}
	right = right.Normalize()
	trueUp := right.Cross(fwd)

	nearHeight := math.Tan(verticalFov*0.5) * near
	nearWidth := nearHeight * aspect
	farHeight := math.Tan(verticalFov*0.5) * far
	farWidth := farHeight * aspect

	nearCenter := eye.Add(fwd.Mul(near))
	farCenter := eye.Add(fwd.Mul(far))

	f := Frustum{}
	f.Corners = [8]mgl64.Vec3{
		nearCenter.Sub(right.Mul(nearWidth)).Add(trueUp.Mul(nearHeight)), // near top-left
		nearCenter.Add(right.Mul(nearWidth)).Add(trueUp.Mul(nearHeight)), // near top-right
		nearCenter.Sub(right.Mul(nearWidth)).Sub(trueUp.Mul(nearHeight)), // near bottom-left
		nearCenter.Add(right.Mul(nearWidth)).Sub(trueUp.Mul(nearHeight)), // near bottom-right
		farCenter.Sub(right.Mul(farWidth)).Add(trueUp.Mul(farHeight)),    // far top-left
		farCenter.Add(right.Mul(farWidth)).Add(trueUp.Mul(farHeight)),    // far top-right
		farCenter.Sub(right.Mul(farWidth)).Sub(trueUp.Mul(farHeight)),    // far bottom-left
		farCenter.Add(right.Mul(farWidth)).Sub(trueUp.Mul(farHeight)),    // far bottom-right
	}

	centroid := f.Centroid()
	f.Planes[FrustumNear] = inwardPlane(nearCenter, fwd, centroid)
	f.Planes[FrustumFar] = inwardPlane(farCenter, fwd.Mul(-1), centroid)
	f.Planes[FrustumLeft] = planeThroughInward(eye, f.Corners[2], f.Corners[0], centroid)
	f.Planes[FrustumRight] = planeThroughInward(eye, f.Corners[1], f.Corners[3], centroid)
	f.Planes[FrustumTop] = planeThroughInward(eye, f.Corners[0], f.Corners[1], centroid)
	f.Planes[FrustumBottom] = planeThroughInward(eye, f.Corners[3], f.Corners[2], centroid)

	return f
}

// FrustumFromPlanes builds a frustum from exactly six inward-facing planes,
// ordered near, far, left, right, top, bottom. A wrong plane count is a
// caller bug and is rejected loudly. The corner points are recovered by
// intersecting plane triples; planes that do not bound a proper volume
// (parallel triples) are rejected as well.
func FrustumFromPlanes(planes []Plane) (Frustum, error) {
	if len(planes) != 6 {
		return Frustum{}, fmt.Errorf("frustum requires exactly 6 planes, got %d", len(planes))
	}

	f := Frustum{}
	copy(f.Planes[:], planes)

	// Corner order matches FrustumFromCamera: near/far x top/bottom x left/right.
	triples := [8][3]int{
		{FrustumNear, FrustumTop, FrustumLeft},
		{FrustumNear, FrustumTop, FrustumRight},
		{FrustumNear, FrustumBottom, FrustumLeft},
		{FrustumNear, FrustumBottom, FrustumRight},
		{FrustumFar, FrustumTop, FrustumLeft},
		{FrustumFar, FrustumTop, FrustumRight},
		{FrustumFar, FrustumBottom, FrustumLeft},
		{FrustumFar, FrustumBottom, FrustumRight},
	}

	for i, triple := range triples {
		corner, ok := threePlanesPoint(f.Planes[triple[0]], f.Planes[triple[1]], f.Planes[triple[2]])
		if !ok {
			return Frustum{}, fmt.Errorf("planes %d, %d and %d do not intersect in a point", triple[0], triple[1], triple[2])
		}
		f.Corners[i] = corner
	}

	return f, nil
}

// Support returns the corner with the maximum dot product with direction.
// Ties keep the lowest corner index.
func (f Frustum) Support(direction mgl64.Vec3) mgl64.Vec3 {
	best := f.Corners[0]
	bestDot := best.Dot(direction)

	for _, corner := range f.Corners[1:] {
		if d := corner.Dot(direction); d > bestDot {
			best, bestDot = corner, d
		}
	}
	return best
}

// Centroid returns the average of the eight corners.
func (f Frustum) Centroid() mgl64.Vec3 {
	sum := mgl64.Vec3{}
	for _, corner := range f.Corners {
		sum = sum.Add(corner)
	}
	return sum.Mul(1.0 / 8.0)
}

// ContainsPoint reports whether point is inside the frustum (boundary
// included, within Epsilon).
func (f Frustum) ContainsPoint(point mgl64.Vec3) bool {
	for i := 0; i < 6; i++ {
		if f.Planes[i].DistanceTo(point) < -Epsilon {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether the sphere intersects the frustum.
// Conservative on the positive side: a sphere outside any single plane by
// more than its radius is definitely out.
func (f Frustum) IntersectsSphere(s Sphere) bool {
	negRadius := -s.Radius - Epsilon
	for i := 0; i < 6; i++ {
		if f.Planes[i].DistanceTo(s.Center) < negRadius {
			return false
		}
	}
	return true
}

// IntersectsAABB reports whether the box intersects the frustum, using the
// p-vertex heuristic: per plane, only the box corner farthest along the
// plane normal is tested. If even that corner is behind the plane, the
// whole box is out.
func (f Frustum) IntersectsAABB(box AABB) bool {
	for i := 0; i < 6; i++ {
		plane := f.Planes[i]

		pVertex := box.Min
		if plane.Normal.X() > 0 {
			pVertex[0] = box.Max.X()
		}
		if plane.Normal.Y() > 0 {
			pVertex[1] = box.Max.Y()
		}
		if plane.Normal.Z() > 0 {
			pVertex[2] = box.Max.Z()
		}

		if plane.DistanceTo(pVertex) < -Epsilon {
			return false
		}
	}
	return true
}

// inwardPlane builds the plane through point with the given normal, flipped
// if needed so that interior lies on the positive side.
func inwardPlane(point, normal, interior mgl64.Vec3) Plane {
	p := PlaneFromPointNormal(point, normal)
	if p.DistanceTo(interior) < 0 {
		p.Normal = p.Normal.Mul(-1)
		p.Distance = -p.Distance
	}
	return p
}

// planeThroughInward builds the plane through three points, oriented so
// that interior lies on the positive side.
func planeThroughInward(a, b, c, interior mgl64.Vec3) Plane {
	normal := b.Sub(a).Cross(c.Sub(a))
	return inwardPlane(a, normal, interior)
}

// threePlanesPoint solves for the point shared by three planes. Returns
// false when the plane normals are (near) coplanar.
func threePlanesPoint(p1, p2, p3 Plane) (mgl64.Vec3, bool) {
	n2xn3 := p2.Normal.Cross(p3.Normal)
	det := p1.Normal.Dot(n2xn3)
	if math.Abs(det) < Epsilon {
		return mgl64.Vec3{}, false
	}

	n3xn1 := p3.Normal.Cross(p1.Normal)
	n1xn2 := p1.Normal.Cross(p2.Normal)

	point := n2xn3.Mul(-p1.Distance).
		Add(n3xn1.Mul(-p2.Distance)).
		Add(n1xn2.Mul(-p3.Distance)).
		Mul(1.0 / det)

	return point, true
}
