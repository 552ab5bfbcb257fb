// Package intersect provides closed-form intersection and closest-point
// routines over explicit geometric parameters.
//
// Every function is pure: no shared state, no allocation beyond the result.
// Ray directions and plane normals are assumed normalized unless a function
// documents otherwise; callers are responsible for normalization. Results
// that carry several values are returned as structs or tuples, never
// through output parameters.
//
// Numerical degeneracy (parallel rays, zero-area triangles, coincident
// endpoints) never raises an error; each routine degrades to the documented
// geometric limit case.
package intersect

import (
	"math"

	"github.com/akmonengine/prism/shape"
	"github.com/go-gl/mathgl/mgl64"
)

// TriangleHit is a ray-triangle intersection: the distance along the ray
// and the barycentric coordinates of the hit point (weights of V1 and V2).
type TriangleHit struct {
	Distance float64
	U, V     float64
}

// RayPlane intersects a ray with a plane.
//
// Returns the hit distance along the ray. Rays parallel to the plane miss,
// and intersections behind the ray origin are rejected.
func RayPlane(origin, dir mgl64.Vec3, plane shape.Plane) (float64, bool) {
	denom := dir.Dot(plane.Normal)
	if math.Abs(denom) < shape.Epsilon {
		return 0, false
	}

	t := -plane.DistanceTo(origin) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// RayTriangle intersects a ray with a triangle using the Möller-Trumbore
// algorithm. Both triangle windings are accepted; use RayTriangleCulled to
// reject back faces.
//
// Misses when the ray is parallel to the triangle plane (determinant near
// zero), when the barycentric coordinates fall outside the triangle, or
// when the hit is not strictly in front of the origin.
func RayTriangle(origin, dir, v0, v1, v2 mgl64.Vec3) (TriangleHit, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if det > -shape.Epsilon && det < shape.Epsilon {
		return TriangleHit{}, false
	}

	return rayTriangle(origin, dir, v0, e1, e2, pvec, det)
}

// RayTriangleCulled is RayTriangle with back-face culling: triangles whose
// winding faces away from the ray (negative determinant) are ignored.
func RayTriangleCulled(origin, dir, v0, v1, v2 mgl64.Vec3) (TriangleHit, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	pvec := dir.Cross(e2)
	det := e1.Dot(pvec)
	if det < shape.Epsilon {
		return TriangleHit{}, false
	}

	return rayTriangle(origin, dir, v0, e1, e2, pvec, det)
}

func rayTriangle(origin, dir, v0, e1, e2, pvec mgl64.Vec3, det float64) (TriangleHit, bool) {
	invDet := 1.0 / det

	tvec := origin.Sub(v0)
	u := tvec.Dot(pvec) * invDet
	if u < -shape.Epsilon || u > 1+shape.Epsilon {
		return TriangleHit{}, false
	}

	qvec := tvec.Cross(e1)
	v := dir.Dot(qvec) * invDet
	if v < -shape.Epsilon || u+v > 1+shape.Epsilon {
		return TriangleHit{}, false
	}

	t := e2.Dot(qvec) * invDet
	if t <= shape.Epsilon {
		return TriangleHit{}, false
	}

	return TriangleHit{Distance: t, U: u, V: v}, true
}

// RayAABB intersects a ray with an axis-aligned box using the slab method.
//
// Returns the entry and exit distances; tMin is negative when the origin is
// inside the box. For an axis with a (near) zero direction component the
// origin must already lie within that axis's slab, otherwise the ray misses.
func RayAABB(origin, dir mgl64.Vec3, box shape.AABB) (tMin, tMax float64, ok bool) {
	tMin = math.Inf(-1)
	tMax = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < shape.Epsilon {
			// Ray parallel to this slab: origin must be inside it
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, 0, false
			}
			continue
		}

		t1 := (box.Min[axis] - origin[axis]) / dir[axis]
		t2 := (box.Max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, 0, false
		}
	}

	if tMax < 0 {
		// Box entirely behind the ray
		return 0, 0, false
	}
	return tMin, tMax, true
}

// RaySphere intersects a ray with a sphere by solving the quadratic of the
// implicit sphere equation.
//
// Returns both roots ordered t0 <= t1. t0 is negative when the ray origin
// is inside the sphere. Misses when the discriminant is negative or when
// the sphere is entirely behind the origin.
func RaySphere(origin, dir mgl64.Vec3, s shape.Sphere) (t0, t1 float64, ok bool) {
	oc := origin.Sub(s.Center)

	a := dir.Dot(dir)
	if a < shape.EpsilonSq {
		return 0, 0, false
	}
	b := 2.0 * oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	t0 = (-b - sqrtD) / (2 * a)
	t1 = (-b + sqrtD) / (2 * a)

	if t1 < 0 {
		// Sphere entirely behind the ray
		return 0, 0, false
	}
	return t0, t1, true
}

// RayCylinder intersects a ray with a capped cylinder between cap centers
// capA and capB. Returns the nearest non-negative hit distance over the
// lateral surface and the two cap disks.
//
// Coincident cap centers (zero height) fall back to a sphere test.
func RayCylinder(origin, dir, capA, capB mgl64.Vec3, radius float64) (float64, bool) {
	axis := capB.Sub(capA)
	heightSq := axis.LenSqr()
	if heightSq < shape.EpsilonSq {
		t0, t1, ok := RaySphere(origin, dir, shape.Sphere{Center: capA, Radius: radius})
		if !ok {
			return 0, false
		}
		if t0 >= 0 {
			return t0, true
		}
		return t1, true
	}

	axisDir := axis.Mul(1 / math.Sqrt(heightSq))
	best := math.Inf(1)

	// Lateral surface: solve the quadratic of the infinite cylinder, then
	// keep roots whose axial projection lies between the caps.
	oc := origin.Sub(capA)
	dPerp := dir.Sub(axisDir.Mul(dir.Dot(axisDir)))
	ocPerp := oc.Sub(axisDir.Mul(oc.Dot(axisDir)))

	a := dPerp.LenSqr()
	if a >= shape.EpsilonSq {
		b := 2 * dPerp.Dot(ocPerp)
		c := ocPerp.LenSqr() - radius*radius

		discriminant := b*b - 4*a*c
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
				if t < 0 || t >= best {
					continue
				}
				h := origin.Add(dir.Mul(t)).Sub(capA).Dot(axisDir)
				if h >= 0 && h*h <= heightSq {
					best = t
				}
			}
		}
	}

	// Cap disks
	for _, disk := range [2]struct {
		center mgl64.Vec3
		normal mgl64.Vec3
	}{
		{capA, axisDir.Mul(-1)},
		{capB, axisDir},
	} {
		t, ok := RayPlane(origin, dir, shape.PlaneFromPointNormal(disk.center, disk.normal))
		if !ok || t >= best {
			continue
		}
		hit := origin.Add(dir.Mul(t))
		if hit.Sub(disk.center).LenSqr() <= radius*radius {
			best = t
		}
	}

	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}
