package intersect

import (
	"math"
	"math/rand"
	"testing"

	"github.com/akmonengine/prism/shape"
	"github.com/go-gl/mathgl/mgl64"
)

const testTolerance = 1e-9

func TestRayPlane(t *testing.T) {
	floor := shape.Plane{Normal: mgl64.Vec3{0, 0, 1}, Distance: 0}

	t.Run("perpendicular hit at distance 5", func(t *testing.T) {
		dist, ok := RayPlane(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, floor)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if math.Abs(dist-5) > testTolerance {
			t.Errorf("Expected distance 5, got %v", dist)
		}
	})

	t.Run("parallel ray misses", func(t *testing.T) {
		if _, ok := RayPlane(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1, 0, 0}, floor); ok {
			t.Error("Expected a miss for a parallel ray")
		}
	})

	t.Run("plane behind the origin misses", func(t *testing.T) {
		if _, ok := RayPlane(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}, floor); ok {
			t.Error("Expected a miss for a plane behind the ray")
		}
	})

	t.Run("oblique hit lands on the plane", func(t *testing.T) {
		origin := mgl64.Vec3{1, 2, -4}
		dir := mgl64.Vec3{1, 0, 2}.Normalize()

		dist, ok := RayPlane(origin, dir, floor)
		if !ok {
			t.Fatal("Expected a hit")
		}
		hit := origin.Add(dir.Mul(dist))
		if math.Abs(floor.DistanceTo(hit)) > testTolerance {
			t.Errorf("Hit point %v not on the plane", hit)
		}
	})
}

func TestRayTriangle(t *testing.T) {
	v0 := mgl64.Vec3{-1, -1, 0}
	v1 := mgl64.Vec3{1, -1, 0}
	v2 := mgl64.Vec3{0, 1, 0}

	t.Run("center hit at distance 5", func(t *testing.T) {
		hit, ok := RayTriangle(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, v0, v1, v2)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if math.Abs(hit.Distance-5) > testTolerance {
			t.Errorf("Expected distance 5, got %v", hit.Distance)
		}

		// The barycentric result must describe a point inside the triangle
		point := v0.Mul(1 - hit.U - hit.V).Add(v1.Mul(hit.U)).Add(v2.Mul(hit.V))
		if !PointInTriangle(point, v0, v1, v2) {
			t.Errorf("Hit point %v not inside the triangle", point)
		}
	})

	t.Run("miss outside the triangle", func(t *testing.T) {
		if _, ok := RayTriangle(mgl64.Vec3{2, 2, -5}, mgl64.Vec3{0, 0, 1}, v0, v1, v2); ok {
			t.Error("Expected a miss beside the triangle")
		}
	})

	t.Run("parallel ray misses", func(t *testing.T) {
		if _, ok := RayTriangle(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{1, 0, 0}, v0, v1, v2); ok {
			t.Error("Expected a miss for a ray parallel to the triangle plane")
		}
	})

	t.Run("triangle behind the origin misses", func(t *testing.T) {
		if _, ok := RayTriangle(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}, v0, v1, v2); ok {
			t.Error("Expected a miss for a triangle behind the ray")
		}
	})

	t.Run("degenerate triangle misses without panicking", func(t *testing.T) {
		if _, ok := RayTriangle(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1},
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 0}); ok {
			t.Error("Expected a miss for a collinear triangle")
		}
	})

	t.Run("both windings hit without culling", func(t *testing.T) {
		if _, ok := RayTriangle(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, v0, v2, v1); !ok {
			t.Error("Expected a hit on the reversed winding")
		}
	})
}

func TestRayTriangleCulled(t *testing.T) {
	v0 := mgl64.Vec3{-1, -1, 0}
	v1 := mgl64.Vec3{1, -1, 0}
	v2 := mgl64.Vec3{0, 1, 0}

	// Winding determines which side is the front face; only one orientation
	// may hit once culling is on.
	frontHit, _ := RayTriangleCulled(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, v0, v1, v2)
	_, backOk := RayTriangleCulled(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, v0, v2, v1)
	_, frontOk := RayTriangleCulled(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, v0, v1, v2)

	if frontOk == backOk {
		t.Fatalf("Culling must accept exactly one winding, got front=%v back=%v", frontOk, backOk)
	}
	if frontOk && math.Abs(frontHit.Distance-5) > testTolerance {
		t.Errorf("Expected distance 5, got %v", frontHit.Distance)
	}
}

func TestRayAABB(t *testing.T) {
	box := shape.AABB{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}}

	t.Run("head-on hit", func(t *testing.T) {
		tMin, tMax, ok := RayAABB(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{1, 0, 0}, box)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if math.Abs(tMin-4) > testTolerance || math.Abs(tMax-6) > testTolerance {
			t.Errorf("Expected [4, 6], got [%v, %v]", tMin, tMax)
		}
	})

	t.Run("origin inside yields negative entry", func(t *testing.T) {
		tMin, tMax, ok := RayAABB(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, box)
		if !ok {
			t.Fatal("Expected a hit from inside")
		}
		if tMin >= 0 || math.Abs(tMax-1) > testTolerance {
			t.Errorf("Expected tMin < 0 and tMax = 1, got [%v, %v]", tMin, tMax)
		}
	})

	t.Run("box behind the ray misses", func(t *testing.T) {
		if _, _, ok := RayAABB(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{1, 0, 0}, box); ok {
			t.Error("Expected a miss for a box behind the ray")
		}
	})

	t.Run("parallel ray inside the slab hits", func(t *testing.T) {
		if _, _, ok := RayAABB(mgl64.Vec3{-5, 0.5, 0.5}, mgl64.Vec3{1, 0, 0}, box); !ok {
			t.Error("Expected a hit for a parallel ray inside the slabs")
		}
	})

	t.Run("parallel ray outside the slab misses", func(t *testing.T) {
		if _, _, ok := RayAABB(mgl64.Vec3{-5, 2, 0}, mgl64.Vec3{1, 0, 0}, box); ok {
			t.Error("Expected a miss for a parallel ray outside the y slab")
		}
	})

	t.Run("diagonal corner graze", func(t *testing.T) {
		tMin, _, ok := RayAABB(mgl64.Vec3{-3, -3, -3}, mgl64.Vec3{1, 1, 1}.Normalize(), box)
		if !ok {
			t.Fatal("Expected a hit through the diagonal")
		}
		hit := mgl64.Vec3{-3, -3, -3}.Add(mgl64.Vec3{1, 1, 1}.Normalize().Mul(tMin))
		if !vecNear(hit, mgl64.Vec3{-1, -1, -1}, 1e-9) {
			t.Errorf("Expected entry at the corner, got %v", hit)
		}
	})
}

func TestRaySphere(t *testing.T) {
	s := shape.Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 1}

	t.Run("head-on hit returns ordered roots", func(t *testing.T) {
		t0, t1, ok := RaySphere(mgl64.Vec3{-5, 0, 0}, mgl64.Vec3{1, 0, 0}, s)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if math.Abs(t0-4) > testTolerance || math.Abs(t1-6) > testTolerance {
			t.Errorf("Expected roots [4, 6], got [%v, %v]", t0, t1)
		}
	})

	t.Run("origin inside yields a negative first root", func(t *testing.T) {
		t0, t1, ok := RaySphere(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 1, 0}, s)
		if !ok {
			t.Fatal("Expected a hit from inside")
		}
		if t0 >= 0 || math.Abs(t1-1) > testTolerance {
			t.Errorf("Expected t0 < 0 and t1 = 1, got [%v, %v]", t0, t1)
		}
	})

	t.Run("miss beside the sphere", func(t *testing.T) {
		if _, _, ok := RaySphere(mgl64.Vec3{-5, 2, 0}, mgl64.Vec3{1, 0, 0}, s); ok {
			t.Error("Expected a miss above the sphere")
		}
	})

	t.Run("sphere behind the ray misses", func(t *testing.T) {
		if _, _, ok := RaySphere(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{1, 0, 0}, s); ok {
			t.Error("Expected a miss behind the ray")
		}
	})

	t.Run("tangent ray touches", func(t *testing.T) {
		t0, t1, ok := RaySphere(mgl64.Vec3{-5, 1, 0}, mgl64.Vec3{1, 0, 0}, s)
		if !ok {
			t.Fatal("Expected a tangent hit")
		}
		if math.Abs(t0-t1) > 1e-6 {
			t.Errorf("Expected equal roots for tangency, got [%v, %v]", t0, t1)
		}
	})

	t.Run("round-trip through a known surface point", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 100; i++ {
			target := mgl64.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
			if target.LenSqr() < 1e-6 {
				continue
			}
			surface := s.Center.Add(target.Normalize().Mul(s.Radius))

			origin := mgl64.Vec3{rng.NormFloat64() * 5, rng.NormFloat64() * 5, rng.NormFloat64() * 5}
			if surface.Sub(origin).LenSqr() < 1e-6 || origin.Sub(s.Center).Len() <= s.Radius {
				continue
			}
			dir := surface.Sub(origin).Normalize()

			t0, t1, ok := RaySphere(origin, dir, s)
			if !ok {
				t.Fatalf("Expected a hit toward surface point %v from %v", surface, origin)
			}
			for _, root := range []float64{t0, t1} {
				hit := origin.Add(dir.Mul(root))
				if math.Abs(hit.Sub(s.Center).Len()-s.Radius) > 1e-6 {
					t.Fatalf("Root %v lands off the surface at %v", root, hit)
				}
			}
		}
	})
}

func TestRayCylinder(t *testing.T) {
	capA := mgl64.Vec3{0, -1, 0}
	capB := mgl64.Vec3{0, 1, 0}

	t.Run("lateral surface hit", func(t *testing.T) {
		dist, ok := RayCylinder(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{-1, 0, 0}, capA, capB, 1)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if math.Abs(dist-4) > testTolerance {
			t.Errorf("Expected distance 4, got %v", dist)
		}
	})

	t.Run("cap hit from above", func(t *testing.T) {
		dist, ok := RayCylinder(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, capA, capB, 1)
		if !ok {
			t.Fatal("Expected a cap hit")
		}
		if math.Abs(dist-4) > testTolerance {
			t.Errorf("Expected distance 4, got %v", dist)
		}
	})

	t.Run("miss above the lateral surface", func(t *testing.T) {
		if _, ok := RayCylinder(mgl64.Vec3{5, 3, 0}, mgl64.Vec3{-1, 0, 0}, capA, capB, 1); ok {
			t.Error("Expected a miss past the cap height")
		}
	})

	t.Run("miss beside the cap", func(t *testing.T) {
		if _, ok := RayCylinder(mgl64.Vec3{3, 5, 0}, mgl64.Vec3{0, -1, 0}, capA, capB, 1); ok {
			t.Error("Expected a miss beside the cap disk")
		}
	})

	t.Run("zero height falls back to a sphere", func(t *testing.T) {
		center := mgl64.Vec3{0, 0, 0}
		dist, ok := RayCylinder(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{-1, 0, 0}, center, center, 1)
		if !ok {
			t.Fatal("Expected a sphere-fallback hit")
		}
		if math.Abs(dist-4) > testTolerance {
			t.Errorf("Expected distance 4, got %v", dist)
		}
	})

	t.Run("ray along the axis hits the near cap", func(t *testing.T) {
		dist, ok := RayCylinder(mgl64.Vec3{0, -5, 0}, mgl64.Vec3{0, 1, 0}, capA, capB, 1)
		if !ok {
			t.Fatal("Expected a hit along the axis")
		}
		if math.Abs(dist-4) > testTolerance {
			t.Errorf("Expected distance 4 to the bottom cap, got %v", dist)
		}
	})
}

func vecNear(a, b mgl64.Vec3, tolerance float64) bool {
	return a.Sub(b).Len() <= tolerance
}
