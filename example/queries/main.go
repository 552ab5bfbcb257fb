package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/prism"
	"github.com/akmonengine/prism/gjk"
	"github.com/akmonengine/prism/intersect"
	"github.com/akmonengine/prism/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	sphereA := shape.Sphere{Center: mgl64.Vec3{0, 0, 0}, Radius: 1}
	sphereB := shape.Sphere{Center: mgl64.Vec3{3, 0, 0}, Radius: 1}
	sphereC := shape.Sphere{Center: mgl64.Vec3{2, 0, 0}, Radius: 1}

	fmt.Println("== boolean intersection queries ==")
	fmt.Printf("separated spheres: %v\n", prism.Intersects(sphereA, sphereB))
	fmt.Printf("touching spheres:  %v\n", prism.Intersects(sphereA, sphereC))

	boxA := shape.AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}
	boxB := shape.AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{3, 3, 3}}
	fmt.Printf("overlapping boxes: %v\n", prism.Intersects(boxA, boxB))

	cone := shape.ConeFromAxisDirection(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}, 1, 0.4)
	box := shape.AABB{Min: mgl64.Vec3{-0.5, -0.5, -0.5}, Max: mgl64.Vec3{0.5, 0.5, 0.5}}
	fmt.Printf("cone vs box (GJK): %v\n", gjk.Intersects(cone, box))

	frustum := shape.FrustumFromCamera(
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 1, 0},
		math.Pi/3, 16.0/9.0, 0.1, 100,
	)
	fmt.Printf("frustum vs sphere: %v\n", frustum.IntersectsSphere(shape.Sphere{Center: mgl64.Vec3{0, 0, -10}, Radius: 1}))

	fmt.Println("== analytic queries ==")
	if t, ok := intersect.RayPlane(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1}, shape.Plane{Normal: mgl64.Vec3{0, 0, 1}, Distance: 0}); ok {
		fmt.Printf("ray-plane hit at t=%v\n", t)
	}
	if hit, ok := intersect.RayTriangle(
		mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{-1, -1, 0}, mgl64.Vec3{1, -1, 0}, mgl64.Vec3{0, 1, 0},
	); ok {
		fmt.Printf("ray-triangle hit at t=%v (u=%v, v=%v)\n", hit.Distance, hit.U, hit.V)
	}

	closest := intersect.ClosestPointOnTriangle(
		mgl64.Vec3{0, 5, 0},
		mgl64.Vec3{-1, 0, -1}, mgl64.Vec3{1, 0, -1}, mgl64.Vec3{0, 0, 1},
	)
	fmt.Printf("closest point on triangle: %v\n", closest)
}
