package intersect

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTriangleTriangle(t *testing.T) {
	tests := []struct {
		name string
		a    [3]mgl64.Vec3
		b    [3]mgl64.Vec3
		want bool
	}{
		{
			name: "crossing through each other",
			a:    [3]mgl64.Vec3{{-1, 0, -1}, {1, 0, -1}, {0, 0, 1}},
			b:    [3]mgl64.Vec3{{0, -1, 0}, {0, 1, 0}, {0, 0, 2}},
			want: true,
		},
		{
			name: "separated along z",
			a:    [3]mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}},
			b:    [3]mgl64.Vec3{{-1, -1, 5}, {1, -1, 5}, {0, 1, 5}},
			want: false,
		},
		{
			name: "bounding boxes overlap but an in-plane axis separates",
			a:    [3]mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
			b:    [3]mgl64.Vec3{{1.5, 1.5, -0.2}, {3, 1.5, 0.5}, {1.5, 3, 0.5}},
			want: false,
		},
		{
			name: "coplanar overlapping",
			a:    [3]mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}},
			b:    [3]mgl64.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0, 0.5, 0}},
			want: true,
		},
		{
			name: "coplanar separated",
			a:    [3]mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}},
			b:    [3]mgl64.Vec3{{5, -1, 0}, {7, -1, 0}, {6, 1, 0}},
			want: false,
		},
		{
			name: "sharing a vertex",
			a:    [3]mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
			b:    [3]mgl64.Vec3{{0, 0, 0}, {-2, 0, 0}, {0, -2, 0}},
			want: true,
		},
		{
			name: "sharing an edge",
			a:    [3]mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}},
			b:    [3]mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 0, 2}},
			want: true,
		},
		{
			name: "one pierces the face of the other",
			a:    [3]mgl64.Vec3{{-2, -2, 0}, {2, -2, 0}, {0, 2, 0}},
			b:    [3]mgl64.Vec3{{0, 0, -1}, {0.5, 0, 1}, {-0.5, 0.2, 1}},
			want: true,
		},
		{
			name: "close but separated by an edge-edge axis",
			a:    [3]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			b:    [3]mgl64.Vec3{{1.2, 1.2, -1}, {1.2, 1.2, 1}, {2, 2, 0}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TriangleTriangle(tt.a[0], tt.a[1], tt.a[2], tt.b[0], tt.b[1], tt.b[2])
			if got != tt.want {
				t.Errorf("TriangleTriangle = %v, want %v", got, tt.want)
			}
			// Symmetry
			got = TriangleTriangle(tt.b[0], tt.b[1], tt.b[2], tt.a[0], tt.a[1], tt.a[2])
			if got != tt.want {
				t.Errorf("TriangleTriangle swapped = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("degenerate triangles do not panic", func(t *testing.T) {
		collinear := [3]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
		proper := [3]mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {0, 1, 0}}

		TriangleTriangle(collinear[0], collinear[1], collinear[2], proper[0], proper[1], proper[2])
		TriangleTriangle(collinear[0], collinear[1], collinear[2], collinear[0], collinear[1], collinear[2])
	})
}
