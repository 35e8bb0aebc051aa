package mbr

import (
	"github.com/quasilyte/gmath"
)

// Vec3 is a point in 3-d space. Y points up; the horizontal plane is
// spanned by X and Z.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Horizontal projects v onto the horizontal plane.
func (v Vec3) Horizontal() gmath.Vec {
	return gmath.Vec{X: v.X, Y: v.Z}
}

func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{X: min(v.X, other.X), Y: min(v.Y, other.Y), Z: min(v.Z, other.Z)}
}

func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{X: max(v.X, other.X), Y: max(v.Y, other.Y), Z: max(v.Z, other.Z)}
}

// Vec3sFromCoords reinterprets a flat coordinate list as consecutive
// (x, y, z) triples. A trailing partial triple is dropped.
func Vec3sFromCoords(coords []float64) []Vec3 {
	points := make([]Vec3, 0, len(coords)/3)

	for idx := 0; idx+2 < len(coords); idx += 3 {
		points = append(points, Vec3{
			X: coords[idx],
			Y: coords[idx+1],
			Z: coords[idx+2],
		})
	}

	return points
}
