package mbr

import (
	"github.com/quasilyte/gmath"
)

// PointSet is a flat, mutable coordinate buffer in the (x, y, z) triple
// layout used by the rendering layer. The rendering layer appends and
// removes points between recomputations; the set itself carries no state
// across Compute calls.
type PointSet struct {
	coords []float64
}

func NewPointSet(coords ...float64) *PointSet {
	return &PointSet{coords: coords}
}

func (s *PointSet) Add(p Vec3) {
	s.coords = append(s.coords, p.X, p.Y, p.Z)
}

// RemoveLast removes and returns the most recently added point.
func (s *PointSet) RemoveLast() (Vec3, bool) {
	if len(s.coords) < 3 {
		return Vec3{}, false
	}

	n := len(s.coords)
	p := Vec3{X: s.coords[n-3], Y: s.coords[n-2], Z: s.coords[n-1]}
	s.coords = s.coords[:n-3]

	return p, true
}

func (s *PointSet) Len() int {
	return len(s.coords) / 3
}

func (s *PointSet) At(idx int) Vec3 {
	return Vec3{
		X: s.coords[idx*3],
		Y: s.coords[idx*3+1],
		Z: s.coords[idx*3+2],
	}
}

func (s *PointSet) Points() []Vec3 {
	return Vec3sFromCoords(s.coords)
}

// Coords returns the underlying flat coordinate list. The slice is shared
// with the set; callers must not grow it.
func (s *PointSet) Coords() []float64 {
	return s.coords
}

// Compute runs the full pipeline on the current points.
func (s *PointSet) Compute() (OrientedBox, error) {
	return Compute(s.Points())
}

// Hull returns the convex hull of the current points projected onto the
// horizontal plane, in world coordinates. The rendering layer draws this
// as the hull silhouette, independently of the box.
func (s *PointSet) Hull() []gmath.Vec {
	points := s.Points()

	projected := make([]gmath.Vec, len(points))
	for idx, p := range points {
		projected[idx] = p.Horizontal()
	}

	return ConvexHull(projected)
}
