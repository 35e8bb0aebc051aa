package mbr

import (
	"math"

	"github.com/quasilyte/gmath"
)

// OrientedBox is a 3-d box rotated about the vertical axis.
type OrientedBox struct {
	Center    Vec3
	HalfSize  Vec3
	RotationY gmath.Rad
}

// boxFrom assembles the final box from the winning rectangle, the vertical
// extent, and the centroid offset removed by Prepare.
func boxFrom(rect Rectangle, prep Prepared) OrientedBox {
	center := rect.Center.Add(prep.Centroid)

	return OrientedBox{
		Center: Vec3{
			X: center.X,
			Y: (prep.MinY + prep.MaxY) / 2,
			Z: center.Y,
		},
		HalfSize: Vec3{
			X: rect.Width / 2,
			Y: (prep.MaxY - prep.MinY) / 2,
			Z: rect.Height / 2,
		},
		// rotating about +Y by -Angle maps the local x-axis onto the
		// rectangle's width axis
		RotationY: -rect.Angle,
	}
}

// Corners returns the 8 corner points of the box in world space.
func (b OrientedBox) Corners() [8]Vec3 {
	var corners [8]Vec3

	idx := 0
	for _, sx := range [2]float64{-1, 1} {
		for _, sy := range [2]float64{-1, 1} {
			for _, sz := range [2]float64{-1, 1} {
				local := gmath.Vec{X: sx * b.HalfSize.X, Y: sz * b.HalfSize.Z}
				horizontal := rotateAboutY(local, b.RotationY)

				corners[idx] = Vec3{
					X: b.Center.X + horizontal.X,
					Y: b.Center.Y + sy*b.HalfSize.Y,
					Z: b.Center.Z + horizontal.Y,
				}

				idx++
			}
		}
	}

	return corners
}

// AABB returns the axis-aligned box enclosing the oriented box, as its
// min and max corners.
func (b OrientedBox) AABB() (minCorner, maxCorner Vec3) {
	corners := b.Corners()

	minCorner, maxCorner = corners[0], corners[0]
	for _, corner := range corners[1:] {
		minCorner = minCorner.Min(corner)
		maxCorner = maxCorner.Max(corner)
	}

	return minCorner, maxCorner
}

// Contains reports whether p lies inside the box, with tol slack on every
// local axis.
func (b OrientedBox) Contains(p Vec3, tol float64) bool {
	rel := p.Sub(b.Center)
	horizontal := rotateAboutY(gmath.Vec{X: rel.X, Y: rel.Z}, -b.RotationY)

	return math.Abs(horizontal.X) <= b.HalfSize.X+tol &&
		math.Abs(rel.Y) <= b.HalfSize.Y+tol &&
		math.Abs(horizontal.Y) <= b.HalfSize.Z+tol
}

// rotateAboutY applies a rotation about the vertical axis to a point on
// the horizontal plane. A positive angle is a right-handed rotation around
// +Y, which rotates the (x, z) plane clockwise.
func rotateAboutY(v gmath.Vec, angle gmath.Rad) gmath.Vec {
	return v.Rotated(-angle)
}
