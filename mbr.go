// Package mbr computes minimum bounding rectangles for point sets in 3-d
// space: the points are projected onto the horizontal plane, the smallest
// enclosing rectangle of their convex hull is found with rotating calipers,
// and the rectangle is extruded over the points' vertical extent into a box
// oriented about the vertical axis.
package mbr

import (
	"github.com/rs/zerolog/log"
)

const (
	// dedupTolerance is the grid size used to deduplicate points, applied
	// in centroid-relative coordinates.
	dedupTolerance = 1e-6

	// angleEpsilon merges polar angles and edge directions that are equal
	// up to floating point noise.
	angleEpsilon = 1e-10
)

// Compute returns the smallest box, oriented about the vertical axis, that
// encloses all points.
//
// Degenerate inputs never fail hard. Fewer than 3 points yield the zero box
// and ErrInsufficientPoints. Point sets that collapse to fewer than 3 unique
// points, or to a single line, yield a box with zero horizontal footprint
// and ErrDegenerateInput. The returned box is usable in every case.
func Compute(points []Vec3) (OrientedBox, error) {
	prep, err := Prepare(points)
	if err != nil {
		log.Warn().Int("points", len(points)).Err(err).Msg("no bounding box for this point set")
		if len(prep.Points) == 0 {
			return OrientedBox{}, err
		}

		return boxFrom(Rectangle{}, prep), err
	}

	hull := ConvexHull(prep.Points)
	if len(hull) < 3 {
		// all unique points lie on a line
		log.Warn().Int("points", len(points)).Msg("point set is collinear")
		return boxFrom(Rectangle{}, prep), ErrDegenerateInput
	}

	return boxFrom(MinAreaRectangle(hull), prep), nil
}

// ComputeCoords is Compute over a flat (x, y, z) coordinate list, the layout
// used by the rendering layer's geometry buffers.
func ComputeCoords(coords []float64) (OrientedBox, error) {
	return Compute(Vec3sFromCoords(coords))
}
