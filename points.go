package mbr

import (
	"errors"
	"math"

	"github.com/quasilyte/gmath"
)

var (
	// ErrInsufficientPoints reports fewer than 3 input points.
	ErrInsufficientPoints = errors.New("mbr: need at least 3 points")

	// ErrDegenerateInput reports a point set that collapses to fewer than
	// 3 unique points, or to a single line, after deduplication.
	ErrDegenerateInput = errors.New("mbr: degenerate point set")
)

// Prepared is the output of Prepare: the deduplicated horizontal
// projections of a point set, re-centered on their centroid, plus the
// vertical extent of the raw input.
type Prepared struct {
	// Points are the unique horizontal projections, relative to Centroid,
	// in input order.
	Points []gmath.Vec

	// Centroid of the horizontal projections over the full raw input.
	Centroid gmath.Vec

	// Vertical extent over the full raw input.
	MinY, MaxY float64
}

// gridKey identifies a point by its centroid-relative coordinates snapped
// to the deduplication grid.
type gridKey struct {
	x, z int64
}

// Prepare validates and normalizes a point set for the hull and calipers
// stages. The centroid and the vertical extent are computed over the full
// raw input; deduplication snaps centroid-relative coordinates to a fixed
// grid of dedupTolerance.
//
// On ErrDegenerateInput the returned Prepared still carries the surviving
// points, centroid and extent, so callers can degrade to a flat box.
func Prepare(points []Vec3) (Prepared, error) {
	if len(points) < 3 {
		return Prepared{}, ErrInsufficientPoints
	}

	var centroid gmath.Vec
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, p := range points {
		centroid = centroid.Add(p.Horizontal())
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	centroid = centroid.Mulf(1 / float64(len(points)))

	var seen Set[gridKey]
	unique := make([]gmath.Vec, 0, len(points))

	for _, p := range points {
		rel := p.Horizontal().Sub(centroid)

		key := gridKey{
			x: int64(math.Round(rel.X / dedupTolerance)),
			z: int64(math.Round(rel.Y / dedupTolerance)),
		}

		if seen.Has(key) {
			continue
		}

		seen.Insert(key)
		unique = append(unique, rel)
	}

	prepared := Prepared{
		Points:   unique,
		Centroid: centroid,
		MinY:     minY,
		MaxY:     maxY,
	}

	if len(unique) < 3 {
		return prepared, ErrDegenerateInput
	}

	return prepared, nil
}
