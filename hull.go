package mbr

import (
	"math"
	"sort"

	"github.com/quasilyte/gmath"
)

// Cross product of OA and OB vectors (O, A, B are points)
func cross3(o, a, b gmath.Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Dot product of two vectors
func dot(a, b gmath.Vec) float64 {
	return a.X*b.X + a.Y*b.Y
}

// ConvexHull returns the convex hull of a set of 2D points using a Graham
// scan. The result is in counter-clockwise order and strictly convex:
// collinear points are dropped during the scan.
//
// The vertex sequence is deterministic for a given input sequence, not
// just the polygon. Fewer than 3 points are returned unchanged.
func ConvexHull(points []gmath.Vec) []gmath.Vec {
	if len(points) < 3 {
		return append([]gmath.Vec(nil), points...)
	}

	points = append([]gmath.Vec(nil), points...)

	// the pivot is the point with the lowest y, ties broken by lowest x.
	// It always lies on the hull.
	pivotIdx := 0
	for idx, p := range points {
		lowest := points[pivotIdx]
		if p.Y < lowest.Y || (p.Y == lowest.Y && p.X < lowest.X) {
			pivotIdx = idx
		}
	}

	pivot := points[pivotIdx]
	points[0], points[pivotIdx] = points[pivotIdx], points[0]
	rest := points[1:]

	// sort the remaining points by polar angle around the pivot. Points on
	// (nearly) the same ray are ordered by distance to the pivot so the
	// scan discards the closer, interior ones.
	sort.Slice(rest, func(i, j int) bool {
		a, b := rest[i], rest[j]
		angleA := math.Atan2(a.Y-pivot.Y, a.X-pivot.X)
		angleB := math.Atan2(b.Y-pivot.Y, b.X-pivot.X)

		if math.Abs(angleA-angleB) < angleEpsilon {
			return a.DistanceTo(pivot) < b.DistanceTo(pivot)
		}

		return angleA < angleB
	})

	hull := make([]gmath.Vec, 0, len(points))
	hull = append(hull, pivot, rest[0])

	for _, p := range rest[1:] {
		for len(hull) >= 2 && cross3(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}

		hull = append(hull, p)
	}

	return hull
}

// PointInConvexHull checks whether point p is inside the convex hull defined by hull.
// The hull should be ordered counter-clockwise and be a closed or open loop (first == last optional).
func PointInConvexHull(hull []gmath.Vec, p gmath.Vec) bool {
	n := len(hull)
	if n < 3 {
		return false // Not a polygon
	}

	for i := 0; i < n; i++ {
		a := hull[i]
		b := hull[(i+1)%n]
		if cross3(a, b, p) < 0 {
			// Point is to the right of edge a->b, i.e., outside the hull
			return false
		}
	}
	return true
}
