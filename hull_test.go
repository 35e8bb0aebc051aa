package mbr

import (
	"math/rand/v2"
	"testing"

	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHullSquare(t *testing.T) {
	points := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
		{X: 0.5, Y: 0.5}, // interior
	}

	hull := ConvexHull(points)

	require.Len(t, hull, 4)
	assert.Equal(t, gmath.Vec{X: 0, Y: 0}, hull[0])
	assert.Equal(t, gmath.Vec{X: 1, Y: 0}, hull[1])
	assert.Equal(t, gmath.Vec{X: 1, Y: 1}, hull[2])
	assert.Equal(t, gmath.Vec{X: 0, Y: 1}, hull[3])
}

func TestConvexHullStrictlyConvex(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	for run := range 20 {
		points := make([]gmath.Vec, 0, 64)
		for range 64 {
			points = append(points, gmath.Vec{
				X: rng.Float64()*10 - 5,
				Y: rng.Float64()*10 - 5,
			})
		}

		hull := ConvexHull(points)
		require.GreaterOrEqual(t, len(hull), 3, "run %d", run)

		// every cyclically consecutive triple must form a left turn
		for idx := range hull {
			a := hull[idx]
			b := hull[(idx+1)%len(hull)]
			c := hull[(idx+2)%len(hull)]

			assert.Greater(t, cross3(a, b, c), 0.0, "run %d, triple at %d", run, idx)
		}

		// and every input point must be inside or on the hull
		for _, p := range points {
			assert.True(t, PointInConvexHull(hull, p), "run %d", run)
		}
	}
}

func TestConvexHullDeterministic(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))

	points := make([]gmath.Vec, 0, 32)
	for range 32 {
		points = append(points, gmath.Vec{
			X: rng.Float64() * 4,
			Y: rng.Float64() * 4,
		})
	}

	first := ConvexHull(points)
	second := ConvexHull(points)

	// the exact vertex sequence must repeat, not just the polygon
	assert.Equal(t, first, second)
}

func TestConvexHullDoesNotMutateInput(t *testing.T) {
	points := []gmath.Vec{
		{X: 3, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 2},
	}
	original := append([]gmath.Vec(nil), points...)

	ConvexHull(points)

	assert.Equal(t, original, points)
}

func TestConvexHullTwoPoints(t *testing.T) {
	points := []gmath.Vec{{X: 1, Y: 2}, {X: 3, Y: 4}}

	hull := ConvexHull(points)

	assert.Equal(t, points, hull)
}

func TestConvexHullCollinear(t *testing.T) {
	points := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 3, Y: 3},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
	}

	hull := ConvexHull(points)

	// a fully collinear set collapses to the two extreme points
	require.Len(t, hull, 2)
	assert.Equal(t, gmath.Vec{X: 0, Y: 0}, hull[0])
	assert.Equal(t, gmath.Vec{X: 3, Y: 3}, hull[1])
}

func TestConvexHullCollinearOnRay(t *testing.T) {
	// interior points sharing a ray from the pivot must be discarded
	points := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 1, Y: 1},
		{X: 2, Y: 2},
		{X: 2, Y: 0},
		{X: 0, Y: 2},
	}

	hull := ConvexHull(points)

	require.Len(t, hull, 4)
	assert.NotContains(t, hull, gmath.Vec{X: 1, Y: 1})
}

func TestPointInConvexHull(t *testing.T) {
	hull := []gmath.Vec{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}

	assert.True(t, PointInConvexHull(hull, gmath.Vec{X: 1, Y: 1}))
	assert.True(t, PointInConvexHull(hull, gmath.Vec{X: 0, Y: 0}), "boundary counts as inside")
	assert.False(t, PointInConvexHull(hull, gmath.Vec{X: 3, Y: 1}))
	assert.False(t, PointInConvexHull(hull[:2], gmath.Vec{X: 1, Y: 1}), "not a polygon")
}
