package main

import (
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	mbr "github.com/lxxorz/three-mbr"
	"github.com/quasilyte/gmath"
)

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf[T ~float64 | ~float32](rng *rand.Rand, min, max T) T {
	return T(rng.Float64())*(max-min) + min
}

// generateCloud scatters n points over a 2 x 1 footprint rotated by angle
// about the vertical axis, with a noise field providing the vertical lift.
// The expected bounding box is therefore a 2 x 1 rectangle at that angle.
func generateCloud(rng *rand.Rand, n int, angle gmath.Rad) []mbr.Vec3 {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()
	noise.Frequency = 0.5

	points := make([]mbr.Vec3, 0, n+4)

	// the footprint corners, so the expected box is stable for small n
	for _, corner := range [4]gmath.Vec{{X: -1, Y: -0.5}, {X: 1, Y: -0.5}, {X: 1, Y: 0.5}, {X: -1, Y: 0.5}} {
		points = append(points, liftedPoint(noise, corner.Rotated(-angle)))
	}

	for range n {
		local := gmath.Vec{
			X: randf(rng, -1.0, 1.0),
			Y: randf(rng, -0.5, 0.5),
		}

		points = append(points, liftedPoint(noise, local.Rotated(-angle)))
	}

	return points
}

func liftedPoint(noise *fastnoiselite.FastNoiseLite, pos gmath.Vec) mbr.Vec3 {
	lift := noise.GetNoise2D(fastnoiselite.FNLfloat(pos.X), fastnoiselite.FNLfloat(pos.Y))

	return mbr.Vec3{
		X: pos.X,
		Y: float64(lift) * 0.25,
		Z: pos.Y,
	}
}
