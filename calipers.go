package mbr

import (
	"iter"
	"math"

	"github.com/quasilyte/gmath"
)

// Rectangle is an oriented rectangle on the horizontal plane. Angle is the
// rotation of its width axis relative to the x-axis.
type Rectangle struct {
	Center gmath.Vec
	Width  float64
	Height float64
	Angle  gmath.Rad
}

func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// EdgeDirections returns the normalized direction of every hull edge, in
// hull order. Directions that coincide up to numerical noise are merged
// into the first occurrence; zero-length edges produce no direction.
func EdgeDirections(hull []gmath.Vec) []gmath.Vec {
	var dirs []gmath.Vec

outer:
	for idx, vertex := range hull {
		edge := hull[(idx+1)%len(hull)].Sub(vertex)
		if edge.Len() < dedupTolerance {
			continue
		}

		dir := edge.Normalized()

		for _, kept := range dirs {
			if dot(dir, kept) > 1-angleEpsilon {
				continue outer
			}
		}

		dirs = append(dirs, dir)
	}

	return dirs
}

// RectangleFor computes the rectangle enclosing the hull with one side
// parallel to dir. dir must be normalized.
func RectangleFor(hull []gmath.Vec, dir gmath.Vec) Rectangle {
	if len(hull) == 0 {
		return Rectangle{}
	}

	// perpendicular axis, 90° counter-clockwise from dir
	perp := gmath.Vec{X: -dir.Y, Y: dir.X}

	minD, maxD := math.Inf(1), math.Inf(-1)
	minP, maxP := math.Inf(1), math.Inf(-1)

	for _, vertex := range hull {
		d := dot(vertex, dir)
		p := dot(vertex, perp)

		minD, maxD = min(minD, d), max(maxD, d)
		minP, maxP = min(minP, p), max(maxP, p)
	}

	center := dir.Mulf((minD + maxD) / 2).Add(perp.Mulf((minP + maxP) / 2))

	return Rectangle{
		Center: center,
		Width:  maxD - minD,
		Height: maxP - minP,
		Angle:  gmath.Rad(math.Atan2(dir.Y, dir.X)),
	}
}

// Candidates yields the enclosing rectangle for every unique edge direction
// of the hull, in encounter order. This is the step-by-step view of the
// calipers search; MinAreaRectangle keeps the smallest of these.
func Candidates(hull []gmath.Vec) iter.Seq2[gmath.Vec, Rectangle] {
	return func(yield func(gmath.Vec, Rectangle) bool) {
		for _, dir := range EdgeDirections(hull) {
			if !yield(dir, RectangleFor(hull, dir)) {
				return
			}
		}
	}
}

// MinAreaRectangle returns the smallest-area rectangle that encloses the
// hull and has one side flush with a hull edge. When several candidates
// share the minimum area, the first one in encounter order wins. A hull
// with fewer than 3 vertices yields the zero Rectangle.
func MinAreaRectangle(hull []gmath.Vec) Rectangle {
	if len(hull) < 3 {
		return Rectangle{}
	}

	var best Rectangle
	bestArea := math.Inf(1)

	for _, rect := range Candidates(hull) {
		if area := rect.Area(); area < bestArea {
			best, bestArea = rect, area
		}
	}

	return best
}
