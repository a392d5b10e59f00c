// seehuhn.de/go/neon - vector design core for neon signs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package geometry

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

const (
	// cornerFanPoints is the number of extra points placed on each side of
	// a sharp rectangle corner.
	cornerFanPoints = 5

	// cornerFanStep is the spacing of the extra corner points.
	cornerFanStep = 0.5

	// minArcPoints is the minimum number of points on a quarter-circle
	// corner of a rounded rectangle.
	minArcPoints = 60

	// arcPointSpacing is the maximal arc length between two points on a
	// rounded corner.
	arcPointSpacing = 2.5

	// minEllipsePoints is the minimum number of points on an ellipse.
	minEllipsePoints = 50
)

// RectangleEdge returns points along the boundary of r, walked clockwise on
// screen starting at the top-left corner, spaced spacing units apart.
//
// If radius is not positive, the corners are sharp and each corner vertex
// is surrounded by 2×5 extra points at 0.5 unit spacing, so that the corner
// stays crisp when the outline is later smoothed.  Otherwise each corner is
// a quarter circle of the given radius (limited to half the width and
// height), sampled with at least 60 points and at most 2.5 units apart.
//
// Rectangles with non-positive width or height have no boundary and give
// nil.
func RectangleEdge(r rect.Rect, radius, spacing float64) []vec.Vec2 {
	w := r.URx - r.LLx
	h := r.URy - r.LLy
	if !(w > 0 && h > 0) || !(spacing > 0) {
		return nil
	}
	if radius <= 0 {
		return sharpRectangle(r, spacing)
	}
	return roundedRectangle(r, min(radius, w/2, h/2), spacing)
}

func sharpRectangle(r rect.Rect, spacing float64) []vec.Vec2 {
	corners := [4]vec.Vec2{
		{X: r.LLx, Y: r.LLy},
		{X: r.URx, Y: r.LLy},
		{X: r.URx, Y: r.URy},
		{X: r.LLx, Y: r.URy},
	}
	fanExtent := cornerFanPoints * cornerFanStep

	var res []vec.Vec2
	for i, a := range corners {
		prev := corners[(i+3)%4]
		b := corners[(i+1)%4]

		lenIn := Dist(prev, a)
		lenOut := Dist(a, b)
		dirIn := a.Sub(prev).Mul(1 / lenIn)
		dirOut := b.Sub(a).Mul(1 / lenOut)

		// fan on the incoming edge, then the corner, then the outgoing edge
		for k := cornerFanPoints; k >= 1; k-- {
			s := float64(k) * cornerFanStep
			if s < lenIn/2 {
				res = append(res, a.Sub(dirIn.Mul(s)))
			}
		}
		res = append(res, a)
		for k := 1; k <= cornerFanPoints; k++ {
			s := float64(k) * cornerFanStep
			if s < lenOut/2 {
				res = append(res, a.Add(dirOut.Mul(s)))
			}
		}

		for k := 1; ; k++ {
			s := float64(k) * spacing
			if s >= lenOut-fanExtent {
				break
			}
			if s <= fanExtent {
				continue
			}
			res = append(res, a.Add(dirOut.Mul(s)))
		}
	}
	return res
}

func roundedRectangle(r rect.Rect, radius, spacing float64) []vec.Vec2 {
	arcLen := math.Pi * radius / 2
	arcN := max(minArcPoints, int(math.Ceil(arcLen/arcPointSpacing)))

	var res []vec.Vec2
	edge := func(a, b vec.Vec2) {
		l := Dist(a, b)
		if l == 0 {
			return
		}
		d := b.Sub(a).Mul(1 / l)
		for k := 0; float64(k)*spacing < l; k++ {
			res = append(res, a.Add(d.Mul(float64(k)*spacing)))
		}
	}
	arc := func(c vec.Vec2, a0 float64) {
		for i := range arcN {
			a := a0 + math.Pi/2*float64(i)/float64(arcN)
			res = append(res, vec.Vec2{
				X: c.X + radius*math.Cos(a),
				Y: c.Y + radius*math.Sin(a),
			})
		}
	}

	x0, y0, x1, y1 := r.LLx, r.LLy, r.URx, r.URy
	edge(vec.Vec2{X: x0 + radius, Y: y0}, vec.Vec2{X: x1 - radius, Y: y0})
	arc(vec.Vec2{X: x1 - radius, Y: y0 + radius}, -math.Pi/2)
	edge(vec.Vec2{X: x1, Y: y0 + radius}, vec.Vec2{X: x1, Y: y1 - radius})
	arc(vec.Vec2{X: x1 - radius, Y: y1 - radius}, 0)
	edge(vec.Vec2{X: x1 - radius, Y: y1}, vec.Vec2{X: x0 + radius, Y: y1})
	arc(vec.Vec2{X: x0 + radius, Y: y1 - radius}, math.Pi/2)
	edge(vec.Vec2{X: x0, Y: y1 - radius}, vec.Vec2{X: x0, Y: y0 + radius})
	arc(vec.Vec2{X: x0 + radius, Y: y0 + radius}, math.Pi)
	return res
}

// EllipsePerimeter approximates the circumference of an ellipse with
// semi-axes a and b, using Ramanujan's second approximation.  For a circle
// the result is exact.
func EllipsePerimeter(a, b float64) float64 {
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

// EllipseEdge returns max(50, ⌈circumference/spacing⌉) points on the ellipse
// with the given centre and semi-axes, at equal angular increments starting
// at angle zero.
func EllipseEdge(center vec.Vec2, rx, ry, spacing float64) []vec.Vec2 {
	if !(rx > 0 && ry > 0) || !(spacing > 0) {
		return nil
	}
	n := max(minEllipsePoints, int(math.Ceil(EllipsePerimeter(rx, ry)/spacing)))
	res := make([]vec.Vec2, n)
	for i := range res {
		a := 2 * math.Pi * float64(i) / float64(n)
		res[i] = vec.Vec2{
			X: center.X + rx*math.Cos(a),
			Y: center.Y + ry*math.Sin(a),
		}
	}
	return res
}
