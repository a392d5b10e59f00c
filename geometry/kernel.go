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

// Package geometry implements the computational geometry used by the neon
// design core: Catmull-Rom interpolation and its Bézier form, convex hulls,
// offsets around tube paths, edge subdivision of rectangles and ellipses,
// and envelope approximation.
//
// All coordinates are world units (100 units = 4 cm).  The y axis points
// down, as on the drawing canvas.
package geometry

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrDegenerate is returned when an input cannot produce a closed boundary
// with at least three points.
var ErrDegenerate = errors.New("geometry: fewer than three boundary points")

// ControlDivisor is the divisor used when converting a Catmull-Rom segment
// into Bézier control points.  The conventional value is 6; 8 gives the
// flatter curves of the drawing tool.  Canvas rendering and SVG export both
// depend on this value, so it must not be changed in one place only.
const ControlDivisor = 8

// CatmullRom evaluates the uniform Catmull-Rom basis for a single
// coordinate.  The curve passes through p1 at t=0 and p2 at t=1.
func CatmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(p2-p0)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(3*p1-p0-3*p2+p3)*t3)
}

// CatmullRomPoint evaluates [CatmullRom] on both axes.
func CatmullRomPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{
		X: CatmullRom(p0.X, p1.X, p2.X, p3.X, t),
		Y: CatmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
	}
}

// BezierControls returns the two inner control points of the cubic Bézier
// segment from p1 to p2, where p0 and p3 are the neighbouring points:
//
//	c1 = p1 + (p2 - p0) / 8
//	c2 = p2 - (p3 - p1) / 8
func BezierControls(p0, p1, p2, p3 vec.Vec2) (c1, c2 vec.Vec2) {
	c1 = vec.Vec2{
		X: p1.X + (p2.X-p0.X)/ControlDivisor,
		Y: p1.Y + (p2.Y-p0.Y)/ControlDivisor,
	}
	c2 = vec.Vec2{
		X: p2.X - (p3.X-p1.X)/ControlDivisor,
		Y: p2.Y - (p3.Y-p1.Y)/ControlDivisor,
	}
	return c1, c2
}

// CubicPoint evaluates the cubic Bézier curve p0, p1, p2, p3 at t.
func CubicPoint(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	return p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
}

// Cross returns the z component of (a-o) × (b-o).  The value is positive
// when o, a, b make a counter-clockwise turn in a y-up coordinate system.
func Cross(o, a, b vec.Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b vec.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Interpolate samples a Catmull-Rom spline through points, emitting
// samples points per segment.  For open curves the end points are repeated
// as their own neighbours and the last point is included; closed curves
// wrap around and do not repeat the first point.
func Interpolate(points []vec.Vec2, samples int, closed bool) []vec.Vec2 {
	n := len(points)
	if n < 3 && closed || n < 2 || samples < 1 {
		return append([]vec.Vec2(nil), points...)
	}

	at := func(i int) vec.Vec2 {
		if closed {
			return points[((i%n)+n)%n]
		}
		return points[max(0, min(n-1, i))]
	}

	numSegs := n - 1
	if closed {
		numSegs = n
	}
	res := make([]vec.Vec2, 0, numSegs*samples+1)
	for i := range numSegs {
		p0, p1, p2, p3 := at(i-1), at(i), at(i+1), at(i+2)
		for k := range samples {
			t := float64(k) / float64(samples)
			res = append(res, CatmullRomPoint(p0, p1, p2, p3, t))
		}
	}
	if !closed {
		res = append(res, points[n-1])
	}
	return res
}

// Bounds returns the axis-aligned bounding box of points as
// (xMin, yMin, xMax, yMax).  ok is false for an empty input.
func Bounds(points []vec.Vec2) (xMin, yMin, xMax, yMax float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin, yMin = points[0].X, points[0].Y
	xMax, yMax = xMin, yMin
	for _, p := range points[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return xMin, yMin, xMax, yMax, true
}
