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

	"seehuhn.de/go/geom/vec"
)

// DefaultStepDeg is the angular step used when stamping circles around
// tube points.
const DefaultStepDeg = 5

// zeroLengthThreshold is the tangent length below which a point has no
// usable direction.
const zeroLengthThreshold = 1e-10

// StampCircles returns, for every input point, the points of a circle of
// the given radius around it at stepDeg degree increments.
func StampCircles(points []vec.Vec2, radius, stepDeg float64) []vec.Vec2 {
	if stepDeg <= 0 {
		stepDeg = DefaultStepDeg
	}
	n := int(math.Ceil(360 / stepDeg))
	dirs := make([]vec.Vec2, n)
	for i := range dirs {
		a := float64(i) * stepDeg * math.Pi / 180
		dirs[i] = vec.Vec2{X: math.Cos(a), Y: math.Sin(a)}
	}

	res := make([]vec.Vec2, 0, len(points)*n)
	for _, p := range points {
		for _, d := range dirs {
			res = append(res, p.Add(d.Mul(radius)))
		}
	}
	return res
}

// OffsetHull returns the convex hull of circles of the given radius around
// all points.  The result encloses every point with at least the radius as
// clearance, up to the chord error of the stamped circles.  Concavities of
// the input are not represented.
func OffsetHull(points []vec.Vec2, radius, stepDeg float64) []vec.Vec2 {
	return ConvexHull(StampCircles(points, radius, stepDeg))
}

// OffsetPolyline displaces every point of an open polyline by d along its
// normal.  The tangent is the forward difference at the first point, the
// backward difference at the last point and the central difference in
// between; the normal is the tangent rotated by 90° counter-clockwise.
// Points without a usable tangent keep the normal of their predecessor.
func OffsetPolyline(points []vec.Vec2, d float64) []vec.Vec2 {
	n := len(points)
	if n < 2 {
		return append([]vec.Vec2(nil), points...)
	}

	res := make([]vec.Vec2, n)
	var normal vec.Vec2
	for i, p := range points {
		var t vec.Vec2
		switch i {
		case 0:
			t = points[1].Sub(p)
		case n - 1:
			t = p.Sub(points[n-2])
		default:
			t = points[i+1].Sub(points[i-1])
		}
		if l := t.Length(); l > zeroLengthThreshold {
			t = t.Mul(1 / l)
			normal = vec.Vec2{X: -t.Y, Y: t.X}
		}
		res[i] = p.Add(normal.Mul(d))
	}
	return res
}
