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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/document"
)

var fillCases = []Design{
	{
		Name: "square_plate",
		Paths: []document.Path{
			plate(document.Straight, -50, -50, 250, -50, 250, 50, -50, 50),
			straight(0, 0, 200, 0),
		},
	},
	{
		Name: "triangle_plate",
		Paths: []document.Path{
			spline(20, 60, 100, 20, 180, 60),
			plate(document.Straight, 0, 100, 100, -40, 200, 100),
		},
	},
	{
		Name: "round_plate",
		Paths: []document.Path{
			plate(document.Spline, 0, -120, 120, 0, 0, 120, -120, 0),
			spline(-60, 0, 0, -40, 60, 0),
		},
	},
	{
		Name: "concave_plate",
		Paths: []document.Path{
			plate(document.Straight, 0, 0, 200, 0, 200, 60, 60, 60, 60, 200, 0, 200),
			straight(30, 30, 170, 30),
			straight(30, 30, 30, 170),
		},
	},
	{
		Name: "star_plate",
		Paths: []document.Path{
			{Points: starPoints(0, 0, 150, 60), Mode: document.Fill, Type: document.Straight},
			spline(-30, 0, 0, -20, 30, 0),
		},
	},
	{
		// two points are not yet a plate
		Name: "unfinished_plate",
		Paths: []document.Path{
			straight(0, 0, 100, 0),
			plate(document.Straight, -20, -20, 120, -20),
		},
	},
}

// starPoints returns the corners of a five-pointed star, alternating
// between the outer and inner radius.
func starPoints(cx, cy, outer, inner float64) []vec.Vec2 {
	res := make([]vec.Vec2, 10)
	for i := range 10 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		res[i] = vec.Vec2{
			X: round1(cx + r*math.Cos(angle)),
			Y: round1(cy + r*math.Sin(angle)),
		}
	}
	return res
}
