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

var curveCases = []Design{
	{
		Name:  "arc",
		Paths: []document.Path{spline(0, 100, 100, 0, 200, 100)},
	},
	{
		Name:  "s_curve",
		Paths: []document.Path{spline(0, 0, 60, -60, 140, 60, 200, 0)},
	},
	{
		Name:  "wave",
		Paths: []document.Path{spline(0, 0, 50, 40, 100, -40, 150, 40, 200, -40, 250, 40, 300, 0)},
	},
	{
		Name:  "loop",
		Paths: []document.Path{spline(0, 0, 100, 0, 150, -80, 80, -120, 40, -60, 120, 20, 220, 20)},
	},
	{
		Name:  "two_points",
		Paths: []document.Path{spline(0, 0, 120, 30)},
	},
	{
		Name:  "circle",
		Paths: []document.Path{{Points: circlePoints(0, 0, 100, 12), Type: document.Spline}},
	},
}

// circlePoints returns n points on a circle, starting at angle 0, rounded
// to the working precision.
func circlePoints(cx, cy, r float64, n int) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	for i := range n {
		angle := float64(i) * 2 * math.Pi / float64(n)
		res[i] = vec.Vec2{
			X: round1(cx + r*math.Cos(angle)),
			Y: round1(cy + r*math.Sin(angle)),
		}
	}
	return res
}

func round1(x float64) float64 {
	x = math.Round(x*10) / 10
	if x == 0 {
		return 0
	}
	return x
}
