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

var largeCases = []Design{
	{
		Name:  "long_spiral",
		Paths: []document.Path{{Points: spiralPoints(400, 3000), Type: document.Spline}},
	},
	{
		Name:  "grid",
		Paths: tubeGrid(8, 8, 2000, 40),
	},
	{
		Name: "full_area",
		Paths: []document.Path{
			spline(-3500, -3500, 0, -3000, 3500, -3500, 3000, 0, 3500, 3500, 0, 3000, -3500, 3500),
		},
	},
}

// spiralPoints returns n points on an Archimedean spiral reaching the
// given radius.
func spiralPoints(n int, radius float64) []vec.Vec2 {
	res := make([]vec.Vec2, n)
	turns := 8.0
	for i := range n {
		t := float64(i) / float64(n-1)
		angle := t * turns * 2 * math.Pi
		res[i] = vec.Vec2{
			X: round1(t * radius * math.Cos(angle)),
			Y: round1(t * radius * math.Sin(angle)),
		}
	}
	return res
}

// tubeGrid returns one short straight tube per grid cell.
func tubeGrid(rows, cols int, size, gap float64) []document.Path {
	cellW := size / float64(cols)
	cellH := size / float64(rows)

	var res []document.Path
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap - size/2
			y1 := float64(row)*cellH + gap - size/2
			x2 := float64(col+1)*cellW - gap - size/2
			y2 := float64(row+1)*cellH - gap - size/2
			res = append(res, straight(x1, y1, x2, y2))
		}
	}
	return res
}
