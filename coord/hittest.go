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

package coord

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Hit identifies a point by the index of its path and its index within the
// path.
type Hit struct {
	Path, Point int
}

// Nearest returns the point closest to q among all point sets, provided it
// is closer than radius.  When two points are at the same distance, the one
// found first wins.
func Nearest(sets [][]vec.Vec2, q vec.Vec2, radius float64) (Hit, bool) {
	best := Hit{-1, -1}
	bestDist := math.Inf(1)
	for i, pts := range sets {
		for j, p := range pts {
			d := math.Hypot(p.X-q.X, p.Y-q.Y)
			if d < radius && d < bestDist {
				best = Hit{i, j}
				bestDist = d
			}
		}
	}
	return best, best.Path >= 0
}
