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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// sweepSectors is the number of directions used by the angular sweep.
const sweepSectors = 72

// Envelope approximates the boundary of the union of discs of radius offset
// around points.  Unlike [OffsetHull] the result can follow concave input.
//
// Two strategies are tried in order.  The grid strategy marks occupied
// cells of a square grid with the given cell size (derived from offset if
// cell is not positive) and keeps the cells with at least one unoccupied
// neighbour.  If this gives fewer than three points, the angular sweep keeps
// the farthest sample in each of 72 directions around the centroid; that
// envelope is star-shaped and need not preserve concavities.  If neither
// strategy yields three points, ErrDegenerate is returned.
//
// Both strategies order the boundary by angle around its centroid.
func Envelope(points []vec.Vec2, offset, cell float64) ([]vec.Vec2, error) {
	samples := stampDiscs(points, offset)
	if cell <= 0 {
		cell = max(offset/2, 1)
	}
	if res := gridBoundary(samples, cell); len(res) >= 3 {
		return res, nil
	}
	if res := angularSweep(samples, sweepSectors); len(res) >= 3 {
		return res, nil
	}
	return nil, ErrDegenerate
}

// stampDiscs approximates a disc around each point by the point itself and
// three concentric rings of samples.
func stampDiscs(points []vec.Vec2, offset float64) []vec.Vec2 {
	res := slices.Clone(points)
	if offset <= 0 {
		return res
	}
	for k := 1; k <= 3; k++ {
		res = append(res, StampCircles(points, offset*float64(k)/3, 10)...)
	}
	return res
}

type cellKey struct{ x, y int }

func gridBoundary(samples []vec.Vec2, cell float64) []vec.Vec2 {
	occupied := make(map[cellKey]struct{}, len(samples))
	for _, p := range samples {
		k := cellKey{int(math.Floor(p.X / cell)), int(math.Floor(p.Y / cell))}
		occupied[k] = struct{}{}
	}

	var res []vec.Vec2
	for k := range occupied {
		boundary := false
	neighbours:
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if _, ok := occupied[cellKey{k.x + dx, k.y + dy}]; !ok {
					boundary = true
					break neighbours
				}
			}
		}
		if boundary {
			res = append(res, vec.Vec2{
				X: (float64(k.x) + 0.5) * cell,
				Y: (float64(k.y) + 0.5) * cell,
			})
		}
	}
	sortByAngle(res)
	return res
}

func angularSweep(samples []vec.Vec2, sectors int) []vec.Vec2 {
	if len(samples) == 0 {
		return nil
	}
	c := centroid(samples)

	best := make([]int, sectors)
	bestDist := make([]float64, sectors)
	for i := range best {
		best[i] = -1
	}
	for i, p := range samples {
		d := dist2(c, p)
		if d == 0 {
			continue
		}
		a := math.Atan2(p.Y-c.Y, p.X-c.X) + math.Pi
		s := min(int(a/(2*math.Pi)*float64(sectors)), sectors-1)
		if d > bestDist[s] {
			best[s] = i
			bestDist[s] = d
		}
	}

	var res []vec.Vec2
	for _, i := range best {
		if i >= 0 {
			res = append(res, samples[i])
		}
	}
	return res
}

func centroid(points []vec.Vec2) vec.Vec2 {
	var c vec.Vec2
	for _, p := range points {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(points)))
}

// sortByAngle orders points by angle around their centroid.  Ties are
// broken by distance and then by coordinates, so that the result does not
// depend on the input order.
func sortByAngle(points []vec.Vec2) {
	if len(points) == 0 {
		return
	}
	c := centroid(points)
	slices.SortFunc(points, func(a, b vec.Vec2) int {
		angA := math.Atan2(a.Y-c.Y, a.X-c.X)
		angB := math.Atan2(b.Y-c.Y, b.X-c.X)
		if r := cmp.Compare(angA, angB); r != 0 {
			return r
		}
		if r := cmp.Compare(dist2(c, a), dist2(c, b)); r != 0 {
			return r
		}
		if r := cmp.Compare(a.X, b.X); r != 0 {
			return r
		}
		return cmp.Compare(a.Y, b.Y)
	})
}
