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

// ConvexHull returns the convex hull of points, computed with a Graham scan.
//
// Points are deduplicated after rounding to integer coordinates; the first
// point of each group is kept.  The scan starts at the point with the
// lowest y (then lowest x) and visits the others by polar angle, nearer
// points first.  Collinear points are dropped, so every consecutive triple
// of the result makes a strict turn.  Inputs with fewer than three unique
// points are returned unchanged.
func ConvexHull(points []vec.Vec2) []vec.Vec2 {
	type key struct{ x, y int64 }
	seen := make(map[key]struct{}, len(points))
	unique := make([]vec.Vec2, 0, len(points))
	for _, p := range points {
		k := key{int64(math.Round(p.X)), int64(math.Round(p.Y))}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, p)
	}
	if len(unique) < 3 {
		return unique
	}

	startIdx := 0
	for i, p := range unique {
		s := unique[startIdx]
		if p.Y < s.Y || p.Y == s.Y && p.X < s.X {
			startIdx = i
		}
	}
	start := unique[startIdx]
	rest := slices.Delete(slices.Clone(unique), startIdx, startIdx+1)

	slices.SortFunc(rest, func(a, b vec.Vec2) int {
		angA := math.Atan2(a.Y-start.Y, a.X-start.X)
		angB := math.Atan2(b.Y-start.Y, b.X-start.X)
		if c := cmp.Compare(angA, angB); c != 0 {
			return c
		}
		return cmp.Compare(dist2(start, a), dist2(start, b))
	})

	hull := make([]vec.Vec2, 1, len(unique))
	hull[0] = start
	for _, p := range rest {
		for len(hull) >= 2 && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

func dist2(a, b vec.Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
