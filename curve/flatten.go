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

package curve

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the default maximum distance between a curve and its
// polygonal approximation, in output units.
const DefaultFlatness = 0.25

// Polyline is a flattened subpath.
type Polyline struct {
	Points []vec.Vec2
	Closed bool
}

// IsDot reports whether the polyline consists of a single location.
func (pl Polyline) IsDot() bool {
	for _, p := range pl.Points[1:] {
		if p != pl.Points[0] {
			return false
		}
	}
	return true
}

// Flatten approximates every subpath of d by a polyline.  The number of
// line segments per curve is chosen so that the approximation stays within
// flatness of the curve.  Subpaths consisting of a lone MoveTo are kept
// as single-point polylines.
func Flatten(d *path.Data, flatness float64) []Polyline {
	if !(flatness > 0) {
		flatness = DefaultFlatness
	}

	var res []Polyline
	var cur []vec.Vec2
	inSubpath := false
	flush := func(closed bool) {
		if inSubpath && len(cur) > 0 {
			res = append(res, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
		inSubpath = false
	}
	emit := func(_, to vec.Vec2) {
		cur = append(cur, to)
	}

	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			cur = []vec.Vec2{pts[0]}
			inSubpath = true
		case path.CmdLineTo:
			if inSubpath {
				cur = append(cur, pts[0])
			}
		case path.CmdQuadTo:
			if inSubpath {
				flattenQuadratic(cur[len(cur)-1], pts[0], pts[1], flatness, emit)
			}
		case path.CmdCubeTo:
			if inSubpath {
				flattenCubic(cur[len(cur)-1], pts[0], pts[1], pts[2], flatness, emit)
			}
		case path.CmdClose:
			if inSubpath {
				// drop the explicit closing point, closure is implied
				if len(cur) > 1 && cur[len(cur)-1] == cur[0] {
					cur = cur[:len(cur)-1]
				}
				flush(true)
			}
		}
	}
	flush(false)
	return res
}

// flattenQuadratic calls emit for each line segment approximating the
// quadratic Bézier p0, p1, p2.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25).Length()
	n := 1
	if e > flatness {
		n = int(math.Ceil(math.Sqrt(e / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic calls emit for each line segment approximating the cubic
// Bézier p0, p1, p2, p3.  The segment count follows Wang's formula.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(from, to vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * flatness))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		emit(prev, pt)
		prev = pt
	}
}
