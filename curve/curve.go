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

// Package curve converts document paths into Bézier outlines.
//
// [Build] is the only place where the curve through the points of a path
// is constructed.  Canvas rendering, SVG export, PDF export and the PNG
// preview all consume its output, so that every projection shows the same
// shape.
//
// Spline paths use Catmull-Rom segments converted to cubic Béziers with
// the control points from [geometry.BezierControls].  Stroke paths are
// open, and the neighbours of the end points are clamped to the end points
// themselves.  Fill paths are closed, with neighbours taken cyclically.
// Straight paths join their points by line segments.
package curve

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/geometry"
)

// Build returns the outline of p.  A path with a single point gives a
// lone MoveTo, and an empty path gives an empty outline.
func Build(p *document.Path) *path.Data {
	return BuildPoints(p.Points, p.Mode, p.Type)
}

// BuildPoints returns the outline through pts, using the rules for the
// given mode and type.
func BuildPoints(pts []vec.Vec2, mode document.Mode, typ document.Type) *path.Data {
	res := &path.Data{}
	n := len(pts)
	if n == 0 {
		return res
	}
	res.MoveTo(pts[0])
	if n == 1 {
		return res
	}

	closed := mode == document.Fill
	if typ == document.Straight {
		for _, pt := range pts[1:] {
			res.LineTo(pt)
		}
		if closed {
			res.Close()
		}
		return res
	}

	if closed {
		for i := range n {
			p0 := pts[(i-1+n)%n]
			p1 := pts[i]
			p2 := pts[(i+1)%n]
			p3 := pts[(i+2)%n]
			c1, c2 := geometry.BezierControls(p0, p1, p2, p3)
			res.CubeTo(c1, c2, p2)
		}
		res.Close()
		return res
	}

	for i := range n - 1 {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, n-1)]
		c1, c2 := geometry.BezierControls(p0, p1, p2, p3)
		res.CubeTo(c1, c2, p2)
	}
	return res
}

// Transform returns a copy of d with all coordinates mapped by m.
func Transform(d *path.Data, m matrix.Matrix) *path.Data {
	res := &path.Data{
		Cmds:   make([]path.Command, len(d.Cmds)),
		Coords: make([]vec.Vec2, len(d.Coords)),
	}
	copy(res.Cmds, d.Cmds)
	for i, c := range d.Coords {
		res.Coords[i] = Apply(m, c)
	}
	return res
}

// Apply maps a single point by m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Segment is a single cubic Bézier segment of an outline.  Line segments
// are represented with control points at one and two thirds.
type Segment struct {
	P0, P1, P2, P3 vec.Vec2
}

// At evaluates the segment at parameter t.
func (s Segment) At(t float64) vec.Vec2 {
	return geometry.CubicPoint(s.P0, s.P1, s.P2, s.P3, t)
}

// Segments lists the drawing segments of d in order, including the
// implicit closing line of closed subpaths.
func Segments(d *path.Data) []Segment {
	var res []Segment
	var current, start vec.Vec2
	line := func(a, b vec.Vec2) Segment {
		return Segment{a, a.Add(b.Sub(a).Mul(1.0 / 3)), a.Add(b.Sub(a).Mul(2.0 / 3)), b}
	}
	for cmd, pts := range d.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
		case path.CmdLineTo:
			res = append(res, line(current, pts[0]))
			current = pts[0]
		case path.CmdQuadTo:
			c1 := current.Add(pts[0].Sub(current).Mul(2.0 / 3))
			c2 := pts[1].Add(pts[0].Sub(pts[1]).Mul(2.0 / 3))
			res = append(res, Segment{current, c1, c2, pts[1]})
			current = pts[1]
		case path.CmdCubeTo:
			res = append(res, Segment{current, pts[0], pts[1], pts[2]})
			current = pts[2]
		case path.CmdClose:
			if current != start {
				res = append(res, line(current, start))
			}
			current = start
		}
	}
	return res
}
