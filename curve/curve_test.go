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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/geometry"
)

var zigzag = []vec.Vec2{
	{X: 0, Y: 0},
	{X: 40, Y: 30},
	{X: 80, Y: -10},
	{X: 120, Y: 20},
}

func TestBuildCommands(t *testing.T) {
	cases := []struct {
		name string
		pts  []vec.Vec2
		mode document.Mode
		typ  document.Type
		want []path.Command
	}{
		{"empty", nil, document.Stroke, document.Spline, nil},
		{"dot", zigzag[:1], document.Stroke, document.Spline, []path.Command{path.CmdMoveTo}},
		{"open spline", zigzag, document.Stroke, document.Spline,
			[]path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo}},
		{"closed spline", zigzag, document.Fill, document.Spline,
			[]path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdCubeTo, path.CmdClose}},
		{"open straight", zigzag[:3], document.Stroke, document.Straight,
			[]path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}},
		{"closed straight", zigzag[:3], document.Fill, document.Straight,
			[]path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := BuildPoints(tc.pts, tc.mode, tc.typ)
			if len(d.Cmds) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, d.Cmds)
			}
			for i, c := range d.Cmds {
				if c != tc.want[i] {
					t.Errorf("command %d: expected %v, got %v", i, tc.want[i], c)
				}
			}
		})
	}
}

func TestBuildControlPoints(t *testing.T) {
	d := BuildPoints(zigzag, document.Stroke, document.Spline)
	segs := Segments(d)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}

	// first segment: the left neighbour is clamped to the first point
	c1, c2 := geometry.BezierControls(zigzag[0], zigzag[0], zigzag[1], zigzag[2])
	if segs[0].P1 != c1 || segs[0].P2 != c2 {
		t.Errorf("segment 0: expected controls %v %v, got %v %v", c1, c2, segs[0].P1, segs[0].P2)
	}

	// last segment: the right neighbour is clamped to the last point
	c1, c2 = geometry.BezierControls(zigzag[1], zigzag[2], zigzag[3], zigzag[3])
	if segs[2].P1 != c1 || segs[2].P2 != c2 {
		t.Errorf("segment 2: expected controls %v %v, got %v %v", c1, c2, segs[2].P1, segs[2].P2)
	}

	for i, s := range segs {
		if s.P0 != zigzag[i] || s.P3 != zigzag[i+1] {
			t.Errorf("segment %d does not interpolate its end points", i)
		}
	}
}

func TestSegmentsClosing(t *testing.T) {
	d := BuildPoints(zigzag[:3], document.Fill, document.Straight)
	segs := Segments(d)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if segs[2].P0 != zigzag[2] || segs[2].P3 != zigzag[0] {
		t.Errorf("closing segment %v", segs[2])
	}
	mid := segs[2].At(0.5)
	want := zigzag[2].Add(zigzag[0]).Mul(0.5)
	if math.Abs(mid.X-want.X) > 1e-9 || math.Abs(mid.Y-want.Y) > 1e-9 {
		t.Errorf("closing line midpoint: expected %v, got %v", want, mid)
	}
}

func TestTransform(t *testing.T) {
	d := BuildPoints(zigzag, document.Stroke, document.Straight)
	m := matrix.Matrix{2, 0, 0, 2, 10, -5}
	td := Transform(d, m)
	for i, c := range td.Coords {
		want := vec.Vec2{X: 2*d.Coords[i].X + 10, Y: 2*d.Coords[i].Y - 5}
		if c != want {
			t.Errorf("coord %d: expected %v, got %v", i, want, c)
		}
	}
	if d.Coords[1] != zigzag[1] {
		t.Error("Transform modified its input")
	}
}

func TestFlatten(t *testing.T) {
	t.Run("open", func(t *testing.T) {
		d := BuildPoints(zigzag, document.Stroke, document.Spline)
		pls := Flatten(d, 0.1)
		if len(pls) != 1 || pls[0].Closed {
			t.Fatalf("expected one open polyline, got %d", len(pls))
		}
		pts := pls[0].Points
		if pts[0] != zigzag[0] || pts[len(pts)-1] != zigzag[3] {
			t.Error("polyline does not start and end at the path ends")
		}

		// every polyline vertex lies on the curve
		segs := Segments(d)
		for _, p := range pts {
			best := math.Inf(1)
			for _, s := range segs {
				for k := 0; k <= 1000; k++ {
					best = min(best, geometry.Dist(p, s.At(float64(k)/1000)))
				}
			}
			if best > 0.1 {
				t.Fatalf("vertex %v is %g away from the curve", p, best)
			}
		}
	})

	t.Run("closed", func(t *testing.T) {
		d := BuildPoints(zigzag, document.Fill, document.Spline)
		pls := Flatten(d, 0.25)
		if len(pls) != 1 || !pls[0].Closed {
			t.Fatalf("expected one closed polyline")
		}
		pts := pls[0].Points
		if pts[len(pts)-1] == pts[0] {
			t.Error("closed polyline repeats its start point")
		}
	})

	t.Run("dot", func(t *testing.T) {
		d := BuildPoints(zigzag[:1], document.Stroke, document.Spline)
		pls := Flatten(d, 0.25)
		if len(pls) != 1 || !pls[0].IsDot() {
			t.Fatalf("expected a single dot, got %v", pls)
		}
	})
}
