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

package document

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func pts(coords ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, vec.Vec2{X: coords[i], Y: coords[i+1]})
	}
	return res
}

func TestAppendPointClamps(t *testing.T) {
	d := New()
	if err := d.AppendPoint(vec.Vec2{X: 5000, Y: -12.345}); err != nil {
		t.Fatal(err)
	}
	got := d.Paths[0].Points[0]
	want := vec.Vec2{X: 3750, Y: -12.3}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStartNewPath(t *testing.T) {
	d := New()

	changed, err := d.StartNewPath(Stroke, Spline)
	if err != nil || changed {
		t.Fatalf("matching empty path: changed=%t err=%v", changed, err)
	}
	if len(d.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(d.Paths))
	}

	// an empty current path is re-tagged
	changed, err = d.StartNewPath(Stroke, Straight)
	if err != nil || !changed {
		t.Fatalf("retag: changed=%t err=%v", changed, err)
	}
	if len(d.Paths) != 1 || d.Paths[0].Type != Straight {
		t.Fatalf("unexpected paths %v", d.Paths)
	}

	d.AppendPoint(vec.Vec2{X: 1, Y: 1})
	changed, err = d.SwitchMode(Fill)
	if err != nil || !changed {
		t.Fatalf("switch mode: changed=%t err=%v", changed, err)
	}
	if len(d.Paths) != 2 || d.Current != 1 {
		t.Fatalf("expected new current path 1, got %d of %d", d.Current, len(d.Paths))
	}
	if p := d.CurrentPath(); p.Mode != Fill || p.Type != Straight {
		t.Errorf("unexpected current path %v/%v", p.Mode, p.Type)
	}

	_, err = d.StartNewPath(Mode(7), Spline)
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
	_, err = d.StartNewPath(Stroke, Type(7))
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestFillUniqueness(t *testing.T) {
	d := New()
	d.SwitchMode(Fill)
	for _, p := range pts(0, 0, 100, 0, 100, 100) {
		if err := d.AppendPoint(p); err != nil {
			t.Fatal(err)
		}
	}
	if d.Plate() != 0 {
		t.Fatalf("expected plate at index 0, got %d", d.Plate())
	}

	// a further fill path cannot be started
	d.SwitchMode(Stroke)
	d.AppendPoint(vec.Vec2{X: 5, Y: 5})
	before := d.Clone()
	_, err := d.SwitchMode(Fill)
	if !errors.Is(err, ErrFillExists) {
		t.Fatalf("expected ErrFillExists, got %v", err)
	}
	if !d.Equal(before) {
		t.Error("rejected operation modified the document")
	}

	// a fill placeholder cannot grow to three points
	d2 := New()
	d2.Paths = []Path{
		{Mode: Fill, Points: pts(0, 0, 1, 0, 1, 1)},
		{Mode: Fill, Points: pts(5, 5, 6, 6)},
	}
	d2.Current = 1
	if err := d2.AppendPoint(vec.Vec2{X: 7, Y: 5}); !errors.Is(err, ErrFillExists) {
		t.Fatalf("expected ErrFillExists, got %v", err)
	}
	if len(d2.Paths[1].Points) != 2 {
		t.Error("rejected point was appended")
	}

	// the plate itself may keep growing
	d.Current = 0
	if err := d.AppendPoint(vec.Vec2{X: 0, Y: 100}); err != nil {
		t.Errorf("growing the plate: %v", err)
	}
}

func TestFillUniquenessRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	d := New()
	for range 2000 {
		switch rng.IntN(6) {
		case 0:
			d.SwitchMode(Mode(rng.IntN(2)))
		case 1:
			d.SwitchType(Type(rng.IntN(2)))
		case 2, 3:
			d.AppendPoint(vec.Vec2{X: rng.Float64() * 100, Y: rng.Float64() * 100})
		case 4:
			if len(d.Paths) > 0 {
				d.DeletePath(rng.IntN(len(d.Paths)))
			}
		case 5:
			p := rng.IntN(len(d.Paths))
			if n := len(d.Paths[p].Points); n > 0 {
				d.DeletePoint(PointRef{p, rng.IntN(n)})
			}
		}
		if n := d.PlateCount(); n > 1 {
			t.Fatalf("%d plates", n)
		}
		if d.Current < 0 || d.Current >= len(d.Paths) {
			t.Fatalf("current index %d out of range [0,%d)", d.Current, len(d.Paths))
		}
	}
}

func TestMergePoints(t *testing.T) {
	d := New()
	d.Paths = []Path{
		{Points: pts(10, 10, 20, 20)},
		{Points: pts(50, 50)},
	}
	a := PointRef{0, 0}
	b := PointRef{1, 0}
	if err := d.MergePoints(a, b); err != nil {
		t.Fatal(err)
	}
	if got := d.Paths[0].Points[0]; got != (vec.Vec2{X: 50, Y: 50}) {
		t.Errorf("A: expected (50,50), got %v", got)
	}
	if got := d.Paths[1].Points[0]; got != (vec.Vec2{X: 50, Y: 50}) {
		t.Errorf("B changed to %v", got)
	}
	if len(d.Paths[0].Points) != 2 {
		t.Error("merge removed a point")
	}

	if err := d.MergePoints(a, PointRef{3, 0}); !errors.Is(err, ErrBadIndex) {
		t.Errorf("expected ErrBadIndex, got %v", err)
	}
}

func TestDeletePathRenumbering(t *testing.T) {
	cases := []struct {
		name    string
		current int
		del     int
		want    int
	}{
		{"before current", 2, 0, 1},
		{"current", 1, 1, 2},
		{"after current", 0, 2, 0},
		{"last is current", 3, 3, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := New()
			d.Paths = []Path{
				{Points: pts(0, 0)},
				{Points: pts(1, 1)},
				{Points: pts(2, 2)},
				{Points: pts(3, 3)},
			}
			d.Current = tc.current
			if err := d.DeletePath(tc.del); err != nil {
				t.Fatal(err)
			}
			if d.Current != tc.want {
				t.Errorf("expected current %d, got %d", tc.want, d.Current)
			}
		})
	}
}

func TestDeleteLastPath(t *testing.T) {
	d := New()
	d.AppendPoint(vec.Vec2{X: 1, Y: 2})
	if err := d.DeletePoint(PointRef{0, 0}); err != nil {
		t.Fatal(err)
	}
	if len(d.Paths) != 1 || len(d.Paths[0].Points) != 0 || d.Current != 0 {
		t.Errorf("expected single empty placeholder, got %v (current %d)", d.Paths, d.Current)
	}
}

func TestDeletePointCascades(t *testing.T) {
	d := New()
	d.Paths = []Path{
		{Points: pts(0, 0)},
		{Points: pts(1, 1, 2, 2)},
	}
	d.Current = 1
	if err := d.DeletePoint(PointRef{0, 0}); err != nil {
		t.Fatal(err)
	}
	if len(d.Paths) != 1 || d.Current != 0 {
		t.Errorf("expected one path with current 0, got %d paths, current %d", len(d.Paths), d.Current)
	}
}

func TestScaleAllPaths(t *testing.T) {
	d := New()
	d.Paths[0].Points = pts(10, 20, -3000, 100)
	if err := d.ScaleAllPaths(2, vec.Vec2{}); err != nil {
		t.Fatal(err)
	}
	want := pts(20, 40, -3750, 200)
	for i, p := range d.Paths[0].Points {
		if p != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], p)
		}
	}

	if err := d.ScaleAllPaths(0, vec.Vec2{}); err == nil {
		t.Error("expected error for zero factor")
	}
}

func TestReplacePlate(t *testing.T) {
	d := New()
	d.Paths = []Path{
		{Points: pts(0, 0, 100, 100)},
		{Mode: Fill, Points: pts(0, 0, 1, 0, 1, 1)},
		{Mode: Fill},
	}
	d.Current = 0

	d.ReplacePlate(Path{Points: pts(-10, -10, 110, -10, 110, 110, -10, 110)})
	if len(d.Paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(d.Paths))
	}
	if d.Current != 0 {
		t.Errorf("expected current 0, got %d", d.Current)
	}
	if d.Plate() != 1 || d.PlateCount() != 1 {
		t.Errorf("unexpected plate %d (count %d)", d.Plate(), d.PlateCount())
	}

	// the current path is a fill path and gets replaced
	d.Current = 1
	d.ReplacePlate(Path{Points: pts(0, 0, 5, 0, 5, 5)})
	if len(d.Paths) != 3 || d.Current != 2 {
		t.Fatalf("expected new empty current path 2 of 3, got %d of %d", d.Current, len(d.Paths))
	}
	if p := d.CurrentPath(); p.Mode != Stroke || len(p.Points) != 0 {
		t.Errorf("unexpected current path %v", p)
	}
}

func TestPathJSON(t *testing.T) {
	p := Path{Points: pts(1.5, -2), Mode: Fill, Type: Straight}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"points":[{"x":1.5,"y":-2}],"mode":"fill","type":"straight"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}

	var q Path
	if err := json.Unmarshal(data, &q); err != nil {
		t.Fatal(err)
	}
	if !p.Equal(&q) {
		t.Errorf("round trip: expected %v, got %v", p, q)
	}

	err = json.Unmarshal([]byte(`{"points":[],"mode":"glow","type":"spline"}`), &q)
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("expected ErrUnknownMode, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	d := &Document{
		Paths: []Path{
			{Points: pts(9000, 0)},
		},
		Current: 5,
	}
	if err := d.Validate(); err != nil {
		t.Fatal(err)
	}
	if d.Current != 0 || d.Paths[0].Points[0].X != 3750 {
		t.Errorf("unexpected document after validation: %+v", d)
	}

	d.Paths = []Path{
		{Mode: Fill, Points: pts(0, 0, 1, 0, 1, 1)},
		{Mode: Fill, Points: pts(0, 0, 1, 0, 1, 1)},
	}
	if err := d.Validate(); !errors.Is(err, ErrFillExists) {
		t.Errorf("expected ErrFillExists, got %v", err)
	}
}

func TestEditModeString(t *testing.T) {
	for m := EditNone; m <= EditDeletePath; m++ {
		got, err := ParseEditMode(m.String())
		if err != nil || got != m {
			t.Errorf("%s: got %v, %v", m, got, err)
		}
	}
}
