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

package history

import (
	"encoding/json"
	"errors"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/document"
)

func threePoints() *document.Document {
	d := document.New()
	d.AppendPoint(vec.Vec2{X: 0, Y: 0})
	d.AppendPoint(vec.Vec2{X: 50, Y: 20})
	d.AppendPoint(vec.Vec2{X: 100, Y: 0})
	return d
}

func TestUndoRedoRoundTrip(t *testing.T) {
	l := New(0)
	d := document.New()
	l.Push(d)

	states := []*document.Document{d.Clone()}
	for i := range 5 {
		d.AppendPoint(vec.Vec2{X: float64(i * 10), Y: 1})
		if i == 2 {
			d.SwitchMode(document.Fill)
		}
		l.Push(d)
		states = append(states, d.Clone())
	}

	for i := len(states) - 2; i >= 0; i-- {
		got, err := l.Undo()
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(states[i]) {
			t.Fatalf("undo to %d: expected %+v, got %+v", i, states[i], got)
		}
	}
	if got, err := l.Undo(); got != nil || err != nil {
		t.Errorf("undo at start: expected no-op, got %v, %v", got, err)
	}

	for i := 1; i < len(states); i++ {
		got, err := l.Redo()
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(states[i]) {
			t.Fatalf("redo to %d: expected %+v, got %+v", i, states[i], got)
		}
	}
	if got, err := l.Redo(); got != nil || err != nil {
		t.Errorf("redo at end: expected no-op, got %v, %v", got, err)
	}
}

func TestUndoAfterDelete(t *testing.T) {
	l := New(DefaultDepth)
	d := threePoints()
	l.Push(d)
	orig := d.Clone()

	if err := d.DeletePoint(document.PointRef{Path: 0, Point: 1}); err != nil {
		t.Fatal(err)
	}
	l.Push(d)

	got, err := l.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(got.Paths[0].Points); n != 3 {
		t.Fatalf("expected 3 points, got %d", n)
	}
	for i, p := range got.Paths[0].Points {
		if p != orig.Paths[0].Points[i] {
			t.Errorf("point %d: expected %v, got %v", i, orig.Paths[0].Points[i], p)
		}
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	l := New(DefaultDepth)
	d := threePoints()
	l.Push(d)
	d.MovePoint(document.PointRef{Path: 0, Point: 0}, vec.Vec2{X: 99, Y: 99})

	got, err := l.State(0)
	if err != nil {
		t.Fatal(err)
	}
	if got.Paths[0].Points[0] != (vec.Vec2{}) {
		t.Error("mutating the document changed the recorded state")
	}
}

func TestBound(t *testing.T) {
	l := New(DefaultDepth)
	d := document.New()
	for i := range 50 {
		d.AppendPoint(vec.Vec2{X: float64(i), Y: 0})
		l.Push(d)
		if l.Len() > DefaultDepth {
			t.Fatalf("log has %d entries", l.Len())
		}
		if l.Cursor() < 0 || l.Cursor() >= l.Len() {
			t.Fatalf("cursor %d out of range [0,%d)", l.Cursor(), l.Len())
		}
	}
	// the oldest surviving entry has 31 points
	first, err := l.State(0)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(first.Paths[0].Points); n != 31 {
		t.Errorf("expected 31 points in oldest entry, got %d", n)
	}
}

func TestPushTruncatesRedo(t *testing.T) {
	l := New(DefaultDepth)
	d := document.New()
	l.Push(d)
	d.AppendPoint(vec.Vec2{X: 1, Y: 1})
	l.Push(d)
	d.AppendPoint(vec.Vec2{X: 2, Y: 2})
	l.Push(d)

	l.Undo()
	prev, _ := l.Undo()
	prev.AppendPoint(vec.Vec2{X: 7, Y: 7})
	l.Push(prev)

	if l.Len() != 2 || l.Cursor() != 1 {
		t.Errorf("expected 2 entries with cursor 1, got %d/%d", l.Len(), l.Cursor())
	}
	if l.CanRedo() {
		t.Error("redo possible after push")
	}
}

func TestCorruptCursor(t *testing.T) {
	l := New(DefaultDepth)
	l.Push(document.New())
	l.Push(threePoints())
	l = FromEntries(l.Entries(), 7, DefaultDepth)

	for _, step := range []func() (*document.Document, error){l.Undo, l.Redo} {
		got, err := step()
		if !errors.Is(err, ErrCorrupt) || got != nil {
			t.Errorf("expected ErrCorrupt, got %v, %v", got, err)
		}
		if l.Cursor() != 7 || l.Len() != 2 {
			t.Errorf("log changed: cursor %d, %d entries", l.Cursor(), l.Len())
		}
	}
}

func TestChanges(t *testing.T) {
	prev := threePoints()
	prev.Paths = append(prev.Paths, document.Path{Mode: document.Fill})
	cur := prev.Clone()
	cur.Paths[0].Points[0] = vec.Vec2{X: 5, Y: 5}
	cur.Paths = cur.Paths[:1]

	changes := Changes(prev, cur)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[0].Index != 0 || changes[0].Path == nil {
		t.Errorf("unexpected first change %+v", changes[0])
	}
	if changes[1].Index != 1 || changes[1].Path != nil {
		t.Errorf("unexpected second change %+v", changes[1])
	}
}

func TestLegacyDiffRestore(t *testing.T) {
	const data = `[
		{"paths":[{"points":[{"x":0,"y":0},{"x":10,"y":0}],"mode":"stroke","type":"spline"}],
		 "currentPathIndex":0,"drawMode":"stroke","drawingType":"spline"},
		{"currentPathIndex":1,"drawMode":"stroke","drawingType":"straight",
		 "pathChanges":[{"index":1,"path":{"points":[{"x":5,"y":5}],"mode":"stroke","type":"straight"}}]},
		{"currentPathIndex":0,"drawMode":"stroke","drawingType":"straight",
		 "pathChanges":[{"index":0,"path":null}]}
	]`
	var entries Entries
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		t.Fatal(err)
	}
	if _, ok := entries[0].(Snapshot); !ok {
		t.Fatalf("entry 0: expected Snapshot, got %T", entries[0])
	}
	if _, ok := entries[1].(Diff); !ok {
		t.Fatalf("entry 1: expected Diff, got %T", entries[1])
	}

	l := FromEntries(entries, 2, DefaultDepth)

	mid, err := l.State(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(mid.Paths) != 2 || mid.Current != 1 || mid.Type != document.Straight {
		t.Errorf("unexpected state 1: %+v", mid)
	}

	last, err := l.State(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(last.Paths) != 1 || last.Paths[0].Points[0] != (vec.Vec2{X: 5, Y: 5}) {
		t.Errorf("unexpected state 2: %+v", last)
	}

	got, err := l.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(mid) {
		t.Errorf("undo: expected %+v, got %+v", mid, got)
	}
}

func TestDropFrontRebasesDiff(t *testing.T) {
	entries := []Entry{
		Snapshot{Doc: threePoints()},
		Diff{Changes: []Change{{Index: 1, Path: &document.Path{Points: []vec.Vec2{{X: 1, Y: 1}}}}}, Current: 1},
		Diff{Current: 0},
	}
	l := FromEntries(entries, 2, 2)
	if l.Len() != 2 || l.Cursor() != 1 {
		t.Fatalf("expected 2 entries with cursor 1, got %d/%d", l.Len(), l.Cursor())
	}
	s, ok := l.Entries()[0].(Snapshot)
	if !ok {
		t.Fatalf("expected Snapshot at front, got %T", l.Entries()[0])
	}
	if len(s.Doc.Paths) != 2 {
		t.Errorf("expected 2 paths in rebased entry, got %d", len(s.Doc.Paths))
	}
	last, err := l.State(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(last.Paths) != 2 || last.Current != 0 {
		t.Errorf("unexpected last state %+v", last)
	}
}

func TestEntryJSON(t *testing.T) {
	d := threePoints()
	e := Snapshot{Doc: d, Changes: Changes(nil, d)}
	data, err := json.Marshal([]Entry{e, Diff{Current: 0, Changes: []Change{{Index: 3}}}})
	if err != nil {
		t.Fatal(err)
	}
	var back Entries
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	s, ok := back[0].(Snapshot)
	if !ok || !s.Doc.Equal(d) {
		t.Errorf("snapshot round trip failed: %s", data)
	}
	diff, ok := back[1].(Diff)
	if !ok || len(diff.Changes) != 1 || diff.Changes[0].Path != nil {
		t.Errorf("diff round trip failed: %s", data)
	}
}
