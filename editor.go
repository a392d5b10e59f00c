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

package neon

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/internal/logging"
)

type dragState struct {
	ref   document.PointRef
	start vec.Vec2
	doc   *document.Document // working copy while dragging
}

// EditMode returns the current edit mode.
func (s *Store) EditMode() document.EditMode {
	return s.edit
}

// SetEditMode selects what [Store.Click] does.  Any pending merge
// selection is discarded.
func (s *Store) SetEditMode(m document.EditMode) {
	s.edit = m
	s.selection = nil
}

// Selection returns the points selected for merging so far.
func (s *Store) Selection() []document.PointRef {
	return append([]document.PointRef(nil), s.selection...)
}

// Click handles a click or tap at the screen position (sx, sy) according
// to the edit mode:
//
//   - [document.EditNone] adds a point to the current path.
//   - [document.EditModify] starts dragging the point under the pointer.
//   - [document.EditMerge] selects the point under the pointer; once two
//     points are selected, the first is moved onto the second.
//   - [document.EditDeletePoint] deletes the point under the pointer.
//   - [document.EditDeletePath] deletes the path owning that point.
//
// Clicks which miss all points are ignored in the modes which need one.
func (s *Store) Click(sx, sy float64) error {
	if s.edit == document.EditNone {
		return s.AddPoint(s.view.ToWorld(sx, sy))
	}

	ref, ok := s.HitTest(sx, sy)
	if !ok {
		return nil
	}
	switch s.edit {
	case document.EditModify:
		return s.BeginDrag(ref)
	case document.EditMerge:
		if len(s.selection) == 1 && s.selection[0] == ref {
			return nil
		}
		s.selection = append(s.selection, ref)
		if len(s.selection) < 2 {
			return nil
		}
		a, b := s.selection[0], s.selection[1]
		s.selection = nil
		return s.MergePoints(a, b)
	case document.EditDeletePoint:
		return s.DeletePoint(ref)
	case document.EditDeletePath:
		return s.DeletePath(ref.Path)
	default:
		return fmt.Errorf("unknown edit mode %d", s.edit)
	}
}

// BeginDrag starts moving the given point.  A drag already in progress is
// finished first.
func (s *Store) BeginDrag(ref document.PointRef) error {
	if err := s.EndDrag(); err != nil {
		return err
	}
	p, err := s.doc.Point(ref)
	if err != nil {
		logging.Logger().Warn("operation rejected", "op", "drag", "error", err)
		return err
	}
	s.drag = &dragState{ref: ref, start: p, doc: s.doc.Clone()}
	return nil
}

// Dragging reports whether a drag is in progress.
func (s *Store) Dragging() bool {
	return s.drag != nil
}

// DragTo moves the dragged point to the screen position (sx, sy).  The
// design seen through [Store.Document] follows the pointer, but nothing is
// recorded until [Store.EndDrag].
func (s *Store) DragTo(sx, sy float64) error {
	if s.drag == nil {
		return nil
	}
	err := s.drag.doc.MovePoint(s.drag.ref, s.view.ToWorld(sx, sy))
	if err != nil {
		return err
	}
	s.doc = s.drag.doc.Clone()
	return nil
}

// EndDrag finishes a drag.  A drag which moved the point adds one history
// entry.  Every other mutation of the store ends a pending drag in the
// same way.
func (s *Store) EndDrag() error {
	drag := s.drag
	if drag == nil {
		return nil
	}
	s.drag = nil

	p, err := drag.doc.Point(drag.ref)
	if err != nil {
		return err
	}
	if p == drag.start {
		return nil
	}
	s.doc = drag.doc
	s.log.Push(s.doc)
	s.save()
	return nil
}
