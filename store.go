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

// Package neon is the design core of a neon sign editor.
//
// A [Store] owns the design of one editing session: the paths of the
// sign, the undo/redo log, the canvas view and the current edit mode.
// Every operation which changes the design is applied atomically, recorded
// in the history and handed to the configured [Persister].
//
// The geometry, data model and export code lives in the sub-packages;
// the Store ties them together the way an interactive editor uses them.
package neon

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/autoshape"
	"seehuhn.de/go/neon/config"
	"seehuhn.de/go/neon/coord"
	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/history"
	"seehuhn.de/go/neon/internal/logging"
)

// Store holds the state of one design session.
//
// A Store is not safe for concurrent use.  Mutations run to completion,
// including the history update, before they return.
type Store struct {
	// ID identifies the session.  It is kept across save and load.
	ID string

	cfg     *config.Config
	persist Persister
	gen     *autoshape.Generator

	doc  *document.Document
	log  *history.Log
	view coord.View

	edit      document.EditMode
	selection []document.PointRef // pending merge selection
	drag      *dragState
}

// NewStore returns the session stored by p, or a new empty design if p is
// nil or has nothing stored yet.  If cfg is nil, [config.Default] is used.
func NewStore(cfg *config.Config, p Persister) (*Store, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Store{
		cfg:     cfg,
		persist: p,
		gen:     autoshape.New(cfg.Generator()),
		view:    coord.NewView(),
	}

	if p != nil {
		snap, err := p.Load()
		switch {
		case err == nil:
			if err := s.restore(snap); err != nil {
				return nil, err
			}
			logging.Logger().Info("design loaded",
				"id", s.ID, "paths", len(s.doc.Paths), "history", s.log.Len())
			return s, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, err
		}
	}

	s.ID = uuid.NewString()
	s.doc = document.New()
	s.log = history.New(cfg.HistoryDepth)
	s.log.Push(s.doc)
	logging.Logger().Info("new design", "id", s.ID)
	return s, nil
}

func (s *Store) restore(snap *Snapshot) error {
	doc, err := snap.Document()
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	s.doc = doc
	s.ID = snap.ID
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if len(snap.History) > 0 {
		s.log = history.FromEntries(snap.History, snap.HistoryIndex, s.cfg.HistoryDepth)
	} else {
		s.log = history.New(s.cfg.HistoryDepth)
		s.log.Push(doc)
	}
	s.view = coord.View{Scale: snap.Scale, OffsetX: snap.OffsetX, OffsetY: snap.OffsetY}
	s.view.ClampScale()
	return nil
}

// Snapshot returns the persisted form of the session.
func (s *Store) Snapshot() *Snapshot {
	doc := s.doc.Clone()
	return &Snapshot{
		ID:           s.ID,
		Paths:        doc.Paths,
		Current:      doc.Current,
		DrawMode:     doc.Mode,
		DrawingType:  doc.Type,
		History:      append(history.Entries(nil), s.log.Entries()...),
		HistoryIndex: s.log.Cursor(),
		Scale:        s.view.Scale,
		OffsetX:      s.view.OffsetX,
		OffsetY:      s.view.OffsetY,
	}
}

func (s *Store) save() {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(s.Snapshot()); err != nil {
		logging.Logger().Warn("saving design failed", "id", s.ID, "error", err)
	}
}

// apply runs op on a copy of the design.  If op succeeds and reports a
// change, the copy becomes the new design and is recorded in the history.
// A failed op leaves the store unchanged.  A pending drag is finished
// first, so that op starts from the dragged design.
func (s *Store) apply(name string, op func(d *document.Document) (bool, error)) error {
	if err := s.EndDrag(); err != nil {
		return err
	}
	next := s.doc.Clone()
	changed, err := op(next)
	if err != nil {
		logging.Logger().Warn("operation rejected", "op", name, "error", err)
		return err
	}
	if !changed {
		return nil
	}
	s.doc = next
	s.log.Push(next)
	s.save()
	return nil
}

// Document returns a copy of the current design.
func (s *Store) Document() *document.Document {
	return s.doc.Clone()
}

// History returns the undo/redo log.  The caller must not modify it.
func (s *Store) History() *history.Log {
	return s.log
}

// Config returns the settings of the store.
func (s *Store) Config() *config.Config {
	return s.cfg
}

// AddPoint appends a point, given in world coordinates, to the current
// path.
func (s *Store) AddPoint(p vec.Vec2) error {
	return s.apply("add point", func(d *document.Document) (bool, error) {
		return true, d.AppendPoint(p)
	})
}

// StartNewPath makes an empty path with the given mode and type current.
// Nothing is recorded if the current path is already empty and matches.
func (s *Store) StartNewPath(mode document.Mode, typ document.Type) error {
	return s.apply("new path", func(d *document.Document) (bool, error) {
		return d.StartNewPath(mode, typ)
	})
}

// SwitchMode changes the mode used for new paths.
func (s *Store) SwitchMode(mode document.Mode) error {
	return s.apply("switch mode", func(d *document.Document) (bool, error) {
		return d.SwitchMode(mode)
	})
}

// SwitchType changes the interpolation type used for new paths.
func (s *Store) SwitchType(typ document.Type) error {
	return s.apply("switch type", func(d *document.Document) (bool, error) {
		return d.SwitchType(typ)
	})
}

// DeletePoint removes a point, and its path if the path becomes empty.
func (s *Store) DeletePoint(ref document.PointRef) error {
	return s.apply("delete point", func(d *document.Document) (bool, error) {
		return true, d.DeletePoint(ref)
	})
}

// DeletePath removes a path.
func (s *Store) DeletePath(idx int) error {
	return s.apply("delete path", func(d *document.Document) (bool, error) {
		return true, d.DeletePath(idx)
	})
}

// MergePoints moves point a onto point b.
func (s *Store) MergePoints(a, b document.PointRef) error {
	return s.apply("merge points", func(d *document.Document) (bool, error) {
		return true, d.MergePoints(a, b)
	})
}

// ScaleAll scales the whole design about the origin.
func (s *Store) ScaleAll(factor float64) error {
	return s.apply("scale", func(d *document.Document) (bool, error) {
		return true, d.ScaleAllPaths(factor, vec.Vec2{})
	})
}

// Clear resets the design to a single empty path.  The history is kept,
// so that Clear can be undone.
func (s *Store) Clear() error {
	s.selection = nil
	err := s.apply("clear", func(d *document.Document) (bool, error) {
		d.Clear()
		return true, nil
	})
	if err == nil {
		logging.Logger().Info("design cleared", "id", s.ID)
	}
	return err
}

// Undo restores the previous state.  The return value is false if there
// was nothing to undo.  The edit mode is not changed.
func (s *Store) Undo() (bool, error) {
	if err := s.EndDrag(); err != nil {
		return false, err
	}
	return s.restoreFrom(s.log.Undo())
}

// Redo restores the state undone last.  The return value is false if
// there was nothing to redo.  The edit mode is not changed.
func (s *Store) Redo() (bool, error) {
	if err := s.EndDrag(); err != nil {
		return false, err
	}
	return s.restoreFrom(s.log.Redo())
}

func (s *Store) restoreFrom(doc *document.Document, err error) (bool, error) {
	if err != nil || doc == nil {
		return false, err
	}
	s.doc = doc
	s.selection = nil
	s.drag = nil
	s.save()
	return true, nil
}

// CanUndo reports whether Undo would change the design.
func (s *Store) CanUndo() bool {
	return s.log.CanUndo()
}

// CanRedo reports whether Redo would change the design.
func (s *Store) CanRedo() bool {
	return s.log.CanRedo()
}

// generate replaces the base plate with the output of gen.
func (s *Store) generate(name string, gen func(*document.Document) (document.Path, error)) error {
	if err := s.EndDrag(); err != nil {
		return err
	}
	plate, err := gen(s.doc)
	if err != nil {
		logging.Logger().Warn("generator failed", "shape", name, "error", err)
		return err
	}
	logging.Logger().Debug("plate generated", "shape", name, "points", len(plate.Points))
	return s.apply(name, func(d *document.Document) (bool, error) {
		d.ReplacePlate(plate)
		return true, nil
	})
}

// GenerateRectangle replaces the base plate by a rectangle around all
// tubes.  A positive radius rounds the corners.
func (s *Store) GenerateRectangle(marginCm, radiusCm float64) error {
	return s.generate("rectangle", func(d *document.Document) (document.Path, error) {
		return s.gen.Rectangle(d, marginCm, radiusCm)
	})
}

// GenerateCircle replaces the base plate by a circle around all tubes.
// The centre of the circle is the centre of the tube bounding box, moved
// down (towards larger y) by offsetCm; a negative offset moves it up.  The
// radius grows with the offset, so that the circle still encloses all
// tube points with the given margin.
func (s *Store) GenerateCircle(marginCm, offsetCm float64) error {
	return s.generate("circle", func(d *document.Document) (document.Path, error) {
		return s.gen.Circle(d, marginCm, offsetCm)
	})
}

// GenerateEllipse replaces the base plate by an ellipse around all tubes.
func (s *Store) GenerateEllipse(marginCm float64) error {
	return s.generate("ellipse", func(d *document.Document) (document.Path, error) {
		return s.gen.Ellipse(d, marginCm)
	})
}

// GenerateAutoShape replaces the base plate by the offset convex hull of
// all tubes.
func (s *Store) GenerateAutoShape(marginCm float64) error {
	return s.generate("auto", func(d *document.Document) (document.Path, error) {
		return s.gen.AutoShape(d, marginCm)
	})
}

// GenerateContour replaces the base plate by a concave outline following
// the tubes.
func (s *Store) GenerateContour(marginCm float64) error {
	return s.generate("contour", func(d *document.Document) (document.Path, error) {
		return s.gen.Contour(d, marginCm)
	})
}

// View returns the canvas view.
func (s *Store) View() coord.View {
	return s.view
}

// SetView replaces the canvas view.  The scale is limited to the
// permitted zoom range.
func (s *Store) SetView(v coord.View) {
	v.ClampScale()
	s.view = v
}

// ZoomAt scales the view by factor, keeping the screen point (sx, sy)
// fixed.
func (s *Store) ZoomAt(factor, sx, sy float64) {
	s.view.ZoomAt(factor, sx, sy)
}

// Pan moves the view by (dx, dy) screen pixels.
func (s *Store) Pan(dx, dy float64) {
	s.view.Pan(dx, dy)
}

// HitTest returns the point nearest to the screen position (sx, sy),
// if one lies within the hit radius of the current view.
func (s *Store) HitTest(sx, sy float64) (document.PointRef, bool) {
	q := s.view.ToWorld(sx, sy)
	hit, ok := coord.Nearest(s.doc.PointSets(), q, s.view.HitRadius())
	if !ok {
		return document.PointRef{}, false
	}
	return document.PointRef{Path: hit.Path, Point: hit.Point}, true
}
