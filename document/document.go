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

// Package document holds the path data model of a neon sign design.
//
// A [Document] is an ordered list of paths, together with the index of the
// path which receives new points and the mode and type used for new paths.
// All points are kept inside the working area by [coord.Clamp].  At most
// one path of a document is a base plate (a fill path with three or more
// points); every operation which could create a second plate fails with
// [ErrFillExists] instead.
package document

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/coord"
)

// PointRef identifies a point by path index and point index.
type PointRef struct {
	Path, Point int
}

// Document is the editable state of a design.
type Document struct {
	Paths   []Path
	Current int // index of the path receiving new points

	Mode Mode // mode for new paths
	Type Type // interpolation type for new paths
}

// New returns a document with a single empty stroke/spline path.
func New() *Document {
	return &Document{
		Paths: []Path{{Mode: Stroke, Type: Spline}},
		Mode:  Stroke,
		Type:  Spline,
	}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	res := &Document{
		Paths:   make([]Path, len(d.Paths)),
		Current: d.Current,
		Mode:    d.Mode,
		Type:    d.Type,
	}
	for i := range d.Paths {
		res.Paths[i] = d.Paths[i].Clone()
	}
	return res
}

// Equal reports whether d and o describe the same state.
func (d *Document) Equal(o *Document) bool {
	if d.Current != o.Current || d.Mode != o.Mode || d.Type != o.Type {
		return false
	}
	if len(d.Paths) != len(o.Paths) {
		return false
	}
	for i := range d.Paths {
		if !d.Paths[i].Equal(&o.Paths[i]) {
			return false
		}
	}
	return true
}

// CurrentPath returns the path receiving new points, or nil if the current
// index is out of range.
func (d *Document) CurrentPath() *Path {
	if d.Current < 0 || d.Current >= len(d.Paths) {
		return nil
	}
	return &d.Paths[d.Current]
}

// Plate returns the index of the base plate, or -1 if there is none.
func (d *Document) Plate() int {
	for i := range d.Paths {
		if d.Paths[i].IsPlate() {
			return i
		}
	}
	return -1
}

// PlateCount returns the number of fill paths with at least three points.
func (d *Document) PlateCount() int {
	n := 0
	for i := range d.Paths {
		if d.Paths[i].IsPlate() {
			n++
		}
	}
	return n
}

// PointSets returns the points of all paths, indexed like d.Paths.
// The slices alias the document.
func (d *Document) PointSets() [][]vec.Vec2 {
	res := make([][]vec.Vec2, len(d.Paths))
	for i := range d.Paths {
		res[i] = d.Paths[i].Points
	}
	return res
}

// Bounds returns the bounding box of all points of the given mode.
func (d *Document) Bounds(mode Mode) (rect.Rect, bool) {
	var res rect.Rect
	found := false
	for i := range d.Paths {
		p := &d.Paths[i]
		if p.Mode != mode {
			continue
		}
		r, ok := p.Bounds()
		if !ok {
			continue
		}
		if !found {
			res = r
			found = true
			continue
		}
		res.LLx = min(res.LLx, r.LLx)
		res.LLy = min(res.LLy, r.LLy)
		res.URx = max(res.URx, r.URx)
		res.URy = max(res.URy, r.URy)
	}
	return res, found
}

// AppendPoint adds a point to the current path.  The point is clamped to
// the working area.  Adding the third point to a fill path fails if the
// document already has a base plate.
func (d *Document) AppendPoint(p vec.Vec2) error {
	cur := d.CurrentPath()
	if cur == nil {
		return fmt.Errorf("current path %d: %w", d.Current, ErrBadIndex)
	}
	if cur.Mode == Fill && len(cur.Points) == 2 && d.Plate() >= 0 {
		return ErrFillExists
	}
	cur.Points = append(cur.Points, coord.ClampPoint(p))
	return nil
}

// StartNewPath makes an empty path with the given mode and type current.
// If the current path is already empty, it is re-tagged instead of adding
// another placeholder.  The return value is false if nothing changed.
func (d *Document) StartNewPath(mode Mode, typ Type) (bool, error) {
	if !mode.IsValid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(mode))
	}
	if !typ.IsValid() {
		return false, fmt.Errorf("%w: %d", ErrUnknownType, uint8(typ))
	}

	cur := d.CurrentPath()
	if cur != nil && len(cur.Points) == 0 && cur.Mode == mode && cur.Type == typ {
		d.Mode = mode
		d.Type = typ
		return false, nil
	}
	if mode == Fill && d.Plate() >= 0 {
		return false, ErrFillExists
	}

	d.Mode = mode
	d.Type = typ
	if cur != nil && len(cur.Points) == 0 {
		cur.Mode = mode
		cur.Type = typ
		return true, nil
	}
	d.Paths = append(d.Paths, Path{Mode: mode, Type: typ})
	d.Current = len(d.Paths) - 1
	return true, nil
}

// SwitchMode starts a new path with the given mode and the current type.
func (d *Document) SwitchMode(mode Mode) (bool, error) {
	return d.StartNewPath(mode, d.Type)
}

// SwitchType starts a new path with the current mode and the given type.
func (d *Document) SwitchType(typ Type) (bool, error) {
	return d.StartNewPath(d.Mode, typ)
}

func (d *Document) checkRef(ref PointRef) error {
	if ref.Path < 0 || ref.Path >= len(d.Paths) {
		return fmt.Errorf("path %d: %w", ref.Path, ErrBadIndex)
	}
	if ref.Point < 0 || ref.Point >= len(d.Paths[ref.Path].Points) {
		return fmt.Errorf("point %d of path %d: %w", ref.Point, ref.Path, ErrBadIndex)
	}
	return nil
}

// Point returns the coordinates of the referenced point.
func (d *Document) Point(ref PointRef) (vec.Vec2, error) {
	if err := d.checkRef(ref); err != nil {
		return vec.Vec2{}, err
	}
	return d.Paths[ref.Path].Points[ref.Point], nil
}

// DeletePoint removes a point.  If this leaves the path empty, the path is
// deleted as well.
func (d *Document) DeletePoint(ref PointRef) error {
	if err := d.checkRef(ref); err != nil {
		return err
	}
	p := &d.Paths[ref.Path]
	p.Points = append(p.Points[:ref.Point:ref.Point], p.Points[ref.Point+1:]...)
	if len(p.Points) == 0 {
		return d.DeletePath(ref.Path)
	}
	return nil
}

// DeletePath removes a path and renumbers the current index: it is
// decremented if an earlier path was removed, and moves to the new last
// path if the current path itself was removed.  Removing the last
// remaining path leaves a single empty placeholder.
func (d *Document) DeletePath(idx int) error {
	if idx < 0 || idx >= len(d.Paths) {
		return fmt.Errorf("path %d: %w", idx, ErrBadIndex)
	}
	d.Paths = append(d.Paths[:idx:idx], d.Paths[idx+1:]...)

	switch {
	case len(d.Paths) == 0:
		d.Paths = []Path{{Mode: d.Mode, Type: d.Type}}
		d.Current = 0
	case idx < d.Current:
		d.Current--
	case idx == d.Current:
		d.Current = len(d.Paths) - 1
	}
	return nil
}

// MergePoints moves point a onto the position of point b.  Both points stay
// in their paths.
func (d *Document) MergePoints(a, b PointRef) error {
	if err := d.checkRef(a); err != nil {
		return err
	}
	if err := d.checkRef(b); err != nil {
		return err
	}
	d.Paths[a.Path].Points[a.Point] = coord.ClampPoint(d.Paths[b.Path].Points[b.Point])
	return nil
}

// MovePoint sets the position of a point, clamped to the working area.
func (d *Document) MovePoint(ref PointRef, p vec.Vec2) error {
	if err := d.checkRef(ref); err != nil {
		return err
	}
	d.Paths[ref.Path].Points[ref.Point] = coord.ClampPoint(p)
	return nil
}

// ScaleAllPaths scales every point about pivot by factor.  The results are
// clamped to the working area.
func (d *Document) ScaleAllPaths(factor float64, pivot vec.Vec2) error {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return fmt.Errorf("invalid scale factor %g", factor)
	}
	for i := range d.Paths {
		pts := d.Paths[i].Points
		for j, p := range pts {
			pts[j] = coord.ClampPoint(pivot.Add(p.Sub(pivot).Mul(factor)))
		}
	}
	return nil
}

// Clear resets d to a single empty stroke/spline path.
func (d *Document) Clear() {
	*d = *New()
}

// ReplacePlate removes all fill paths and appends plate as the new base
// plate.  If the current path was removed, an empty stroke path is
// appended after the plate and becomes current.
func (d *Document) ReplacePlate(plate Path) {
	curIdx := -1
	kept := d.Paths[:0:0]
	for i := range d.Paths {
		if d.Paths[i].Mode == Fill {
			continue
		}
		if i == d.Current {
			curIdx = len(kept)
		}
		kept = append(kept, d.Paths[i])
	}

	plate = plate.Clone()
	plate.Mode = Fill
	for i, p := range plate.Points {
		plate.Points[i] = coord.ClampPoint(p)
	}
	kept = append(kept, plate)

	if curIdx < 0 {
		d.Mode = Stroke
		kept = append(kept, Path{Mode: Stroke, Type: d.Type})
		curIdx = len(kept) - 1
	}
	d.Paths = kept
	d.Current = curIdx
}

// Validate checks a document read from an external source.  Points are
// clamped, an out-of-range current index is moved to the last path, and an
// error is returned for unknown enum values or more than one base plate.
func (d *Document) Validate() error {
	if !d.Mode.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(d.Mode))
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownType, uint8(d.Type))
	}
	for i := range d.Paths {
		p := &d.Paths[i]
		if !p.Mode.IsValid() {
			return fmt.Errorf("path %d: %w", i, ErrUnknownMode)
		}
		if !p.Type.IsValid() {
			return fmt.Errorf("path %d: %w", i, ErrUnknownType)
		}
		for j, pt := range p.Points {
			p.Points[j] = coord.ClampPoint(pt)
		}
	}
	if d.PlateCount() > 1 {
		return ErrFillExists
	}
	if len(d.Paths) == 0 {
		d.Paths = []Path{{Mode: d.Mode, Type: d.Type}}
	}
	if d.Current < 0 || d.Current >= len(d.Paths) {
		d.Current = len(d.Paths) - 1
	}
	return nil
}
