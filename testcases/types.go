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

// Package testcases provides named sample designs for tests, benchmarks
// and the export tools.
package testcases

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/coord"
	"seehuhn.de/go/neon/document"
)

// Design is a sample neon sign.
type Design struct {
	Name  string          // lowercase a-z, 0-9 and _ only
	Paths []document.Path // tubes and at most one plate
	View  coord.View      // canvas view (zero value means identity)
}

// Document returns a new document holding the paths of d.  The last path
// is current, and its mode and type are used for new paths.
func (d Design) Document() *document.Document {
	if len(d.Paths) == 0 {
		return document.New()
	}
	doc := &document.Document{
		Paths:   make([]document.Path, len(d.Paths)),
		Current: len(d.Paths) - 1,
	}
	for i := range d.Paths {
		doc.Paths[i] = d.Paths[i].Clone()
	}
	last := doc.Paths[doc.Current]
	doc.Mode = last.Mode
	doc.Type = last.Type
	return doc
}

// CanvasView returns the view of d, using the identity view if none is
// set.
func (d Design) CanvasView() coord.View {
	if d.View.Scale == 0 {
		return coord.NewView()
	}
	return d.View
}

// Tubes reports whether d has at least one stroke path with points.
func (d Design) Tubes() bool {
	for i := range d.Paths {
		if d.Paths[i].Mode == document.Stroke && len(d.Paths[i].Points) > 0 {
			return true
		}
	}
	return false
}

// pts builds a point list from x, y pairs.
func pts(coords ...float64) []vec.Vec2 {
	res := make([]vec.Vec2, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		res = append(res, vec.Vec2{X: coords[i], Y: coords[i+1]})
	}
	return res
}

func spline(coords ...float64) document.Path {
	return document.Path{Points: pts(coords...), Mode: document.Stroke, Type: document.Spline}
}

func straight(coords ...float64) document.Path {
	return document.Path{Points: pts(coords...), Mode: document.Stroke, Type: document.Straight}
}

func plate(typ document.Type, coords ...float64) document.Path {
	return document.Path{Points: pts(coords...), Mode: document.Fill, Type: typ}
}
