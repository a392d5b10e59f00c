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

// Package projection turns a design into the forms consumed outside of the
// editor: screen-space outlines for canvas drawing, SVG path strings and
// documents, and a printable PDF template.
//
// All projections obtain their curves from [curve.Build].
package projection

import (
	"errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/neon/coord"
	"seehuhn.de/go/neon/curve"
	"seehuhn.de/go/neon/document"
)

// ErrEmpty is returned when a design without points is exported.
var ErrEmpty = errors.New("design has no points")

// Item is the screen-space outline of one path, as drawn on the canvas.
// Styling (colours, tube width, glow) is left to the caller.
type Item struct {
	Index   int // index of the path in the document
	Mode    document.Mode
	Type    document.Type
	Outline *path.Data
}

// Render returns the outlines of all non-empty paths of doc, mapped to
// screen space by v.  Fill paths come first, so that tubes are drawn on
// top of the plate.
func Render(doc *document.Document, v coord.View) []Item {
	m := v.Matrix()
	var fills, strokes []Item
	for i := range doc.Paths {
		p := &doc.Paths[i]
		if len(p.Points) == 0 {
			continue
		}
		item := Item{
			Index:   i,
			Mode:    p.Mode,
			Type:    p.Type,
			Outline: curve.Transform(curve.Build(p), m),
		}
		if p.Mode == document.Fill {
			fills = append(fills, item)
		} else {
			strokes = append(strokes, item)
		}
	}
	return append(fills, strokes...)
}

// Bounds returns the bounding box of all points of doc.
func Bounds(doc *document.Document) (rect.Rect, bool) {
	r, ok := doc.Bounds(document.Stroke)
	f, okF := doc.Bounds(document.Fill)
	switch {
	case !okF:
		return r, ok
	case !ok:
		return f, okF
	}
	return rect.Rect{
		LLx: min(r.LLx, f.LLx),
		LLy: min(r.LLy, f.LLy),
		URx: max(r.URx, f.URx),
		URy: max(r.URy, f.URy),
	}, true
}
