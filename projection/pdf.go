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

package projection

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	pdfdoc "seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/neon/curve"
	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/geometry"
	"seehuhn.de/go/neon/internal/logging"
)

const pointsPerMM = 72 / 25.4

// PDFOptions control the print template.
type PDFOptions struct {
	UnitsPerCM  float64 // world units per centimetre
	MarginMM    float64 // white space around the design
	TubeWidthCM float64 // outer diameter of the tubes
}

// pathBuilder is the part of a PDF page used to construct paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// WritePDF writes a single page PDF showing the design at 1:1 physical
// scale: the plate outline, the tube centre lines (dashed) and the walls of
// each tube.
func WritePDF(fname string, doc *document.Document, opt PDFOptions) error {
	bbox, ok := Bounds(doc)
	if !ok {
		return ErrEmpty
	}

	scale := 10 * pointsPerMM / opt.UnitsPerCM // PDF points per world unit
	halfTube := opt.TubeWidthCM * opt.UnitsPerCM / 2
	margin := opt.MarginMM*pointsPerMM + halfTube*scale

	paper := &pdf.Rectangle{
		URx: (bbox.URx-bbox.LLx)*scale + 2*margin,
		URy: (bbox.URy-bbox.LLy)*scale + 2*margin,
	}
	page, err := pdfdoc.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// world y points down, PDF y points up
	page.Transform(matrix.Matrix{
		scale, 0,
		0, -scale,
		margin - bbox.LLx*scale, margin + bbox.URy*scale,
	})
	hairline := 0.5 / scale

	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	for i := range doc.Paths {
		p := &doc.Paths[i]
		if p.Mode != document.Fill || len(p.Points) < 3 {
			continue
		}
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(2 * hairline)
		drawOutline(page, curve.Build(p))
		page.Stroke()
	}

	nWalls := 0
	for i := range doc.Paths {
		p := &doc.Paths[i]
		if p.Mode != document.Stroke || len(p.Points) == 0 {
			continue
		}
		outline := curve.Build(p)

		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(hairline)
		page.SetLineDash([]float64{4 * hairline, 4 * hairline}, 0)
		drawOutline(page, outline)
		page.Stroke()

		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineDash(nil, 0)
		for _, pl := range curve.Flatten(outline, curve.DefaultFlatness) {
			if pl.IsDot() {
				continue
			}
			pts := pl.Points
			if pl.Closed {
				pts = append(pts[:len(pts):len(pts)], pts[0])
			}
			for _, side := range []float64{-halfTube, halfTube} {
				drawPolyline(page, geometry.OffsetPolyline(pts, side))
				nWalls++
			}
		}
		page.Stroke()
	}

	logging.Logger().Debug("pdf template written",
		"file", fname, "walls", nWalls,
		"widthMM", paper.URx/pointsPerMM, "heightMM", paper.URy/pointsPerMM)
	return page.Close()
}

func drawOutline(b pathBuilder, d *path.Data) {
	for cmd, pts := range d.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			b.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			b.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			b.ClosePath()
		}
	}
}

func drawPolyline(b pathBuilder, pts []vec.Vec2) {
	if len(pts) == 0 {
		return
	}
	b.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		b.LineTo(p.X, p.Y)
	}
}
