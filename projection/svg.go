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
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/curve"
	"seehuhn.de/go/neon/document"
)

// formatNumber writes v rounded to two decimal places, without trailing
// zeros.
func formatNumber(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // no "-0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func writePoint(b *strings.Builder, p vec.Vec2) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(p.Y))
}

// SVGPath converts an outline into SVG path data using the M, L, C and Z
// commands.  Quadratic segments are raised to cubics.
func SVGPath(d *path.Data) string {
	var b strings.Builder
	for cmd, pts := range d.Iter().ToCubic() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteString("M ")
			writePoint(&b, pts[0])
		case path.CmdLineTo:
			b.WriteString("L ")
			writePoint(&b, pts[0])
		case path.CmdCubeTo:
			b.WriteString("C ")
			writePoint(&b, pts[0])
			b.WriteString(", ")
			writePoint(&b, pts[1])
			b.WriteString(", ")
			writePoint(&b, pts[2])
		case path.CmdClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// SVGPaths returns one path string for all stroke paths and one for all
// fill paths of doc, in world coordinates.
func SVGPaths(doc *document.Document) (stroke, fill string) {
	var sb, fb strings.Builder
	for i := range doc.Paths {
		p := &doc.Paths[i]
		if len(p.Points) == 0 {
			continue
		}
		b := &sb
		if p.Mode == document.Fill {
			b = &fb
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(SVGPath(curve.Build(p)))
	}
	return sb.String(), fb.String()
}

// SVGOptions control the appearance of an exported SVG document.
type SVGOptions struct {
	TubeColor  string  // CSS colour of the tubes
	PlateColor string  // CSS colour of the base plate
	TubeWidth  float64 // stroke width in world units
	Margin     float64 // space around the design in world units
}

// SVGDocument writes doc as a standalone SVG document.  The view box
// covers the design plus the margin, one world unit per user unit.
func SVGDocument(w io.Writer, doc *document.Document, opt SVGOptions) error {
	bbox, ok := Bounds(doc)
	if !ok {
		return ErrEmpty
	}
	pad := opt.Margin + opt.TubeWidth/2
	x0 := bbox.LLx - pad
	y0 := bbox.LLy - pad
	width := bbox.URx - bbox.LLx + 2*pad
	height := bbox.URy - bbox.LLy + 2*pad

	stroke, fill := SVGPaths(doc)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%s" height="%s">`+"\n",
		formatNumber(x0), formatNumber(y0), formatNumber(width), formatNumber(height),
		formatNumber(width), formatNumber(height))
	if fill != "" {
		fmt.Fprintf(bw, `  <path d="%s" fill="%s" fill-rule="nonzero"/>`+"\n", fill, opt.PlateColor)
	}
	if stroke != "" {
		fmt.Fprintf(bw, `  <path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			stroke, opt.TubeColor, formatNumber(opt.TubeWidth))
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}
