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

// Package preview renders a raster image of a design: the base plate as a
// filled shape and the tubes as glowing strokes.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/neon/coord"
	"seehuhn.de/go/neon/curve"
	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/internal/logging"
	"seehuhn.de/go/neon/projection"
)

// Options control the appearance of a preview image.
type Options struct {
	Width, Height int

	UnitsPerCM  float64 // world units per centimetre
	TubeWidthCM float64 // outer diameter of the tubes

	// Glow is the width of the halo around each tube, as a multiple of the
	// tube width.  Zero disables the halo.
	Glow float64

	Cap graphics.LineCapStyle // line cap at the open ends of tubes

	Background color.RGBA
	Plate      color.RGBA
	Tube       color.RGBA
}

// DefaultOptions returns the settings used by the command line tool.
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		UnitsPerCM:  25,
		TubeWidthCM: 0.8,
		Glow:        3,
		Cap:         graphics.LineCapRound,
		Background:  color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff},
		Plate:       color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff},
		Tube:        color.RGBA{R: 0xff, G: 0x2a, B: 0x6d, A: 0xff},
	}
}

// borderFraction is the part of the image width and height kept free
// around the design.
const borderFraction = 0.05

// glowAlpha is the opacity of the halo relative to the tube colour.
const glowAlpha = 0.3

// FitView returns the view which centres the design in an image of the
// given size, leaving room for tubes of half width pad (in world units).
func FitView(doc *document.Document, width, height int, pad float64) (coord.View, error) {
	bbox, ok := projection.Bounds(doc)
	if !ok {
		return coord.View{}, projection.ErrEmpty
	}
	w := bbox.URx - bbox.LLx + 2*pad
	h := bbox.URy - bbox.LLy + 2*pad
	availW := float64(width) * (1 - 2*borderFraction)
	availH := float64(height) * (1 - 2*borderFraction)

	scale := coord.MaxScale * 1.0
	if w > 0 {
		scale = min(scale, availW/w)
	}
	if h > 0 {
		scale = min(scale, availH/h)
	}

	cx := (bbox.LLx + bbox.URx) / 2
	cy := (bbox.LLy + bbox.URy) / 2
	return coord.View{
		Scale:   scale,
		OffsetX: float64(width)/2 - cx*scale,
		OffsetY: float64(height)/2 - cy*scale,
	}, nil
}

// Render draws doc into a new image.  The plate is filled, then every
// tube is stroked twice: first wide and faded for the glow, then at the
// tube width.  All tubes of a pass are stroked together, so that crossing
// tubes do not add up.
func Render(doc *document.Document, opt Options) (*image.RGBA, error) {
	if opt.Width <= 0 || opt.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", opt.Width, opt.Height)
	}
	tubeWidth := opt.TubeWidthCM * opt.UnitsPerCM
	view, err := FitView(doc, opt.Width, opt.Height, tubeWidth/2*max(1, opt.Glow))
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Width, opt.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.Background), image.Point{}, draw.Src)

	r := NewRasterizer(rect.Rect{URx: float64(opt.Width), URy: float64(opt.Height)})
	r.CTM = view.Matrix()
	r.Cap = opt.Cap
	r.Join = graphics.LineJoinRound

	tubes := &path.Data{}
	numTubes := 0
	for i := range doc.Paths {
		p := &doc.Paths[i]
		if len(p.Points) == 0 {
			continue
		}
		outline := curve.Build(p)
		if p.Mode == document.Fill {
			r.FillNonZero(outline, paint(img, opt.Plate))
			continue
		}
		tubes.Cmds = append(tubes.Cmds, outline.Cmds...)
		tubes.Coords = append(tubes.Coords, outline.Coords...)
		numTubes++
	}

	if opt.Glow > 0 {
		r.Width = tubeWidth * opt.Glow
		r.Stroke(tubes, paint(img, fade(opt.Tube, glowAlpha)))
	}
	r.Width = tubeWidth
	r.Stroke(tubes, paint(img, opt.Tube))

	logging.Logger().Debug("preview rendered",
		"width", opt.Width, "height", opt.Height,
		"scale", view.Scale, "tubes", numTubes)
	return img, nil
}

// paint returns a coverage callback which composites the premultiplied
// colour c over img.
func paint(img *image.RGBA, c color.RGBA) func(y, xMin int, coverage []float32) {
	return func(y, xMin int, coverage []float32) {
		row := img.Pix[img.PixOffset(xMin, y):]
		for i, cov := range coverage {
			if cov <= 0 {
				continue
			}
			inv := 1 - float32(c.A)*cov/255
			px := row[4*i : 4*i+4 : 4*i+4]
			px[0] = blend(c.R, px[0], cov, inv)
			px[1] = blend(c.G, px[1], cov, inv)
			px[2] = blend(c.B, px[2], cov, inv)
			px[3] = blend(c.A, px[3], cov, inv)
		}
	}
}

// blend computes src*cov + dst*inv, rounded to the nearest byte.
func blend(src, dst uint8, cov, inv float32) uint8 {
	v := float32(src)*cov + float32(dst)*inv + 0.5
	return uint8(min(v, 255))
}

// fade returns c with its opacity multiplied by alpha, as a premultiplied
// colour.
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
