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

package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/neon/coord"
	"seehuhn.de/go/neon/curve"
	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/projection"
	"seehuhn.de/go/neon/testcases"
)

func sampleDesign() *document.Document {
	doc := document.New()
	doc.Paths = []document.Path{
		{
			Points: []vec.Vec2{{X: 0, Y: 0}, {X: 200, Y: 0}},
			Type:   document.Straight,
		},
		{
			Points: []vec.Vec2{{X: -50, Y: -50}, {X: 250, Y: -50}, {X: 250, Y: 50}, {X: -50, Y: 50}},
			Mode:   document.Fill,
			Type:   document.Straight,
		},
	}
	return doc
}

func TestFitView(t *testing.T) {
	v, err := FitView(sampleDesign(), 400, 200, 10)
	if err != nil {
		t.Fatal(err)
	}
	if v.Scale != 1.125 {
		t.Errorf("expected scale 1.125, got %g", v.Scale)
	}
	got := v.ToScreen(vec.Vec2{X: 100, Y: 0})
	if got != (vec.Vec2{X: 200, Y: 100}) {
		t.Errorf("design centre maps to %v", got)
	}

	if _, err := FitView(document.New(), 400, 200, 10); !errors.Is(err, projection.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

func TestRender(t *testing.T) {
	opt := DefaultOptions()
	opt.Width = 400
	opt.Height = 200
	opt.Glow = 0

	img, err := Render(sampleDesign(), opt)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"tube", 200, 100, opt.Tube},
		{"tube end", 88, 100, opt.Tube},
		{"plate", 200, 145, opt.Plate},
		{"background", 5, 5, opt.Background},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
				t.Errorf("pixel (%d,%d): expected %v, got %v", tc.x, tc.y, tc.want, got)
			}
		})
	}
}

func TestRenderGlow(t *testing.T) {
	opt := DefaultOptions()
	opt.Width = 400
	opt.Height = 200

	withGlow, err := Render(sampleDesign(), opt)
	if err != nil {
		t.Fatal(err)
	}
	opt.Glow = 0
	plain, err := Render(sampleDesign(), opt)
	if err != nil {
		t.Fatal(err)
	}

	// just outside the tube, inside the halo
	v, _ := FitView(sampleDesign(), 400, 200, 10*3)
	p := v.ToScreen(vec.Vec2{X: 100, Y: 15})
	x, y := int(p.X), int(p.Y)
	if withGlow.RGBAAt(x, y) == plain.RGBAAt(x, y) {
		t.Errorf("no halo at (%d,%d)", x, y)
	}
}

// coverageGrid rasterises into a size×size grid of coverage values.
type coverageGrid struct {
	size int
	cov  []float32
}

func newCoverageGrid(size int) *coverageGrid {
	return &coverageGrid{size: size, cov: make([]float32, size*size)}
}

func (g *coverageGrid) emit(y, xMin int, coverage []float32) {
	copy(g.cov[y*g.size+xMin:], coverage)
}

func (g *coverageGrid) at(x, y int) float32 {
	return g.cov[y*g.size+x]
}

func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	coverage := make([]float32, 10)
	r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-want)) > 1e-6 {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, want, coverage[x])
		}
	}
}

// TestBufferLayouts checks that the 2D buffer and the active edge list
// give the same coverage.
func TestBufferLayouts(t *testing.T) {
	const size = 64
	ring := curve.BuildPoints([]vec.Vec2{
		{X: 8, Y: 32}, {X: 32, Y: 6}, {X: 58, Y: 30}, {X: 30, Y: 56},
	}, document.Fill, document.Spline)

	render := func(threshold int, stroke bool) *coverageGrid {
		g := newCoverageGrid(size)
		r := NewRasterizer(rect.Rect{URx: size, URy: size})
		r.smallPathThreshold = threshold
		r.Width = 5
		r.Join = graphics.LineJoinRound
		if stroke {
			r.Stroke(ring, g.emit)
		} else {
			r.FillNonZero(ring, g.emit)
		}
		return g
	}

	for _, stroke := range []bool{false, true} {
		t.Run(fmt.Sprintf("stroke=%t", stroke), func(t *testing.T) {
			a := render(1<<30, stroke)
			b := render(0, stroke)
			for i := range a.cov {
				if math.Abs(float64(a.cov[i]-b.cov[i])) > 1e-5 {
					t.Fatalf("pixel (%d,%d): %g != %g", i%size, i/size, a.cov[i], b.cov[i])
				}
			}
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	const size = 64
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 50, Y: 10}).
		LineTo(vec.Vec2{X: 50, Y: 50})

	cases := []struct {
		name     string
		join     graphics.LineJoinStyle
		min, max float32 // coverage of the pixel outside the corner
	}{
		{"miter", graphics.LineJoinMiter, 1, 1},
		{"round", graphics.LineJoinRound, 0.05, 0.95},
		{"bevel", graphics.LineJoinBevel, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newCoverageGrid(size)
			r := NewRasterizer(rect.Rect{URx: size, URy: size})
			r.Width = 4
			r.Join = tc.join
			r.Stroke(corner, g.emit)

			if got := g.at(51, 8); got < tc.min-1e-5 || got > tc.max+1e-5 {
				t.Errorf("corner pixel: expected coverage in [%g,%g], got %g", tc.min, tc.max, got)
			}
			for _, p := range []struct {
				x, y int
				want float32
			}{
				{30, 10, 1}, // first segment
				{50, 30, 1}, // second segment
				{50, 10, 1}, // joint
				{30, 30, 0}, // inside the corner, away from the tube
			} {
				if got := g.at(p.x, p.y); math.Abs(float64(got-p.want)) > 1e-5 {
					t.Errorf("pixel (%d,%d): expected %g, got %g", p.x, p.y, p.want, got)
				}
			}
		})
	}
}

func TestStrokeCaps(t *testing.T) {
	const size = 32
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 10, Y: 10}).
		LineTo(vec.Vec2{X: 20, Y: 10})

	cases := []struct {
		name      string
		cap       graphics.LineCapStyle
		near, far float32 // pixels (9,10) and (8,10), left of the start point
	}{
		{"butt", graphics.LineCapButt, 0, 0},
		{"round", graphics.LineCapRound, 1, -1},
		{"square", graphics.LineCapSquare, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newCoverageGrid(size)
			r := NewRasterizer(rect.Rect{URx: size, URy: size})
			r.Width = 4
			r.Cap = tc.cap
			r.Stroke(line, g.emit)

			if got := g.at(9, 10); math.Abs(float64(got-tc.near)) > 1e-5 {
				t.Errorf("pixel (9,10): expected %g, got %g", tc.near, got)
			}
			got := g.at(8, 10)
			if tc.far < 0 {
				// partly covered by the rim of the round cap
				if got <= 0 || got >= 1 {
					t.Errorf("pixel (8,10): expected partial coverage, got %g", got)
				}
			} else if math.Abs(float64(got-tc.far)) > 1e-5 {
				t.Errorf("pixel (8,10): expected %g, got %g", tc.far, got)
			}
		})
	}
}

func TestDot(t *testing.T) {
	const size = 32
	dot := curve.BuildPoints([]vec.Vec2{{X: 16, Y: 16}}, document.Stroke, document.Spline)

	g := newCoverageGrid(size)
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.Width = 6
	r.Cap = graphics.LineCapRound
	r.Stroke(dot, g.emit)
	if got := g.at(16, 16); math.Abs(float64(got-1)) > 1e-5 {
		t.Errorf("dot centre: expected 1, got %g", got)
	}
	if got := g.at(2, 2); got != 0 {
		t.Errorf("outside dot: expected 0, got %g", got)
	}

	// with butt caps a single point has no extent
	g = newCoverageGrid(size)
	r.Cap = graphics.LineCapButt
	r.Stroke(dot, g.emit)
	if got := g.at(16, 16); got != 0 {
		t.Errorf("butt dot: expected 0, got %g", got)
	}
}

// TestStrokeView checks that the tube width is given in world units and
// scaled by the view.
func TestStrokeView(t *testing.T) {
	const size = 32
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0})

	v := coord.View{Scale: 2, OffsetX: 5, OffsetY: 16}
	g := newCoverageGrid(size)
	r := NewRasterizer(rect.Rect{URx: size, URy: size})
	r.CTM = v.Matrix()
	r.Width = 2 // 4 pixels
	r.Stroke(line, g.emit)

	cases := []struct {
		x, y int
		want float32
	}{
		{15, 14, 1},
		{15, 17, 1},
		{15, 18, 0},
		{15, 13, 0},
		{26, 16, 0}, // beyond the butt end at x=25
	}
	for _, tc := range cases {
		if got := g.at(tc.x, tc.y); math.Abs(float64(got-tc.want)) > 1e-5 {
			t.Errorf("pixel (%d,%d): expected %g, got %g", tc.x, tc.y, tc.want, got)
		}
	}
}

func TestPaint(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	bg := color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
	for x := range 4 {
		img.SetRGBA(x, 0, bg)
	}
	fg := color.RGBA{R: 0xff, A: 0xff}
	paint(img, fg)(0, 1, []float32{1, 0.5, 0})

	cases := []struct {
		x    int
		want color.RGBA
	}{
		{0, bg},
		{1, fg},
		{2, color.RGBA{R: 0x88, G: 0x08, B: 0x08, A: 0xff}},
		{3, bg},
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, 0); got != tc.want {
			t.Errorf("pixel %d: expected %v, got %v", tc.x, tc.want, got)
		}
	}
}

func BenchmarkRender(b *testing.B) {
	doc := sampleDesign()
	doc.Paths[0].Type = document.Spline
	doc.Paths[0].Points = []vec.Vec2{{X: 0, Y: 0}, {X: 50, Y: 40}, {X: 100, Y: -40}, {X: 150, Y: 40}, {X: 200, Y: 0}}

	for _, size := range []int{100, 400, 1600} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			opt := DefaultOptions()
			opt.Width = size
			opt.Height = size
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Render(doc, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRasterizerBaseline fills the same rectangle as
// BenchmarkVectorBaseline with the preview rasterizer.
func BenchmarkRasterizerBaseline(b *testing.B) {
	for _, size := range []int{100, 400, 1600} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			s := float64(size)
			r := NewRasterizer(rect.Rect{URx: s, URy: s})
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			box := (&path.Data{}).
				MoveTo(vec.Vec2{X: 0.1 * s, Y: 0.3 * s}).
				LineTo(vec.Vec2{X: 0.9 * s, Y: 0.3 * s}).
				LineTo(vec.Vec2{X: 0.9 * s, Y: 0.7 * s}).
				LineTo(vec.Vec2{X: 0.1 * s, Y: 0.7 * s}).
				Close()
			emit := paint(dst, color.RGBA{R: 0xff, A: 0xff})
			b.ReportAllocs()
			for b.Loop() {
				r.FillNonZero(box, emit)
			}
		})
	}
}

// BenchmarkVectorBaseline fills a single rectangle directly with
// x/image/vector, as a lower bound for Render.
func BenchmarkVectorBaseline(b *testing.B) {
	for _, size := range []int{100, 400, 1600} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewRGBA(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.RGBA{R: 0xff, A: 0xff})
			s := float32(size)
			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(0.1*s, 0.3*s)
				r.LineTo(0.9*s, 0.3*s)
				r.LineTo(0.9*s, 0.7*s)
				r.LineTo(0.1*s, 0.7*s)
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkSampleDesigns(b *testing.B) {
	opt := DefaultOptions()
	for _, d := range testcases.All["large"] {
		doc := d.Document()
		b.Run(d.Name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Render(doc, opt); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
