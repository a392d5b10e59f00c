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

// Package autoshape generates base plate outlines around the tubes of a
// design.
//
// Every generator looks at the stroke paths of a document, grows their
// extent by a margin given in centimetres and returns a fill path.  The
// caller installs the result with [document.Document.ReplacePlate], which
// removes any previous plate.
package autoshape

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/neon/coord"
	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/geometry"
	"seehuhn.de/go/neon/internal/logging"
)

var (
	// ErrNoTubes is returned when the document has no stroke path with
	// points.
	ErrNoTubes = errors.New("no tube paths to enclose")

	// ErrTooComplex is returned when no usable outline could be computed.
	ErrTooComplex = errors.New("shape too complex, try a simpler generator")
)

// Params holds the tuning values of the generators.
type Params struct {
	UnitsPerCM    float64 // world units per centimetre
	EdgeSpacing   float64 // distance between outline points, in world units
	CircleStepDeg float64 // angular step for stamping circles around tube points
	SplineSamples int     // samples per spline segment when densifying tubes
	EnvelopeCell  float64 // grid cell for Contour; 0 derives it from the margin
}

// DefaultParams returns the standard parameters: 25 units per cm, points
// every 5 units, circles stamped at 5° steps, and 10 samples per spline
// segment.
func DefaultParams() Params {
	return Params{
		UnitsPerCM:    25,
		EdgeSpacing:   5,
		CircleStepDeg: geometry.DefaultStepDeg,
		SplineSamples: 10,
	}
}

// Generator computes plate outlines.
type Generator struct {
	Params
}

// New returns a generator using the given parameters.
func New(p Params) *Generator {
	return &Generator{Params: p}
}

// tubePoints returns the points of all stroke paths.  The plate extents
// are measured on these points, not on the curves through them, so that a
// Catmull-Rom overshoot does not widen the plate.
func tubePoints(doc *document.Document) ([]vec.Vec2, error) {
	var res []vec.Vec2
	for i := range doc.Paths {
		p := &doc.Paths[i]
		if p.Mode == document.Stroke {
			res = append(res, p.Points...)
		}
	}
	if len(res) == 0 {
		return nil, ErrNoTubes
	}
	return res, nil
}

// tubeSamples returns densely spaced points along all stroke paths, for
// the contour outline.  Spline paths are sampled along the Catmull-Rom
// curve, straight paths are subdivided at the edge spacing.
func (g *Generator) tubeSamples(doc *document.Document) []vec.Vec2 {
	var res []vec.Vec2
	for i := range doc.Paths {
		p := &doc.Paths[i]
		if p.Mode != document.Stroke || len(p.Points) == 0 {
			continue
		}
		if p.Type == document.Spline {
			res = append(res, geometry.Interpolate(p.Points, g.SplineSamples, false)...)
		} else {
			res = append(res, subdivide(p.Points, g.EdgeSpacing)...)
		}
	}
	return res
}

// subdivide inserts points into every segment of a polyline, so that
// consecutive points are at most spacing apart.
func subdivide(points []vec.Vec2, spacing float64) []vec.Vec2 {
	if len(points) < 2 || !(spacing > 0) {
		return points
	}
	res := make([]vec.Vec2, 0, len(points))
	for i := range len(points) - 1 {
		a, b := points[i], points[i+1]
		n := max(1, int(math.Ceil(geometry.Dist(a, b)/spacing)))
		for k := range n {
			res = append(res, a.Add(b.Sub(a).Mul(float64(k)/float64(n))))
		}
	}
	return append(res, points[len(points)-1])
}

func (g *Generator) units(name string, cm float64) (float64, error) {
	if cm < 0 || math.IsNaN(cm) || math.IsInf(cm, 0) {
		return 0, fmt.Errorf("invalid %s %g cm", name, cm)
	}
	return cm * g.UnitsPerCM, nil
}

func plate(points []vec.Vec2) document.Path {
	res := document.Path{
		Points: make([]vec.Vec2, len(points)),
		Mode:   document.Fill,
		Type:   document.Spline,
	}
	for i, p := range points {
		res.Points[i] = coord.ClampPoint(p)
	}
	return res
}

func bbox(points []vec.Vec2) rect.Rect {
	xMin, yMin, xMax, yMax, _ := geometry.Bounds(points)
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}

// Rectangle returns a rectangle enclosing the tube points with the given
// margin.
// If radiusCm is positive, the corners are rounded with this radius.
func (g *Generator) Rectangle(doc *document.Document, marginCm, radiusCm float64) (document.Path, error) {
	points, err := tubePoints(doc)
	if err != nil {
		return document.Path{}, err
	}
	margin, err := g.units("margin", marginCm)
	if err != nil {
		return document.Path{}, err
	}
	radius, err := g.units("corner radius", radiusCm)
	if err != nil {
		return document.Path{}, err
	}
	return g.rectangle(points, margin, radius)
}

func (g *Generator) rectangle(points []vec.Vec2, margin, radius float64) (document.Path, error) {
	r := bbox(points)
	r.LLx -= margin
	r.LLy -= margin
	r.URx += margin
	r.URy += margin

	pts := geometry.RectangleEdge(r, radius, g.EdgeSpacing)
	if len(pts) < 3 {
		logging.Logger().Warn("rectangle outline is degenerate",
			"width", r.URx-r.LLx, "height", r.URy-r.LLy)
		return document.Path{}, ErrTooComplex
	}
	logging.Logger().Debug("rectangle plate",
		"tubePoints", len(points), "points", len(pts), "radius", radius)
	return plate(pts), nil
}

// Circle returns a circle around the tubes.  The centre is the centre of
// the bounding box of the tube points, moved down (towards larger y) by
// offsetCm.  The radius reaches the farthest tube point plus the margin,
// so a non-zero offset also enlarges the circle.
func (g *Generator) Circle(doc *document.Document, marginCm, offsetCm float64) (document.Path, error) {
	points, err := tubePoints(doc)
	if err != nil {
		return document.Path{}, err
	}
	margin, err := g.units("margin", marginCm)
	if err != nil {
		return document.Path{}, err
	}
	if math.IsNaN(offsetCm) || math.IsInf(offsetCm, 0) {
		return document.Path{}, fmt.Errorf("invalid offset %g cm", offsetCm)
	}

	r := bbox(points)
	center := vec.Vec2{
		X: (r.LLx + r.URx) / 2,
		Y: (r.LLy+r.URy)/2 + offsetCm*g.UnitsPerCM,
	}
	radius := 0.0
	for _, p := range points {
		radius = max(radius, geometry.Dist(center, p))
	}
	radius += margin
	if !(radius > 0) {
		return document.Path{}, ErrTooComplex
	}

	pts := geometry.EllipseEdge(center, radius, radius, g.EdgeSpacing)
	logging.Logger().Debug("circle plate",
		"tubePoints", len(points), "points", len(pts), "radius", radius)
	return plate(pts), nil
}

// Ellipse returns the ellipse through the corners of the bounding box of
// the tube points,
// grown by the margin.  The semi-axes are the half extents times √2, plus
// the margin.
func (g *Generator) Ellipse(doc *document.Document, marginCm float64) (document.Path, error) {
	points, err := tubePoints(doc)
	if err != nil {
		return document.Path{}, err
	}
	margin, err := g.units("margin", marginCm)
	if err != nil {
		return document.Path{}, err
	}

	r := bbox(points)
	center := vec.Vec2{X: (r.LLx + r.URx) / 2, Y: (r.LLy + r.URy) / 2}
	rx := (r.URx-r.LLx)/2*math.Sqrt2 + margin
	ry := (r.URy-r.LLy)/2*math.Sqrt2 + margin
	if !(rx > 0 && ry > 0) {
		return document.Path{}, ErrTooComplex
	}

	pts := geometry.EllipseEdge(center, rx, ry, g.EdgeSpacing)
	logging.Logger().Debug("ellipse plate",
		"tubePoints", len(points), "points", len(pts), "rx", rx, "ry", ry)
	return plate(pts), nil
}

// AutoShape returns the convex hull of circles of radius marginCm around
// all tube points.  If the hull is degenerate, the enclosing rectangle is
// used instead.
func (g *Generator) AutoShape(doc *document.Document, marginCm float64) (document.Path, error) {
	points, err := tubePoints(doc)
	if err != nil {
		return document.Path{}, err
	}
	margin, err := g.units("margin", marginCm)
	if err != nil {
		return document.Path{}, err
	}
	return g.autoShape(points, margin)
}

func (g *Generator) autoShape(points []vec.Vec2, margin float64) (document.Path, error) {
	hull := geometry.OffsetHull(points, margin, g.CircleStepDeg)
	if len(hull) < 3 {
		logging.Logger().Warn("convex outline is degenerate, using rectangle",
			"tubePoints", len(points), "hull", len(hull))
		return g.rectangle(points, margin, 0)
	}
	logging.Logger().Debug("convex plate",
		"tubePoints", len(points), "points", len(hull))
	return plate(hull), nil
}

// Contour returns an outline which follows concave tube arrangements, at
// distance marginCm from the tubes.  Unlike the other generators it
// follows the tube curves, sampled densely.  If no such outline can be
// found, the convex outline of [Generator.AutoShape] is used instead.
func (g *Generator) Contour(doc *document.Document, marginCm float64) (document.Path, error) {
	points, err := tubePoints(doc)
	if err != nil {
		return document.Path{}, err
	}
	samples := g.tubeSamples(doc)
	margin, err := g.units("margin", marginCm)
	if err != nil {
		return document.Path{}, err
	}

	pts, err := geometry.Envelope(samples, margin, g.EnvelopeCell)
	if err != nil {
		logging.Logger().Warn("contour failed, using convex outline",
			"samples", len(samples), "error", err)
		return g.autoShape(points, margin)
	}
	logging.Logger().Debug("contour plate",
		"samples", len(samples), "points", len(pts))
	return plate(pts), nil
}
