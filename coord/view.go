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

package coord

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Zoom limits.
const (
	MaxScale            = 20
	MinScale            = 0.18
	MinScaleCompact     = 0.1 // touch devices and narrow viewports
	hitRadiusScreen     = 12  // hit radius in screen pixels
	hitRadiusWorldFloor = 6   // smallest hit radius in world units
)

// View describes the pan and zoom state of the drawing canvas.
// Screen coordinates are obtained from world coordinates by scaling with
// Scale and then translating by (OffsetX, OffsetY).
type View struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`

	// Compact selects the lower zoom limit for touch-capable or narrow
	// viewports.
	Compact bool `json:"-"`
}

// NewView returns the identity view.
func NewView() View {
	return View{Scale: 1}
}

// MinScale returns the smallest permitted zoom factor.
func (v View) MinScale() float64 {
	if v.Compact {
		return MinScaleCompact
	}
	return MinScale
}

// ClampScale limits the scale to [MinScale, MaxScale].  A scale which is
// not a positive number is reset to 1.
func (v *View) ClampScale() {
	if !(v.Scale > 0) {
		v.Scale = 1
	}
	v.Scale = max(v.MinScale(), min(MaxScale, v.Scale))
}

// ToWorld converts screen coordinates to world coordinates.
func (v View) ToWorld(sx, sy float64) vec.Vec2 {
	return vec.Vec2{
		X: (sx - v.OffsetX) / v.Scale,
		Y: (sy - v.OffsetY) / v.Scale,
	}
}

// ToScreen converts world coordinates to screen coordinates.
func (v View) ToScreen(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.X*v.Scale + v.OffsetX,
		Y: p.Y*v.Scale + v.OffsetY,
	}
}

// Matrix returns the world-to-screen transformation.
func (v View) Matrix() matrix.Matrix {
	return matrix.Matrix{v.Scale, 0, 0, v.Scale, v.OffsetX, v.OffsetY}
}

// ZoomAt multiplies the scale by factor, limited to [MinScale, MaxScale],
// keeping the world point under the screen position (sx, sy) fixed.
func (v *View) ZoomAt(factor, sx, sy float64) {
	if !(factor > 0) {
		return
	}
	pivot := v.ToWorld(sx, sy)
	v.Scale = max(v.MinScale(), min(MaxScale, v.Scale*factor))
	v.OffsetX = sx - pivot.X*v.Scale
	v.OffsetY = sy - pivot.Y*v.Scale
}

// Pan moves the view by (dx, dy) screen pixels.
func (v *View) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// HitRadius returns the world-space radius used for picking points.  It
// corresponds to 12 screen pixels, but is never below 6 world units.
func (v View) HitRadius() float64 {
	return max(hitRadiusScreen/v.Scale, hitRadiusWorldFloor)
}
