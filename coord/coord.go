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

// Package coord maps between screen and world coordinates, enforces the
// bounds of the physical working area and finds points under the cursor.
package coord

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Bound is the largest absolute world coordinate.  At 25 units per cm this
// is a 3 m × 3 m working area centred on the origin.
const Bound = 3750

// Clamp limits both coordinates to [-Bound, Bound] and rounds them to one
// decimal digit.  Clamp is idempotent.
func Clamp(x, y float64) (float64, float64) {
	return clampAxis(x), clampAxis(y)
}

// ClampPoint applies [Clamp] to a point.
func ClampPoint(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: clampAxis(p.X), Y: clampAxis(p.Y)}
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = max(-Bound, min(Bound, v))
	r := math.Round(v*10) / 10
	if r == 0 {
		return 0 // no negative zero
	}
	return r
}
