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

package testcases

import (
	"seehuhn.de/go/neon/coord"
	"seehuhn.de/go/neon/document"
)

var viewCases = []Design{
	{
		Name:  "zoom_2x",
		Paths: []document.Path{spline(0, 0, 50, -40, 100, 0)},
		View:  coord.View{Scale: 2, OffsetX: 20, OffsetY: 100},
	},
	{
		Name:  "zoom_max",
		Paths: []document.Path{straight(0, 0, 10, 10)},
		View:  coord.View{Scale: coord.MaxScale},
	},
	{
		Name:  "zoom_min",
		Paths: []document.Path{straight(-3000, 0, 3000, 0)},
		View:  coord.View{Scale: coord.MinScale, OffsetX: 600, OffsetY: 300},
	},
	{
		Name: "panned",
		Paths: []document.Path{
			spline(0, 0, 30, 30, 60, 0),
			plate(document.Straight, -20, -20, 80, -20, 80, 50, -20, 50),
		},
		View: coord.View{Scale: 1, OffsetX: -400, OffsetY: 250},
	},
}
