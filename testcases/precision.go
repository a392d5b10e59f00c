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

var precisionCases = []Design{
	{
		Name: "bound_corners",
		Paths: []document.Path{
			straight(-coord.Bound, -coord.Bound, coord.Bound, -coord.Bound,
				coord.Bound, coord.Bound, -coord.Bound, coord.Bound),
		},
	},
	{
		Name:  "tiny",
		Paths: []document.Path{spline(0, 0, 0.3, 0.1, 0.6, 0, 0.9, 0.1)},
	},
	{
		// the result of merging two neighbouring points
		Name:  "coincident",
		Paths: []document.Path{spline(0, 0, 50, 50, 50, 50, 100, 0)},
	},
	{
		Name:  "collinear",
		Paths: []document.Path{straight(0, 0, 25, 25, 50, 50, 75, 75, 100, 100)},
	},
	{
		Name:  "thin",
		Paths: []document.Path{straight(0, 0, 400, 0.1)},
	},
}
