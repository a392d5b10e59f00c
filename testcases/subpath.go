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

import "seehuhn.de/go/neon/document"

var subpathCases = []Design{
	{
		Name: "far_apart",
		Paths: []document.Path{
			straight(0, 0, 100, 0),
			straight(600, 0, 700, 0),
		},
	},
	{
		Name: "nested",
		Paths: []document.Path{
			spline(-200, 0, 0, -200, 200, 0, 0, 200, -200, 0),
			spline(-40, 0, 0, -40, 40, 0),
		},
	},
	{
		Name: "crossing",
		Paths: []document.Path{
			straight(-100, -100, 100, 100),
			straight(-100, 100, 100, -100),
		},
	},
	{
		// an empty placeholder left after starting a new path
		Name: "trailing_empty",
		Paths: []document.Path{
			spline(0, 0, 50, 30, 100, 0),
			{Mode: document.Stroke, Type: document.Straight},
		},
	},
}
