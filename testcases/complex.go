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

var complexCases = []Design{
	{
		Name: "heart",
		Paths: []document.Path{
			spline(0, 40, -60, -20, -40, -70, 0, -40, 40, -70, 60, -20, 0, 40),
		},
	},
	{
		// the word "hi" as three tubes
		Name: "lettering",
		Paths: []document.Path{
			straight(0, -100, 0, 0),
			spline(0, -40, 30, -60, 60, -40, 60, 0),
			straight(100, -60, 100, 0),
			straight(100, -90),
		},
	},
	{
		Name: "sign",
		Paths: []document.Path{
			spline(-150, 0, -100, -50, -50, 0, 0, -50, 50, 0, 100, -50, 150, 0),
			straight(-150, 40, 150, 40),
			plate(document.Spline, -200, -100, 200, -100, 200, 90, -200, 90),
		},
	},
	{
		Name: "spiral",
		Paths: []document.Path{
			spline(0, 0, 20, 0, 20, 20, -20, 20, -20, -30, 40, -30, 40, 40, -50, 40, -50, -60, 70, -60),
		},
	},
}
