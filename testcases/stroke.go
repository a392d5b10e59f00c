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

var strokeCases = []Design{
	{
		Name:  "line",
		Paths: []document.Path{straight(0, 0, 200, 0)},
	},
	{
		Name:  "corner",
		Paths: []document.Path{straight(0, 100, 100, 0, 200, 100)},
	},
	{
		Name:  "zigzag",
		Paths: []document.Path{straight(0, 0, 40, 60, 80, 0, 120, 60, 160, 0, 200, 60)},
	},
	{
		Name:  "diagonal",
		Paths: []document.Path{straight(0, 0, 100, 100)},
	},
	{
		Name:  "single_point",
		Paths: []document.Path{straight(50, 50)},
	},
	{
		Name: "parallel",
		Paths: []document.Path{
			straight(0, 0, 300, 0),
			straight(0, 40, 300, 40),
			straight(0, 80, 300, 80),
		},
	},
}
