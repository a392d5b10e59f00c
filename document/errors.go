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

package document

import "errors"

var (
	// ErrFillExists is returned by operations which would create a second
	// base plate.
	ErrFillExists = errors.New("a base plate already exists")

	// ErrBadIndex is returned when a path or point index is out of range.
	ErrBadIndex = errors.New("index out of range")

	ErrUnknownMode = errors.New("unknown path mode")
	ErrUnknownType = errors.New("unknown path type")
)
