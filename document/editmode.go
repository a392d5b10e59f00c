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

import "fmt"

// EditMode selects what a click on the canvas does.  At most one edit mode
// is active at any time.
type EditMode uint8

// These are the available edit modes.
const (
	EditNone        EditMode = iota // clicks add points
	EditModify                      // clicks start dragging a point
	EditMerge                       // two clicks merge the first point onto the second
	EditDeletePoint                 // clicks delete a point
	EditDeletePath                  // clicks delete the path owning a point
)

func (m EditMode) String() string {
	switch m {
	case EditNone:
		return "none"
	case EditModify:
		return "modify"
	case EditMerge:
		return "merge"
	case EditDeletePoint:
		return "delete-point"
	case EditDeletePath:
		return "delete-path"
	default:
		return fmt.Sprintf("EditMode(%d)", uint8(m))
	}
}

// ParseEditMode converts the textual form of an edit mode.
func ParseEditMode(s string) (EditMode, error) {
	for m := EditNone; m <= EditDeletePath; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown edit mode %q", s)
}
