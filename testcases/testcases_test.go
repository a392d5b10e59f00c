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
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestDesigns(t *testing.T) {
	seen := make(map[string]bool)
	for category, designs := range All {
		for _, d := range designs {
			name := category + "_" + d.Name
			t.Run(name, func(t *testing.T) {
				if !validName.MatchString(d.Name) {
					t.Errorf("invalid name %q", d.Name)
				}
				if seen[name] {
					t.Errorf("duplicate name %q", name)
				}
				seen[name] = true

				doc := d.Document()
				orig := doc.Clone()
				if err := doc.Validate(); err != nil {
					t.Fatal(err)
				}
				if !doc.Equal(orig) {
					t.Error("design is not in canonical form")
				}
				if doc.PlateCount() > 1 {
					t.Errorf("%d plates", doc.PlateCount())
				}
				if v := d.CanvasView(); !(v.Scale > 0) {
					t.Errorf("invalid view %+v", v)
				}
			})
		}
	}
}
