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

import (
	"encoding/json"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mode selects how a path is drawn and exported.
type Mode uint8

// These are the supported path modes.
const (
	// Stroke paths are tube centre lines.
	Stroke Mode = iota

	// Fill paths are closed base plates.
	Fill
)

func (m Mode) String() string {
	switch m {
	case Stroke:
		return "stroke"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// IsValid reports whether m is one of the defined modes.
func (m Mode) IsValid() bool {
	return m <= Fill
}

// ParseMode converts the textual form of a mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "stroke":
		return Stroke, nil
	case "fill":
		return Fill, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type selects how the points of a path are connected.
type Type uint8

// These are the supported interpolation types.
const (
	Spline Type = iota
	Straight
)

func (t Type) String() string {
	switch t {
	case Spline:
		return "spline"
	case Straight:
		return "straight"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// IsValid reports whether t is one of the defined types.
func (t Type) IsValid() bool {
	return t <= Straight
}

// ParseType converts the textual form of an interpolation type.
func ParseType(s string) (Type, error) {
	switch s {
	case "spline":
		return Spline, nil
	case "straight":
		return Straight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (t Type) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Path is a sequence of points in world units, together with its drawing
// mode and interpolation type.  A path without points is a placeholder
// which receives the next click.
type Path struct {
	Points []vec.Vec2
	Mode   Mode
	Type   Type
}

// IsPlate reports whether p is a base plate, i.e. a fill path with at least
// three points.
func (p *Path) IsPlate() bool {
	return p.Mode == Fill && len(p.Points) >= 3
}

// Clone returns a deep copy of p.
func (p *Path) Clone() Path {
	res := Path{Mode: p.Mode, Type: p.Type}
	if p.Points != nil {
		res.Points = make([]vec.Vec2, len(p.Points))
		copy(res.Points, p.Points)
	}
	return res
}

// Equal reports whether p and q have the same mode, type and points.
func (p *Path) Equal(q *Path) bool {
	if p.Mode != q.Mode || p.Type != q.Type || len(p.Points) != len(q.Points) {
		return false
	}
	for i, pt := range p.Points {
		if pt != q.Points[i] {
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the points of p.
// The second return value is false if p has no points.
func (p *Path) Bounds() (rect.Rect, bool) {
	if len(p.Points) == 0 {
		return rect.Rect{}, false
	}
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, pt := range p.Points {
		r.LLx = min(r.LLx, pt.X)
		r.LLy = min(r.LLy, pt.Y)
		r.URx = max(r.URx, pt.X)
		r.URy = max(r.URy, pt.Y)
	}
	return r, true
}

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonPath struct {
	Points []jsonPoint `json:"points"`
	Mode   Mode        `json:"mode"`
	Type   Type        `json:"type"`
}

// MarshalJSON writes the path as {"points":[{"x":..,"y":..}],"mode":..,"type":..}.
func (p Path) MarshalJSON() ([]byte, error) {
	jp := jsonPath{
		Points: make([]jsonPoint, len(p.Points)),
		Mode:   p.Mode,
		Type:   p.Type,
	}
	for i, pt := range p.Points {
		jp.Points[i] = jsonPoint{pt.X, pt.Y}
	}
	return json.Marshal(jp)
}

// UnmarshalJSON reads the format written by MarshalJSON.
// Missing mode and type fields default to stroke and spline.
func (p *Path) UnmarshalJSON(data []byte) error {
	var jp jsonPath
	if err := json.Unmarshal(data, &jp); err != nil {
		return err
	}
	p.Mode = jp.Mode
	p.Type = jp.Type
	p.Points = make([]vec.Vec2, len(jp.Points))
	for i, pt := range jp.Points {
		p.Points[i] = vec.Vec2{X: pt.X, Y: pt.Y}
	}
	return nil
}
