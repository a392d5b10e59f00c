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

package history

import (
	"encoding/json"
	"fmt"

	"seehuhn.de/go/neon/document"
)

// Entry is one state in the undo log.  An entry is either a [Snapshot],
// holding the complete document, or a [Diff], holding only the paths which
// changed since the previous entry.  Diff entries are only found in logs
// written by older versions; new entries are always snapshots.
type Entry interface {
	isEntry()
}

// Change records the new content of one path index.  A nil Path marks the
// index as deleted.
type Change struct {
	Index int
	Path  *document.Path
}

// Snapshot is a history entry holding a complete copy of the document.
// Changes lists the paths which differ from the previous entry.
type Snapshot struct {
	Doc     *document.Document
	Changes []Change
}

// Diff is a history entry which only stores path changes relative to the
// previous entry.
type Diff struct {
	Changes []Change
	Current int
	Mode    document.Mode
	Type    document.Type
}

func (Snapshot) isEntry() {}
func (Diff) isEntry()     {}

// Changes returns the changes needed to turn the paths of prev into the
// paths of cur.  A nil prev is treated as a document without paths.
func Changes(prev, cur *document.Document) []Change {
	var prevPaths []document.Path
	if prev != nil {
		prevPaths = prev.Paths
	}
	var res []Change
	n := max(len(prevPaths), len(cur.Paths))
	for i := range n {
		switch {
		case i >= len(cur.Paths):
			res = append(res, Change{Index: i})
		case i >= len(prevPaths) || !prevPaths[i].Equal(&cur.Paths[i]):
			p := cur.Paths[i].Clone()
			res = append(res, Change{Index: i, Path: &p})
		}
	}
	return res
}

// apply replays a diff on top of base.  Changed indices are written into a
// sparse copy of the base paths, and deleted entries are then dropped.
func (e Diff) apply(base *document.Document) *document.Document {
	var sparse []*document.Path
	if base != nil {
		sparse = make([]*document.Path, len(base.Paths))
		for i := range base.Paths {
			p := base.Paths[i].Clone()
			sparse[i] = &p
		}
	}
	for _, c := range e.Changes {
		if c.Index < 0 {
			continue
		}
		for len(sparse) <= c.Index {
			sparse = append(sparse, nil)
		}
		if c.Path == nil {
			sparse[c.Index] = nil
		} else {
			p := c.Path.Clone()
			sparse[c.Index] = &p
		}
	}

	res := &document.Document{
		Current: e.Current,
		Mode:    e.Mode,
		Type:    e.Type,
	}
	for _, p := range sparse {
		if p != nil {
			res.Paths = append(res.Paths, *p)
		}
	}
	if len(res.Paths) == 0 {
		res.Paths = []document.Path{{Mode: e.Mode, Type: e.Type}}
	}
	if res.Current < 0 || res.Current >= len(res.Paths) {
		res.Current = len(res.Paths) - 1
	}
	return res
}

type jsonChange struct {
	Index int            `json:"index"`
	Path  *document.Path `json:"path"`
}

type jsonEntry struct {
	Paths       []document.Path `json:"paths,omitempty"`
	Current     int             `json:"currentPathIndex"`
	Mode        document.Mode   `json:"drawMode"`
	Type        document.Type   `json:"drawingType"`
	PathChanges []jsonChange    `json:"pathChanges,omitempty"`
}

func encodeChanges(changes []Change) []jsonChange {
	if len(changes) == 0 {
		return nil
	}
	res := make([]jsonChange, len(changes))
	for i, c := range changes {
		res[i] = jsonChange{Index: c.Index, Path: c.Path}
	}
	return res
}

func decodeChanges(changes []jsonChange) []Change {
	if len(changes) == 0 {
		return nil
	}
	res := make([]Change, len(changes))
	for i, c := range changes {
		res[i] = Change{Index: c.Index, Path: c.Path}
	}
	return res
}

// MarshalJSON implements [json.Marshaler].
func (e Snapshot) MarshalJSON() ([]byte, error) {
	paths := e.Doc.Paths
	if paths == nil {
		paths = []document.Path{}
	}
	return json.Marshal(jsonEntry{
		Paths:       paths,
		Current:     e.Doc.Current,
		Mode:        e.Doc.Mode,
		Type:        e.Doc.Type,
		PathChanges: encodeChanges(e.Changes),
	})
}

// MarshalJSON implements [json.Marshaler].
func (e Diff) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonEntry{
		Current:     e.Current,
		Mode:        e.Mode,
		Type:        e.Type,
		PathChanges: encodeChanges(e.Changes),
	})
}

// Entries is a list of history entries which can be read from JSON.
// Entries with a "paths" field become snapshots, entries without one
// become diffs.
type Entries []Entry

// UnmarshalJSON implements [json.Unmarshaler].
func (es *Entries) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	res := make(Entries, len(raw))
	for i, msg := range raw {
		e, err := decodeEntry(msg)
		if err != nil {
			return fmt.Errorf("history entry %d: %w", i, err)
		}
		res[i] = e
	}
	*es = res
	return nil
}

func decodeEntry(data []byte) (Entry, error) {
	var probe struct {
		Paths json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	var je jsonEntry
	if err := json.Unmarshal(data, &je); err != nil {
		return nil, err
	}
	changes := decodeChanges(je.PathChanges)

	if probe.Paths == nil || string(probe.Paths) == "null" {
		return Diff{
			Changes: changes,
			Current: je.Current,
			Mode:    je.Mode,
			Type:    je.Type,
		}, nil
	}

	doc := &document.Document{
		Paths:   je.Paths,
		Current: je.Current,
		Mode:    je.Mode,
		Type:    je.Type,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return Snapshot{Doc: doc, Changes: changes}, nil
}
