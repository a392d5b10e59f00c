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

// Package history implements the linear undo/redo log of a design.
//
// The log is a sequence of entries with a cursor.  Recording a new state
// discards all entries after the cursor, appends the state, drops the
// oldest entries beyond the configured depth and moves the cursor to the
// end.  Undo and Redo move the cursor and return the document state stored
// at the new position.
package history

import (
	"errors"
	"fmt"

	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/internal/logging"
)

// DefaultDepth is the default maximum number of entries in a log.
const DefaultDepth = 20

// ErrCorrupt is returned when the cursor or the entries of a log do not
// describe a valid state.  The log is not modified in this case.
var ErrCorrupt = errors.New("corrupt history")

// Log is an undo/redo log.
type Log struct {
	entries []Entry
	cursor  int
	depth   int
}

// New returns an empty log holding at most depth entries.
// If depth is not positive, [DefaultDepth] is used.
func New(depth int) *Log {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Log{depth: depth, cursor: -1}
}

// FromEntries returns a log with the given entries and cursor, as read from
// a persisted design.  The cursor is not checked here; an invalid cursor
// makes Undo and Redo fail with [ErrCorrupt].  If there are more than depth
// entries, the oldest ones are dropped.
func FromEntries(entries []Entry, cursor int, depth int) *Log {
	l := New(depth)
	l.entries = append(l.entries, entries...)
	l.cursor = cursor
	if drop := len(l.entries) - l.depth; drop > 0 {
		l.dropFront(drop)
	}
	return l
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Cursor returns the index of the entry describing the current state.
func (l *Log) Cursor() int {
	return l.cursor
}

// Entries returns the entries of the log.  The caller must not modify them.
func (l *Log) Entries() []Entry {
	return l.entries
}

// CanUndo reports whether Undo would change the state.
func (l *Log) CanUndo() bool {
	return l.cursor > 0 && l.cursor < len(l.entries)
}

// CanRedo reports whether Redo would change the state.
func (l *Log) CanRedo() bool {
	return l.cursor >= 0 && l.cursor < len(l.entries)-1
}

// Push records doc as the newest state.  Entries after the cursor are
// discarded first.
func (l *Log) Push(doc *document.Document) {
	var prev *document.Document
	if len(l.entries) > 0 {
		if l.cursor < 0 || l.cursor >= len(l.entries) {
			logging.Logger().Warn("history cursor out of range, reclamped",
				"cursor", l.cursor, "entries", len(l.entries))
			l.cursor = max(0, min(l.cursor, len(l.entries)-1))
		}
		l.entries = l.entries[:l.cursor+1]
		if s, err := l.State(l.cursor); err == nil {
			prev = s
		}
	}

	snap := doc.Clone()
	l.entries = append(l.entries, Snapshot{
		Doc:     snap,
		Changes: Changes(prev, snap),
	})
	if drop := len(l.entries) - l.depth; drop > 0 {
		l.dropFront(drop)
	}
	l.cursor = len(l.entries) - 1

	logging.Logger().Debug("history push",
		"entries", len(l.entries), "cursor", l.cursor)
}

// dropFront removes the n oldest entries.  If the new first entry is a
// diff, it is converted to a snapshot since its base is lost.
func (l *Log) dropFront(n int) {
	var first *document.Document
	if _, isDiff := l.entries[n].(Diff); isDiff {
		first, _ = l.State(n)
	}
	l.entries = append(l.entries[:0:0], l.entries[n:]...)
	if first != nil {
		l.entries[0] = Snapshot{Doc: first}
	}
	l.cursor -= n
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Undo moves the cursor back by one entry and returns the state stored
// there.  At the start of the log, Undo does nothing and returns nil.
func (l *Log) Undo() (*document.Document, error) {
	return l.step(-1)
}

// Redo moves the cursor forward by one entry and returns the state stored
// there.  At the end of the log, Redo does nothing and returns nil.
func (l *Log) Redo() (*document.Document, error) {
	return l.step(+1)
}

func (l *Log) step(delta int) (*document.Document, error) {
	if l.cursor < 0 || l.cursor >= len(l.entries) {
		err := fmt.Errorf("%w: cursor %d, %d entries", ErrCorrupt, l.cursor, len(l.entries))
		logging.Logger().Warn("history step ignored", "error", err)
		return nil, err
	}
	target := l.cursor + delta
	if target < 0 || target >= len(l.entries) {
		return nil, nil
	}
	doc, err := l.State(target)
	if err != nil {
		logging.Logger().Warn("history step ignored", "error", err)
		return nil, err
	}
	l.cursor = target
	logging.Logger().Debug("history step", "cursor", l.cursor, "entries", len(l.entries))
	return doc, nil
}

// State reconstructs the document stored at entry i.  Snapshots are
// returned as copies; diffs are replayed on top of the closest preceding
// snapshot.
func (l *Log) State(i int) (*document.Document, error) {
	if i < 0 || i >= len(l.entries) {
		return nil, fmt.Errorf("%w: entry %d of %d", ErrCorrupt, i, len(l.entries))
	}

	start := i
	var base *document.Document
	for start >= 0 {
		if s, ok := l.entries[start].(Snapshot); ok {
			if s.Doc == nil {
				return nil, fmt.Errorf("%w: entry %d has no document", ErrCorrupt, start)
			}
			base = s.Doc.Clone()
			break
		}
		start--
	}

	for j := start + 1; j <= i; j++ {
		d, ok := l.entries[j].(Diff)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d has unknown type %T", ErrCorrupt, j, l.entries[j])
		}
		base = d.apply(base)
	}
	return base, nil
}
