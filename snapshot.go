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

package neon

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"seehuhn.de/go/neon/document"
	"seehuhn.de/go/neon/history"
)

// Snapshot is the persisted form of a design session.
type Snapshot struct {
	ID           string          `json:"id,omitempty"`
	Paths        []document.Path `json:"paths"`
	Current      int             `json:"currentPathIndex"`
	DrawMode     document.Mode   `json:"drawMode"`
	DrawingType  document.Type   `json:"drawingType"`
	History      history.Entries `json:"history"`
	HistoryIndex int             `json:"historyIndex"`
	Scale        float64         `json:"scale"`
	OffsetX      float64         `json:"offsetX"`
	OffsetY      float64         `json:"offsetY"`
}

// Document returns the design state stored in s.  The result is
// validated: points are clamped and the current index is brought into
// range.
func (s *Snapshot) Document() (*document.Document, error) {
	doc := &document.Document{
		Paths:   make([]document.Path, len(s.Paths)),
		Current: s.Current,
		Mode:    s.DrawMode,
		Type:    s.DrawingType,
	}
	for i := range s.Paths {
		doc.Paths[i] = s.Paths[i].Clone()
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ReadSnapshot decodes a snapshot from JSON.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	s := &Snapshot{}
	if err := json.NewDecoder(r).Decode(s); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return s, nil
}

// WriteSnapshot encodes s as indented JSON.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Persister loads and saves design sessions.
type Persister interface {
	// Load returns the stored session.  If nothing has been stored yet,
	// the error matches [os.ErrNotExist].
	Load() (*Snapshot, error)

	// Save stores a session, replacing the previous one.
	Save(*Snapshot) error
}

// FileStore persists a session as a JSON file.
type FileStore struct {
	Path string
}

// Load implements [Persister].
func (fs *FileStore) Load() (*Snapshot, error) {
	f, err := os.Open(fs.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fs.Path, err)
	}
	return s, nil
}

// Save implements [Persister].  The file is replaced atomically.
func (fs *FileStore) Save(s *Snapshot) error {
	tmp, err := os.CreateTemp(filepath.Dir(fs.Path), ".neon-*.json")
	if err != nil {
		return err
	}
	err = WriteSnapshot(tmp, s)
	err = errors.Join(err, tmp.Close())
	if err == nil {
		err = os.Rename(tmp.Name(), fs.Path)
	}
	if err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
