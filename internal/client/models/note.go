// Package models defines the client-side records exchanged with the notes API
// and persisted locally.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// NoteID identifies a note. The API may encode it either as a JSON string or
// as a number; both decode into the same textual form.
type NoteID string

// UnmarshalJSON accepts "abc", "12" and 12.
func (id *NoteID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NoteID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("note id: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("note id: %w", err)
	}
	*id = NoteID(n.String())
	return nil
}

func (id NoteID) String() string { return string(id) }

// Note is a content record with an importance flag.
type Note struct {
	ID        NoteID    `json:"id"`
	Content   string    `json:"content" validate:"required"`
	Date      time.Time `json:"date"`
	Important bool      `json:"important"`

	// numericID is set when the server sent the id as a JSON number; the id
	// is then encoded back as a number.
	numericID bool
}

// noteFields has Note's fields but none of its methods.
type noteFields Note

func (n *Note) UnmarshalJSON(b []byte) error {
	var aux struct {
		noteFields
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	*n = Note(aux.noteFields)
	n.numericID = false
	if len(aux.ID) == 0 {
		return nil
	}
	if err := n.ID.UnmarshalJSON(aux.ID); err != nil {
		return err
	}
	raw := bytes.TrimSpace(aux.ID)
	n.numericID = len(raw) > 0 && raw[0] != '"' && !bytes.Equal(raw, []byte("null"))
	return nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	var id any = n.ID.String()
	if n.numericID {
		id = json.Number(n.ID)
	}
	return json.Marshal(struct {
		noteFields
		ID any `json:"id"`
	}{noteFields(n), id})
}
