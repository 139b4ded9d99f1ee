package state

import (
	"github.com/dmitrijs2005/noteapp/internal/client/models"
)

// Filter selects which notes are displayed.
type Filter int

const (
	FilterAll Filter = iota
	FilterImportant
)

func (f Filter) String() string {
	if f == FilterImportant {
		return "important"
	}
	return "all"
}

// State is an immutable snapshot. Notes is shared between snapshots and must
// be treated as read-only; reducers always build a fresh slice.
type State struct {
	Notes   []models.Note
	Session *models.Session
	Filter  Filter
	Message string
}

// Reducer derives the next state from the current one.
type Reducer func(State) State

// LoggedIn reports whether a session is present.
func (s State) LoggedIn() bool {
	return s.Session != nil
}

// Find returns the note with the given id.
func (s State) Find(id models.NoteID) (models.Note, bool) {
	for _, n := range s.Notes {
		if n.ID == id {
			return n, true
		}
	}
	return models.Note{}, false
}

// Visible returns the notes selected by the current filter, in list order.
func Visible(s State) []models.Note {
	if s.Filter == FilterAll {
		out := make([]models.Note, len(s.Notes))
		copy(out, s.Notes)
		return out
	}
	out := make([]models.Note, 0, len(s.Notes))
	for _, n := range s.Notes {
		if n.Important {
			out = append(out, n)
		}
	}
	return out
}

// SetNotes replaces the whole list.
func SetNotes(notes []models.Note) Reducer {
	return func(s State) State {
		s.Notes = append([]models.Note(nil), notes...)
		return s
	}
}

// AppendNote adds n at the end of the list.
func AppendNote(n models.Note) Reducer {
	return func(s State) State {
		next := make([]models.Note, 0, len(s.Notes)+1)
		next = append(next, s.Notes...)
		s.Notes = append(next, n)
		return s
	}
}

// ReplaceNote swaps the note sharing n's id for n. Other notes are untouched.
func ReplaceNote(n models.Note) Reducer {
	return func(s State) State {
		next := make([]models.Note, len(s.Notes))
		for i, cur := range s.Notes {
			if cur.ID == n.ID {
				next[i] = n
				continue
			}
			next[i] = cur
		}
		s.Notes = next
		return s
	}
}

// RemoveNote drops the note with the given id.
func RemoveNote(id models.NoteID) Reducer {
	return func(s State) State {
		next := make([]models.Note, 0, len(s.Notes))
		for _, cur := range s.Notes {
			if cur.ID != id {
				next = append(next, cur)
			}
		}
		s.Notes = next
		return s
	}
}

// ToggleFilter flips between all and important-only.
func ToggleFilter() Reducer {
	return func(s State) State {
		if s.Filter == FilterAll {
			s.Filter = FilterImportant
		} else {
			s.Filter = FilterAll
		}
		return s
	}
}

func SetFilter(f Filter) Reducer {
	return func(s State) State {
		s.Filter = f
		return s
	}
}

// SetSession stores a copy of sess; nil logs the user out.
func SetSession(sess *models.Session) Reducer {
	return func(s State) State {
		if sess == nil {
			s.Session = nil
			return s
		}
		cp := *sess
		s.Session = &cp
		return s
	}
}

func SetMessage(msg string) Reducer {
	return func(s State) State {
		s.Message = msg
		return s
	}
}
