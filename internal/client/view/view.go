// Package view renders the client state as text. Rendering is a pure
// function of state.State; it never talks to the network or the store.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/noteapp/internal/client/models"
	"github.com/dmitrijs2005/noteapp/internal/client/state"
)

const (
	Title          = "Notes"
	ImportantMark  = "*"
	LoginHint      = "not logged in, type 'login' to sign in"
	ShowImportant  = "show important"
	ShowAll        = "show all"
	importantLabel = "make not important"
	regularLabel   = "make important"
)

// Render writes the whole screen for s to w.
func Render(w io.Writer, s state.State) error {
	var b strings.Builder

	b.WriteString(Title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len(Title)))
	b.WriteByte('\n')

	if s.Message != "" {
		fmt.Fprintf(&b, "! %s\n", s.Message)
	}

	if s.LoggedIn() {
		fmt.Fprintf(&b, "%s logged in\n", s.Session.Name)
	} else {
		b.WriteString(LoginHint)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	notes := state.Visible(s)
	if len(notes) == 0 {
		b.WriteString("(no notes)\n")
	}
	for _, n := range notes {
		b.WriteString(NoteLine(n))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	fmt.Fprintf(&b, "[filter] %s\n", FilterLabel(s.Filter))

	_, err := io.WriteString(w, b.String())
	return err
}

// NoteLine formats one note. The content is written verbatim.
func NoteLine(n models.Note) string {
	mark := " "
	label := regularLabel
	if n.Important {
		mark = ImportantMark
		label = importantLabel
	}
	return fmt.Sprintf("%s [%s] %s  (toggle: %s)", mark, n.ID, n.Content, label)
}

// FilterLabel is the action offered by the filter toggle for the current
// filter.
func FilterLabel(f state.Filter) string {
	if f == state.FilterImportant {
		return ShowAll
	}
	return ShowImportant
}
