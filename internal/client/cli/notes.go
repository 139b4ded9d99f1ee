package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/noteapp/internal/client/models"
	"github.com/dmitrijs2005/noteapp/internal/client/services"
)

var (
	errNoMatch    = errors.New("no note matches")
	errAmbiguous  = errors.New("several notes match")
	errEmptyInput = errors.New("empty input")
)

// List renders the current state.
func (a *App) List(ctx context.Context) error {
	a.render()
	return nil
}

// Add asks for the content and importance of a new note and creates it.
func (a *App) Add(ctx context.Context) error {
	content, err := getSimpleText(a.reader, "Enter note content", a.out)
	if err != nil {
		return err
	}
	if content == "" {
		fmt.Fprintln(a.out, "Nothing to add")
		return errEmptyInput
	}

	important, err := getConfirmation(a.reader, "Important?", a.out)
	if err != nil {
		return err
	}

	_, err = a.notesService.Add(ctx, content, important)
	a.render()
	return err
}

// Toggle flips the important flag of the note identified by ref, an id or
// an unambiguous id prefix.
func (a *App) Toggle(ctx context.Context, ref string) error {
	id, err := a.resolveID(ref)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	_, err = a.notesService.ToggleImportant(ctx, id)
	a.render()
	return err
}

// Delete removes the note identified by ref after confirmation.
func (a *App) Delete(ctx context.Context, ref string) error {
	id, err := a.resolveID(ref)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	note, _ := a.store.Snapshot().Find(id)
	ok, err := getConfirmation(a.reader, fmt.Sprintf("Delete '%s'?", note.Content), a.out)
	if err != nil || !ok {
		return err
	}

	err = a.notesService.Remove(ctx, id)
	a.render()
	return err
}

func (a *App) Filter(ctx context.Context) error {
	a.notesService.ToggleFilter()
	a.render()
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	err := a.notesService.Load(ctx)
	a.render()
	return err
}

// resolveID maps user input to the id of a loaded note. An exact match wins;
// otherwise ref must be the prefix of exactly one id.
func (a *App) resolveID(ref string) (models.NoteID, error) {
	notes := a.store.Snapshot().Notes

	var match []models.NoteID
	for _, n := range notes {
		id := n.ID.String()
		if id == ref {
			return n.ID, nil
		}
		if strings.HasPrefix(id, ref) {
			match = append(match, n.ID)
		}
	}

	switch len(match) {
	case 0:
		return "", fmt.Errorf("%w: %w %q", services.ErrUnknownNote, errNoMatch, ref)
	case 1:
		return match[0], nil
	default:
		return "", fmt.Errorf("%w %q, use a longer id", errAmbiguous, ref)
	}
}
