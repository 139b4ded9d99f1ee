package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/client/client"
	"github.com/dmitrijs2005/noteapp/internal/client/models"
	"github.com/dmitrijs2005/noteapp/internal/client/state"
	"github.com/dmitrijs2005/noteapp/internal/logging"
	"github.com/google/uuid"
)

// ErrUnknownNote is returned when an id does not match any loaded note.
var ErrUnknownNote = errors.New("no such note")

// NoteService defines note operations for the CLI.
//
// Every successful call merges the server's answer into the store; failures
// are flashed as transient messages and returned.
type NoteService interface {
	Load(ctx context.Context) error
	Add(ctx context.Context, content string, important bool) (models.Note, error)
	ToggleImportant(ctx context.Context, id models.NoteID) (models.Note, error)
	Remove(ctx context.Context, id models.NoteID) error
	ToggleFilter() state.Filter
	Visible() []models.Note
}

type noteService struct {
	client   client.Client
	store    *state.Store
	log      logging.Logger
	msgDelay time.Duration

	now   func() time.Time
	newID func() models.NoteID
}

func NewNoteService(c client.Client, store *state.Store, log logging.Logger, msgDelay time.Duration) NoteService {
	return &noteService{
		client:   c,
		store:    store,
		log:      log.With("component", "notes"),
		msgDelay: msgDelay,
		now:      time.Now,
		newID:    func() models.NoteID { return models.NoteID(uuid.NewString()) },
	}
}

// Load replaces the local list with the server's.
func (s *noteService) Load(ctx context.Context) error {
	notes, err := s.client.GetAll(ctx)
	if err != nil {
		s.fail(ctx, "load notes", err)
		return fmt.Errorf("load notes: %w", err)
	}
	s.store.Update(state.SetNotes(notes))
	s.log.Debug(ctx, "notes loaded", "count", len(notes))
	return nil
}

func (s *noteService) Add(ctx context.Context, content string, important bool) (models.Note, error) {
	note := models.Note{
		ID:        s.newID(),
		Content:   content,
		Date:      s.now().UTC(),
		Important: important,
	}
	if err := models.Validate(note); err != nil {
		s.store.Flash(err.Error(), s.msgDelay)
		return models.Note{}, err
	}

	created, err := s.client.Create(ctx, note)
	if err != nil {
		s.fail(ctx, "add note", err)
		return models.Note{}, fmt.Errorf("add note: %w", err)
	}
	s.store.Update(state.AppendNote(created))
	s.log.Info(ctx, "note added", "note_id", created.ID)
	return created, nil
}

// ToggleImportant flips the important flag of one note. When the server no
// longer knows the note it is dropped locally as well.
func (s *noteService) ToggleImportant(ctx context.Context, id models.NoteID) (models.Note, error) {
	note, ok := s.store.Snapshot().Find(id)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: %s", ErrUnknownNote, id)
	}

	updated, err := s.client.Update(ctx, id, note.WithImportant(!note.Important))
	switch {
	case errors.Is(err, client.ErrNotFound):
		s.store.Update(state.RemoveNote(id))
		s.store.Flash(fmt.Sprintf("Note '%s' was already removed from server", note.Content), s.msgDelay)
		s.log.Warn(ctx, "note vanished on server", "note_id", id)
		return models.Note{}, fmt.Errorf("toggle importance: %w", err)
	case err != nil:
		s.fail(ctx, "toggle importance", err)
		return models.Note{}, fmt.Errorf("toggle importance: %w", err)
	}

	s.store.Update(state.ReplaceNote(updated))
	s.log.Info(ctx, "importance toggled", "note_id", id, "important", updated.Important)
	return updated, nil
}

func (s *noteService) Remove(ctx context.Context, id models.NoteID) error {
	if _, ok := s.store.Snapshot().Find(id); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownNote, id)
	}
	if err := s.client.Delete(ctx, id); err != nil {
		s.fail(ctx, "delete note", err)
		return fmt.Errorf("delete note: %w", err)
	}
	s.store.Update(state.RemoveNote(id))
	s.log.Info(ctx, "note deleted", "note_id", id)
	return nil
}

func (s *noteService) ToggleFilter() state.Filter {
	return s.store.Update(state.ToggleFilter()).Filter
}

func (s *noteService) Visible() []models.Note {
	return state.Visible(s.store.Snapshot())
}

func (s *noteService) fail(ctx context.Context, op string, err error) {
	s.store.Flash(describe(op, err), s.msgDelay)
	s.log.Warn(ctx, op+" failed", "err", err)
}

// describe turns a transport error into a short user-facing message.
func describe(op string, err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Sprintf("%s: server unavailable", op)
	case errors.Is(err, client.ErrUnauthorized):
		return fmt.Sprintf("%s: not authorized, please log in again", op)
	case errors.Is(err, client.ErrNotFound):
		return fmt.Sprintf("%s: not found on server", op)
	default:
		return fmt.Sprintf("%s: %v", op, err)
	}
}
