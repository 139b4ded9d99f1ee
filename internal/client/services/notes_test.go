package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/client/client"
	"github.com/dmitrijs2005/noteapp/internal/client/models"
	"github.com/dmitrijs2005/noteapp/internal/client/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_Load(t *testing.T) {
	svc, fc, store := newNotesFixture(nil)
	fc.notes = sampleNotes()

	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, sampleNotes(), store.Snapshot().Notes)
}

func TestNoteService_Load_Error(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())
	fc.getAllErr = client.ErrUnavailable

	err := svc.Load(context.Background())
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, sampleNotes(), store.Snapshot().Notes, "list must survive a failed reload")
	assert.Equal(t, "load notes: server unavailable", store.Snapshot().Message)
}

func TestNoteService_Add(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	svc.newID = func() models.NoteID { return "new-id" }

	got, err := svc.Add(context.Background(), "a new note...", true)
	require.NoError(t, err)

	want := models.Note{ID: "new-id", Content: "a new note...", Date: fixed, Important: true}
	assert.Equal(t, want, got)
	require.Len(t, fc.created, 1)
	assert.Equal(t, want, fc.created[0])

	notes := store.Snapshot().Notes
	require.Len(t, notes, 4)
	assert.Equal(t, want, notes[3])
}

func TestNoteService_Add_UsesUniqueIDs(t *testing.T) {
	svc, fc, _ := newNotesFixture(nil)

	_, err := svc.Add(context.Background(), "first", false)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), "second", false)
	require.NoError(t, err)

	require.Len(t, fc.created, 2)
	assert.NotEmpty(t, fc.created[0].ID)
	assert.NotEqual(t, fc.created[0].ID, fc.created[1].ID)
}

func TestNoteService_Add_EmptyContent(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())

	_, err := svc.Add(context.Background(), "", false)
	require.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Empty(t, fc.created)
	assert.Len(t, store.Snapshot().Notes, 3)
	assert.NotEmpty(t, store.Snapshot().Message)
}

func TestNoteService_Add_ServerError(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())
	fc.createErr = client.ErrUnauthorized

	_, err := svc.Add(context.Background(), "x", false)
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Len(t, store.Snapshot().Notes, 3)
	assert.Equal(t, "add note: not authorized, please log in again", store.Snapshot().Message)
}

func TestNoteService_ToggleImportant_OnlyThatNote(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())

	got, err := svc.ToggleImportant(context.Background(), "2")
	require.NoError(t, err)
	assert.True(t, got.Important)
	require.Len(t, fc.updated, 1)
	assert.True(t, fc.updated[0].Important)

	want := sampleNotes()
	want[1].Important = true
	assert.Equal(t, want, store.Snapshot().Notes)
}

func TestNoteService_ToggleImportant_RemovedOnServer(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())
	fc.updateErr = client.ErrNotFound

	_, err := svc.ToggleImportant(context.Background(), "1")
	require.ErrorIs(t, err, client.ErrNotFound)

	s := store.Snapshot()
	assert.Equal(t, "Note 'HTML is easy' was already removed from server", s.Message)
	_, ok := s.Find("1")
	assert.False(t, ok)
	assert.Len(t, s.Notes, 2)
}

func TestNoteService_ToggleImportant_OtherErrorKeepsNote(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())
	fc.updateErr = client.ErrUnavailable

	_, err := svc.ToggleImportant(context.Background(), "1")
	require.ErrorIs(t, err, client.ErrUnavailable)

	s := store.Snapshot()
	assert.Equal(t, sampleNotes(), s.Notes)
	assert.Equal(t, "toggle importance: server unavailable", s.Message)
}

func TestNoteService_ToggleImportant_Unknown(t *testing.T) {
	svc, fc, _ := newNotesFixture(sampleNotes())

	_, err := svc.ToggleImportant(context.Background(), "42")
	require.ErrorIs(t, err, ErrUnknownNote)
	assert.Empty(t, fc.updated)
}

func TestNoteService_Remove(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())

	require.NoError(t, svc.Remove(context.Background(), "2"))
	assert.Equal(t, []models.NoteID{"2"}, fc.deleted)

	notes := store.Snapshot().Notes
	require.Len(t, notes, 2)
	assert.Equal(t, models.NoteID("1"), notes[0].ID)
	assert.Equal(t, models.NoteID("3"), notes[1].ID)
}

func TestNoteService_Remove_Failure(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())
	fc.deleteErr = errors.New("api error: status=400, body=bad")

	err := svc.Remove(context.Background(), "2")
	require.Error(t, err)
	assert.Len(t, store.Snapshot().Notes, 3)
	assert.Contains(t, store.Snapshot().Message, "delete note:")
}

func TestNoteService_FilterAndVisible(t *testing.T) {
	svc, _, _ := newNotesFixture(sampleNotes())

	assert.Len(t, svc.Visible(), 3)

	assert.Equal(t, state.FilterImportant, svc.ToggleFilter())
	visible := svc.Visible()
	require.Len(t, visible, 2)
	for _, n := range visible {
		assert.True(t, n.Important)
	}

	assert.Equal(t, state.FilterAll, svc.ToggleFilter())
	assert.Len(t, svc.Visible(), 3)
}

func TestNoteService_FailureMessageClearsAfterItsDelay(t *testing.T) {
	svc, fc, store := newNotesFixture(sampleNotes())
	svc.msgDelay = 20 * time.Millisecond
	fc.updateErr = client.ErrNotFound

	_, err := svc.ToggleImportant(context.Background(), "2")
	require.Error(t, err)
	assert.NotEmpty(t, store.Snapshot().Message)

	require.Eventually(t, func() bool {
		return store.Snapshot().Message == ""
	}, time.Second, 5*time.Millisecond)
}
