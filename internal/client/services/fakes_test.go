package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/client/client"
	"github.com/dmitrijs2005/noteapp/internal/client/models"
	"github.com/dmitrijs2005/noteapp/internal/client/state"
	"github.com/dmitrijs2005/noteapp/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu sync.Mutex

	token string

	notes     []models.Note
	getAllErr error
	createErr error
	updateErr error
	deleteErr error
	pingErr   error

	session  models.Session
	loginErr error

	created []models.Note
	updated []models.Note
	deleted []models.NoteID
	logins  []models.Credentials
	closed  bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error { f.closed = true; return nil }

func (f *fakeClient) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
}

func (f *fakeClient) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) GetAll(ctx context.Context) ([]models.Note, error) {
	if f.getAllErr != nil {
		return nil, f.getAllErr
	}
	return f.notes, nil
}

func (f *fakeClient) Create(ctx context.Context, note models.Note) (models.Note, error) {
	if f.createErr != nil {
		return models.Note{}, f.createErr
	}
	f.created = append(f.created, note)
	return note, nil
}

func (f *fakeClient) Update(ctx context.Context, id models.NoteID, note models.Note) (models.Note, error) {
	if f.updateErr != nil {
		return models.Note{}, f.updateErr
	}
	f.updated = append(f.updated, note)
	return note, nil
}

func (f *fakeClient) Delete(ctx context.Context, id models.NoteID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	f.logins = append(f.logins, credentials)
	if f.loginErr != nil {
		return models.Session{}, f.loginErr
	}
	f.SetToken(f.session.Token)
	return f.session, nil
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "noteapp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleNotes() []models.Note {
	date := time.Date(2019, 5, 30, 17, 30, 31, 0, time.UTC)
	return []models.Note{
		{ID: "1", Content: "HTML is easy", Date: date, Important: true},
		{ID: "2", Content: "Browser can execute only JavaScript", Date: date, Important: false},
		{ID: "3", Content: "GET and POST are the most important methods of HTTP protocol", Date: date, Important: true},
	}
}

func newNotesFixture(notes []models.Note) (*noteService, *fakeClient, *state.Store) {
	fc := &fakeClient{notes: notes}
	store := state.NewStore(state.State{Notes: notes})
	svc := NewNoteService(fc, store, logging.Nop{}, time.Minute).(*noteService)
	return svc, fc, store
}
