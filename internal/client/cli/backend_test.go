package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/client/models"
)

const testToken = "good-token"

// fakeBackend is a small in-memory notes API.
type fakeBackend struct {
	mu    sync.Mutex
	notes map[models.NoteID]models.Note
	order []models.NoteID
	srv   *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	b := &fakeBackend{notes: map[models.NoteID]models.Note{}}
	date := time.Date(2019, 5, 30, 17, 30, 31, 0, time.UTC)
	b.put(models.Note{ID: "1", Content: "HTML is easy", Date: date, Important: true})
	b.put(models.Note{ID: "2", Content: "Browser can execute only JavaScript", Date: date})
	b.put(models.Note{ID: "3", Content: "GET and POST are the most important methods of HTTP protocol", Date: date, Important: true})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/notes", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, b.list())
	})
	mux.HandleFunc("POST /api/notes", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		var n models.Note
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		b.put(n)
		writeJSON(w, http.StatusCreated, n)
	}))
	mux.HandleFunc("PUT /api/notes/{id}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		id := models.NoteID(r.PathValue("id"))
		var n models.Note
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, ok := b.get(id); !ok {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		n.ID = id
		b.put(n)
		writeJSON(w, http.StatusOK, n)
	}))
	mux.HandleFunc("DELETE /api/notes/{id}", b.authorized(func(w http.ResponseWriter, r *http.Request) {
		b.remove(models.NoteID(r.PathValue("id")))
		w.WriteHeader(http.StatusNoContent)
	}))
	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var c models.Credentials
		_ = json.NewDecoder(r.Body).Decode(&c)
		if c.Username != "mluukkai" || c.Password != "salainen" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
			return
		}
		writeJSON(w, http.StatusOK, models.Session{Name: "Matti Luukkainen", Username: "mluukkai", Token: testToken})
	})

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token missing or invalid"})
			return
		}
		next(w, r)
	}
}

func (b *fakeBackend) put(n models.Note) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.notes[n.ID]; !ok {
		b.order = append(b.order, n.ID)
	}
	b.notes[n.ID] = n
}

func (b *fakeBackend) get(id models.NoteID) (models.Note, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, ok := b.notes[id]
	return n, ok
}

func (b *fakeBackend) remove(id models.NoteID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.notes, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *fakeBackend) list() []models.Note {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Note, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.notes[id])
	}
	return out
}

func (b *fakeBackend) ids() []string {
	var ids []string
	for _, n := range b.list() {
		ids = append(ids, n.ID.String())
	}
	sort.Strings(ids)
	return ids
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
