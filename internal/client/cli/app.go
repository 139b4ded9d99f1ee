package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/client/client"
	"github.com/dmitrijs2005/noteapp/internal/client/config"
	"github.com/dmitrijs2005/noteapp/internal/client/services"
	"github.com/dmitrijs2005/noteapp/internal/client/state"
	"github.com/dmitrijs2005/noteapp/internal/client/view"
	"github.com/dmitrijs2005/noteapp/internal/filex"
	"github.com/dmitrijs2005/noteapp/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config       *config.Config
	log          logging.Logger
	db           *sql.DB
	store        *state.Store
	authService  services.AuthService
	notesService services.NoteService

	modeMu sync.RWMutex
	mode   Mode

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires local storage, the HTTP client, the state store and the
// services described by c. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	dsn, err := filex.EnsureParentDir(c.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("prepare storage: %w", err)
	}

	db, err := client.InitDatabase(ctx, dsn)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", dsn, "err", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, client.Options{
		NotesPath: c.NotesPath,
		LoginPath: c.LoginPath,
		Timeout:   c.RequestTimeout,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := state.NewStore(state.State{})
	as := services.NewAuthService(apiClient, db, store, log, c.MessageTimeout)
	ns := services.NewNoteService(apiClient, store, log, c.NoteMessageTimeout)

	a := newApp(c, log, store, as, ns, os.Stdin, os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, store *state.Store, as services.AuthService, ns services.NoteService, in io.Reader, out io.Writer) *App {
	return &App{
		config:       c,
		log:          log,
		store:        store,
		authService:  as,
		notesService: ns,
		mode:         ModeOffline,
		reader:       bufio.NewReader(in),
		out:          out,
	}
}

// Run restores the previous session, loads the notes and serves the REPL
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.authService.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}

	a.checkOnline(ctx)
	// a failed load is flashed by the service and shown by the first render
	_ = a.notesService.Load(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	fmt.Fprintln(a.out, "Welcome to the notes CLI (type 'help' for commands)")
	a.render()

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return nil
}

// Close releases the HTTP client and the local database.
func (a *App) Close(ctx context.Context) error {
	err := a.authService.Close(ctx)
	if a.db != nil {
		if dbErr := a.db.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().LoggedIn()
}

func (a *App) Mode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

func (a *App) getStatus() string {
	s := ""
	if sess := a.store.Snapshot().Session; sess != nil {
		s = sess.Username + " "
	}
	return fmt.Sprintf("(%s%s)", s, a.Mode())
}

func (a *App) render() {
	if err := view.Render(a.out, a.store.Snapshot()); err != nil {
		a.log.Error(context.Background(), "render failed", "err", err)
	}
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval and keeps the
// prompt's online/offline mode current. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
