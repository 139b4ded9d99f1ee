package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/client/client"
	"github.com/dmitrijs2005/noteapp/internal/client/models"
	"github.com/dmitrijs2005/noteapp/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/noteapp/internal/client/state"
	"github.com/dmitrijs2005/noteapp/internal/dbx"
	"github.com/dmitrijs2005/noteapp/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// SessionKey is the metadata key holding the serialized session.
	SessionKey = "loggedNoteappUser"
	// LastUsernameKey remembers who logged in last, to prefill the prompt.
	LastUsernameKey = "lastUsername"

	MsgWrongCredentials = "Wrong credentials"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Restore: hydrate the session persisted by a previous run.
//   - Login: authenticate, persist the session and adopt its token.
//   - Logout: forget the persisted session.
//   - LastUsername: the username of the most recent successful login.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Restore(ctx context.Context) (*models.Session, error)
	Login(ctx context.Context, credentials models.Credentials) (*models.Session, error)
	Logout(ctx context.Context) error
	LastUsername(ctx context.Context) string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client   client.Client
	db       *sql.DB
	store    *state.Store
	log      logging.Logger
	msgDelay time.Duration
	now      func() time.Time
}

// NewAuthService binds the service to the API client, the local database
// holding the metadata table and the state store. msgDelay is how long error
// messages stay visible.
func NewAuthService(c client.Client, db *sql.DB, store *state.Store, log logging.Logger, msgDelay time.Duration) AuthService {
	return &authService{
		client:   c,
		db:       db,
		store:    store,
		log:      log.With("component", "auth"),
		msgDelay: msgDelay,
		now:      time.Now,
	}
}

func (a *authService) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Restore loads the persisted session. A stored session whose JWT has expired,
// or that cannot be decoded, is discarded and (nil, nil) is returned.
func (a *authService) Restore(ctx context.Context) (*models.Session, error) {
	repo := a.repo(a.db)

	sess, ok, err := metadata.LoadJSON[models.Session](ctx, repo, SessionKey)
	if err != nil {
		if errors.Is(err, metadata.ErrDecode) {
			a.log.Warn(ctx, "discarding unreadable stored session", "err", err)
			return nil, a.forget(ctx)
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if expired, exp := tokenExpired(sess.Token, a.now()); expired {
		a.log.Info(ctx, "stored session expired", "username", sess.Username, "expired_at", exp)
		return nil, a.forget(ctx)
	}

	a.adopt(&sess)
	a.log.Info(ctx, "session restored", "username", sess.Username)
	return &sess, nil
}

// Login authenticates against the server. On failure the session stays
// unset and a transient message is shown.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (*models.Session, error) {
	if err := models.Validate(credentials); err != nil {
		a.store.Flash(err.Error(), a.msgDelay)
		return nil, err
	}

	sess, err := a.client.Login(ctx, credentials)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.store.Flash(MsgWrongCredentials, a.msgDelay)
		} else {
			a.store.Flash(fmt.Sprintf("login failed: %v", err), a.msgDelay)
		}
		a.log.Warn(ctx, "login failed", "username", credentials.Username, "err", err)
		return nil, fmt.Errorf("login error: %w", err)
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := a.repo(tx)
		if err := metadata.StoreJSON(ctx, repo, SessionKey, sess); err != nil {
			return err
		}
		return repo.Set(ctx, LastUsernameKey, []byte(sess.Username))
	})
	if err != nil {
		// the login itself succeeded; keep the session for this run
		a.log.Error(ctx, "session not persisted", "err", err)
	}

	a.adopt(&sess)
	a.log.Info(ctx, "logged in", "username", sess.Username)
	return &sess, nil
}

// Logout removes the persisted session and clears it from the store.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.repo(a.db).Delete(ctx, SessionKey); err != nil {
		return err
	}
	a.client.SetToken("")
	a.store.Update(state.SetSession(nil))
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) LastUsername(ctx context.Context) string {
	v, err := a.repo(a.db).Get(ctx, LastUsernameKey)
	if err != nil {
		a.log.Warn(ctx, "read last username", "err", err)
		return ""
	}
	return string(v)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

func (a *authService) adopt(sess *models.Session) {
	a.client.SetToken(sess.Token)
	a.store.Update(state.SetSession(sess))
}

func (a *authService) forget(ctx context.Context) error {
	if err := a.repo(a.db).Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("drop stored session: %w", err)
	}
	return nil
}

// tokenExpired inspects the exp claim of a JWT without verifying its
// signature; the server remains the authority. Opaque tokens never expire
// from the client's point of view.
func tokenExpired(token string, now time.Time) (bool, time.Time) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false, time.Time{}
	}
	if claims.ExpiresAt == nil {
		return false, time.Time{}
	}
	exp := claims.ExpiresAt.Time
	return !now.Before(exp), exp
}
