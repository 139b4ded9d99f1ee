package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/noteapp/internal/client/models"
)

const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL    string
	notesPath  string
	loginPath  string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// Options configure NewHTTPClient. Zero values fall back to defaults.
type Options struct {
	NotesPath string
	LoginPath string
	Timeout   time.Duration
	Transport http.RoundTripper
}

func NewHTTPClient(baseURL string, opts Options) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	if opts.NotesPath == "" {
		opts.NotesPath = "/api/notes"
	}
	if opts.LoginPath == "" {
		opts.LoginPath = "/api/login"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		notesPath:  "/" + strings.Trim(opts.NotesPath, "/"),
		loginPath:  "/" + strings.Trim(opts.LoginPath, "/"),
		httpClient: &http.Client{Timeout: opts.Timeout, Transport: opts.Transport},
	}, nil
}

// SetToken sets the bearer credential attached to subsequent requests.
// An empty token disables the Authorization header.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) notePath(id models.NoteID) string {
	return c.notesPath + "/" + url.PathEscape(id.String())
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, target any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp); err != nil {
		return err
	}

	if target == nil || resp.StatusCode == http.StatusNoContent || method == http.MethodHead {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func mapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func mapStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(b))

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return wrapStatus(ErrUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound:
		return wrapStatus(ErrNotFound, msg)
	case resp.StatusCode >= 500:
		return wrapStatus(ErrUnavailable, msg)
	default:
		return fmt.Errorf("api error: status=%d, body=%s", resp.StatusCode, msg)
	}
}

func wrapStatus(sentinel error, body string) error {
	if body == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, body)
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodHead, c.notesPath, nil, nil)
}

func (c *HTTPClient) GetAll(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, c.notesPath, nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (c *HTTPClient) Create(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note
	if err := c.do(ctx, http.MethodPost, c.notesPath, note, &created); err != nil {
		return models.Note{}, err
	}
	return created, nil
}

func (c *HTTPClient) Update(ctx context.Context, id models.NoteID, note models.Note) (models.Note, error) {
	var updated models.Note
	if err := c.do(ctx, http.MethodPut, c.notePath(id), note, &updated); err != nil {
		return models.Note{}, err
	}
	return updated, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id models.NoteID) error {
	return c.do(ctx, http.MethodDelete, c.notePath(id), nil, nil)
}

// Login authenticates and, on success, adopts the returned token.
func (c *HTTPClient) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var sess models.Session
	if err := c.do(ctx, http.MethodPost, c.loginPath, credentials, &sess); err != nil {
		return models.Session{}, err
	}
	if sess.Token == "" {
		return models.Session{}, fmt.Errorf("login response carries no token")
	}
	c.SetToken(sess.Token)
	return sess, nil
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
