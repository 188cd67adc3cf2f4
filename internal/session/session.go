// Package session keeps per-browser key/value state on the server, addressed
// by a browser-session cookie. The cookie carries no expiry, so the browser
// drops it when the browsing session ends.
package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie name.
const CookieName = "so_session"

// Backend persists values for a session id.
type Backend interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	// Prune drops sessions not read or written since before and returns
	// how many values were removed.
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// Manager hands out request-scoped storage over a Backend.
type Manager struct {
	backend Backend
	newID   func() string
}

// NewManager creates a Manager over backend.
func NewManager(backend Backend) *Manager {
	return &Manager{
		backend: backend,
		newID:   func() string { return uuid.New().String() },
	}
}

// Storage returns the session storage for the request. A session id is only
// minted, and the cookie only set, on the first write.
func (m *Manager) Storage(w http.ResponseWriter, r *http.Request) *Storage {
	id, _ := readCookie(r)
	return &Storage{manager: m, w: w, r: r, id: id}
}

// Storage is the key/value view of one browser session.
type Storage struct {
	manager *Manager
	w       http.ResponseWriter
	r       *http.Request
	id      string
}

// ID returns the session id, or "" if none has been issued yet.
func (s *Storage) ID() string { return s.id }

// Get returns the value stored under key.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	if s.id == "" {
		return "", false, nil
	}
	v, ok, err := s.manager.backend.Get(ctx, s.id, key)
	if err != nil {
		return "", false, fmt.Errorf("reading session %s: %w", key, err)
	}
	return v, ok, nil
}

// Set stores value under key, issuing a session cookie if needed.
func (s *Storage) Set(ctx context.Context, key, value string) error {
	if s.id == "" {
		s.id = s.manager.newID()
		writeCookie(s.w, s.r, s.id)
	}
	if err := s.manager.backend.Set(ctx, s.id, key, value); err != nil {
		return fmt.Errorf("writing session %s: %w", key, err)
	}
	return nil
}

func readCookie(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

func writeCookie(w http.ResponseWriter, r *http.Request, id string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
