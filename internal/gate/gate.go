// Package gate implements the preview password gate that guards the whole
// site on preview deployments.
//
// A Gate is bound to one browser session's Storage. It starts either
// Authenticated or Prompting, and the only transition is Prompting to
// Authenticated on an exact secret match. Nothing moves it back.
package gate

import (
	"context"
	"crypto/subtle"
	"fmt"
)

// AuthenticatedKey is the session storage key holding the success flag.
const AuthenticatedKey = "site_authenticated"

// authenticatedValue is the only value that counts as a prior success.
const authenticatedValue = "true"

// Storage is the session-scoped key/value store the gate reads at mount
// and writes on success.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// State is the gate's position in its two-state lifecycle.
type State int

const (
	StatePrompting State = iota
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config is supplied by the caller when the gate is mounted.
type Config struct {
	Secret  string
	Enforce bool
}

// Gate is one mounted instance of the access gate.
type Gate struct {
	secret   string
	storage  Storage
	state    State
	mismatch bool
}

// New mounts a gate over storage. The initial state is decided here: an
// unenforced gate is authenticated outright, an enforced one is
// authenticated only if storage already holds the success flag.
func New(ctx context.Context, cfg Config, storage Storage) (*Gate, error) {
	g := &Gate{secret: cfg.Secret, storage: storage, state: StatePrompting}

	if !cfg.Enforce {
		g.state = StateAuthenticated
		return g, nil
	}

	v, ok, err := storage.Get(ctx, AuthenticatedKey)
	if err != nil {
		return nil, fmt.Errorf("reading session flag: %w", err)
	}
	if ok && v == authenticatedValue {
		g.state = StateAuthenticated
	}
	return g, nil
}

// Submit compares candidate with the configured secret. On a match the gate
// becomes authenticated and the success flag is persisted; otherwise the
// mismatch indicator is raised and the state is left alone. The returned
// error only reports a storage failure.
func (g *Gate) Submit(ctx context.Context, candidate string) (bool, error) {
	if g.state == StateAuthenticated {
		return true, nil
	}

	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.secret)) != 1 {
		g.mismatch = true
		return false, nil
	}

	if err := g.storage.Set(ctx, AuthenticatedKey, authenticatedValue); err != nil {
		return false, fmt.Errorf("writing session flag: %w", err)
	}
	g.state = StateAuthenticated
	g.mismatch = false
	return true, nil
}

// State returns the current state.
func (g *Gate) State() State { return g.state }

// Authenticated reports whether the wrapped content may be shown.
func (g *Gate) Authenticated() bool { return g.state == StateAuthenticated }

// Mismatch reports whether the last submission failed.
func (g *Gate) Mismatch() bool { return g.mismatch }
