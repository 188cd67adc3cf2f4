package gate

import (
	"context"
	"errors"
	"testing"
)

// mapStorage is a Storage over a plain map.
type mapStorage struct {
	values map[string]string
	sets   int
	getErr error
	setErr error
}

func newMapStorage() *mapStorage {
	return &mapStorage{values: make(map[string]string)}
}

func (m *mapStorage) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mapStorage) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.values[key] = value
	return nil
}

func TestNewUnenforcedIsAuthenticated(t *testing.T) {
	store := newMapStorage()
	store.getErr = errors.New("must not be read")

	g, err := New(context.Background(), Config{Secret: "s", Enforce: false}, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.State() != StateAuthenticated {
		t.Errorf("State() = %v, want %v", g.State(), StateAuthenticated)
	}
	if store.sets != 0 {
		t.Errorf("unenforced gate wrote storage %d times", store.sets)
	}
}

func TestNewEnforcedWithoutFlagPrompts(t *testing.T) {
	g, err := New(context.Background(), Config{Secret: "s", Enforce: true}, newMapStorage())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Authenticated() {
		t.Error("expected prompting state without a session flag")
	}
	if g.Mismatch() {
		t.Error("mismatch indicator must start lowered")
	}
}

func TestNewEnforcedWithFlag(t *testing.T) {
	tests := []struct {
		value string
		want  State
	}{
		{"true", StateAuthenticated},
		{"TRUE", StatePrompting},
		{"1", StatePrompting},
		{"", StatePrompting},
	}
	for _, tt := range tests {
		store := newMapStorage()
		store.values[AuthenticatedKey] = tt.value

		g, err := New(context.Background(), Config{Secret: "s", Enforce: true}, store)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if g.State() != tt.want {
			t.Errorf("flag %q: State() = %v, want %v", tt.value, g.State(), tt.want)
		}
	}
}

func TestNewStorageError(t *testing.T) {
	store := newMapStorage()
	store.getErr = errors.New("boom")

	if _, err := New(context.Background(), Config{Secret: "s", Enforce: true}, store); err == nil {
		t.Fatal("expected error from failing storage")
	}
}

func TestSubmitScenario(t *testing.T) {
	ctx := context.Background()
	store := newMapStorage()
	cfg := Config{Secret: "letmein2025", Enforce: true}

	g, err := New(ctx, cfg, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ok, err := g.Submit(ctx, "wrong")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if ok {
		t.Fatal("wrong secret accepted")
	}
	if !g.Mismatch() {
		t.Error("expected mismatch indicator after wrong secret")
	}
	if g.Authenticated() {
		t.Error("gate opened on wrong secret")
	}
	if _, set := store.values[AuthenticatedKey]; set {
		t.Error("session flag written on mismatch")
	}

	ok, err = g.Submit(ctx, "letmein2025")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !ok || !g.Authenticated() {
		t.Fatal("correct secret did not open the gate")
	}
	if g.Mismatch() {
		t.Error("mismatch indicator should clear on success")
	}
	if store.values[AuthenticatedKey] != "true" {
		t.Errorf("session flag = %q, want %q", store.values[AuthenticatedKey], "true")
	}

	// Re-mount in the same session skips the prompt.
	again, err := New(ctx, cfg, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !again.Authenticated() {
		t.Error("re-mounted gate should start authenticated")
	}
}

func TestSubmitIsExactEquality(t *testing.T) {
	ctx := context.Background()
	for _, candidate := range []string{"", "letmein", "letmein2025 ", " letmein2025", "LETMEIN2025", "letmein20255"} {
		g, err := New(ctx, Config{Secret: "letmein2025", Enforce: true}, newMapStorage())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		ok, err := g.Submit(ctx, candidate)
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if ok {
			t.Errorf("candidate %q accepted", candidate)
		}
	}
}

func TestSubmitNoLockout(t *testing.T) {
	ctx := context.Background()
	g, err := New(ctx, Config{Secret: "s3cret", Enforce: true}, newMapStorage())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 50; i++ {
		if ok, _ := g.Submit(ctx, "nope"); ok {
			t.Fatal("wrong secret accepted")
		}
	}
	if ok, _ := g.Submit(ctx, "s3cret"); !ok {
		t.Error("correct secret rejected after repeated failures")
	}
}

func TestSubmitWhenAuthenticatedIsNoop(t *testing.T) {
	ctx := context.Background()
	store := newMapStorage()
	g, err := New(ctx, Config{Secret: "s", Enforce: false}, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ok, err := g.Submit(ctx, "anything")
	if err != nil || !ok {
		t.Errorf("Submit on authenticated gate = (%v, %v), want (true, nil)", ok, err)
	}
	if !g.Authenticated() {
		t.Error("authenticated gate must stay authenticated")
	}
	if store.sets != 0 {
		t.Error("no-op submit wrote storage")
	}
}

func TestSubmitStorageError(t *testing.T) {
	ctx := context.Background()
	store := newMapStorage()
	g, err := New(ctx, Config{Secret: "s", Enforce: true}, store)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	store.setErr = errors.New("disk full")

	ok, err := g.Submit(ctx, "s")
	if err == nil {
		t.Fatal("expected storage error")
	}
	if ok || g.Authenticated() {
		t.Error("gate must not open when the flag could not be persisted")
	}
}

func TestStateString(t *testing.T) {
	if StatePrompting.String() != "prompting" {
		t.Errorf("StatePrompting.String() = %q", StatePrompting.String())
	}
	if StateAuthenticated.String() != "authenticated" {
		t.Errorf("StateAuthenticated.String() = %q", StateAuthenticated.String())
	}
	if State(7).String() != "State(7)" {
		t.Errorf("State(7).String() = %q", State(7).String())
	}
}
