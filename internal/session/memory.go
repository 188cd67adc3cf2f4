package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	values  map[string]string
	touched time.Time
}

// MemoryBackend keeps sessions in process memory.
type MemoryBackend struct {
	mu       sync.Mutex
	sessions map[string]*memoryEntry
	now      func() time.Time
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		sessions: make(map[string]*memoryEntry),
		now:      time.Now,
	}
}

// Get returns the value under key. Reading a session counts as activity,
// so it also refreshes the session's idle clock.
func (b *MemoryBackend) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.sessions[sessionID]
	if !ok {
		return "", false, nil
	}
	e.touched = b.now()
	v, ok := e.values[key]
	return v, ok, nil
}

func (b *MemoryBackend) Set(_ context.Context, sessionID, key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.sessions[sessionID]
	if !ok {
		e = &memoryEntry{values: make(map[string]string)}
		b.sessions[sessionID] = e
	}
	e.values[key] = value
	e.touched = b.now()
	return nil
}

func (b *MemoryBackend) Prune(_ context.Context, before time.Time) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var n int64
	for id, e := range b.sessions {
		if e.touched.Before(before) {
			n += int64(len(e.values))
			delete(b.sessions, id)
		}
	}
	return n, nil
}
