package doctors

import (
	"context"
	"errors"
	"testing"
)

func TestMockSourceFetch(t *testing.T) {
	src := NewMockSource()

	p, err := src.Fetch(context.Background(), "dr-elena-marsh")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if p.Name != "Elena Marsh" {
		t.Errorf("Name = %q, want %q", p.Name, "Elena Marsh")
	}
	if p.Specialty == "" || p.Institution == "" {
		t.Errorf("profile incomplete: %+v", p)
	}
}

func TestMockSourceFetchReturnsCopy(t *testing.T) {
	src := NewMockSource()
	ctx := context.Background()

	p, err := src.Fetch(ctx, "dr-elena-marsh")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	p.Name = "changed"
	p.Languages[0] = "changed"

	again, err := src.Fetch(ctx, "dr-elena-marsh")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if again.Name != "Elena Marsh" || again.Languages[0] != "English" {
		t.Error("Fetch leaked internal state")
	}
}

func TestMockSourceNotFound(t *testing.T) {
	_, err := NewMockSource().Fetch(context.Background(), "dr-nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestMockSourceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockSource().Fetch(ctx, "dr-elena-marsh")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestMockSourceIDs(t *testing.T) {
	ids := NewMockSource().IDs()
	if len(ids) != 2 {
		t.Fatalf("got %d ids, want 2", len(ids))
	}
	if ids[0] != "dr-elena-marsh" || ids[1] != "dr-samuel-okafor" {
		t.Errorf("IDs() = %v", ids)
	}
}
