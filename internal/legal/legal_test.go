package legal

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefaultLibrary(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	want := []string{"cookie-policy", "hipaa-notice", "medical-disclaimer", "privacy-policy", "terms-of-service"}
	docs := lib.List()
	if len(docs) != len(want) {
		t.Fatalf("got %d documents, want %d", len(docs), len(want))
	}
	for i, d := range docs {
		if d.Slug != want[i] {
			t.Errorf("docs[%d].Slug = %q, want %q", i, d.Slug, want[i])
		}
		if d.Title == "" {
			t.Errorf("%s has no title", d.Slug)
		}
		if d.HTML == "" {
			t.Errorf("%s rendered empty", d.Slug)
		}
	}

	privacy, ok := lib.Get("privacy-policy")
	if !ok {
		t.Fatal("privacy-policy missing")
	}
	if privacy.Title != "Privacy Policy" {
		t.Errorf("Title = %q, want %q", privacy.Title, "Privacy Policy")
	}
	// GFM tables are enabled.
	if !strings.Contains(string(privacy.HTML), "<table>") {
		t.Error("expected the category table to render")
	}
	if !strings.Contains(string(privacy.HTML), `href="/legal/hipaa-notice"`) {
		t.Error("expected the link to the HIPAA notice")
	}
}

func TestGetMissing(t *testing.T) {
	lib, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if _, ok := lib.Get("refund-policy"); ok {
		t.Error("unexpected document for unknown slug")
	}
}

func TestNewLibraryHeadingIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"accessibility.md": {Data: []byte("# Accessibility\n\n## Our commitment\n\nWe aim for WCAG 2.1 AA.\n")},
	}
	lib, err := NewLibrary(fsys)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	d, ok := lib.Get("accessibility")
	if !ok {
		t.Fatal("accessibility missing")
	}
	if !strings.Contains(string(d.HTML), `<h2 id="our-commitment">`) {
		t.Errorf("expected auto heading id, got %s", d.HTML)
	}
}

func TestNewLibraryIgnoresOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"terms.md":  {Data: []byte("# Terms\n")},
		"notes.txt": {Data: []byte("not a document")},
	}
	lib, err := NewLibrary(fsys)
	if err != nil {
		t.Fatalf("NewLibrary: %v", err)
	}
	if len(lib.List()) != 1 {
		t.Errorf("got %d documents, want 1", len(lib.List()))
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		content, slug, want string
	}{
		{"# Terms of Service\n\nbody", "terms", "Terms of Service"},
		{"intro\n  # Indented Heading  \n", "x", "Indented Heading"},
		{"## Only a subheading\n", "data-processing-addendum", "Data Processing Addendum"},
		{"", "cookie-policy", "Cookie Policy"},
	}
	for _, tt := range tests {
		if got := extractTitle(tt.content, tt.slug); got != tt.want {
			t.Errorf("extractTitle(%q, %q) = %q, want %q", tt.content, tt.slug, got, tt.want)
		}
	}
}
