// Package legal renders the site's legal and policy documents from markdown
// embedded in the binary.
package legal

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed docs/*.md
var embedded embed.FS

// Document is one rendered legal document.
type Document struct {
	Slug  string
	Title string
	HTML  template.HTML
}

// Library holds every document, rendered once at construction.
type Library struct {
	docs  map[string]Document
	order []string
}

// Default returns the library over the embedded documents.
func Default() (*Library, error) {
	sub, err := fs.Sub(embedded, "docs")
	if err != nil {
		return nil, fmt.Errorf("opening embedded docs: %w", err)
	}
	return NewLibrary(sub)
}

// NewLibrary renders every *.md file at the root of fsys.
func NewLibrary(fsys fs.FS) (*Library, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("listing legal docs: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)

	lib := &Library{docs: make(map[string]Document, len(names))}
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		var buf bytes.Buffer
		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("converting %s: %w", name, err)
		}

		slug := strings.TrimSuffix(path.Base(name), ".md")
		lib.docs[slug] = Document{
			Slug:  slug,
			Title: extractTitle(string(src), slug),
			// Documents are compiled into the binary, so their HTML is trusted.
			HTML: template.HTML(buf.String()),
		}
		lib.order = append(lib.order, slug)
	}
	sort.Strings(lib.order)

	return lib, nil
}

// List returns every document in slug order.
func (l *Library) List() []Document {
	out := make([]Document, 0, len(l.order))
	for _, slug := range l.order {
		out = append(out, l.docs[slug])
	}
	return out
}

// Get returns the document with the given slug.
func (l *Library) Get(slug string) (Document, bool) {
	d, ok := l.docs[slug]
	return d, ok
}

// extractTitle returns the first level-one heading, or the slug in title case.
func extractTitle(content, slug string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
