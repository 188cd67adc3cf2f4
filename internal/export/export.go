// Package export writes the public pages of the site to static files.
package export

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"github.com/ziadkadry99/secondopinion/internal/progress"
	"github.com/ziadkadry99/secondopinion/internal/web"
)

// Pages is the part of a site an Exporter renders.
type Pages interface {
	StaticPages() []web.StaticPage
	StaticAssets() map[string][]byte
	Handler() http.Handler
}

// Exporter renders pages in-process and writes them under OutDir.
type Exporter struct {
	OutDir string
	// Include filters pages by name with doublestar globs. Empty means all.
	Include  []string
	Reporter progress.Reporter
	Logger   *zap.Logger
}

// Result summarizes an export run.
type Result struct {
	Pages  []string
	Assets []string
}

// Run renders every selected page and writes the asset files. It returns
// the first write or render failure.
func (e *Exporter) Run(ctx context.Context, site Pages) (*Result, error) {
	if e.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	for _, pattern := range e.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var pages []web.StaticPage
	for _, p := range site.StaticPages() {
		if e.included(p.Name) {
			pages = append(pages, p)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages match %v", e.Include)
	}

	if err := os.MkdirAll(e.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	handler := site.Handler()
	res := &Result{}

	reporter.Start(len(pages))
	defer reporter.Finish()

	for i, p := range pages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		body, err := render(ctx, handler, p)
		if err != nil {
			return res, fmt.Errorf("rendering %s: %w", p.Name, err)
		}
		if err := e.write(p.Output, body); err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, p.Output)
		logger.Debug("exported page", zap.String("page", p.Name), zap.String("output", p.Output))
		reporter.Update(i+1, p.Name)
	}

	assets := site.StaticAssets()
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := e.write(name, assets[name]); err != nil {
			return res, err
		}
		res.Assets = append(res.Assets, name)
	}

	logger.Info("export finished",
		zap.String("out", e.OutDir),
		zap.Int("pages", len(res.Pages)),
		zap.Int("assets", len(res.Assets)),
	)
	return res, nil
}

func (e *Exporter) included(name string) bool {
	if len(e.Include) == 0 {
		return true
	}
	for _, pattern := range e.Include {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (e *Exporter) write(rel string, data []byte) error {
	path := filepath.Join(e.OutDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}

// render serves one GET request against handler. The not-found page is the
// only one allowed to answer with a non-200 status.
func render(ctx context.Context, handler http.Handler, p web.StaticPage) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, p.Path, nil).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	want := http.StatusOK
	if p.Name == web.NotFoundPage {
		want = http.StatusNotFound
	}
	if w.Code != want {
		return nil, fmt.Errorf("GET %s returned status %d", p.Path, w.Code)
	}
	return w.Body.Bytes(), nil
}
