// Package web renders the marketing site's pages.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/secondopinion/internal/content"
	"github.com/ziadkadry99/secondopinion/internal/doctors"
	"github.com/ziadkadry99/secondopinion/internal/initiative"
	"github.com/ziadkadry99/secondopinion/internal/legal"
)

// Options configures a Site.
type Options struct {
	Name    string
	BaseURL string
	Legal   *legal.Library
	Doctors doctors.Source
	// Initiative relays sign-ups. When nil, POST /join answers 503.
	Initiative *initiative.Service
	Logger     *zap.Logger
}

// Site renders every page of the marketing site.
type Site struct {
	name       string
	baseURL    string
	legal      *legal.Library
	doctors    doctors.Source
	initiative *initiative.Service
	logger     *zap.Logger
	pages      map[string]*template.Template
	now        func() time.Time
}

// pageData is the data every page template receives.
type pageData struct {
	SiteName  string
	Title     string
	Canonical string
	Year      int
	Segments  []content.Segment
	Legal     []legal.Document
	Data      any
}

var pageTemplates = map[string]string{
	"home":        homeTemplate,
	"segment":     segmentTemplate,
	"legal-index": legalIndexTemplate,
	"legal-doc":   legalDocTemplate,
	"doctor":      doctorTemplate,
	"join":        joinTemplate,
	"thanks":      thanksTemplate,
	"not-found":   notFoundTemplate,
}

// New parses the page templates and returns a Site.
func New(opts Options) (*Site, error) {
	if opts.Legal == nil {
		return nil, fmt.Errorf("legal library is required")
	}
	if opts.Doctors == nil {
		return nil, fmt.Errorf("doctor source is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	base, err := template.New("layout").Funcs(template.FuncMap{
		"join": strings.Join,
	}).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	if _, err := base.Parse(doctorCardTemplate); err != nil {
		return nil, fmt.Errorf("parsing doctor card template: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageTemplates))
	for name, body := range pageTemplates {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", name, err)
		}
		if _, err := t.Parse(body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
		pages[name] = t
	}

	return &Site{
		name:       opts.Name,
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		legal:      opts.Legal,
		doctors:    opts.Doctors,
		initiative: opts.Initiative,
		logger:     opts.Logger,
		pages:      pages,
		now:        time.Now,
	}, nil
}

// RegisterAssets mounts static assets. They are not gated: the gate prompt
// is self-contained and the assets hold nothing private.
func (s *Site) RegisterAssets(r chi.Router) {
	r.Get("/static/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		w.Write([]byte(cssContent))
	})
	r.Get("/static/doctors/{file}", s.handleDoctorPhoto)
}

// RegisterRoutes mounts every page on r.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleHome)
	r.Get("/partners/{slug}", s.handleSegment)
	r.Get("/legal", s.handleLegalIndex)
	r.Get("/legal/{slug}", s.handleLegalDoc)
	r.Get("/doctors/{id}", s.handleDoctor)
	r.Get("/join", s.handleJoinForm)
	r.Post("/join", s.handleJoinSubmit)
	r.NotFound(s.handleNotFound)
}

// newPage fills the fields shared by every page.
func (s *Site) newPage(title, path string, data any) pageData {
	canonical := ""
	if s.baseURL != "" {
		canonical = s.baseURL + path
	}
	return pageData{
		SiteName:  s.name,
		Title:     title,
		Canonical: canonical,
		Year:      s.now().Year(),
		Segments:  content.Segments(),
		Legal:     s.legal.List(),
		Data:      data,
	}
}

// render executes page into a buffer first so a template error never
// leaves a half-written response.
func (s *Site) render(w http.ResponseWriter, status int, page string, data pageData) {
	var buf bytes.Buffer
	if err := s.renderTo(&buf, page, data); err != nil {
		s.logger.Error("rendering page", zap.String("page", page), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Site) renderTo(buf *bytes.Buffer, page string, data pageData) error {
	t, ok := s.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(buf, "layout", data)
}
