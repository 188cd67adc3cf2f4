package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/secondopinion/internal/content"
)

// NotFoundPage names the exported not-found page.
const NotFoundPage = "404"

// StaticPage is a page that can be written out ahead of time.
type StaticPage struct {
	// Name identifies the page for include filters, e.g. "legal/privacy-policy".
	Name string
	// Path is the URL path the page is served at.
	Path string
	// Output is the file the page is written to, relative to the export root.
	Output string
}

// StaticPages lists every GET page that does not depend on a request. The
// join form is left out because it posts back to the server.
func (s *Site) StaticPages() []StaticPage {
	pages := []StaticPage{
		{Name: "index", Path: "/", Output: "index.html"},
	}
	for _, seg := range content.Segments() {
		pages = append(pages, StaticPage{
			Name:   "partners/" + seg.Slug,
			Path:   "/partners/" + seg.Slug,
			Output: "partners/" + seg.Slug + "/index.html",
		})
	}
	pages = append(pages, StaticPage{Name: "legal", Path: "/legal", Output: "legal/index.html"})
	for _, doc := range s.legal.List() {
		pages = append(pages, StaticPage{
			Name:   "legal/" + doc.Slug,
			Path:   "/legal/" + doc.Slug,
			Output: "legal/" + doc.Slug + "/index.html",
		})
	}
	for _, id := range s.doctors.IDs() {
		pages = append(pages, StaticPage{
			Name:   "doctors/" + id,
			Path:   "/doctors/" + id,
			Output: "doctors/" + id + "/index.html",
		})
	}
	pages = append(pages, StaticPage{Name: NotFoundPage, Path: "/404", Output: "404.html"})
	return pages
}

// StaticAssets returns the asset files, keyed by their export path.
func (s *Site) StaticAssets() map[string][]byte {
	assets := doctorPhotos()
	assets["static/style.css"] = []byte(cssContent)
	return assets
}

// Handler returns the site's routes without any gate, for in-process
// rendering.
func (s *Site) Handler() http.Handler {
	r := chi.NewRouter()
	s.RegisterAssets(r)
	s.RegisterRoutes(r)
	return r
}
