package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
)

//go:embed static/doctors/*.svg
var assetFS embed.FS

// doctorPhotos returns the embedded portraits keyed by export path, e.g.
// "static/doctors/elena-marsh.svg".
func doctorPhotos() map[string][]byte {
	out := make(map[string][]byte)
	names, _ := fs.Glob(assetFS, "static/doctors/*.svg")
	for _, name := range names {
		data, err := fs.ReadFile(assetFS, name)
		if err != nil {
			continue
		}
		out[name] = data
	}
	return out
}

func (s *Site) handleDoctorPhoto(w http.ResponseWriter, r *http.Request) {
	name := path.Join("static/doctors", path.Base(chi.URLParam(r, "file")))
	data, err := fs.ReadFile(assetFS, name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}
