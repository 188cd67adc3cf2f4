package gate

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

// FieldSecret is the form field the prompt submits.
const FieldSecret = "gate_secret"

// StorageFunc resolves the session storage for a request. It may set a
// session cookie on w when storage is first written.
type StorageFunc func(w http.ResponseWriter, r *http.Request) Storage

type promptData struct {
	SiteName string
	Action   string
	Mismatch bool
}

// Middleware wraps next so it is only reached once the request's session
// has passed the gate. While prompting, every request gets the blocking
// prompt page; a POST carrying FieldSecret is treated as a submission.
func Middleware(cfg Config, siteName string, storage StorageFunc, logger *zap.Logger) func(http.Handler) http.Handler {
	tmpl := template.Must(template.New("prompt").Parse(promptTemplate))

	render := func(w http.ResponseWriter, r *http.Request, mismatch bool) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusUnauthorized)
		data := promptData{
			SiteName: siteName,
			Action:   r.URL.RequestURI(),
			Mismatch: mismatch,
		}
		if err := tmpl.Execute(w, data); err != nil {
			logger.Error("rendering gate prompt", zap.Error(err))
		}
	}

	return func(next http.Handler) http.Handler {
		if !cfg.Enforce {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			g, err := New(ctx, cfg, storage(w, r))
			if err != nil {
				logger.Error("mounting gate", zap.Error(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if g.Authenticated() {
				next.ServeHTTP(w, r)
				return
			}

			candidate, submitted := submission(r)
			if !submitted {
				render(w, r, false)
				return
			}

			ok, err := g.Submit(ctx, candidate)
			if err != nil {
				logger.Error("persisting gate flag", zap.Error(err))
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if !ok {
				render(w, r, g.Mismatch())
				return
			}

			logger.Debug("gate unlocked", zap.String("path", r.URL.Path))
			http.Redirect(w, r, r.URL.RequestURI(), http.StatusSeeOther)
		})
	}
}

func submission(r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		return "", false
	}
	if err := r.ParseForm(); err != nil {
		return "", false
	}
	values, ok := r.PostForm[FieldSecret]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
