package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ziadkadry99/secondopinion/internal/doctors"
	"github.com/ziadkadry99/secondopinion/internal/gate"
	"github.com/ziadkadry99/secondopinion/internal/legal"
	"github.com/ziadkadry99/secondopinion/internal/session"
	"github.com/ziadkadry99/secondopinion/internal/web"
)

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, zap.NewNop())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, zap.NewNop())

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	srv := New(Config{}, zap.New(core))

	req := httptest.NewRequest("GET", "/healthz", nil)
	srv.Router().ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/healthz" {
		t.Errorf("path = %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("status = %v", fields["status"])
	}
}

const testSecret = "letmein2025"

func newGatedServer(t *testing.T, enforce bool) *Server {
	t.Helper()
	lib, err := legal.Default()
	if err != nil {
		t.Fatalf("legal.Default: %v", err)
	}
	site, err := web.New(web.Options{
		Name:    "Second Opinion",
		Legal:   lib,
		Doctors: doctors.NewMockSource(),
		Logger:  zap.NewNop(),
	})
	if err != nil {
		t.Fatalf("web.New: %v", err)
	}

	mgr := session.NewManager(session.NewMemoryBackend())
	storage := func(w http.ResponseWriter, r *http.Request) gate.Storage {
		return mgr.Storage(w, r)
	}

	srv := New(Config{}, zap.NewNop())
	srv.Mount(site, gate.Middleware(gate.Config{Secret: testSecret, Enforce: enforce}, "Second Opinion", storage, zap.NewNop()))
	return srv
}

func do(srv *Server, req *http.Request, cookies ...*http.Cookie) *http.Response {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w.Result()
}

func submitSecret(path, secret string) *http.Request {
	form := url.Values{gate.FieldSecret: {secret}}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", session.CookieName)
	return nil
}

func TestGatedSiteFlow(t *testing.T) {
	srv := newGatedServer(t, true)

	// Content is blocked before the secret is entered.
	resp := do(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("GET / status = %d, want 401", resp.StatusCode)
	}

	// A wrong secret keeps the prompt and shows the error.
	resp = do(srv, submitSecret("/", "letmein"))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong secret status = %d, want 401", resp.StatusCode)
	}
	if len(resp.Cookies()) != 0 {
		t.Error("wrong secret must not start a session")
	}

	// The right secret unlocks the session.
	resp = do(srv, submitSecret("/legal", testSecret))
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("correct secret status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/legal" {
		t.Errorf("Location = %q, want /legal", loc)
	}
	cookie := sessionCookie(t, resp)

	for _, path := range []string{"/", "/legal", "/partners/employers"} {
		resp = do(srv, httptest.NewRequest(http.MethodGet, path, nil), cookie)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s with session = %d, want 200", path, resp.StatusCode)
		}
	}

	// Unknown paths reach the site's own not-found page once unlocked.
	resp = do(srv, httptest.NewRequest(http.MethodGet, "/missing", nil), cookie)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET /missing with session = %d, want 404", resp.StatusCode)
	}

	// A different browser is still prompted.
	resp = do(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("fresh browser status = %d, want 401", resp.StatusCode)
	}
}

func TestGatedNotFoundIsGated(t *testing.T) {
	srv := newGatedServer(t, true)

	resp := do(srv, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestUngatedRoutes(t *testing.T) {
	srv := newGatedServer(t, true)

	for _, path := range []string{"/healthz", "/static/style.css", "/static/doctors/elena-marsh.svg"} {
		resp := do(srv, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestGateNotEnforced(t *testing.T) {
	srv := newGatedServer(t, false)

	resp := do(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(resp.Cookies()) != 0 {
		t.Error("no session should be created when the gate is off")
	}
}
