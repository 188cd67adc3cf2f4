package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ziadkadry99/secondopinion/internal/doctors"
	"github.com/ziadkadry99/secondopinion/internal/legal"
	"github.com/ziadkadry99/secondopinion/internal/web"
)

type recordingReporter struct {
	total    int
	updates  []string
	finished bool
}

func (r *recordingReporter) Start(total int)              { r.total = total }
func (r *recordingReporter) Update(_ int, message string) { r.updates = append(r.updates, message) }
func (r *recordingReporter) Finish()                      { r.finished = true }

func newSite(t *testing.T) *web.Site {
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
	return site
}

func TestRunExportsEverything(t *testing.T) {
	site := newSite(t)
	out := t.TempDir()
	rep := &recordingReporter{}

	e := &Exporter{OutDir: out, Reporter: rep, Logger: zap.NewNop()}
	res, err := e.Run(context.Background(), site)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(res.Pages) != len(site.StaticPages()) {
		t.Errorf("exported %d pages, want %d", len(res.Pages), len(site.StaticPages()))
	}
	if rep.total != len(res.Pages) || len(rep.updates) != len(res.Pages) || !rep.finished {
		t.Errorf("reporter saw total=%d updates=%d finished=%v", rep.total, len(rep.updates), rep.finished)
	}

	for _, rel := range []string{
		"index.html",
		"404.html",
		"legal/index.html",
		"legal/privacy-policy/index.html",
		"partners/brokers/index.html",
		"doctors/dr-elena-marsh/index.html",
		"static/style.css",
		"static/doctors/elena-marsh.svg",
		"static/doctors/samuel-okafor.svg",
	} {
		if _, err := os.Stat(filepath.Join(out, rel)); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "join", "index.html")); err == nil {
		t.Error("join page should not be exported")
	}

	data, err := os.ReadFile(filepath.Join(out, "404.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Page not found") {
		t.Error("404.html does not hold the not-found page")
	}
}

func TestRunIncludeFilter(t *testing.T) {
	tests := []struct {
		include []string
		want    []string
	}{
		{[]string{"legal/*"}, []string{
			"legal/cookie-policy/index.html",
			"legal/hipaa-notice/index.html",
			"legal/medical-disclaimer/index.html",
			"legal/privacy-policy/index.html",
			"legal/terms-of-service/index.html",
		}},
		{[]string{"index", "partners/**"}, []string{
			"index.html",
			"partners/brokers/index.html",
			"partners/employers/index.html",
			"partners/health-plans/index.html",
			"partners/providers/index.html",
		}},
		{[]string{"doctors/dr-samuel-*"}, []string{"doctors/dr-samuel-okafor/index.html"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.include, ","), func(t *testing.T) {
			e := &Exporter{OutDir: t.TempDir(), Include: tt.include}
			res, err := e.Run(context.Background(), newSite(t))
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			got := make(map[string]bool)
			for _, p := range res.Pages {
				got[p] = true
			}
			if len(got) != len(tt.want) {
				t.Errorf("pages = %v, want %v", res.Pages, tt.want)
			}
			for _, w := range tt.want {
				if !got[w] {
					t.Errorf("missing %s in %v", w, res.Pages)
				}
			}
			if len(res.Assets) != 3 {
				t.Errorf("assets = %v, want stylesheet and two portraits", res.Assets)
			}
		})
	}
}

func TestRunNoMatch(t *testing.T) {
	e := &Exporter{OutDir: t.TempDir(), Include: []string{"blog/**"}}
	if _, err := e.Run(context.Background(), newSite(t)); err == nil {
		t.Fatal("expected error when nothing matches")
	}
}

func TestRunInvalidPattern(t *testing.T) {
	e := &Exporter{OutDir: t.TempDir(), Include: []string{"legal/["}}
	if _, err := e.Run(context.Background(), newSite(t)); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestRunRequiresOutDir(t *testing.T) {
	e := &Exporter{}
	if _, err := e.Run(context.Background(), newSite(t)); err == nil {
		t.Fatal("expected error without output directory")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &Exporter{OutDir: t.TempDir()}
	res, err := e.Run(ctx, newSite(t))
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(res.Pages) != 0 {
		t.Errorf("pages written after cancel: %v", res.Pages)
	}
}
