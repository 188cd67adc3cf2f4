// Package progress reports how far a static export has got.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter is told the page count up front, then once per written page.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter picks line output under CI (CI or GITHUB_ACTIONS set) and a
// progress bar on stderr otherwise.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{Out: os.Stderr}
}

// The bar is one cell per page, clamped to these bounds.
const (
	minBarWidth = 10
	maxBarWidth = 40
)

func barWidth(pages int) int {
	return min(max(pages, minBarWidth), maxBarWidth)
}

// TerminalReporter draws a page-counting bar that names the page being
// written.
type TerminalReporter struct {
	Out io.Writer
	out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.out = r.Out
	if r.out == nil {
		r.out = os.Stderr
	}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription("Exporting pages"),
		progressbar.OptionSetWidth(barWidth(total)),
		progressbar.OptionSetItsString("pages"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) Update(current int, page string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(page)
	_ = r.bar.Set(current)
}

func (r *TerminalReporter) Finish() {
	if r.bar == nil {
		return
	}
	r.bar.Describe("Exported pages")
	_ = r.bar.Finish()
	fmt.Fprintln(r.out)
}

// CIReporter writes one line per page, with a running percentage.
type CIReporter struct {
	Out   io.Writer
	total int
	done  int
}

func (r *CIReporter) out() io.Writer {
	if r.Out == nil {
		return os.Stderr
	}
	return r.Out
}

func (r *CIReporter) Start(total int) {
	r.total = total
	r.done = 0
	fmt.Fprintf(r.out(), "Exporting %d pages\n", total)
}

func (r *CIReporter) Update(current int, page string) {
	r.done = current
	pct := 100
	if r.total > 0 {
		pct = current * 100 / r.total
	}
	fmt.Fprintf(r.out(), "[%d/%d %3d%%] %s\n", current, r.total, pct, page)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.out(), "Exported %d of %d pages\n", r.done, r.total)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}
