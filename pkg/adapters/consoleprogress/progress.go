// Package consoleprogress reports frame-patching progress to the console.
package consoleprogress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"
	"github.com/user/trailclean/pkg/ports"
)

// Reporter prints done/total counts with an estimated time remaining.
// On a terminal it rewrites a single line; otherwise it prints a plain
// line at every 10% step so logs stay readable.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	tty      bool
	total    int
	started  time.Time
	lastStep int
}

// New creates a Reporter writing to stdout.
func New() *Reporter {
	return &Reporter{
		out: os.Stdout,
		tty: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
}

// NewDiscard creates a Reporter that prints nothing, for quiet mode.
func NewDiscard() *Reporter {
	return &Reporter{out: io.Discard}
}

// Start announces the total number of frames.
func (r *Reporter) Start(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
	r.started = time.Now()
	r.lastStep = -1
}

// Advance reports the cumulative number of completed frames.
func (r *Reporter) Advance(done int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.total <= 0 {
		return
	}

	pct := done * 100 / r.total
	if r.tty {
		fmt.Fprintf(r.out, "\r%s", r.line(done, pct))
		return
	}

	// Without a terminal, only log at 10% steps.
	step := pct / 10
	if step == r.lastStep {
		return
	}
	r.lastStep = step
	fmt.Fprintln(r.out, r.line(done, pct))
}

// Finish terminates the progress line.
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tty && r.total > 0 {
		fmt.Fprintln(r.out)
	}
}

func (r *Reporter) line(done, pct int) string {
	return l10n.F("Patching frames %d/%d (%d%%) ETA %s",
		done, r.total, pct, formatETA(estimate(r.started, done, r.total)))
}

// estimate projects remaining time from throughput so far.
func estimate(started time.Time, done, total int) time.Duration {
	if done <= 0 || done >= total {
		return 0
	}
	elapsed := time.Since(started)
	return elapsed / time.Duration(done) * time.Duration(total-done)
}

func formatETA(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	d = d.Round(time.Second)
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

// Ensure Reporter implements ports.ProgressReporter
var _ ports.ProgressReporter = (*Reporter)(nil)
