// Package progress renders conformity run progress: a redrawn bar when
// stderr is a terminal, throttled log lines otherwise.
package progress

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/conformity/conformity"
)

// Default redraw and log intervals.
const (
	DefaultBarInterval = 100 * time.Millisecond
	DefaultLogInterval = 2 * time.Second
	DefaultBarWidth    = 40
)

var counterStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

// Bar draws a single-line progress bar, overwriting itself with '\r'.
// The last node always draws and ends the line.
type Bar struct {
	w     io.Writer
	model progress.Model
	every rate.Sometimes
}

// NewBar returns a bar writing to w that redraws at most once per interval.
// A non-positive interval uses DefaultBarInterval.
func NewBar(w io.Writer, interval time.Duration) *Bar {
	if interval <= 0 {
		interval = DefaultBarInterval
	}

	return &Bar{
		w:     w,
		model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(DefaultBarWidth)),
		every: rate.Sometimes{Interval: interval},
	}
}

// NodeDone implements conformity.Observer.
func (b *Bar) NodeDone(_ string, done, total int) {
	if done >= total {
		b.draw(done, total)
		fmt.Fprintln(b.w)
		return
	}
	b.every.Do(func() { b.draw(done, total) })
}

func (b *Bar) draw(done, total int) {
	counter := counterStyle.Render(fmt.Sprintf("%d/%d", done, total))
	fmt.Fprintf(b.w, "\r%s %s", counter, b.model.ViewAs(float64(done)/float64(total)))
}

// Log reports progress as structured log lines, at most once per interval,
// plus a final line.
type Log struct {
	logger *slog.Logger
	every  rate.Sometimes
	start  time.Time
}

// NewLog returns a Log observer. A non-positive interval uses
// DefaultLogInterval.
func NewLog(logger *slog.Logger, interval time.Duration) *Log {
	if interval <= 0 {
		interval = DefaultLogInterval
	}

	return &Log{logger: logger, every: rate.Sometimes{Interval: interval}, start: time.Now()}
}

// NodeDone implements conformity.Observer.
func (l *Log) NodeDone(node string, done, total int) {
	if done >= total {
		l.logger.Info("scoring finished", "nodes", total, "elapsed", time.Since(l.start))
		return
	}
	l.every.Do(func() {
		l.logger.Info("scoring", "done", done, "total", total, "last", node)
	})
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// For picks a Bar on f when f is a terminal and a Log observer otherwise.
func For(f *os.File, logger *slog.Logger) conformity.Observer {
	if IsTerminal(f) {
		return NewBar(f, DefaultBarInterval)
	}

	return NewLog(logger, DefaultLogInterval)
}
