package renderer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

const defaultTerminalWidth = 80

// Progress reports completed iterations out of a known total.
// It is safe for concurrent use. Output is written only when the integer
// percentage changes: a redrawn bar on terminals, one line per step otherwise.
type Progress struct {
	mu          sync.Mutex
	label       string
	total       int
	completed   int
	lastPercent int
	out         io.Writer
	barWidth    int // 0 for plain line output
}

// NewProgress creates a progress reporter. A nil writer disables output.
func NewProgress(label string, total int, out io.Writer) *Progress {
	p := &Progress{
		label:       label,
		total:       max(total, 1),
		lastPercent: -1,
		out:         out,
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		width := defaultTerminalWidth
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
		// Room for the label, brackets and " 100%"
		p.barWidth = max(width-len(label)-9, 10)
	}
	return p
}

// CompleteIteration records one finished iteration
func (p *Progress) CompleteIteration() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	percent := min(p.completed*100/p.total, 100)
	if percent == p.lastPercent {
		return
	}
	p.lastPercent = percent
	p.print(percent)
}

// Completed returns the number of finished iterations
func (p *Progress) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// Percent returns the last reported percentage, or -1 before any iteration
func (p *Progress) Percent() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPercent
}

func (p *Progress) print(percent int) {
	if p.out == nil {
		return
	}

	if p.barWidth == 0 {
		fmt.Fprintf(p.out, "%s: %d%%\n", p.label, percent)
		return
	}

	filled := p.barWidth * percent / 100
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", p.barWidth-filled)
	fmt.Fprintf(p.out, "\r%s [%s] %3d%%", p.label, bar, percent)
	if percent == 100 {
		fmt.Fprintln(p.out)
	}
}
