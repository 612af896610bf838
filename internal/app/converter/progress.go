package converter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"
)

// itemProgress reports converted items on a single redrawn line. A nil
// *itemProgress is valid and reports nothing.
type itemProgress struct {
	mu    sync.Mutex
	out   io.Writer
	bar   progress.Model
	total int
	done  int
	drawn int
}

func newItemProgress(out io.Writer, total int) *itemProgress {
	if out == nil {
		return nil
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = progressWidth()
	return &itemProgress{out: out, bar: bar, total: total}
}

// progressWidth leaves room for the counters next to the bar.
func progressWidth() int {
	cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS")))
	if err != nil || cols <= 0 {
		return 36
	}
	return min(max(cols-40, 16), 64)
}

func (p *itemProgress) itemDone() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = min(p.done+1, p.total)
	p.draw("converting")
}

// finish draws the final state and moves to a fresh line.
func (p *itemProgress) finish() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = p.total
	p.draw("done")
	fmt.Fprintln(p.out)
	p.drawn = 0
}

// abort ends a partially drawn line after a failed run.
func (p *itemProgress) abort() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn > 0 {
		fmt.Fprintln(p.out)
		p.drawn = 0
	}
}

func (p *itemProgress) draw(state string) {
	ratio := 1.0
	if p.total > 0 {
		ratio = float64(p.done) / float64(p.total)
	}
	line := fmt.Sprintf("%s %d/%d items %s", p.bar.ViewAs(ratio), p.done, p.total, state)
	if pad := p.drawn - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	fmt.Fprint(p.out, "\r"+line)
	p.drawn = len(line)
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	if f == nil || strings.EqualFold(strings.TrimSpace(os.Getenv("TERM")), "dumb") {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
