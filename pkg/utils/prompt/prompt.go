package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"golang.org/x/term"
)

type line struct {
	text string
	err  error
}

// Prompter asks yes/no questions on a line-based terminal. Every question
// has a default that applies on empty input, timeout, EOF or when input is
// not interactive.
type Prompter struct {
	in          io.Reader
	out         io.Writer
	timeout     time.Duration
	interactive bool

	startOnce sync.Once
	lines     chan line
}

// Option configures the Prompter
type Option func(*Prompter)

// WithTimeout sets how long each question waits before taking its default.
// Zero waits forever.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prompter) {
		p.timeout = timeout
	}
}

// WithInteractive overrides terminal detection on the input
func WithInteractive(interactive bool) Option {
	return func(p *Prompter) {
		p.interactive = interactive
	}
}

// New creates a new Prompter
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  in,
		out: out,
	}
	if f, ok := in.(*os.File); ok {
		p.interactive = term.IsTerminal(int(f.Fd()))
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Interactive reports whether questions wait for input
func (p *Prompter) Interactive() bool {
	return p.interactive
}

// YesNo asks the question and returns the answer or def
func (p *Prompter) YesNo(ctx context.Context, question string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	if !p.interactive {
		fmt.Fprintf(p.out, "%s %s: %s\n", question, hint, answerText(def))
		return def
	}

	for {
		fmt.Fprintf(p.out, "%s %s: ", question, hint)

		text, ok := p.readLine(ctx)
		if !ok {
			fmt.Fprintf(p.out, "%s\n", answerText(def))
			ctxlog.From(ctx).Debug("No answer, using default",
				"question", question,
				"default", def,
			)
			return def
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "":
			return def
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Fprintln(p.out, "Please answer y or n.")
		}
	}
}

// readLine waits for one line. It returns false on timeout, EOF or
// cancellation.
func (p *Prompter) readLine(ctx context.Context) (string, bool) {
	p.startOnce.Do(p.startReader)

	var timeout <-chan time.Time
	if p.timeout > 0 {
		timer := time.NewTimer(p.timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case l, ok := <-p.lines:
		if !ok || l.err != nil {
			return l.text, ok && l.text != ""
		}
		return l.text, true
	case <-timeout:
		return "", false
	case <-ctx.Done():
		return "", false
	}
}

// startReader reads input on a single goroutine so that an abandoned
// question does not lose the next answer
func (p *Prompter) startReader() {
	p.lines = make(chan line)
	go func() {
		defer close(p.lines)
		reader := bufio.NewReader(p.in)
		for {
			text, err := reader.ReadString('\n')
			p.lines <- line{text: text, err: err}
			if err != nil {
				return
			}
		}
	}()
}

func answerText(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
