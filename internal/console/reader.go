// Package console reads the human player's throws from a terminal or pipe.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned when the user presses Ctrl-C at the prompt
var ErrInterrupted = errors.New("interrupted")

// LineReader supplies one line of input per call. ReadLine returns
// ctx.Err() if ctx ends before a line arrives.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type lineResult struct {
	line string
	err  error
}

// pendingRead runs a blocking read on its own goroutine so callers can give
// up on it. A read abandoned by a cancelled caller is handed to the next
// call, so no line is lost.
type pendingRead struct {
	read    func() (string, error)
	pending chan lineResult
}

func (p *pendingRead) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			line, err := p.read()
			ch <- lineResult{line: line, err: err}
		}()
		p.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		return res.line, res.err
	}
}

// Scanner reads lines from any io.Reader, printing a prompt first when
// an output is given.
type Scanner struct {
	r      *bufio.Reader
	out    io.Writer
	prompt string
	reads  pendingRead
}

// NewScanner creates a line reader for piped or redirected input
func NewScanner(in io.Reader, out io.Writer, prompt string) *Scanner {
	s := &Scanner{r: bufio.NewReader(in), out: out, prompt: prompt}
	s.reads.read = s.next
	return s
}

// ReadLine returns the next line including its terminator. A final line
// without a newline is returned without error; io.EOF follows it.
func (s *Scanner) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.reads.readLine(ctx)
}

func (s *Scanner) next() (string, error) {
	if s.out != nil && s.prompt != "" {
		if _, err := fmt.Fprint(s.out, s.prompt); err != nil {
			return "", err
		}
	}
	line, err := s.r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// lineEditor is the part of *readline.Instance a Terminal uses
type lineEditor interface {
	Readline() (string, error)
	Close() error
}

// Terminal is an interactive line reader with history and tab completion
// of the throw names.
type Terminal struct {
	editor lineEditor
	reads  pendingRead
}

// NewTerminal sets up readline on the process terminal. historyFile may be
// empty to disable history.
func NewTerminal(prompt, historyFile string) (*Terminal, error) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("rock"),
		readline.PcItem("paper"),
		readline.PcItem("scissors"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialise terminal: %w", err)
	}
	return newTerminal(rl), nil
}

func newTerminal(editor lineEditor) *Terminal {
	t := &Terminal{editor: editor}
	t.reads.read = t.next
	return t
}

// ReadLine blocks until the user submits a line or ctx ends
func (t *Terminal) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return t.reads.readLine(ctx)
}

func (t *Terminal) next() (string, error) {
	line, err := t.editor.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

// Close restores the terminal
func (t *Terminal) Close() error {
	return t.editor.Close()
}

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
