package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// lineReader is the raw input source behind a Console.
type lineReader interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
	Close() error
}

// plainReader reads newline-terminated input from any io.Reader. It backs
// scripted sessions and non-interactive standard input.
type plainReader struct {
	reader *bufio.Reader
	writer io.Writer
	// file is set when reading from a real file descriptor so secrets can
	// be read without echo.
	file *os.File
}

func newPlainReader(r io.Reader, w io.Writer) *plainReader {
	pr := &plainReader{reader: bufio.NewReader(r), writer: w}
	if f, ok := r.(*os.File); ok {
		pr.file = f
	}
	return pr
}

func (p *plainReader) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.writer, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrUserQuit
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) ReadSecret(prompt string) (string, error) {
	if p.file == nil || !term.IsTerminal(int(p.file.Fd())) {
		return p.ReadLine(prompt)
	}

	_, _ = fmt.Fprint(p.writer, prompt)
	secret, err := term.ReadPassword(int(p.file.Fd()))
	_, _ = fmt.Fprintln(p.writer) // New line after password
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	return string(secret), nil
}

func (p *plainReader) Close() error {
	return nil
}

// readlineReader drives an interactive terminal with line editing and
// history.
type readlineReader struct {
	rl *readline.Instance
}

func newReadlineReader(historyFile string) (*readlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		HistoryLimit:    100,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("initializing readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	return line, mapReadlineError(err)
}

func (r *readlineReader) ReadSecret(prompt string) (string, error) {
	secret, err := r.rl.ReadPassword(prompt)
	return string(secret), mapReadlineError(err)
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

func mapReadlineError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return ErrUserQuit
	default:
		return fmt.Errorf("reading input: %w", err)
	}
}
