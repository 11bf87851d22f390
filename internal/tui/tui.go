// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the operator console: line prompts, secret prompts,
// the command prompt, and status lines prefixed with glyphs.
//
// On an interactive terminal input goes through readline (line editing,
// history, Ctrl+C reported as [ErrUserQuit]); otherwise a plain line reader
// is used, which also lets tests drive the whole program from a script.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"golang.org/x/term"
)

// CommandPrompt is shown before every command read.
const CommandPrompt = "\nEnter command: "

// Prompter is the part of the console the services depend on.
type Prompter interface {
	// Prompt shows message and returns the trimmed line typed in reply.
	Prompt(ctx context.Context, message string) (string, error)

	// PromptSecret is like Prompt but does not echo the input when the
	// console is attached to a terminal.
	PromptSecret(ctx context.Context, message string) (string, error)

	// ShowMessage prints a plain line.
	ShowMessage(message string)

	// ShowSuccess prints a line prefixed with the success glyph.
	ShowSuccess(message string)

	// ShowError prints a line prefixed with the error glyph.
	ShowError(message string)

	// ShowFailure prints a line prefixed with the failure glyph.
	ShowFailure(message string)

	// ShowInfo prints a line prefixed with the info glyph.
	ShowInfo(message string)
}

// Console is the terminal implementation of [Prompter].
type Console struct {
	in     lineReader
	out    io.Writer
	styles styles
	logger *logger.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewConsole attaches to the process's standard streams. Readline is used
// when stdin is a terminal; historyFile may be empty to keep history in
// memory only.
func NewConsole(historyFile string, log *logger.Logger) (*Console, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return newConsole(newPlainReader(os.Stdin, os.Stdout), os.Stdout, log), nil
	}

	rl, err := newReadlineReader(historyFile)
	if err != nil {
		log.Warn().Err(err).Msg("readline unavailable, falling back to plain input")
		return newConsole(newPlainReader(os.Stdin, os.Stdout), os.Stdout, log), nil
	}

	return newConsole(rl, os.Stdout, log), nil
}

// NewConsoleWithIO creates a console over arbitrary streams.
// Useful for testing.
func NewConsoleWithIO(r io.Reader, w io.Writer) *Console {
	return newConsole(newPlainReader(r, w), w, logger.Nop())
}

func newConsole(in lineReader, out io.Writer, log *logger.Logger) *Console {
	return &Console{in: in, out: out, styles: newStyles(out), logger: log}
}

// Prompt implements [Prompter].
func (c *Console) Prompt(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("prompt canceled: %w", err)
	}

	line, err := c.in.ReadLine(message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptSecret implements [Prompter].
func (c *Console) PromptSecret(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("prompt canceled: %w", err)
	}

	secret, err := c.in.ReadSecret(message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(secret), nil
}

// ReadCommand reads one line at the command prompt. Blank lines are skipped.
// "exit" and "quit" end the session like an interrupt.
func (c *Console) ReadCommand(ctx context.Context) (string, error) {
	for {
		line, err := c.Prompt(ctx, CommandPrompt)
		if err != nil {
			return "", err
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit":
			return "", ErrUserQuit
		}

		c.logger.Debug().Str("command", line).Msg("command read")
		return line, nil
	}
}

// Close releases the terminal. It may be called more than once; only the
// first call reaches the reader.
func (c *Console) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.in.Close()
	})
	return c.closeErr
}

// Writer exposes the console output for renderers that print blocks of text.
func (c *Console) Writer() io.Writer {
	return c.out
}

// ShowMessage implements [Prompter].
func (c *Console) ShowMessage(message string) {
	_, _ = fmt.Fprintln(c.out, message)
}

// ShowTitle prints message in bold.
func (c *Console) ShowTitle(message string) {
	_, _ = fmt.Fprintln(c.out, c.styles.title.Render(message))
}

// ShowSuccess implements [Prompter].
func (c *Console) ShowSuccess(message string) {
	_, _ = fmt.Fprintf(c.out, "%s %s\n", glyphSuccess, c.styles.success.Render(message))
}

// ShowError implements [Prompter].
func (c *Console) ShowError(message string) {
	_, _ = fmt.Fprintf(c.out, "%s %s\n", glyphError, c.styles.err.Render(message))
}

// ShowFailure implements [Prompter].
func (c *Console) ShowFailure(message string) {
	_, _ = fmt.Fprintf(c.out, "%s %s\n", glyphFailure, c.styles.err.Render(message))
}

// ShowInfo implements [Prompter].
func (c *Console) ShowInfo(message string) {
	_, _ = fmt.Fprintf(c.out, "%s  %s\n", glyphInfo, c.styles.info.Render(message))
}
