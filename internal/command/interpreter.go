// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package command implements the operator's command language.
//
// Each input line is matched against an ordered list of forms:
//
//	<copyN>[M]   print the last M messages of group N, oldest first
//	<sendN>TEXT  send TEXT to group N
//	<reply>TEXT  reply to the newest message across all selected groups
//	<pasteN>     forward the newest saved self-note into group N
//	<edit>TEXT   replace the text of the last sent message
//	<delete>     delete the last sent message
//
// Group numbers are 1-based positions in the roster chosen for the run.
// The Interpreter owns the reference to the last message it sent; edit and
// delete act on it, and delete clears it.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/internal/config"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/internal/tui"
	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/atotto/clipboard"
)

// Interpreter executes commands against the selected groups. It is not
// safe for concurrent use; commands run one at a time.
type Interpreter struct {
	messenger adapter.Messenger
	prompter  tui.Prompter
	out       io.Writer
	groups    []models.Conversation
	settings  config.App
	logger    *logger.Logger

	last *models.SentMessage

	sleep           func(ctx context.Context, d time.Duration) error
	copyToClipboard func(text string) error
}

// NewInterpreter creates an interpreter for groups. Rendered history is
// written to out, status lines go through prompter.
func NewInterpreter(
	messenger adapter.Messenger,
	prompter tui.Prompter,
	out io.Writer,
	groups []models.Conversation,
	settings config.App,
	logger *logger.Logger,
) *Interpreter {
	return &Interpreter{
		messenger:       messenger,
		prompter:        prompter,
		out:             out,
		groups:          groups,
		settings:        settings,
		logger:          logger,
		sleep:           sleepContext,
		copyToClipboard: clipboard.WriteAll,
	}
}

// Execute runs a single command line. Input and transport errors are shown
// to the operator and returned; the interpreter stays usable either way.
func (i *Interpreter) Execute(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)

	r, args, ok := match(line)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownCommand, line)
		i.report(err)
		return err
	}

	log := i.logger.With().Str("command", r.name).Logger()
	if err := r.handle(i, ctx, args); err != nil {
		log.Err(err).Msg("command failed")
		i.report(err)
		return err
	}

	log.Debug().Msg("command done")
	return nil
}

// LastSent returns the message edit and delete would act on.
func (i *Interpreter) LastSent() (models.SentMessage, bool) {
	if i.last == nil {
		return models.SentMessage{}, false
	}
	return *i.last, true
}

// Groups returns the roster commands index into.
func (i *Interpreter) Groups() []models.Conversation {
	return i.groups
}

func (i *Interpreter) report(err error) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, tui.ErrUserQuit):
	case isCommandError(err):
		i.prompter.ShowError(capitalize(err.Error()))
	default:
		i.prompter.ShowFailure(fmt.Sprintf("Failed to execute command: %s", tui.HumanizeError(err)))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
