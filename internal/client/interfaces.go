// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-tg-userbot/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the operator quits
	// or ctx is canceled.
	Run(ctx context.Context) error
}

// Console is the operator surface the application drives.
type Console interface {
	tui.Prompter

	// ReadCommand blocks until the next non-empty command line.
	ReadCommand(ctx context.Context) (string, error)

	// Writer is where multi-line command output goes.
	Writer() io.Writer

	ProgramStart()
}
