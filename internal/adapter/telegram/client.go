// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telegram implements adapter.Messenger over the Telegram MTProto
// API using github.com/gotd/td.
//
// The session token is kept by gotd in a JSON file at the configured
// session path; the package never looks inside it. When that session is
// not authorized yet, Connect asks the Authenticator for the phone number
// and the login code, and reports a second-factor challenge with
// adapter.ErrSecondFactorRequired.
//
// Conversation identifiers are marked peer ids: users keep their id, basic
// groups are -id and channels/supergroups are -1000000000000-id.
//
// A Messenger is not safe for concurrent use.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/gotd/td/session"
	gotdtg "github.com/gotd/td/telegram"
	"github.com/gotd/td/tg"
)

// Authenticator supplies the interactive parts of the phone login.
type Authenticator interface {
	Phone(ctx context.Context) (string, error)
	Code(ctx context.Context) (string, error)
}

// Messenger is the gotd implementation of adapter.Messenger.
type Messenger struct {
	sessionPath string
	auth        Authenticator
	logger      *logger.Logger

	client *gotdtg.Client
	api    *tg.Client
	stop   context.CancelFunc
	done   chan error

	peers *peerCache
}

// NewMessenger creates a disconnected messenger that keeps its session at
// sessionPath.
func NewMessenger(sessionPath string, auth Authenticator, logger *logger.Logger) *Messenger {
	return &Messenger{
		sessionPath: sessionPath,
		auth:        auth,
		logger:      logger,
		peers:       newPeerCache(),
	}
}

var _ adapter.Messenger = (*Messenger)(nil)

// Connect starts the MTProto client in the background and makes sure the
// session is authorized. Any client from a previous attempt is stopped
// first.
func (m *Messenger) Connect(ctx context.Context, creds models.Credentials) error {
	if err := m.Close(); err != nil {
		m.logger.Warn().Err(err).Msg("stopping previous client")
	}

	client := gotdtg.NewClient(int(creds.APIID), creds.APIHash, gotdtg.Options{
		SessionStorage: &session.FileStorage{Path: m.sessionPath},
		NoUpdates:      true,
	})

	runCtx, stop := context.WithCancel(context.Background())
	ready := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- guard(func() error {
			return client.Run(runCtx, func(ctx context.Context) error {
				close(ready)
				<-ctx.Done()
				return nil
			})
		})
	}()

	select {
	case <-ready:
	case err := <-done:
		stop()
		if err == nil {
			err = errors.New("client stopped before it was ready")
		}
		return fmt.Errorf("connecting: %w", err)
	case <-ctx.Done():
		stop()
		<-done
		return ctx.Err()
	}

	m.client, m.api, m.stop, m.done = client, client.API(), stop, done
	m.logger.Info().Str("session", m.sessionPath).Msg("mtproto client started")

	if err := m.authorize(ctx); err != nil {
		if cerr := m.connected(); errors.Is(cerr, adapter.ErrClientPanicked) {
			return cerr
		}
		return err
	}
	return nil
}

// Close stops the background client. Closing a disconnected messenger is a
// no-op.
func (m *Messenger) Close() error {
	if m.stop == nil {
		return nil
	}

	m.stop()
	err := <-m.done
	m.client, m.api, m.stop, m.done = nil, nil, nil, nil

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("client stopped: %w", err)
	}
	return nil
}

// Self returns the logged-in account.
func (m *Messenger) Self(ctx context.Context) (models.User, error) {
	if err := m.connected(); err != nil {
		return models.User{}, err
	}

	self, err := m.client.Self(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("getting self: %w", err)
	}
	return userFromTG(self), nil
}

// connected fails when Connect has not succeeded or the background client
// has stopped on its own. A stopped client is released so that Close does
// not wait for it again.
func (m *Messenger) connected() error {
	if m.api == nil {
		return adapter.ErrNotConnected
	}

	select {
	case err := <-m.done:
		m.stop()
		m.client, m.api, m.stop, m.done = nil, nil, nil, nil
		if err == nil {
			err = errors.New("client stopped")
		}
		return fmt.Errorf("%w: %w", adapter.ErrNotConnected, err)
	default:
		return nil
	}
}

// guard runs fn and turns a panic into an error carrying the goroutine's
// stack.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n\n%s", adapter.ErrClientPanicked, r, debug.Stack())
		}
	}()
	return fn()
}
