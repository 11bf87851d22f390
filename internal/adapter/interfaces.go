// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport abstraction the userbot core talks
// to.
//
// The primary abstraction is [Messenger], which decouples session handling,
// conversation selection and command interpretation from the messaging
// protocol. The package ships an MTProto implementation in the telegram
// subpackage.
//
// Error values defined in errors.go let callers tell a second-factor
// challenge apart from any other login failure with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tg-userbot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/messenger_mock.go -package=mock

// Messenger is the capability interface of a messaging account. All calls
// block until the remote side answers; there is no per-call timeout beyond
// what ctx carries.
type Messenger interface {
	// Connect opens an authenticated session with creds. It returns an error
	// wrapping [ErrSecondFactorRequired] when the account asks for its
	// password; the session then stays half-open until SubmitPassword
	// succeeds. Any other error means the credentials (or the network) are
	// unusable and the session is closed.
	Connect(ctx context.Context, creds models.Credentials) error

	// SubmitPassword answers a second-factor challenge.
	SubmitPassword(ctx context.Context, password string) error

	// Self returns the account the session is logged in as.
	Self(ctx context.Context) (models.User, error)

	// Conversations lists every dialog visible to the session in the
	// transport's native order.
	Conversations(ctx context.Context) ([]models.Conversation, error)

	// History returns up to limit most recent messages of a conversation,
	// newest first.
	History(ctx context.Context, conversationID int64, limit int) ([]models.Message, error)

	// LatestSelfNote returns the most recent message of the account's own
	// "saved messages" area, and false when that area is empty.
	LatestSelfNote(ctx context.Context) (models.Message, bool, error)

	// ResolveUser returns the display data of a message sender.
	ResolveUser(ctx context.Context, userID int64) (models.User, error)

	// Send posts text to a conversation. A non-zero replyTo threads the new
	// message under that message ID.
	Send(ctx context.Context, conversationID int64, text string, replyTo int) (models.SentMessage, error)

	// Forward re-posts msg verbatim into a conversation.
	Forward(ctx context.Context, conversationID int64, msg models.Message) error

	// Edit replaces the text of a message previously sent by this session.
	Edit(ctx context.Context, ref models.SentMessage, text string) error

	// Delete removes a message previously sent by this session for everyone.
	Delete(ctx context.Context, ref models.SentMessage) error

	// Close tears the session down. Safe to call on a closed session.
	Close() error
}
