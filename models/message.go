package models

import "time"

// Reaction is one entry of a message's reaction summary.
type Reaction struct {
	// Emoji is the reaction emoticon, or a textual placeholder for custom
	// reactions the transport cannot render as a single emoji.
	Emoji string
	Count int
}

// Message is a read-only snapshot of a remote message.
type Message struct {
	ID             int
	ConversationID int64

	// SenderID is zero when the transport does not expose the author
	// (e.g. anonymous channel posts).
	SenderID int64

	Date time.Time

	// Text is empty for messages without a text body (media, service
	// messages).
	Text string

	Reactions []Reaction
}

// HasText reports whether the message carries a text body.
func (m Message) HasText() bool {
	return m.Text != ""
}

// SentMessage references a message this process caused to be sent.
type SentMessage struct {
	ConversationID int64
	MessageID      int
}
