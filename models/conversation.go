package models

// ConversationKind classifies a conversation returned by the transport.
type ConversationKind int

const (
	// KindOther covers private chats, bots and anything that is neither a
	// group nor a channel.
	KindOther ConversationKind = iota
	// KindGroup is a multi-party group (basic group or supergroup).
	KindGroup
	// KindChannel is a broadcast channel.
	KindChannel
)

// String returns a short lowercase name of the kind.
func (k ConversationKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindChannel:
		return "channel"
	default:
		return "other"
	}
}

// Conversation is a snapshot of a dialog visible to the session. Only its
// ID is ever persisted.
type Conversation struct {
	ID   int64
	Name string
	Kind ConversationKind
}

// IsMonitorable reports whether the conversation can be picked for
// monitoring: groups and channels only.
func (c Conversation) IsMonitorable() bool {
	return c.Kind == KindGroup || c.Kind == KindChannel
}
