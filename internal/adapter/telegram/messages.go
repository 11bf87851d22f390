package telegram

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/gotd/td/tg"
)

// historyBatch is the largest page messages.getHistory serves.
const historyBatch = 100

// History returns up to limit messages of a conversation, newest first.
// Service messages are included with an empty text. Requests are paged in
// batches of historyBatch.
func (m *Messenger) History(ctx context.Context, conversationID int64, limit int) ([]models.Message, error) {
	if err := m.connected(); err != nil {
		return nil, err
	}

	peer, ok := m.peers.input(conversationID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", adapter.ErrConversationNotFound, conversationID)
	}

	return m.history(ctx, peer, conversationID, limit)
}

// LatestSelfNote returns the newest message in the account's saved
// messages.
func (m *Messenger) LatestSelfNote(ctx context.Context) (models.Message, bool, error) {
	if err := m.connected(); err != nil {
		return models.Message{}, false, err
	}

	messages, err := m.history(ctx, &tg.InputPeerSelf{}, 0, 1)
	if err != nil {
		return models.Message{}, false, err
	}
	if len(messages) == 0 {
		return models.Message{}, false, nil
	}
	return messages[0], true, nil
}

func (m *Messenger) history(ctx context.Context, peer tg.InputPeerClass, conversationID int64, limit int) ([]models.Message, error) {
	out := make([]models.Message, 0, min(limit, historyBatch))
	req := &tg.MessagesGetHistoryRequest{Peer: peer}

	for len(out) < limit {
		req.Limit = min(historyBatch, limit-len(out))

		raw, err := m.historyPage(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("getting history of %d: %w", conversationID, err)
		}

		for _, msg := range raw {
			if conv, ok := messageFromClass(msg); ok && len(out) < limit {
				out = append(out, conv)
			}
		}

		if len(raw) < req.Limit {
			break
		}
		req.OffsetID = raw[len(raw)-1].GetID()
	}
	return out, nil
}

func (m *Messenger) historyPage(ctx context.Context, req *tg.MessagesGetHistoryRequest) ([]tg.MessageClass, error) {
	res, err := m.api.MessagesGetHistory(ctx, req)
	if err != nil {
		return nil, err
	}

	switch r := res.(type) {
	case *tg.MessagesMessages:
		m.peers.addChats(r.Chats)
		m.peers.addUsers(r.Users)
		return r.Messages, nil
	case *tg.MessagesMessagesSlice:
		m.peers.addChats(r.Chats)
		m.peers.addUsers(r.Users)
		return r.Messages, nil
	case *tg.MessagesChannelMessages:
		m.peers.addChats(r.Chats)
		m.peers.addUsers(r.Users)
		return r.Messages, nil
	default:
		return nil, nil
	}
}

// ResolveUser describes a message sender. Users and chats seen in earlier
// responses are served from the cache.
func (m *Messenger) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	if u, ok := m.peers.users[userID]; ok {
		return u, nil
	}
	if conv, ok := m.peers.conversations[userID]; ok {
		return models.User{UserID: userID, Name: conv.Name}, nil
	}

	if err := m.connected(); err != nil {
		return models.User{}, err
	}
	if userID <= 0 {
		return models.User{}, fmt.Errorf("%w: %d", adapter.ErrUserNotFound, userID)
	}

	users, err := m.api.UsersGetUsers(ctx, []tg.InputUserClass{&tg.InputUser{UserID: userID}})
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %d: %w", adapter.ErrUserNotFound, userID, err)
	}
	m.peers.addUsers(users)

	if u, ok := m.peers.users[userID]; ok {
		return u, nil
	}
	return models.User{}, fmt.Errorf("%w: %d", adapter.ErrUserNotFound, userID)
}

// Send posts text to a conversation, as a reply to message replyTo when it
// is not zero.
func (m *Messenger) Send(ctx context.Context, conversationID int64, text string, replyTo int) (models.SentMessage, error) {
	if err := m.connected(); err != nil {
		return models.SentMessage{}, err
	}

	peer, ok := m.peers.input(conversationID)
	if !ok {
		return models.SentMessage{}, fmt.Errorf("%w: %d", adapter.ErrConversationNotFound, conversationID)
	}

	req := &tg.MessagesSendMessageRequest{
		Peer:     peer,
		Message:  text,
		RandomID: rand.Int64(),
	}
	if replyTo != 0 {
		req.ReplyTo = &tg.InputReplyToMessage{ReplyToMsgID: replyTo}
	}

	updates, err := m.api.MessagesSendMessage(ctx, req)
	if err != nil {
		return models.SentMessage{}, fmt.Errorf("sending message: %w", err)
	}

	id, ok := sentMessageID(updates, req.RandomID)
	if !ok {
		return models.SentMessage{}, fmt.Errorf("sending message: no message id in %T", updates)
	}

	m.logger.Debug().Int64("conversation_id", conversationID).Int("message_id", id).Msg("message sent")
	return models.SentMessage{ConversationID: conversationID, MessageID: id}, nil
}

// Forward copies a saved message into a conversation.
func (m *Messenger) Forward(ctx context.Context, conversationID int64, msg models.Message) error {
	if err := m.connected(); err != nil {
		return err
	}

	peer, ok := m.peers.input(conversationID)
	if !ok {
		return fmt.Errorf("%w: %d", adapter.ErrConversationNotFound, conversationID)
	}

	_, err := m.api.MessagesForwardMessages(ctx, &tg.MessagesForwardMessagesRequest{
		FromPeer: &tg.InputPeerSelf{},
		ID:       []int{msg.ID},
		RandomID: []int64{rand.Int64()},
		ToPeer:   peer,
	})
	if err != nil {
		return fmt.Errorf("forwarding message %d: %w", msg.ID, err)
	}
	return nil
}

// Edit replaces the text of a sent message.
func (m *Messenger) Edit(ctx context.Context, ref models.SentMessage, text string) error {
	if err := m.connected(); err != nil {
		return err
	}

	peer, ok := m.peers.input(ref.ConversationID)
	if !ok {
		return fmt.Errorf("%w: %d", adapter.ErrConversationNotFound, ref.ConversationID)
	}

	_, err := m.api.MessagesEditMessage(ctx, &tg.MessagesEditMessageRequest{
		Peer:    peer,
		ID:      ref.MessageID,
		Message: text,
	})
	if err != nil {
		return fmt.Errorf("editing message %d: %w", ref.MessageID, err)
	}
	return nil
}

// Delete removes a sent message for everyone.
func (m *Messenger) Delete(ctx context.Context, ref models.SentMessage) error {
	if err := m.connected(); err != nil {
		return err
	}

	peer, ok := m.peers.input(ref.ConversationID)
	if !ok {
		return fmt.Errorf("%w: %d", adapter.ErrConversationNotFound, ref.ConversationID)
	}

	var err error
	if ch, isChannel := peer.(*tg.InputPeerChannel); isChannel {
		_, err = m.api.ChannelsDeleteMessages(ctx, &tg.ChannelsDeleteMessagesRequest{
			Channel: &tg.InputChannel{ChannelID: ch.ChannelID, AccessHash: ch.AccessHash},
			ID:      []int{ref.MessageID},
		})
	} else {
		_, err = m.api.MessagesDeleteMessages(ctx, &tg.MessagesDeleteMessagesRequest{
			Revoke: true,
			ID:     []int{ref.MessageID},
		})
	}
	if err != nil {
		return fmt.Errorf("deleting message %d: %w", ref.MessageID, err)
	}
	return nil
}
