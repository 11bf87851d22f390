package telegram

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/gotd/td/tg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkedID(t *testing.T) {
	tests := []struct {
		name string
		peer tg.PeerClass
		want int64
	}{
		{name: "user", peer: &tg.PeerUser{UserID: 777}, want: 777},
		{name: "chat", peer: &tg.PeerChat{ChatID: 123}, want: -123},
		{name: "channel", peer: &tg.PeerChannel{ChannelID: 1234567890}, want: -1001234567890},
		{name: "nil", peer: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markedID(tt.peer))
		})
	}
}

func TestPeerCache(t *testing.T) {
	c := newPeerCache()
	c.addChats([]tg.ChatClass{
		&tg.Chat{ID: 10, Title: "Family"},
		&tg.Channel{ID: 20, AccessHash: 99, Title: "Gophers", Megagroup: true},
		&tg.Channel{ID: 30, AccessHash: 98, Title: "News", Broadcast: true},
		&tg.ChatForbidden{ID: 40, Title: "Kicked"},
	})
	c.addUsers([]tg.UserClass{
		&tg.User{ID: 5, AccessHash: 7, FirstName: "Ann", LastName: "Lee", Username: "ann"},
		&tg.UserEmpty{ID: 6},
	})

	assert.Equal(t, models.Conversation{ID: -10, Name: "Family", Kind: models.KindGroup}, c.conversations[-10])
	assert.Equal(t, models.Conversation{ID: -1000000000020, Name: "Gophers", Kind: models.KindGroup}, c.conversations[-1000000000020])
	assert.Equal(t, models.Conversation{ID: -1000000000030, Name: "News", Kind: models.KindChannel}, c.conversations[-1000000000030])
	assert.Equal(t, models.KindOther, c.conversations[5].Kind)

	_, ok := c.input(-40)
	assert.False(t, ok)

	peer, ok := c.input(-1000000000030)
	require.True(t, ok)
	assert.Equal(t, &tg.InputPeerChannel{ChannelID: 30, AccessHash: 98}, peer)

	assert.Equal(t, models.User{UserID: 5, Name: "Ann", Username: "ann"}, c.users[5])
	_, ok = c.users[6]
	assert.False(t, ok)
}

func TestMessageFromTG(t *testing.T) {
	msg := &tg.Message{
		ID:      42,
		PeerID:  &tg.PeerChannel{ChannelID: 20},
		Date:    1760000000,
		Message: "hi",
	}
	msg.SetFromID(&tg.PeerUser{UserID: 5})
	msg.SetReactions(tg.MessageReactions{Results: []tg.ReactionCount{
		{Reaction: &tg.ReactionEmoji{Emoticon: "👍"}, Count: 2},
		{Reaction: &tg.ReactionCustomEmoji{DocumentID: 1}, Count: 1},
	}})

	got := messageFromTG(msg)
	assert.Equal(t, 42, got.ID)
	assert.Equal(t, int64(-1000000000020), got.ConversationID)
	assert.Equal(t, int64(5), got.SenderID)
	assert.Equal(t, time.Unix(1760000000, 0), got.Date)
	assert.Equal(t, "hi", got.Text)
	assert.Equal(t, []models.Reaction{{Emoji: "👍", Count: 2}, {Emoji: customReactionLabel, Count: 1}}, got.Reactions)
}

func TestMessageFromTG_ChannelPostWithoutAuthor(t *testing.T) {
	got := messageFromTG(&tg.Message{ID: 1, PeerID: &tg.PeerChannel{ChannelID: 30}, Date: 1})
	assert.Equal(t, got.ConversationID, got.SenderID)
	assert.False(t, got.HasText())
	assert.Nil(t, got.Reactions)
}

func TestSentMessageID(t *testing.T) {
	tests := []struct {
		name    string
		updates tg.UpdatesClass
		wantID  int
		wantOK  bool
	}{
		{
			name:    "short sent message",
			updates: &tg.UpdateShortSentMessage{ID: 11},
			wantID:  11, wantOK: true,
		},
		{
			name: "message id matched by random id",
			updates: &tg.Updates{Updates: []tg.UpdateClass{
				&tg.UpdateMessageID{ID: 1, RandomID: 100},
				&tg.UpdateMessageID{ID: 2, RandomID: 555},
			}},
			wantID: 2, wantOK: true,
		},
		{
			name: "new channel message fallback",
			updates: &tg.Updates{Updates: []tg.UpdateClass{
				&tg.UpdateNewChannelMessage{Message: &tg.Message{ID: 9}},
			}},
			wantID: 9, wantOK: true,
		},
		{
			name:    "nothing useful",
			updates: &tg.UpdatesTooLong{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := sentMessageID(tt.updates, 555)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestNextDialogsOffset(t *testing.T) {
	peers := newPeerCache()
	peers.addChats([]tg.ChatClass{&tg.Channel{ID: 20, AccessHash: 99, Title: "Gophers", Megagroup: true}})

	req := &tg.MessagesGetDialogsRequest{OffsetPeer: &tg.InputPeerEmpty{}, Limit: dialogsBatch}
	ok := nextDialogsOffset(req,
		[]tg.DialogClass{&tg.Dialog{Peer: &tg.PeerChannel{ChannelID: 20}, TopMessage: 300}},
		[]tg.MessageClass{&tg.Message{ID: 300, PeerID: &tg.PeerChannel{ChannelID: 20}, Date: 1700}},
		peers,
	)
	require.True(t, ok)
	assert.Equal(t, 300, req.OffsetID)
	assert.Equal(t, 1700, req.OffsetDate)
	assert.Equal(t, &tg.InputPeerChannel{ChannelID: 20, AccessHash: 99}, req.OffsetPeer)

	ok = nextDialogsOffset(req, []tg.DialogClass{&tg.Dialog{Peer: &tg.PeerUser{UserID: 1}}}, nil, peers)
	assert.False(t, ok)
}

func TestMessenger_NotConnected(t *testing.T) {
	m := NewMessenger(t.TempDir()+"/session.json", nil, logger.Nop())
	ctx := context.Background()

	_, err := m.Conversations(ctx)
	require.ErrorIs(t, err, adapter.ErrNotConnected)
	_, err = m.History(ctx, -1, 1)
	require.ErrorIs(t, err, adapter.ErrNotConnected)
	_, err = m.Send(ctx, -1, "x", 0)
	require.ErrorIs(t, err, adapter.ErrNotConnected)
	require.ErrorIs(t, m.Delete(ctx, models.SentMessage{}), adapter.ErrNotConnected)
	require.ErrorIs(t, m.SubmitPassword(ctx, "pw"), adapter.ErrNotConnected)
	_, err = m.Self(ctx)
	require.ErrorIs(t, err, adapter.ErrNotConnected)
	require.NoError(t, m.Close())
}

func TestMessageFromClass(t *testing.T) {
	pinned := &tg.MessageService{
		ID:     7,
		PeerID: &tg.PeerChat{ChatID: 10},
		Date:   1760000100,
		Action: &tg.MessageActionPinMessage{},
	}
	pinned.SetFromID(&tg.PeerUser{UserID: 5})

	tests := []struct {
		name   string
		msg    tg.MessageClass
		want   models.Message
		wantOK bool
	}{
		{
			name:   "text message",
			msg:    &tg.Message{ID: 1, PeerID: &tg.PeerUser{UserID: 5}, Date: 1, Message: "hi"},
			want:   models.Message{ID: 1, ConversationID: 5, Date: time.Unix(1, 0), Text: "hi"},
			wantOK: true,
		},
		{
			name:   "service message with author",
			msg:    pinned,
			want:   models.Message{ID: 7, ConversationID: -10, SenderID: 5, Date: time.Unix(1760000100, 0)},
			wantOK: true,
		},
		{
			name:   "service message in a channel",
			msg:    &tg.MessageService{ID: 3, PeerID: &tg.PeerChannel{ChannelID: 30}, Date: 2, Action: &tg.MessageActionChannelCreate{Title: "News"}},
			want:   models.Message{ID: 3, ConversationID: -1000000000030, SenderID: -1000000000030, Date: time.Unix(2, 0)},
			wantOK: true,
		},
		{
			name: "empty placeholder",
			msg:  &tg.MessageEmpty{ID: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := messageFromClass(tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
