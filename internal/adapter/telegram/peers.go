package telegram

import (
	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/gotd/td/tg"
)

const channelIDOffset int64 = -1000000000000

// markChat, markChannel and the helpers below convert between raw MTProto
// ids and marked ids.
func markChat(id int64) int64    { return -id }
func markChannel(id int64) int64 { return channelIDOffset - id }

func markedID(peer tg.PeerClass) int64 {
	switch p := peer.(type) {
	case *tg.PeerUser:
		return p.UserID
	case *tg.PeerChat:
		return markChat(p.ChatID)
	case *tg.PeerChannel:
		return markChannel(p.ChannelID)
	default:
		return 0
	}
}

// peerCache maps marked ids to what is needed to address and describe them.
// Access hashes are only learned from API responses, so a conversation must
// have been seen in a listing before it can be used.
type peerCache struct {
	inputs        map[int64]tg.InputPeerClass
	conversations map[int64]models.Conversation
	users         map[int64]models.User
}

func newPeerCache() *peerCache {
	return &peerCache{
		inputs:        make(map[int64]tg.InputPeerClass),
		conversations: make(map[int64]models.Conversation),
		users:         make(map[int64]models.User),
	}
}

func (c *peerCache) addChats(chats []tg.ChatClass) {
	for _, chat := range chats {
		switch ch := chat.(type) {
		case *tg.Chat:
			id := markChat(ch.ID)
			c.inputs[id] = &tg.InputPeerChat{ChatID: ch.ID}
			c.conversations[id] = models.Conversation{ID: id, Name: ch.Title, Kind: models.KindGroup}
		case *tg.Channel:
			id := markChannel(ch.ID)
			c.inputs[id] = &tg.InputPeerChannel{ChannelID: ch.ID, AccessHash: ch.AccessHash}
			c.conversations[id] = models.Conversation{ID: id, Name: ch.Title, Kind: channelKind(ch)}
		}
	}
}

func (c *peerCache) addUsers(users []tg.UserClass) {
	for _, u := range users {
		user, ok := u.(*tg.User)
		if !ok {
			continue
		}
		c.inputs[user.ID] = &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}
		c.users[user.ID] = userFromTG(user)
		c.conversations[user.ID] = models.Conversation{ID: user.ID, Name: displayName(user), Kind: models.KindOther}
	}
}

func (c *peerCache) input(id int64) (tg.InputPeerClass, bool) {
	p, ok := c.inputs[id]
	return p, ok
}

func channelKind(ch *tg.Channel) models.ConversationKind {
	if ch.Megagroup || ch.Gigagroup {
		return models.KindGroup
	}
	if ch.Broadcast {
		return models.KindChannel
	}
	return models.KindOther
}

func userFromTG(u *tg.User) models.User {
	return models.User{UserID: u.ID, Name: displayName(u), Username: u.Username}
}

func displayName(u *tg.User) string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.FirstName == "" {
		return u.LastName
	}
	return u.FirstName
}
