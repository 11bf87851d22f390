package telegram

import (
	"time"

	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/gotd/td/tg"
)

const customReactionLabel = "[custom]"

// messageFromClass converts any history entry that carries an id, a peer
// and a date. Empty placeholders are reported as not ok.
func messageFromClass(msg tg.MessageClass) (models.Message, bool) {
	switch m := msg.(type) {
	case *tg.Message:
		return messageFromTG(m), true
	case *tg.MessageService:
		return serviceMessageFromTG(m), true
	default:
		return models.Message{}, false
	}
}

func messageFromTG(msg *tg.Message) models.Message {
	out := models.Message{
		ID:             msg.ID,
		ConversationID: markedID(msg.PeerID),
		Date:           time.Unix(int64(msg.Date), 0),
		Text:           msg.Message,
	}
	from, hasFrom := msg.GetFromID()
	out.SenderID = senderID(from, hasFrom, msg.PeerID)

	if reactions, ok := msg.GetReactions(); ok {
		out.Reactions = reactionsFromTG(reactions.Results)
	}
	return out
}

// serviceMessageFromTG keeps the envelope of an action such as a join or a
// pin; the body renders as non text.
func serviceMessageFromTG(msg *tg.MessageService) models.Message {
	from, hasFrom := msg.GetFromID()
	return models.Message{
		ID:             msg.ID,
		ConversationID: markedID(msg.PeerID),
		SenderID:       senderID(from, hasFrom, msg.PeerID),
		Date:           time.Unix(int64(msg.Date), 0),
	}
}

func senderID(from tg.PeerClass, hasFrom bool, peer tg.PeerClass) int64 {
	if hasFrom {
		return markedID(from)
	}
	// channel posts carry no author; the channel itself is the sender
	if _, isChannel := peer.(*tg.PeerChannel); isChannel {
		return markedID(peer)
	}
	return 0
}

func reactionsFromTG(results []tg.ReactionCount) []models.Reaction {
	if len(results) == 0 {
		return nil
	}

	out := make([]models.Reaction, 0, len(results))
	for _, r := range results {
		label := customReactionLabel
		if emoji, ok := r.Reaction.(*tg.ReactionEmoji); ok {
			label = emoji.Emoticon
		}
		out = append(out, models.Reaction{Emoji: label, Count: r.Count})
	}
	return out
}

// sentMessageID extracts the id of a message created by a send request
// with the given random id.
func sentMessageID(updates tg.UpdatesClass, randomID int64) (int, bool) {
	var list []tg.UpdateClass
	switch u := updates.(type) {
	case *tg.UpdateShortSentMessage:
		return u.ID, true
	case *tg.Updates:
		list = u.Updates
	case *tg.UpdatesCombined:
		list = u.Updates
	default:
		return 0, false
	}

	for _, upd := range list {
		if u, ok := upd.(*tg.UpdateMessageID); ok && u.RandomID == randomID {
			return u.ID, true
		}
	}
	for _, upd := range list {
		switch u := upd.(type) {
		case *tg.UpdateNewMessage:
			return u.Message.GetID(), true
		case *tg.UpdateNewChannelMessage:
			return u.Message.GetID(), true
		}
	}
	return 0, false
}
