package telegram

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/gotd/td/tg"
)

const (
	dialogsBatch    = 100
	maxDialogsPages = 50
)

// Conversations lists every dialog of the account in the order the server
// returns them (most recently active first).
func (m *Messenger) Conversations(ctx context.Context) ([]models.Conversation, error) {
	if err := m.connected(); err != nil {
		return nil, err
	}

	var (
		out  []models.Conversation
		seen = make(map[int64]struct{})
		req  = &tg.MessagesGetDialogsRequest{OffsetPeer: &tg.InputPeerEmpty{}, Limit: dialogsBatch}
	)

	for page := 0; page < maxDialogsPages; page++ {
		res, err := m.api.MessagesGetDialogs(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("listing dialogs: %w", err)
		}

		var (
			dialogs  []tg.DialogClass
			messages []tg.MessageClass
			last     bool
		)
		switch r := res.(type) {
		case *tg.MessagesDialogs:
			m.peers.addChats(r.Chats)
			m.peers.addUsers(r.Users)
			dialogs, messages, last = r.Dialogs, r.Messages, true
		case *tg.MessagesDialogsSlice:
			m.peers.addChats(r.Chats)
			m.peers.addUsers(r.Users)
			dialogs, messages, last = r.Dialogs, r.Messages, len(r.Dialogs) < dialogsBatch
		default:
			last = true
		}

		for _, d := range dialogs {
			dlg, ok := d.(*tg.Dialog)
			if !ok {
				continue
			}
			id := markedID(dlg.Peer)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			if conv, ok := m.peers.conversations[id]; ok {
				out = append(out, conv)
			}
		}

		if last || len(dialogs) == 0 || !nextDialogsOffset(req, dialogs, messages, m.peers) {
			break
		}
	}

	m.logger.Debug().Int("dialogs", len(out)).Msg("dialogs listed")
	return out, nil
}

// nextDialogsOffset moves req past the last dialog of a page. It reports
// false when the offset cannot be derived.
func nextDialogsOffset(req *tg.MessagesGetDialogsRequest, dialogs []tg.DialogClass, messages []tg.MessageClass, peers *peerCache) bool {
	dlg, ok := dialogs[len(dialogs)-1].(*tg.Dialog)
	if !ok {
		return false
	}

	peer, ok := peers.input(markedID(dlg.Peer))
	if !ok {
		return false
	}

	for _, msg := range messages {
		if msg.GetID() != dlg.TopMessage {
			continue
		}
		if full, ok := msg.(*tg.Message); ok && markedID(full.PeerID) == markedID(dlg.Peer) {
			req.OffsetDate = full.Date
		}
	}

	req.OffsetID = dlg.TopMessage
	req.OffsetPeer = peer
	return true
}
