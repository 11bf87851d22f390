package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-tg-userbot/models"
	"github.com/muesli/reflow/wordwrap"
)

const (
	timestampLayout   = "2006-01-02 15:04:05"
	nonTextMarker     = "*non text*"
	noUsernameMarker  = "(username not set)"
	unknownSenderName = "Unknown"
)

// senderLabel renders "Name, @handle" or "Name, (username not set)".
func senderLabel(u models.User) string {
	if handle := u.Handle(); handle != "" {
		return u.Name + ", " + handle
	}
	return u.Name + ", " + noUsernameMarker
}

// unresolvedSenderLabel is used when the sender cannot be looked up.
func unresolvedSenderLabel(senderID int64) string {
	return fmt.Sprintf("%d %s", senderID, noUsernameMarker)
}

// reactionSummary renders reactions as "👍 x2, 🔥 x1".
func reactionSummary(reactions []models.Reaction) string {
	parts := make([]string, 0, len(reactions))
	for _, r := range reactions {
		parts = append(parts, fmt.Sprintf("%s x%d", r.Emoji, r.Count))
	}
	return strings.Join(parts, ", ")
}

// renderMessage writes one message block: a header line with the local
// timestamp, the sender and the reactions, then the wrapped body.
func renderMessage(w io.Writer, msg models.Message, sender string, width int) {
	header := fmt.Sprintf("[%s] %s", msg.Date.Local().Format(timestampLayout), sender)
	if len(msg.Reactions) > 0 {
		header += " | Reactions: " + reactionSummary(msg.Reactions)
	}

	body := nonTextMarker
	if msg.HasText() {
		body = wordwrap.String(msg.Text, width)
	}

	_, _ = fmt.Fprintf(w, "%s\n%s\n\n", header, body)
}
