package command

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-tg-userbot/models"
)

// group resolves a 1-based group number. Numbers too large for int are out
// of range like any other.
func (i *Interpreter) group(digits string) (models.Conversation, error) {
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > len(i.groups) {
		return models.Conversation{}, fmt.Errorf("%w: %s (choose 1..%d)", ErrInvalidGroup, digits, len(i.groups))
	}
	return i.groups[n-1], nil
}

func (i *Interpreter) copyHistory(ctx context.Context, args []string) error {
	conv, err := i.group(args[0])
	if err != nil {
		return err
	}

	limit := i.settings.CopyLimit
	if args[1] != "" {
		if limit, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidCount, args[1])
		}
	}

	messages, err := i.messenger.History(ctx, conv.ID, limit)
	if err != nil {
		return fmt.Errorf("fetching history of %s: %w", conv.Name, err)
	}
	// newest first from the transport
	slices.Reverse(messages)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "Last %d messages from %s:\n\n", limit, conv.Name)

	senders := make(map[int64]string)
	for _, msg := range messages {
		renderMessage(&b, msg, i.sender(ctx, msg.SenderID, senders), i.settings.WrapWidth)
	}

	_, _ = fmt.Fprint(i.out, b.String())

	if i.settings.Clipboard {
		if err = i.copyToClipboard(b.String()); err != nil {
			i.logger.Warn().Err(err).Msg("clipboard unavailable")
			i.prompter.ShowError("Could not place the messages on the clipboard")
		}
	}

	i.prompter.ShowSuccess(fmt.Sprintf("Copied last %d messages from %s", limit, conv.Name))
	return nil
}

// sender renders the sender of a message, memoizing lookups in cache.
func (i *Interpreter) sender(ctx context.Context, senderID int64, cache map[int64]string) string {
	if senderID == 0 {
		return unknownSenderName + ", " + noUsernameMarker
	}
	if label, ok := cache[senderID]; ok {
		return label
	}

	label := unresolvedSenderLabel(senderID)
	if user, err := i.messenger.ResolveUser(ctx, senderID); err != nil {
		i.logger.Debug().Err(err).Int64("sender_id", senderID).Msg("sender lookup failed")
	} else {
		label = senderLabel(user)
	}

	cache[senderID] = label
	return label
}

func (i *Interpreter) sendText(ctx context.Context, args []string) error {
	conv, err := i.group(args[0])
	if err != nil {
		return err
	}

	sent, err := i.messenger.Send(ctx, conv.ID, strings.TrimSpace(args[1]), 0)
	if err != nil {
		return fmt.Errorf("sending to %s: %w", conv.Name, err)
	}
	i.last = &sent

	i.logger.Info().Int64("conversation_id", sent.ConversationID).Int("message_id", sent.MessageID).Msg("message sent")
	i.prompter.ShowSuccess(fmt.Sprintf("Message sent to %s", conv.Name))

	return i.sleep(ctx, i.settings.SendDelay)
}

func (i *Interpreter) replyLatest(ctx context.Context, args []string) error {
	var (
		target models.Message
		in     models.Conversation
		found  bool
	)

	for _, conv := range i.groups {
		latest, err := i.messenger.History(ctx, conv.ID, 1)
		if err != nil {
			return fmt.Errorf("fetching history of %s: %w", conv.Name, err)
		}
		if len(latest) == 0 {
			continue
		}

		// strictly newer: on equal timestamps the first group scanned wins
		if !found || latest[0].Date.After(target.Date) {
			target, in, found = latest[0], conv, true
		}
	}

	if !found {
		return fmt.Errorf("%w: nothing to reply to", ErrNoHistory)
	}

	sent, err := i.messenger.Send(ctx, target.ConversationID, strings.TrimSpace(args[0]), target.ID)
	if err != nil {
		return fmt.Errorf("replying in %s: %w", in.Name, err)
	}
	i.last = &sent

	i.logger.Info().
		Int64("conversation_id", sent.ConversationID).
		Int("message_id", sent.MessageID).
		Int("reply_to", target.ID).
		Msg("reply sent")
	i.prompter.ShowSuccess(fmt.Sprintf("Replied to the latest message in %s", in.Name))

	return i.sleep(ctx, i.settings.SendDelay)
}

func (i *Interpreter) pasteNote(ctx context.Context, args []string) error {
	conv, err := i.group(args[0])
	if err != nil {
		return err
	}

	note, ok, err := i.messenger.LatestSelfNote(ctx)
	if err != nil {
		return fmt.Errorf("fetching saved messages: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: saved messages are empty", ErrNoHistory)
	}

	if err = i.messenger.Forward(ctx, conv.ID, note); err != nil {
		return fmt.Errorf("forwarding to %s: %w", conv.Name, err)
	}

	i.prompter.ShowSuccess(fmt.Sprintf("Sent message to %s", conv.Name))
	return nil
}

func (i *Interpreter) editLast(ctx context.Context, args []string) error {
	if i.last == nil {
		return ErrNothingToEdit
	}

	if err := i.messenger.Edit(ctx, *i.last, strings.TrimSpace(args[0])); err != nil {
		return fmt.Errorf("editing message %d: %w", i.last.MessageID, err)
	}

	i.prompter.ShowSuccess("Message edited")
	return nil
}

func (i *Interpreter) deleteLast(ctx context.Context, _ []string) error {
	if i.last == nil {
		return ErrNothingToEdit
	}

	if err := i.messenger.Delete(ctx, *i.last); err != nil {
		return fmt.Errorf("deleting message %d: %w", i.last.MessageID, err)
	}
	i.last = nil

	i.prompter.ShowSuccess("Message deleted")
	return nil
}
