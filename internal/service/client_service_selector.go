package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/internal/app"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/internal/store"
	"github.com/MKhiriev/go-tg-userbot/internal/tui"
	"github.com/MKhiriev/go-tg-userbot/internal/validators"
	"github.com/MKhiriev/go-tg-userbot/models"
)

type clientSelectorService struct {
	store     store.ConfigStore
	messenger adapter.Messenger
	prompter  tui.Prompter
	logger    *logger.Logger

	// visible caches the last listing so Resolve does not hit the transport
	// again right after Select.
	visible []models.Conversation
}

func NewClientSelectorService(configStore store.ConfigStore, messenger adapter.Messenger, prompter tui.Prompter, logger *logger.Logger) ClientSelectorService {
	return &clientSelectorService{
		store:     configStore,
		messenger: messenger,
		prompter:  prompter,
		logger:    logger,
	}
}

func (s *clientSelectorService) Select(ctx context.Context, cfg models.Configuration) ([]int64, error) {
	visible, err := s.listMonitorable(ctx)
	if err != nil {
		return nil, err
	}
	if len(visible) == 0 {
		s.prompter.ShowInfo(app.MsgNoGroups)
		return nil, nil
	}

	if cfg.HasSelection() {
		if previous := intersect(cfg.SelectedGroups, visible); len(previous) > 0 {
			reuse, err := s.askReuse(ctx, previous)
			if err != nil {
				return nil, err
			}
			if reuse {
				s.printRoster("Continuing with:", previous)
				return cfg.SelectedGroups, nil
			}
		}
	}

	chosen, err := s.pick(ctx, visible)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(chosen))
	for _, c := range chosen {
		ids = append(ids, c.ID)
	}

	cfg.SelectedGroups = ids
	if err = s.store.Save(ctx, cfg); err != nil {
		s.logger.Err(err).Msg("saving selection failed")
		s.prompter.ShowError(app.MsgSelectionNotSaved)
	}

	s.printRoster("Selected:", chosen)
	return ids, nil
}

func (s *clientSelectorService) Resolve(ctx context.Context, ids []int64) ([]models.Conversation, error) {
	if s.visible == nil {
		if _, err := s.listMonitorable(ctx); err != nil {
			return nil, err
		}
	}

	byID := make(map[int64]models.Conversation, len(s.visible))
	for _, c := range s.visible {
		byID[c.ID] = c
	}

	resolved := make([]models.Conversation, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			s.logger.Warn().Int64("conversation_id", id).Msg("selected conversation is no longer visible")
			continue
		}
		resolved = append(resolved, c)
	}
	return resolved, nil
}

func (s *clientSelectorService) listMonitorable(ctx context.Context) ([]models.Conversation, error) {
	all, err := s.messenger.Conversations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListConversations, err)
	}

	visible := make([]models.Conversation, 0, len(all))
	for _, c := range all {
		if c.IsMonitorable() {
			visible = append(visible, c)
		}
	}
	s.visible = visible

	s.logger.Debug().Int("total", len(all)).Int("monitorable", len(visible)).Msg("conversations listed")
	return visible, nil
}

func (s *clientSelectorService) askReuse(ctx context.Context, previous []models.Conversation) (bool, error) {
	names := make([]string, 0, len(previous))
	for _, c := range previous {
		names = append(names, c.Name)
	}
	question := fmt.Sprintf("Continue with previous channels/groups -- %s? (Y/N): ", strings.Join(names, ", "))

	for {
		answer, err := s.prompter.Prompt(ctx, question)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		s.prompter.ShowError(app.MsgAnswerYesNo)
	}
}

func (s *clientSelectorService) pick(ctx context.Context, visible []models.Conversation) ([]models.Conversation, error) {
	s.prompter.ShowMessage("Available groups and channels:")
	for i, c := range visible {
		s.prompter.ShowMessage(fmt.Sprintf("%d. %s", i+1, c.Name))
	}

	for {
		input, err := s.prompter.Prompt(ctx, "Enter group numbers (comma-separated): ")
		if err != nil {
			return nil, err
		}

		indexes, err := validators.ParseSelection(input, len(visible))
		if err != nil {
			s.prompter.ShowError(fmt.Sprintf("Invalid selection: %v", err))
			continue
		}

		chosen := make([]models.Conversation, 0, len(indexes))
		for _, i := range indexes {
			chosen = append(chosen, visible[i])
		}
		return chosen, nil
	}
}

func (s *clientSelectorService) printRoster(title string, roster []models.Conversation) {
	s.prompter.ShowSuccess(title)
	for i, c := range roster {
		s.prompter.ShowMessage(fmt.Sprintf("    %d. %s", i+1, c.Name))
	}
}

// intersect returns the conversations whose identifiers appear in ids,
// ordered as in ids.
func intersect(ids []int64, visible []models.Conversation) []models.Conversation {
	byID := make(map[int64]models.Conversation, len(visible))
	for _, c := range visible {
		byID[c.ID] = c
	}

	out := make([]models.Conversation, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}
