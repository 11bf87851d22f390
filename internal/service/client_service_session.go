// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/internal/app"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/internal/store"
	"github.com/MKhiriev/go-tg-userbot/internal/tui"
	"github.com/MKhiriev/go-tg-userbot/internal/validators"
	"github.com/MKhiriev/go-tg-userbot/models"
)

type clientSessionService struct {
	store     store.ConfigStore
	messenger adapter.Messenger
	prompter  tui.Prompter
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientSessionService(configStore store.ConfigStore, messenger adapter.Messenger, prompter tui.Prompter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		store:     configStore,
		messenger: messenger,
		prompter:  prompter,
		validator: validators.NewCredentialsValidator(),
		logger:    logger,
	}
}

func (s *clientSessionService) Start(ctx context.Context, cfg models.Configuration) (models.Configuration, error) {
	for {
		// S1: NeedCredentials
		if err := s.validator.Validate(ctx, cfg.Credentials); err != nil {
			creds, err := s.promptCredentials(ctx)
			if err != nil {
				return cfg, err
			}
			cfg.Credentials = creds

			if err = s.store.Save(ctx, cfg); err != nil {
				s.logger.Err(err).Msg("saving credentials failed")
				s.prompter.ShowError(app.MsgRecordNotSaved)
			}
		}

		// S2: Connecting
		err := s.messenger.Connect(ctx, cfg.Credentials)
		switch {
		case err == nil:
			s.logger.Info().Int32("api_id", cfg.APIID).Msg("session authenticated")
			return cfg, nil
		case errors.Is(err, adapter.ErrSecondFactorRequired):
			// S3: NeedsSecondFactor
			if err = s.secondFactor(ctx); err != nil {
				return cfg, err
			}
			return cfg, nil
		case isTerminal(ctx, err):
			return cfg, err
		}

		// S4: Failed
		s.logger.Err(err).Msg("connection failed, purging stored credentials")
		s.prompter.ShowError(fmt.Sprintf("Failed to start the session: %s", tui.HumanizeError(err)))
		if err = s.store.Remove(ctx); err != nil {
			s.logger.Err(err).Msg("removing configuration record failed")
		}
		cfg.Credentials = models.Credentials{}
		s.prompter.ShowInfo(app.MsgReenterCredentials)
	}
}

func (s *clientSessionService) promptCredentials(ctx context.Context) (models.Credentials, error) {
	var creds models.Credentials

	for {
		input, err := s.prompter.Prompt(ctx, "Enter your API ID: ")
		if err != nil {
			return creds, err
		}

		id, err := validators.ParseAPIID(input)
		if err != nil {
			s.prompter.ShowError(app.MsgInvalidAPIID)
			continue
		}
		creds.APIID = id
		break
	}

	for {
		hash, err := s.prompter.Prompt(ctx, "Enter your API hash: ")
		if err != nil {
			return creds, err
		}

		creds.APIHash = hash
		if err = s.validator.Validate(ctx, creds, validators.FieldAPIHash); err != nil {
			s.prompter.ShowError(app.MsgEmptyAPIHash)
			continue
		}
		return creds, nil
	}
}

func (s *clientSessionService) secondFactor(ctx context.Context) error {
	s.prompter.ShowInfo(app.MsgSecondFactorEnabled)

	for {
		password, err := s.prompter.PromptSecret(ctx, "Please enter your 2FA password: ")
		if err != nil {
			return err
		}
		if password == "" {
			s.prompter.ShowError(app.MsgEmptyPassword)
			continue
		}

		if err = s.messenger.SubmitPassword(ctx, password); err != nil {
			if isTerminal(ctx, err) {
				return err
			}
			s.logger.Err(err).Msg("2FA verification failed")
			s.prompter.ShowError(fmt.Sprintf("2FA verification failed: %s", tui.HumanizeError(err)))
			continue
		}

		s.prompter.ShowSuccess(app.MsgSecondFactorOK)
		return nil
	}
}

// isTerminal reports errors that must end the loop instead of triggering
// credential recovery. A panicked transport is not a credential problem.
func isTerminal(ctx context.Context, err error) bool {
	return errors.Is(err, tui.ErrUserQuit) ||
		errors.Is(err, adapter.ErrClientPanicked) ||
		errors.Is(err, context.Canceled) ||
		ctx.Err() != nil
}
