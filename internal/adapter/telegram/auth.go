package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
)

func (m *Messenger) authorize(ctx context.Context) error {
	status, err := m.client.Auth().Status(ctx)
	if err != nil {
		return fmt.Errorf("checking authorization: %w", err)
	}
	if status.Authorized {
		m.logger.Debug().Msg("session already authorized")
		return nil
	}

	phone, err := m.auth.Phone(ctx)
	if err != nil {
		return err
	}
	phone = strings.TrimSpace(phone)

	sent, err := m.client.Auth().SendCode(ctx, phone, auth.SendCodeOptions{})
	if err != nil {
		return fmt.Errorf("sending login code: %w", err)
	}

	code, ok := sent.(*tg.AuthSentCode)
	if !ok {
		return fmt.Errorf("sending login code: unexpected response %T", sent)
	}

	input, err := m.auth.Code(ctx)
	if err != nil {
		return err
	}

	_, err = m.client.Auth().SignIn(ctx, phone, strings.TrimSpace(input), code.PhoneCodeHash)
	switch {
	case errors.Is(err, auth.ErrPasswordAuthNeeded):
		return fmt.Errorf("signing in: %w", adapter.ErrSecondFactorRequired)
	case err != nil:
		return fmt.Errorf("signing in: %w", err)
	}

	m.logger.Info().Msg("signed in with login code")
	return nil
}

// SubmitPassword answers the second-factor challenge raised by Connect.
func (m *Messenger) SubmitPassword(ctx context.Context, password string) error {
	if err := m.connected(); err != nil {
		return err
	}

	if _, err := m.client.Auth().Password(ctx, password); err != nil {
		if errors.Is(err, auth.ErrPasswordInvalid) {
			return fmt.Errorf("%w: wrong password", adapter.ErrUnauthorized)
		}
		return fmt.Errorf("checking password: %w", err)
	}

	m.logger.Info().Msg("signed in with 2FA password")
	return nil
}
