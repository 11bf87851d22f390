package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/internal/app"
	"github.com/MKhiriev/go-tg-userbot/internal/command"
	"github.com/MKhiriev/go-tg-userbot/internal/config"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/internal/service"
	"github.com/MKhiriev/go-tg-userbot/internal/store"
	"github.com/MKhiriev/go-tg-userbot/internal/tui"
	"github.com/MKhiriev/go-tg-userbot/models"
)

type App struct {
	services  *service.ClientServices
	store     store.ConfigStore
	messenger adapter.Messenger
	console   Console
	settings  config.App
	logger    *logger.Logger
}

func NewApp(
	services *service.ClientServices,
	storages *store.ClientStorages,
	messenger adapter.Messenger,
	console Console,
	settings config.App,
	logger *logger.Logger,
) *App {
	return &App{
		services:  services,
		store:     storages.ConfigStore,
		messenger: messenger,
		console:   console,
		settings:  settings,
		logger:    logger,
	}
}

var _ Client = (*App)(nil)

// Run executes one session: authenticate, select groups, then read and
// execute commands. It returns tui.ErrUserQuit when the operator leaves and
// only fails on errors that make continuing impossible; per-command errors
// are reported and the loop goes on.
func (a *App) Run(ctx context.Context) error {
	a.console.ProgramStart()

	record, found := a.store.Load(ctx)
	if found {
		a.console.ShowMessage(app.MsgWelcomeBack)
	} else {
		a.console.ShowMessage(app.MsgWelcome)
	}
	a.console.ShowInfo(app.MsgTerminateHint)

	record, err := a.services.SessionService.Start(ctx, record)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.messenger.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("closing messenger")
		}
	}()

	self, err := a.messenger.Self(ctx)
	if err != nil {
		return fmt.Errorf("get logged in account: %w", err)
	}
	a.console.ShowSuccess(loggedInAs(self))
	a.logger.Info().Int64("user_id", self.UserID).Msg("logged in")

	ids, err := a.services.SelectorService.Select(ctx, record)
	if err != nil {
		return fmt.Errorf("select groups: %w", err)
	}

	groups, err := a.services.SelectorService.Resolve(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve groups: %w", err)
	}
	if len(ids) > 0 && len(groups) == 0 {
		a.console.ShowError(app.MsgGroupsGone)
	}

	interpreter := command.NewInterpreter(a.messenger, a.console, a.console.Writer(), groups, a.settings, a.logger)
	return a.commandLoop(ctx, interpreter)
}

func (a *App) commandLoop(ctx context.Context, interpreter *command.Interpreter) error {
	for {
		line, err := a.console.ReadCommand(ctx)
		if err != nil {
			return err
		}

		err = interpreter.Execute(ctx, line)
		if errors.Is(err, tui.ErrUserQuit) || ctx.Err() != nil {
			return errors.Join(err, ctx.Err())
		}
		if errors.Is(err, adapter.ErrClientPanicked) {
			return err
		}
	}
}

func loggedInAs(u models.User) string {
	handle := u.Handle()
	if handle == "" {
		handle = app.MsgNoUsername
	}
	return fmt.Sprintf("Logged in as -- Name: %s, Username: %s", u.Name, handle)
}
