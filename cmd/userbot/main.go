package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-tg-userbot/internal/adapter/telegram"
	"github.com/MKhiriev/go-tg-userbot/internal/client"
	"github.com/MKhiriev/go-tg-userbot/internal/config"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/internal/service"
	"github.com/MKhiriev/go-tg-userbot/internal/store"
	"github.com/MKhiriev/go-tg-userbot/internal/tui"
	"github.com/MKhiriev/go-tg-userbot/internal/utils"
	"github.com/MKhiriev/go-tg-userbot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// interruptGrace is how long an interrupted run may take to unwind before
// the process exits anyway; a read blocked on a plain stdin never observes
// cancellation.
const interruptGrace = 2 * time.Second

func main() {
	os.Exit(run())
}

func run() (code int) {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		return 2
	}

	runID := utils.NewUUIDGenerator().Generate()
	log := logger.NewClientLogger("go-tg-userbot", cfg.Log.Path).WithRunID(runID)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = utils.WithRunID(log.WithContext(ctx), runID)

	console, err := tui.NewConsole(cfg.App.HistoryFile, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating console")
		return 1
	}
	defer console.Close()

	var farewell sync.Once
	sayGoodbye := func() { farewell.Do(console.Farewell) }

	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-ctx.Done():
			select {
			case <-finished:
			case <-time.After(interruptGrace):
				log.Info().Msg("interrupted while blocked on input")
				sayGoodbye()
				_ = console.Close()
				os.Exit(0)
			}
		case <-finished:
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("userbot panicked")
			console.UnexpectedError(utils.SanitizeTrace(fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack()), projectDir()))
			code = 1
		}
	}()

	storages := store.NewClientStorages(cfg.Storage, log)
	messenger := telegram.NewMessenger(cfg.Storage.SessionPath, console, log)
	services := service.NewClientServices(storages, messenger, console, log)
	app := client.NewApp(services, storages, messenger, console, cfg.App, log)

	err = app.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit), errors.Is(err, context.Canceled), ctx.Err() != nil:
		log.Info().Msg("userbot stopped by operator")
		sayGoodbye()
		return 0
	default:
		log.Error().Err(err).Msg("userbot stopped")
		console.UnexpectedError(utils.SanitizeTrace(utils.ErrorChain(err), projectDir()))
		return 1
	}
}

func projectDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return config.BaseDir()
}

func printBuildInfo(info models.AppBuildInfo) {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}

	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}
