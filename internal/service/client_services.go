package service

import (
	"github.com/MKhiriev/go-tg-userbot/internal/adapter"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
	"github.com/MKhiriev/go-tg-userbot/internal/store"
	"github.com/MKhiriev/go-tg-userbot/internal/tui"
)

type ClientServices struct {
	SessionService  ClientSessionService
	SelectorService ClientSelectorService
}

func NewClientServices(storages *store.ClientStorages, messenger adapter.Messenger, prompter tui.Prompter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SessionService:  NewClientSessionService(storages.ConfigStore, messenger, prompter, logger),
		SelectorService: NewClientSelectorService(storages.ConfigStore, messenger, prompter, logger),
	}
}
