package store

import (
	"github.com/MKhiriev/go-tg-userbot/internal/config"
	"github.com/MKhiriev/go-tg-userbot/internal/logger"
)

// ClientStorages groups all local storage used by the userbot into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ConfigStore holds the configuration record (credentials and
	// conversation selection).
	ConfigStore ConfigStore

	// SessionPath is where the transport keeps its opaque session token.
	// The userbot never reads it; it is handed to the transport as is.
	SessionPath string
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) *ClientStorages {
	logger.Info().Str("record", cfg.ConfigPath).Msg("creating new storages...")

	return &ClientStorages{
		ConfigStore: NewFileConfigStore(cfg.ConfigPath, logger),
		SessionPath: cfg.SessionPath,
	}
}
