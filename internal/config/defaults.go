package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultSendDelay is the pause applied after each send.
	DefaultSendDelay = 1500 * time.Millisecond
	// DefaultWrapWidth is the wrap column of copied messages.
	DefaultWrapWidth = 60
	// DefaultCopyLimit is how many messages copy prints when no count is given.
	DefaultCopyLimit = 10

	// DefaultConfigFileName is the configuration record file name.
	DefaultConfigFileName = "config.json"
	// DefaultSessionFileName is the transport session file name.
	DefaultSessionFileName = "userbot_session.json"
	// DefaultDotEnvFile is the .env file looked up in the working directory.
	DefaultDotEnvFile = ".env"
)

// BaseDir returns the directory holding the executable. The record and the
// session file are kept there by default so the userbot can be moved around
// as a single folder.
func BaseDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(execPath)
}

func defaultConfig() *StructuredConfig {
	base := BaseDir()
	return &StructuredConfig{
		App: App{
			SendDelay: DefaultSendDelay,
			WrapWidth: DefaultWrapWidth,
			CopyLimit: DefaultCopyLimit,
		},
		Storage: Storage{
			ConfigPath:  filepath.Join(base, DefaultConfigFileName),
			SessionPath: filepath.Join(base, DefaultSessionFileName),
		},
	}
}
