// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// userbot. It aggregates all sub-configurations and is populated by merging
// values from defaults, a .env file, environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds command interpreter settings: send delay, wrapping, and
	// copy defaults.
	App App `envPrefix:"APP_"`

	// Storage holds locations of the configuration record and the opaque
	// transport session file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the log file location.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON settings file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings that shape how commands behave.
type App struct {
	// SendDelay is the fixed pause after every successful send.
	// Env: APP_SEND_DELAY
	SendDelay time.Duration `env:"SEND_DELAY"`

	// WrapWidth is the column at which copied message bodies are wrapped.
	// Env: APP_WRAP_WIDTH
	WrapWidth int `env:"WRAP_WIDTH"`

	// CopyLimit is the number of messages copied when the command omits it.
	// Env: APP_COPY_LIMIT
	CopyLimit int `env:"COPY_LIMIT"`

	// Clipboard enables placing the rendered output of copy on the system
	// clipboard as well.
	// Env: APP_CLIPBOARD
	Clipboard bool `env:"CLIPBOARD"`

	// HistoryFile is where the command prompt keeps its line history.
	// Empty keeps history in memory only.
	// Env: APP_HISTORY_FILE
	HistoryFile string `env:"HISTORY_FILE"`
}

// Storage groups the on-disk locations used by the userbot.
type Storage struct {
	// ConfigPath is the JSON configuration record holding credentials and
	// the conversation selection.
	// Env: STORAGE_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`

	// SessionPath is the transport session file. Opaque to the userbot.
	// Env: STORAGE_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`
}

// Log holds logging settings.
type Log struct {
	// Path is the log file. Empty means a file named "logs" next to the
	// executable.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads, merges, and validates the runtime settings from
// all available sources, args being the command-line arguments without the
// program name.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
