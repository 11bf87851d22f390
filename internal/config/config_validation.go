// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// MinWrapWidth is the narrowest wrap column accepted.
const MinWrapWidth = 10

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.ConfigPath == "" || cfg.Storage.SessionPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.SendDelay < 0 {
		return fmt.Errorf("%w: negative send delay %s", ErrInvalidAppConfigs, cfg.App.SendDelay)
	}

	if cfg.App.WrapWidth < MinWrapWidth {
		return fmt.Errorf("%w: wrap width %d is below %d", ErrInvalidAppConfigs, cfg.App.WrapWidth, MinWrapWidth)
	}

	if cfg.App.CopyLimit < 1 {
		return fmt.Errorf("%w: copy limit must be positive", ErrInvalidAppConfigs)
	}

	return nil
}
