// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the userbot's configuration record: the operator's
// credentials and the ordered conversation selection.
//
// The record is a single JSON document on local disk. Saves are atomic from
// the reader's point of view (write to a temporary file, then rename), and
// loads fail softly: a missing or corrupt record is reported as absent.
package store

import (
	"context"

	"github.com/MKhiriev/go-tg-userbot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigStore loads and saves the configuration record.
type ConfigStore interface {
	// Load returns the stored record and true, or a zero record and false
	// when no record exists or it cannot be read or decoded.
	Load(ctx context.Context) (models.Configuration, bool)

	// Save overwrites the record. A concurrent or subsequent Load never
	// observes a partially written document.
	Save(ctx context.Context, cfg models.Configuration) error

	// Remove deletes the record. Removing an absent record is not an error.
	Remove(ctx context.Context) error
}
