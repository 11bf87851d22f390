// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the operator's API key pair used to open a transport
// session.
type Credentials struct {
	// APIID is the numeric application identifier. It must fit a signed
	// 32-bit range.
	APIID int32 `json:"api_id"`

	// APIHash is the application secret. Non-empty once saved.
	APIHash string `json:"api_hash"`
}

// IsSet reports whether both parts of the key pair are present.
func (c Credentials) IsSet() bool {
	return c.APIID != 0 && c.APIHash != ""
}
