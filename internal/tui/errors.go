// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned by every read once the operator interrupted the
// program (Ctrl+C), closed standard input, or typed exit/quit at the command
// prompt.
var ErrUserQuit = errors.New("operator quit")

// HumanizeError turns transport errors into a line fit for the operator.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is unavailable or the server cannot be reached"
	}

	return err.Error()
}
