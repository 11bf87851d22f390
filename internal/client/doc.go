// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive userbot runtime.
//
// It wires the session service, the conversation selector and the command
// interpreter into a single process lifecycle: authenticate, choose groups,
// then execute operator commands until interrupted.
package client
