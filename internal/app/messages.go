// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// userbot's services and runtime.
//
// All Msg* constants are human-readable lines shown to the operator on the
// console. Keeping them in one place keeps the wording consistent between
// the session, selection and command phases.
package app

const (
	// MsgWelcome greets an operator with no configuration record yet.
	MsgWelcome = "Welcome!"

	// MsgWelcomeBack greets an operator whose configuration record was
	// found.
	MsgWelcomeBack = "Welcome back!"

	// MsgTerminateHint tells how to leave the program.
	MsgTerminateHint = "Press Ctrl+C to terminate"

	// MsgReenterCredentials follows a failed connection attempt, after the
	// stored record was removed.
	MsgReenterCredentials = "Please enter your credentials again"

	// MsgRecordNotSaved is shown when credentials could not be persisted.
	MsgRecordNotSaved = "Could not save the configuration record; credentials will be asked again next run"

	// MsgInvalidAPIID rejects an API ID outside the signed 32-bit range.
	MsgInvalidAPIID = "API ID must be an integer between -2147483648 and 2147483647"

	// MsgEmptyAPIHash rejects a blank API hash.
	MsgEmptyAPIHash = "API hash must not be empty"

	// MsgSecondFactorEnabled announces the 2FA password prompt.
	MsgSecondFactorEnabled = "Two-factor authentication is enabled for this account"

	// MsgEmptyPassword rejects a blank 2FA password.
	MsgEmptyPassword = "Password must not be empty"

	// MsgSecondFactorOK confirms the 2FA password was accepted.
	MsgSecondFactorOK = "2FA verification successful"

	// MsgNoGroups is shown when the account has no groups or channels.
	MsgNoGroups = "No groups or channels found for this account"

	// MsgAnswerYesNo re-asks a yes/no question.
	MsgAnswerYesNo = "Please answer Y or N"

	// MsgSelectionNotSaved is shown when a fresh selection could not be
	// persisted.
	MsgSelectionNotSaved = "Could not save the selection; it will be asked again next run"

	// MsgGroupsGone is shown when none of the saved groups is visible.
	MsgGroupsGone = "None of the selected groups are available anymore"

	// MsgNoUsername stands in for a missing public handle of the operator.
	MsgNoUsername = "(no username set)"
)
