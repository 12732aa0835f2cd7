// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// sync server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe why a request failed. Keeping them in one
// place keeps the wording of the read API consistent.
package app

const (
	// MsgErrorGettingSyncState is returned when the sync state of a mapping
	// cannot be read.
	MsgErrorGettingSyncState = "error getting sync state"

	// MsgErrorGettingDeletions is returned when the deletion ledger of a
	// mapping cannot be read.
	MsgErrorGettingDeletions = "error getting deletions"

	// MsgErrorGettingFailedItems is returned when the failed items of a
	// mapping cannot be listed.
	MsgErrorGettingFailedItems = "error getting failed items"

	// MsgErrorGettingFailedItem is returned when a single failed item lookup
	// fails for a reason other than absence.
	MsgErrorGettingFailedItem = "error getting failed item"

	// MsgFailedItemNotFound is returned when no unique failed item carries
	// the requested uuid.
	MsgFailedItemNotFound = "failed item not found"

	MsgMethodNotAllowed = "method not allowed"
	MsgRouteNotFound    = "route not found"
)
