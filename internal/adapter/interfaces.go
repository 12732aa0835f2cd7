// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the sync server read API.
//
// [SyncServerAdapter] hides the transport from the reporter worker. The
// HTTP implementation ([NewHTTPSyncAdapter]) maps response status codes to
// the sentinel errors of errors.go so callers can match them with
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_adapter_mock.go -package=mock

// SyncServerAdapter reads sync bookkeeping from a running sync server.
type SyncServerAdapter interface {
	// GetState returns the last change timestamp of mapping.
	GetState(ctx context.Context, mapping string) (models.SyncStateResponse, error)

	// GetDeletions returns the deletion ledger of mapping from the given
	// epoch second on.
	GetDeletions(ctx context.Context, mapping string, from int64) ([]models.SyncDeleteState, error)

	// GetFailedItems returns the failed items of mapping from the given epoch
	// second on, oldest first.
	GetFailedItems(ctx context.Context, mapping string, from int64) ([]models.SyncFailedItemState, error)

	// GetFailedItem looks one failed item up by uuid. A 404 is reported as
	// found=false, not as an error.
	GetFailedItem(ctx context.Context, uuid string) (item models.SyncFailedItemState, found bool, err error)
}
