// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncMapping identifies a logical synchronizable record type. Class holds the
// runtime class name of the domain type the mapping stands for.
//
// Mappings are administered outside of the sync core and are read-only to it.
type SyncMapping struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// SyncState holds the most recent moment (epoch seconds) at which any instance
// of the mapping's type changed. There is at most one SyncState per mapping.
type SyncState struct {
	ID        int64       `json:"id"`
	Mapping   SyncMapping `json:"mapping"`
	Timestamp int64       `json:"timestamp"`
}

// ClassName implements uow.ClassNamer.
func (s *SyncState) ClassName() string {
	return SyncStateClass
}

// Ephemeral implements uow.Ephemeral: every flush loads the row again.
func (s *SyncState) Ephemeral() {}

// SyncFailedItemState records one item that failed synchronization.
// UUID is the stable external identifier and is unique across all records.
type SyncFailedItemState struct {
	ID        int64       `json:"id"`
	UUID      string      `json:"uuid"`
	Mapping   SyncMapping `json:"mapping"`
	Timestamp int64       `json:"timestamp"`
}

// DeletedItem is one deletion ledger entry: the real class of a removed object
// together with the identifier obtained through the configured accessor.
type DeletedItem struct {
	Class      string `json:"class"`
	Identifier string `json:"identifier"`
}

// SyncDeleteState is the persisted form of a [DeletedItem], written in the
// same commit that removed the object.
type SyncDeleteState struct {
	ID         int64  `json:"id"`
	Class      string `json:"class"`
	Identifier string `json:"identifier"`
	Timestamp  int64  `json:"timestamp"`
}

// ClassName implements uow.ClassNamer.
func (s *SyncDeleteState) ClassName() string {
	return SyncDeleteStateClass
}

// Ephemeral implements uow.Ephemeral: ledger rows are append-only.
func (s *SyncDeleteState) Ephemeral() {}

// Class names of the bookkeeping entities themselves.
const (
	SyncStateClass       = "models.SyncState"
	SyncDeleteStateClass = "models.SyncDeleteState"
)
