package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMappingNotFound = errors.New("sync mapping not found")

	ErrStampingSyncState     = errors.New("failed to stamp sync state")
	ErrRecomputingChangeSet  = errors.New("failed to recompute change set")
	ErrParentAccessor        = errors.New("failed to read parent relation")
	ErrIdentifierAccessor    = errors.New("failed to read deleted object identifier")
	ErrStagingDeletionLedger = errors.New("failed to stage deletion ledger")
)
