package uow

import "errors"

var (
	// ErrFlushInProgress is returned by a nested Flush call.
	ErrFlushInProgress = errors.New("flush already in progress")

	// ErrNotAnEntity is returned for values that are not pointers to structs.
	ErrNotAnEntity = errors.New("value is not an entity")

	// ErrEntityNotManaged is returned by RecomputeChangeSet for objects the
	// session does not track.
	ErrEntityNotManaged = errors.New("entity is not managed")

	// ErrFlushListener wraps an error returned by a flush listener.
	ErrFlushListener = errors.New("flush listener failed")

	// ErrFlushWrite wraps an error returned by the writer.
	ErrFlushWrite = errors.New("flush write failed")
)
