// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package uow is the persistence-host abstraction the sync core hooks into:
// the unit-of-work operations the core needs during a flush, the pre-commit
// [FlushEvent] with its change buckets, and [Session], an in-memory unit of
// work that computes change sets by snapshot comparison and hands the final
// commit to a [Writer].
package uow

import "context"

// EntityState is the lifecycle state of an object relative to a unit of work.
type EntityState int

const (
	// StateNew is an object the unit of work does not know.
	StateNew EntityState = iota
	// StateManaged is a loaded or persisted object tracked for changes.
	StateManaged
	// StateRemoved is a managed object scheduled for deletion.
	StateRemoved
)

// UnitOfWork is the set of host operations the sync core uses while a flush
// is in progress.
type UnitOfWork interface {
	// ChangeSet returns the names of the properties of entity that differ
	// from its last known state in the current flush.
	ChangeSet(entity any) []string

	// RealClassOf returns the domain class name of entity, looking through
	// lazy-loading wrappers.
	RealClassOf(entity any) string

	// Resolve returns the underlying instance behind a lazy-loading wrapper,
	// or entity itself. The result is the object's identity.
	Resolve(entity any) any

	// State reports the lifecycle state of entity.
	State(entity any) EntityState

	// Persist schedules entity for insertion in the current commit. It is a
	// no-op for objects that are already managed.
	Persist(entity any)

	// RecomputeChangeSet re-derives the change set of a managed entity that
	// was mutated after the flush started so the mutation is written by the
	// same commit.
	RecomputeChangeSet(entity any) error
}

// Collection is a tracked to-many association; iterating it yields its
// members, which may include non-object scalars.
type Collection interface {
	Members() []any
}

// FlushEvent is fired once per commit, after change sets are computed and
// before anything is written.
type FlushEvent struct {
	UnitOfWork UnitOfWork

	Updates    []any
	Insertions []any
	Deletions  []any

	// CollectionUpdates are collections that gained members.
	CollectionUpdates []Collection
	// CollectionDeletions hold the members removed from tracked collections.
	CollectionDeletions []Collection
}

// Listener reacts to a flush. A returned error aborts the commit.
type Listener interface {
	OnFlush(ctx context.Context, event FlushEvent) error
}

// ListenerFunc adapts a function to [Listener].
type ListenerFunc func(ctx context.Context, event FlushEvent) error

// OnFlush implements [Listener].
func (f ListenerFunc) OnFlush(ctx context.Context, event FlushEvent) error {
	return f(ctx, event)
}

// Proxy is implemented by lazy-loading wrappers.
type Proxy interface {
	Unwrap() any
}

// ClassNamer lets a type report its domain class name explicitly.
type ClassNamer interface {
	ClassName() string
}

// Ephemeral is implemented by entities a [Session] forgets once they are
// written. Bookkeeping rows are staged anew by every flush that needs them,
// so keeping them managed would only pile up copies of the same row.
type Ephemeral interface {
	Ephemeral()
}

// Change is one entity of a commit with its final change set.
type Change struct {
	Entity     any
	Class      string
	Properties []string
}

// CommitSet is everything a flush writes.
type CommitSet struct {
	Insertions []Change
	Updates    []Change
	Deletions  []Change
}

// Empty reports whether the commit writes nothing.
func (c CommitSet) Empty() bool {
	return len(c.Insertions) == 0 && len(c.Updates) == 0 && len(c.Deletions) == 0
}

// Writer performs the physical write of a commit, atomically.
type Writer interface {
	Write(ctx context.Context, commit CommitSet) error
}
