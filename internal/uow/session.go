// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package uow

import (
	"context"
	"fmt"
	"reflect"
)

type entry struct {
	entity   any
	state    EntityState
	pending  bool // scheduled for insertion, never written
	snapshot map[string]any
}

// Session is an in-memory unit of work. Entities are tracked by pointer
// identity; change sets are computed at flush time by comparing each managed
// entity with the snapshot taken when it was attached or last written.
// [Ephemeral] entities are released after the commit that wrote them.
//
// A Session is not safe for concurrent use.
type Session struct {
	writer    Writer
	listeners []Listener

	entries     map[any]*entry
	order       []any
	collections []*TrackedCollection

	flushing   bool
	changeSets map[any][]string
}

// NewSession returns a session that commits through writer and notifies
// listeners before every write. A nil writer discards commits.
func NewSession(writer Writer, listeners ...Listener) *Session {
	return &Session{
		writer:    writer,
		listeners: listeners,
		entries:   make(map[any]*entry),
	}
}

// AddListener registers another flush listener.
func (s *Session) AddListener(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Attach starts tracking an entity loaded from storage.
func (s *Session) Attach(entity any) error {
	e := s.Resolve(entity)
	if snapshot(e) == nil {
		return fmt.Errorf("%w: %T", ErrNotAnEntity, entity)
	}
	if _, found := s.entries[e]; found {
		return nil
	}

	s.track(&entry{entity: e, state: StateManaged, snapshot: snapshot(e)})
	return nil
}

// Persist schedules a new entity for insertion. Persisting a removed entity
// cancels its removal. Non-entities are ignored.
func (s *Session) Persist(entity any) {
	e := s.Resolve(entity)
	if snapshot(e) == nil {
		return
	}

	if en, found := s.entries[e]; found {
		if en.state == StateRemoved {
			en.state = StateManaged
		}
		return
	}

	s.track(&entry{entity: e, state: StateManaged, pending: true})
}

// Remove schedules a managed entity for deletion. A pending insertion is
// simply forgotten.
func (s *Session) Remove(entity any) {
	e := s.Resolve(entity)
	en, found := s.entries[e]
	if !found {
		return
	}
	if en.pending {
		s.forget(e)
		return
	}
	en.state = StateRemoved
}

// NewCollection returns a to-many association tracked by the session. The
// initial members are its loaded state.
func (s *Session) NewCollection(members ...any) *TrackedCollection {
	c := &TrackedCollection{members: append([]any(nil), members...)}
	s.collections = append(s.collections, c)
	return c
}

// State implements [UnitOfWork].
func (s *Session) State(entity any) EntityState {
	if en, found := s.entries[s.Resolve(entity)]; found {
		return en.state
	}
	return StateNew
}

// Resolve implements [UnitOfWork].
func (s *Session) Resolve(entity any) any {
	for {
		p, ok := entity.(Proxy)
		if !ok {
			return entity
		}
		entity = p.Unwrap()
	}
}

// RealClassOf implements [UnitOfWork]. A [ClassNamer] reports its own name;
// any other type is named by its Go type, e.g. "shop.Order".
func (s *Session) RealClassOf(entity any) string {
	e := s.Resolve(entity)
	if n, ok := e.(ClassNamer); ok {
		return n.ClassName()
	}

	t := reflect.TypeOf(e)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.String()
}

// ChangeSet implements [UnitOfWork]. Outside a flush it is always empty.
func (s *Session) ChangeSet(entity any) []string {
	props := s.changeSets[s.Resolve(entity)]
	if len(props) == 0 {
		return nil
	}
	return append([]string(nil), props...)
}

// RecomputeChangeSet implements [UnitOfWork].
func (s *Session) RecomputeChangeSet(entity any) error {
	e := s.Resolve(entity)
	en, found := s.entries[e]
	if !found || en.state != StateManaged {
		return fmt.Errorf("%w: %T", ErrEntityNotManaged, entity)
	}
	if s.changeSets == nil {
		return nil
	}

	s.changeSets[e] = s.changeSetOf(en)
	return nil
}

// Flush computes the change buckets, fires the listeners and writes the
// resulting commit. Mutations and insertions made by listeners are part of
// the same commit. On error nothing is written and the entities staged by
// listeners are discarded.
func (s *Session) Flush(ctx context.Context) error {
	if s.flushing {
		return ErrFlushInProgress
	}
	s.flushing = true
	s.changeSets = make(map[any][]string)
	defer func() {
		s.flushing = false
		s.changeSets = nil
	}()

	tracked := len(s.order)
	event := s.flushEvent()

	for _, l := range s.listeners {
		if err := l.OnFlush(ctx, event); err != nil {
			s.discardFrom(tracked)
			return fmt.Errorf("%w: %w", ErrFlushListener, err)
		}
	}

	commit := s.commitSet()
	if s.writer != nil && !commit.Empty() {
		if err := s.writer.Write(ctx, commit); err != nil {
			s.discardFrom(tracked)
			return fmt.Errorf("%w: %w", ErrFlushWrite, err)
		}
	}

	s.settle()
	return nil
}

func (s *Session) flushEvent() FlushEvent {
	event := FlushEvent{UnitOfWork: s}

	for _, key := range s.order {
		en := s.entries[key]
		switch {
		case en.state == StateRemoved:
			event.Deletions = append(event.Deletions, en.entity)
		case en.pending:
			s.changeSets[key] = s.changeSetOf(en)
			event.Insertions = append(event.Insertions, en.entity)
		default:
			if props := s.changeSetOf(en); len(props) > 0 {
				s.changeSets[key] = props
				event.Updates = append(event.Updates, en.entity)
			}
		}
	}

	for _, c := range s.collections {
		if len(c.added) > 0 {
			event.CollectionUpdates = append(event.CollectionUpdates, c)
		}
		if len(c.removed) > 0 {
			event.CollectionDeletions = append(event.CollectionDeletions, removedMembers(append([]any(nil), c.removed...)))
		}
	}

	return event
}

// commitSet re-derives every change set so mutations made by listeners
// without a recompute still reach the writer.
func (s *Session) commitSet() CommitSet {
	var commit CommitSet

	for _, key := range s.order {
		en := s.entries[key]
		change := Change{Entity: en.entity, Class: s.RealClassOf(en.entity)}

		switch {
		case en.state == StateRemoved:
			commit.Deletions = append(commit.Deletions, change)
		case en.pending:
			change.Properties = s.changeSetOf(en)
			commit.Insertions = append(commit.Insertions, change)
		default:
			if change.Properties = s.changeSetOf(en); len(change.Properties) > 0 {
				commit.Updates = append(commit.Updates, change)
			}
		}
	}

	return commit
}

func (s *Session) changeSetOf(en *entry) []string {
	current := snapshot(en.entity)
	if en.pending {
		return nonZero(en.entity, current)
	}
	return diff(en.entity, en.snapshot, current)
}

func (s *Session) settle() {
	order := s.order[:0]
	for _, key := range s.order {
		en := s.entries[key]
		if _, ephemeral := en.entity.(Ephemeral); ephemeral || en.state == StateRemoved {
			delete(s.entries, key)
			continue
		}
		en.pending = false
		en.snapshot = snapshot(en.entity)
		order = append(order, key)
	}
	s.order = order

	for _, c := range s.collections {
		c.added, c.removed = nil, nil
	}
}

func (s *Session) track(en *entry) {
	s.entries[en.entity] = en
	s.order = append(s.order, en.entity)
}

func (s *Session) forget(key any) {
	delete(s.entries, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *Session) discardFrom(n int) {
	for _, key := range s.order[n:] {
		delete(s.entries, key)
	}
	s.order = s.order[:n]
}

// TrackedCollection is a to-many association whose additions and removals
// are reported on the next flush. Members must be comparable.
type TrackedCollection struct {
	members []any
	added   []any
	removed []any
}

// Members implements [Collection].
func (c *TrackedCollection) Members() []any {
	return append([]any(nil), c.members...)
}

// Len returns the number of members.
func (c *TrackedCollection) Len() int {
	return len(c.members)
}

// Add appends a member.
func (c *TrackedCollection) Add(member any) {
	c.members = append(c.members, member)
	c.added = append(c.added, member)
}

// Remove drops the first occurrence of member and reports whether it was
// present.
func (c *TrackedCollection) Remove(member any) bool {
	for i, m := range c.members {
		if m == member {
			c.members = append(c.members[:i], c.members[i+1:]...)
			c.removed = append(c.removed, member)
			return true
		}
	}
	return false
}

// Clear removes every member.
func (c *TrackedCollection) Clear() {
	c.removed = append(c.removed, c.members...)
	c.members = nil
}

type removedMembers []any

func (r removedMembers) Members() []any {
	return r
}
