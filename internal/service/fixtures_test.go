package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
)

var fixedNow = time.Unix(1_700_000_000, 0)

func fixedClock() time.Time { return fixedNow }

// ── Shop domain ─────────────────────────────────────────────────────────────

type customer struct {
	ID            int64
	Name          string
	LastTimestamp int64
}

func (c *customer) ClassName() string { return "shop.Customer" }
func (c *customer) SetLastTimestamp(ts int64) { c.LastTimestamp = ts }
func (c *customer) GetId() int64 { return c.ID }

type order struct {
	ID            int64
	Code          string
	Notes         string
	Customer      *customer
	Reviewer      *customer
	LastTimestamp int64
}

func (o *order) ClassName() string { return "shop.Order" }
func (o *order) SetLastTimestamp(ts int64) { o.LastTimestamp = ts }
func (o *order) GetId() int64 { return o.ID }

// line has no timestamp of its own.
type line struct {
	ID    int64
	Qty   int
	Order *order
	Tag   *tag
}

func (l *line) ClassName() string { return "shop.Line" }
func (l *line) GetId() int64 { return l.ID }
func (l *line) Key() string { return fmt.Sprintf("line-%d", l.ID) }

type tag struct {
	ID    int64
	Label string
}

func (t *tag) ClassName() string { return "shop.Tag" }

// node forms cyclic parent graphs.
type node struct {
	ID            int64
	Name          string
	Next          *node
	LastTimestamp int64
}

func (n *node) ClassName() string { return "graph.Node" }
func (n *node) SetLastTimestamp(ts int64) { n.LastTimestamp = ts }

// lazyRef is a lazy-loading wrapper around another object.
type lazyRef struct {
	target any
}

func (l *lazyRef) Unwrap() any { return l.target }

func shopRegistry(extra ...metadata.TypeDescriptor) *metadata.Registry {
	descriptors := []metadata.TypeDescriptor{
		{Class: "shop.Customer", SyncEnabled: true},
		{
			Class:       "shop.Order",
			SyncEnabled: true,
			Relations: []metadata.Relation{
				metadata.ParentOf("Customer", func(o *order) *customer { return o.Customer }),
				{
					Property:      "Reviewer",
					IgnoreCascade: true,
					Parent: metadata.AccessorOf(func(o *order) any {
						if o.Reviewer == nil {
							return nil
						}
						return o.Reviewer
					}),
				},
				{Property: "Code"},
			},
		},
		{
			Class:       "shop.Line",
			SyncEnabled: true,
			Relations: []metadata.Relation{
				metadata.ParentOf("Order", func(l *line) *order { return l.Order }),
				metadata.ParentOf("Tag", func(l *line) *tag { return l.Tag }),
			},
		},
		{Class: "shop.Tag", SyncEnabled: false},
		{
			Class:       "graph.Node",
			SyncEnabled: true,
			Relations: []metadata.Relation{
				metadata.ParentOf("Next", func(n *node) *node { return n.Next }),
			},
		},
	}

	return metadata.NewRegistry(append(descriptors, extra...)...)
}

// ── Unit of work fake ───────────────────────────────────────────────────────

// fakeUnit is a scripted uow.UnitOfWork. Entities listed in managed are
// StateManaged; persisted ones become managed too.
type fakeUnit struct {
	changeSets map[any][]string
	managed    map[any]bool

	persisted  []any
	recomputed []any

	recomputeErr error
}

func newFakeUnit() *fakeUnit {
	return &fakeUnit{
		changeSets: make(map[any][]string),
		managed:    make(map[any]bool),
	}
}

func (u *fakeUnit) changed(entity any, properties ...string) *fakeUnit {
	u.changeSets[entity] = properties
	u.managed[entity] = true
	return u
}

func (u *fakeUnit) manage(entities ...any) *fakeUnit {
	for _, e := range entities {
		u.managed[e] = true
	}
	return u
}

func (u *fakeUnit) ChangeSet(entity any) []string {
	return u.changeSets[u.Resolve(entity)]
}

func (u *fakeUnit) RealClassOf(entity any) string {
	if n, ok := u.Resolve(entity).(uow.ClassNamer); ok {
		return n.ClassName()
	}
	return "unknown"
}

func (u *fakeUnit) Resolve(entity any) any {
	for {
		p, ok := entity.(uow.Proxy)
		if !ok {
			return entity
		}
		entity = p.Unwrap()
	}
}

func (u *fakeUnit) State(entity any) uow.EntityState {
	if u.managed[u.Resolve(entity)] {
		return uow.StateManaged
	}
	return uow.StateNew
}

func (u *fakeUnit) Persist(entity any) {
	u.persisted = append(u.persisted, entity)
	u.managed[entity] = true
}

func (u *fakeUnit) RecomputeChangeSet(entity any) error {
	if u.recomputeErr != nil {
		return u.recomputeErr
	}
	u.recomputed = append(u.recomputed, u.Resolve(entity))
	return nil
}

// ── Writer fake ─────────────────────────────────────────────────────────────

type recordingWriter struct {
	commits []uow.CommitSet
	err     error
}

func (w *recordingWriter) Write(_ context.Context, commit uow.CommitSet) error {
	if w.err != nil {
		return w.err
	}
	w.commits = append(w.commits, commit)
	return nil
}

func (w *recordingWriter) last() uow.CommitSet {
	if len(w.commits) == 0 {
		return uow.CommitSet{}
	}
	return w.commits[len(w.commits)-1]
}

func entitiesOf(changes []uow.Change) []any {
	entities := make([]any, 0, len(changes))
	for _, c := range changes {
		entities = append(entities, c.Entity)
	}
	return entities
}

var errStorageDown = errors.New("storage is down")
