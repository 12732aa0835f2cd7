package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/internal/mock"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	customersMapping = models.SyncMapping{ID: 1, Name: "customers", Class: "shop.Customer"}
	ordersMapping    = models.SyncMapping{ID: 2, Name: "orders", Class: "shop.Order"}
	linesMapping     = models.SyncMapping{ID: 3, Name: "lines", Class: "shop.Line"}
	nodesMapping     = models.SyncMapping{ID: 4, Name: "nodes", Class: "graph.Node"}
)

type propagatorFixture struct {
	mappings   *mock.MockSyncMappingRepository
	states     *mock.MockSyncStateRepository
	propagator *SyncStatePropagator
}

func newPropagatorFixture(t *testing.T, registry *metadata.Registry, rules ...config.IgnoreProperty) *propagatorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &propagatorFixture{
		mappings: mock.NewMockSyncMappingRepository(ctrl),
		states:   mock.NewMockSyncStateRepository(ctrl),
	}
	f.propagator = NewSyncStatePropagator(registry, NewChangeFilter(rules), f.mappings, f.states)
	f.propagator.now = fixedClock

	return f
}

// expectMapping wires a mapping lookup for class with no stored state yet.
func (f *propagatorFixture) expectMapping(mapping models.SyncMapping) {
	f.mappings.EXPECT().FindByClass(gomock.Any(), mapping.Class).Return(mapping, nil).AnyTimes()
	f.states.EXPECT().FindByMappingID(gomock.Any(), mapping.ID).Return(models.SyncState{}, store.ErrSyncStateNotFound).AnyTimes()
}

func persistedStates(unit *fakeUnit) map[string]*models.SyncState {
	states := make(map[string]*models.SyncState)
	for _, e := range unit.persisted {
		if s, ok := e.(*models.SyncState); ok {
			states[s.Mapping.Name] = s
		}
	}
	return states
}

// ── Top-level filtering ─────────────────────────────────────────────────────

func TestProcessEntity_NonEntitiesAreIgnored(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	unit := newFakeUnit()
	batch := f.propagator.NewBatch(unit)

	var nilOrder *order
	for _, v := range []any{nil, nilOrder, 42, "order", order{}} {
		require.NoError(t, batch.ProcessEntity(context.Background(), v, false))
	}

	assert.Empty(t, unit.persisted)
}

func TestProcessEntity_OnlyIgnoredPropertiesChanged(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry(), config.IgnoreProperty{Class: "shop.Order", Property: "Notes"})

	c := &customer{ID: 1}
	o := &order{ID: 10, Customer: c}
	unit := newFakeUnit().changed(o, "Notes")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Zero(t, o.LastTimestamp)
	assert.Zero(t, c.LastTimestamp, "no cascade for an insignificant change")
	assert.Empty(t, unit.persisted)
}

func TestProcessEntity_IgnoreRuleOfAnotherClass(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry(), config.IgnoreProperty{Class: "shop.Customer", Property: "Notes"})
	f.expectMapping(ordersMapping)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Notes")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Equal(t, fixedNow.Unix(), o.LastTimestamp)
}

func TestProcessEntity_EmptyChangeSetIsSkipped(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())

	o := &order{ID: 10}
	unit := newFakeUnit().manage(o)

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Zero(t, o.LastTimestamp)
}

func TestProcessEntity_SyncDisabledClass(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())

	tg := &tag{ID: 5}
	unit := newFakeUnit().changed(tg, "Label")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), tg, false))

	assert.Empty(t, unit.persisted)
}

func TestProcessEntity_UnknownClass(t *testing.T) {
	f := newPropagatorFixture(t, metadata.NewRegistry())

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Zero(t, o.LastTimestamp)
	assert.Empty(t, unit.persisted)
}

// ── Stamping ────────────────────────────────────────────────────────────────

func TestProcessEntity_CreatesMissingSyncState(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(ordersMapping)

	o := &order{ID: 10, Code: "A-1"}
	unit := newFakeUnit().changed(o, "Code")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	require.Len(t, unit.persisted, 1)
	state, ok := unit.persisted[0].(*models.SyncState)
	require.True(t, ok)
	assert.Zero(t, state.ID)
	assert.Equal(t, ordersMapping, state.Mapping)
	assert.Equal(t, fixedNow.Unix(), state.Timestamp)

	assert.Equal(t, fixedNow.Unix(), o.LastTimestamp)
	assert.Contains(t, unit.recomputed, any(o), "stamped managed entity must be recomputed")
	assert.Contains(t, unit.recomputed, any(state))
}

func TestProcessEntity_UpdatesExistingSyncState(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "shop.Order").Return(ordersMapping, nil)
	f.states.EXPECT().FindByMappingID(gomock.Any(), ordersMapping.ID).
		Return(models.SyncState{ID: 77, Mapping: ordersMapping, Timestamp: 1}, nil)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	state := persistedStates(unit)["orders"]
	require.NotNil(t, state)
	assert.Equal(t, int64(77), state.ID)
	assert.Equal(t, fixedNow.Unix(), state.Timestamp)
}

func TestProcessEntity_DetachedEntityIsNotRecomputed(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(ordersMapping)

	o := &order{ID: 10}
	unit := newFakeUnit()
	unit.changeSets[o] = []string{"Code"}

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Equal(t, fixedNow.Unix(), o.LastTimestamp)
	assert.NotContains(t, unit.recomputed, any(o))
}

func TestProcessEntity_OneSyncStatePerMapping(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "shop.Order").Return(ordersMapping, nil).Times(2)
	f.states.EXPECT().FindByMappingID(gomock.Any(), ordersMapping.ID).
		Return(models.SyncState{}, store.ErrSyncStateNotFound).Times(1)

	first, second := &order{ID: 10}, &order{ID: 11}
	unit := newFakeUnit().changed(first, "Code").changed(second, "Code")
	batch := f.propagator.NewBatch(unit)

	require.NoError(t, batch.ProcessEntity(context.Background(), first, false))
	require.NoError(t, batch.ProcessEntity(context.Background(), second, false))

	assert.Len(t, unit.persisted, 1)
}

func TestProcessEntity_SeparateBatchesLoadAgain(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "shop.Order").Return(ordersMapping, nil).Times(2)
	f.states.EXPECT().FindByMappingID(gomock.Any(), ordersMapping.ID).
		Return(models.SyncState{}, store.ErrSyncStateNotFound).Times(2)

	o := &order{ID: 10}
	for range 2 {
		unit := newFakeUnit().changed(o, "Code")
		require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))
		assert.Len(t, unit.persisted, 1)
	}
}

func TestProcessEntity_MissingMappingStillStampsAndCascades(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "shop.Order").Return(models.SyncMapping{}, store.ErrSyncMappingNotFound)
	f.expectMapping(customersMapping)

	c := &customer{ID: 1}
	o := &order{ID: 10, Customer: c}
	unit := newFakeUnit().changed(o, "Code").manage(c)

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Equal(t, fixedNow.Unix(), o.LastTimestamp)
	assert.Equal(t, fixedNow.Unix(), c.LastTimestamp)

	states := persistedStates(unit)
	assert.Len(t, states, 1)
	assert.Contains(t, states, "customers")
}

// ── Cascade ─────────────────────────────────────────────────────────────────

func TestProcessEntity_CascadesToAncestors(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(linesMapping)
	f.expectMapping(ordersMapping)
	f.expectMapping(customersMapping)

	c := &customer{ID: 1}
	o := &order{ID: 10, Customer: c}
	l := &line{ID: 100, Order: o}
	// the parents carry no change of their own
	unit := newFakeUnit().changed(l, "Qty").manage(o, c)

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), l, false))

	assert.Equal(t, fixedNow.Unix(), o.LastTimestamp)
	assert.Equal(t, fixedNow.Unix(), c.LastTimestamp)

	states := persistedStates(unit)
	require.Len(t, states, 3)
	for _, name := range []string{"lines", "orders", "customers"} {
		assert.Equal(t, fixedNow.Unix(), states[name].Timestamp, name)
	}
	assert.Contains(t, unit.recomputed, any(o))
	assert.Contains(t, unit.recomputed, any(c))
}

func TestProcessEntity_DeletingChildStampsParent(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(ordersMapping)
	f.expectMapping(customersMapping)

	c := &customer{ID: 1}
	o := &order{ID: 10, Customer: c}
	// removed objects have no change set
	unit := newFakeUnit().manage(o, c)

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, true))

	assert.Zero(t, o.LastTimestamp, "a deleted object is not stamped itself")
	assert.Equal(t, fixedNow.Unix(), c.LastTimestamp, "its parent is stamped as changed")

	states := persistedStates(unit)
	assert.Equal(t, fixedNow.Unix(), states["orders"].Timestamp)
	assert.Equal(t, fixedNow.Unix(), states["customers"].Timestamp)
	assert.NotContains(t, unit.recomputed, any(o))
}

func TestProcessEntity_IgnoredRelationIsNotFollowed(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(ordersMapping)

	reviewer := &customer{ID: 2}
	o := &order{ID: 10, Reviewer: reviewer}
	unit := newFakeUnit().changed(o, "Code").manage(reviewer)

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Equal(t, fixedNow.Unix(), o.LastTimestamp)
	assert.Zero(t, reviewer.LastTimestamp)
}

func TestProcessEntity_ParentOfDisabledClassIsSkipped(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(linesMapping)

	l := &line{ID: 100, Tag: &tag{ID: 5}}
	unit := newFakeUnit().changed(l, "Qty")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), l, false))

	assert.Len(t, unit.persisted, 1)
}

func TestProcessEntity_CycleTerminates(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "graph.Node").Return(nodesMapping, nil).Times(2)
	f.states.EXPECT().FindByMappingID(gomock.Any(), nodesMapping.ID).
		Return(models.SyncState{}, store.ErrSyncStateNotFound).Times(1)

	a, b := &node{ID: 1}, &node{ID: 2}
	a.Next, b.Next = b, a
	unit := newFakeUnit().changed(a, "Name").manage(b)

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), a, false))

	assert.Equal(t, fixedNow.Unix(), a.LastTimestamp)
	assert.Equal(t, fixedNow.Unix(), b.LastTimestamp)
}

func TestProcessEntity_SelfReferenceTerminates(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "graph.Node").Return(nodesMapping, nil).Times(1)
	f.states.EXPECT().FindByMappingID(gomock.Any(), nodesMapping.ID).
		Return(models.SyncState{}, store.ErrSyncStateNotFound).Times(1)

	a := &node{ID: 1}
	a.Next = a
	unit := newFakeUnit().changed(a, "Name")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), a, false))
}

func TestProcessEntity_ResolvesLazyParent(t *testing.T) {
	c := &customer{ID: 1}
	registry := metadata.NewRegistry(
		metadata.TypeDescriptor{Class: "shop.Customer", SyncEnabled: true},
		metadata.TypeDescriptor{
			Class:       "shop.Order",
			SyncEnabled: true,
			Relations: []metadata.Relation{{
				Property: "Customer",
				Parent:   func(any) (any, error) { return &lazyRef{target: c}, nil },
			}},
		},
	)
	f := newPropagatorFixture(t, registry)
	f.expectMapping(ordersMapping)
	f.expectMapping(customersMapping)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code").manage(c)

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false))

	assert.Equal(t, fixedNow.Unix(), c.LastTimestamp)
	assert.Contains(t, unit.recomputed, any(c))
}

func TestProcessEntity_ResolvesLazyTopLevelEntity(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(ordersMapping)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code")

	require.NoError(t, f.propagator.NewBatch(unit).ProcessEntity(context.Background(), &lazyRef{target: o}, false))

	assert.Equal(t, fixedNow.Unix(), o.LastTimestamp)
}

// ── Failures ────────────────────────────────────────────────────────────────

func TestProcessEntity_MappingLookupError(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "shop.Order").Return(models.SyncMapping{}, errStorageDown)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code")

	err := f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false)
	require.ErrorIs(t, err, ErrStampingSyncState)
	require.ErrorIs(t, err, errStorageDown)
}

func TestProcessEntity_StateLookupError(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.mappings.EXPECT().FindByClass(gomock.Any(), "shop.Order").Return(ordersMapping, nil)
	f.states.EXPECT().FindByMappingID(gomock.Any(), ordersMapping.ID).Return(models.SyncState{}, errStorageDown)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code")

	err := f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false)
	require.ErrorIs(t, err, ErrStampingSyncState)
	require.ErrorIs(t, err, errStorageDown)
	assert.Empty(t, unit.persisted)
}

func TestProcessEntity_RecomputeError(t *testing.T) {
	f := newPropagatorFixture(t, shopRegistry())
	f.expectMapping(ordersMapping)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code")
	unit.recomputeErr = errStorageDown

	err := f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false)
	require.ErrorIs(t, err, ErrRecomputingChangeSet)
}

func TestProcessEntity_ParentAccessorError(t *testing.T) {
	registry := metadata.NewRegistry(metadata.TypeDescriptor{
		Class:       "shop.Order",
		SyncEnabled: true,
		Relations: []metadata.Relation{{
			Property: "Customer",
			Parent:   func(any) (any, error) { return nil, errStorageDown },
		}},
	})
	f := newPropagatorFixture(t, registry)
	f.expectMapping(ordersMapping)

	o := &order{ID: 10}
	unit := newFakeUnit().changed(o, "Code")

	err := f.propagator.NewBatch(unit).ProcessEntity(context.Background(), o, false)
	require.ErrorIs(t, err, ErrParentAccessor)
	require.ErrorIs(t, err, errStorageDown)
}
