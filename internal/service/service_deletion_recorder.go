package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/metadata"
	"github.com/MKhiriev/go-sync-keeper/internal/metrics"
	"github.com/MKhiriev/go-sync-keeper/internal/uow"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// DeletionLedger collects the (class, identifier) pairs of the objects
// removed by one commit.
type DeletionLedger struct {
	entries []models.DeletedItem
}

// RecordDeletion appends one entry.
func (l *DeletionLedger) RecordDeletion(class, identifier string) {
	l.entries = append(l.entries, models.DeletedItem{Class: class, Identifier: identifier})
}

// Entries returns the recorded entries in recording order.
func (l *DeletionLedger) Entries() []models.DeletedItem {
	return append([]models.DeletedItem(nil), l.entries...)
}

func (l *DeletionLedger) Len() int {
	return len(l.entries)
}

// DeletionRecorder reads the identifier of removed objects through the
// configured accessor name and records it into a ledger.
type DeletionRecorder struct {
	resolver AccessorResolver
	getter   string
}

func NewDeletionRecorder(resolver AccessorResolver, cfg config.Deletes) *DeletionRecorder {
	getter := cfg.IdentifierGetter
	if getter == "" {
		getter = config.DefaultIdentifierGetter
	}

	return &DeletionRecorder{
		resolver: resolver,
		getter:   getter,
	}
}

// Record adds entity to ledger under its real class. Values that are not
// objects are skipped.
func (r *DeletionRecorder) Record(ctx context.Context, unit uow.UnitOfWork, ledger *DeletionLedger, entity any) error {
	if !metadata.IsEntity(entity) {
		return nil
	}

	object := unit.Resolve(entity)
	class := unit.RealClassOf(object)

	get, err := r.resolver.Accessor(class, object, r.getter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIdentifierAccessor, err)
	}

	identifier, err := get(object)
	if err != nil {
		return fmt.Errorf("%w: %s.%s: %w", ErrIdentifierAccessor, class, r.getter, err)
	}

	ledger.RecordDeletion(class, fmt.Sprint(identifier))
	metrics.DeletionsRecorded.WithLabelValues(class).Inc()

	logger.FromContext(ctx).Debug().
		Str("func", "*DeletionRecorder.Record").
		Str("class", class).
		Any("identifier", identifier).
		Msg("deletion recorded")

	return nil
}
