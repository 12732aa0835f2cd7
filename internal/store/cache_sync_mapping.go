package store

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/models"
)

// cachedSyncMappingRepository memoizes class lookups, which run once per
// processed entity during every flush. Misses are not cached: mappings are
// administered externally and may appear at any time.
type cachedSyncMappingRepository struct {
	next    SyncMappingRepository
	byClass *expirable.LRU[string, models.SyncMapping]
}

// NewCachedSyncMappingRepository wraps next with an expiring LRU of size
// entries.
func NewCachedSyncMappingRepository(next SyncMappingRepository, size int, ttl time.Duration) SyncMappingRepository {
	return &cachedSyncMappingRepository{
		next:    next,
		byClass: expirable.NewLRU[string, models.SyncMapping](size, nil, ttl),
	}
}

func (c *cachedSyncMappingRepository) FindByClass(ctx context.Context, class string) (models.SyncMapping, error) {
	if mapping, ok := c.byClass.Get(class); ok {
		logger.FromContext(ctx).Debug().
			Str("func", "*cachedSyncMappingRepository.FindByClass").
			Str("class", class).
			Msg("sync mapping cache hit")
		return mapping, nil
	}

	mapping, err := c.next.FindByClass(ctx, class)
	if err != nil {
		return models.SyncMapping{}, err
	}

	c.byClass.Add(class, mapping)
	return mapping, nil
}

func (c *cachedSyncMappingRepository) FindByName(ctx context.Context, name string) (models.SyncMapping, error) {
	return c.next.FindByName(ctx, name)
}
