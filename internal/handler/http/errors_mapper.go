package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sync-keeper/internal/service"
	"github.com/MKhiriev/go-sync-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidTimestamp:   http.StatusBadRequest,
	ErrEmptyPathParameter: http.StatusBadRequest,

	service.ErrMappingNotFound: http.StatusNotFound,

	store.ErrSyncMappingNotFound:    http.StatusNotFound,
	store.ErrSyncFailedItemNotFound: http.StatusNotFound,
	store.ErrTransientFailure:       http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError checks the transient marker first; a retryable failure
// also wraps the low-level query error.
func statusFromError(err error) int {
	if errors.Is(err, store.ErrTransientFailure) {
		return http.StatusServiceUnavailable
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
