package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// fromTimestamp reads the optional "from" query parameter. Missing means 0.
func fromTimestamp(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("from")
	if raw == "" {
		return 0, nil
	}

	from, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || from < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	return from, nil
}

func pathParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyPathParameter, name)
	}
	return value, nil
}
