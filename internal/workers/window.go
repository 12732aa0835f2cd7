package workers

// window tracks how far a mapping has been reported. Items are fetched from
// the last seen timestamp inclusive, so items that share that second with
// already reported ones are still picked up; edge holds the keys already
// reported at that second.
type window struct {
	from int64
	edge map[string]struct{}
}

func newWindow() *window {
	return &window{edge: make(map[string]struct{})}
}

// seen reports whether key was already reported at timestamp.
func (w *window) seen(key string, timestamp int64) bool {
	if timestamp != w.from {
		return false
	}
	_, ok := w.edge[key]
	return ok
}

// advance records key as reported at timestamp.
func (w *window) advance(key string, timestamp int64) {
	switch {
	case timestamp > w.from:
		w.from = timestamp
		w.edge = map[string]struct{}{key: {}}
	case timestamp == w.from:
		w.edge[key] = struct{}{}
	}
}
