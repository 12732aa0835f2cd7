package models

// SyncStateResponse is returned by GET /api/sync/states/{mapping}.
type SyncStateResponse struct {
	Mapping   string `json:"mapping"`
	Timestamp int64  `json:"timestamp"`
}

// FailedItemsResponse is returned by GET /api/sync/failed/{mapping}.
type FailedItemsResponse struct {
	Mapping string                `json:"mapping"`
	From    int64                 `json:"from"`
	Items   []SyncFailedItemState `json:"items"`
	Length  int                   `json:"length"`
}

// DeletionsResponse is returned by GET /api/sync/deletes/{mapping}.
type DeletionsResponse struct {
	Mapping string            `json:"mapping"`
	From    int64             `json:"from"`
	Items   []SyncDeleteState `json:"items"`
	Length  int               `json:"length"`
}
