// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sync-keeper/models"
)

var (
	syncMappingColumns = []string{"m.id", "m.name", "m.class"}

	syncStateColumns = []string{"s.id", "s.timestamp", "m.id", "m.name", "m.class"}

	syncFailedItemColumns = []string{"f.id", "f.uuid", "f.timestamp", "m.id", "m.name", "m.class"}

	syncDeleteStateColumns = []string{"d.id", "d.class", "d.identifier", "d.timestamp"}
)

// uniqueLookupLimit fetches one row more than a unique lookup may return so
// duplicates can be detected.
const uniqueLookupLimit = 2

func buildFindSyncMappingQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	return b.Select(syncMappingColumns...).
		From("sync_mappings m").
		Where(sq.Eq{"m." + column: value}).
		Limit(1).
		ToSql()
}

func buildFindSyncStateQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(syncStateColumns...).
		From("sync_states s").
		Join("sync_mappings m ON m.id = s.mapping_id").
		Where(where).
		Limit(1).
		ToSql()
}

func buildFindFailedItemsFromTimestampQuery(b sq.StatementBuilderType, mappingName string, timestamp int64) (string, []any, error) {
	return b.Select(syncFailedItemColumns...).
		From("sync_failed_item_states f").
		Join("sync_mappings m ON m.id = f.mapping_id").
		Where(sq.Eq{"m.name": mappingName}).
		Where(sq.GtOrEq{"f.timestamp": timestamp}).
		OrderBy("f.timestamp ASC", "f.id ASC").
		ToSql()
}

func buildFindFailedItemByUUIDQuery(b sq.StatementBuilderType, uuid string) (string, []any, error) {
	return b.Select(syncFailedItemColumns...).
		From("sync_failed_item_states f").
		Join("sync_mappings m ON m.id = f.mapping_id").
		Where(sq.Eq{"f.uuid": uuid}).
		Limit(uniqueLookupLimit).
		ToSql()
}

func buildFindDeleteStatesFromTimestampQuery(b sq.StatementBuilderType, mappingName string, timestamp int64) (string, []any, error) {
	return b.Select(syncDeleteStateColumns...).
		From("sync_delete_states d").
		Join("sync_mappings m ON m.class = d.class").
		Where(sq.Eq{"m.name": mappingName}).
		Where(sq.GtOrEq{"d.timestamp": timestamp}).
		OrderBy("d.timestamp ASC", "d.id ASC").
		ToSql()
}

// buildUpsertSyncStateQuery keeps one row per mapping: a second state for
// the same mapping overwrites the timestamp of the first.
func buildUpsertSyncStateQuery(b sq.StatementBuilderType, state models.SyncState) (string, []any, error) {
	return b.Insert("sync_states").
		Columns("mapping_id", "timestamp").
		Values(state.Mapping.ID, state.Timestamp).
		Suffix("ON CONFLICT (mapping_id) DO UPDATE SET timestamp = EXCLUDED.timestamp RETURNING id").
		ToSql()
}

func buildInsertSyncDeleteStateQuery(b sq.StatementBuilderType, entry models.SyncDeleteState) (string, []any, error) {
	return b.Insert("sync_delete_states").
		Columns("class", "identifier", "timestamp").
		Values(entry.Class, entry.Identifier, entry.Timestamp).
		Suffix("RETURNING id").
		ToSql()
}
