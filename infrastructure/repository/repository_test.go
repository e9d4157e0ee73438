package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

func TestUpsertMappingQuery(t *testing.T) {
	now := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	mapping := &domain.AdGroupMapping{ID: "abc123", SourceAdGroupID: 10, DestinationAdGroupID: 20}

	sqlQuery, args, err := upsertMappingQuery(mapping, now).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "INSERT INTO ad_group_mappings (id,source_ad_group_id,destination_ad_group_id,created_at,updated_at) VALUES ($1,$2,$3,$4,$5)")
	assert.Contains(t, sqlQuery, "ON CONFLICT (destination_ad_group_id) DO UPDATE SET")
	assert.Contains(t, sqlQuery, "RETURNING id, created_at, updated_at")
	assert.Equal(t, []interface{}{"abc123", int64(10), int64(20), now, now}, args)
}

func TestInsertRunQuery(t *testing.T) {
	startedAt := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)

	t.Run("execução concluída", func(t *testing.T) {
		completedAt := startedAt.Add(time.Minute)
		report := &domain.SyncReport{
			ID:            "run1",
			CorrelationID: "corr-1",
			StartedAt:     startedAt,
			CompletedAt:   &completedAt,
			UpdatedBids:   3,
			SkippedBids:   2,
		}

		sqlQuery, args, err := insertRunQuery(report).ToSql()

		require.NoError(t, err)
		assert.Contains(t, sqlQuery, "INSERT INTO bid_sync_runs")
		assert.Contains(t, sqlQuery, "skipped_bids")
		assert.Contains(t, sqlQuery, "$15")
		require.Len(t, args, 15)
		assert.Equal(t, "run1", args[0])
		assert.Equal(t, 3, args[9])
		assert.Equal(t, 2, args[11])
		assert.Equal(t, sql.NullString{}, args[14])
	})

	t.Run("execução abortada guarda o erro", func(t *testing.T) {
		report := &domain.SyncReport{ID: "run2", StartedAt: startedAt, Error: "fetch Conta 1: timeout"}

		_, args, err := insertRunQuery(report).ToSql()

		require.NoError(t, err)
		assert.Equal(t, sql.NullString{String: "fetch Conta 1: timeout", Valid: true}, args[14])
	})
}

func TestListRunsQuery(t *testing.T) {
	sqlQuery, _, err := listRunsQuery(20).ToSql()

	require.NoError(t, err)
	assert.Contains(t, sqlQuery, "FROM bid_sync_runs ORDER BY started_at DESC LIMIT 20")
}
