package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/database/postgres"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
)

const syncRunsTable = "bid_sync_runs"

var syncRunColumns = []string{
	"id",
	"correlation_id",
	"source_account",
	"destination_account",
	"started_at",
	"completed_at",
	"source_records",
	"destination_records",
	"matched_pairs",
	"updated_bids",
	"failed_bids",
	"skipped_bids",
	"unmatched_source",
	"unmatched_destination",
	"error",
}

//go:generate mockgen -source=sync_run.go -destination=mocks/mock_sync_run.go -package=mocks

type SyncRunRepository interface {
	SaveRun(ctx context.Context, report *domain.SyncReport) error
	ListRuns(ctx context.Context, limit uint64) ([]domain.SyncReport, error)
}

type syncRunRepository struct {
	conn postgres.Queryer
}

func NewSyncRunRepository(conn postgres.Queryer) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) SaveRun(ctx context.Context, report *domain.SyncReport) error {
	sqlQuery, args, err := insertRunQuery(report).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func insertRunQuery(report *domain.SyncReport) squirrel.InsertBuilder {
	var runError sql.NullString
	if report.Error != "" {
		runError = sql.NullString{String: report.Error, Valid: true}
	}

	return squirrel.StatementBuilder.
		Insert(syncRunsTable).
		Columns(syncRunColumns...).
		Values(
			report.ID,
			report.CorrelationID,
			report.SourceAccount,
			report.DestinationAccount,
			report.StartedAt,
			report.CompletedAt,
			report.SourceRecords,
			report.DestinationRecords,
			report.MatchedPairs,
			report.UpdatedBids,
			report.FailedBids,
			report.SkippedBids,
			report.UnmatchedSource,
			report.UnmatchedDestination,
			runError,
		).
		PlaceholderFormat(squirrel.Dollar)
}

// ListRuns retorna as execuções mais recentes primeiro
func (r *syncRunRepository) ListRuns(ctx context.Context, limit uint64) ([]domain.SyncReport, error) {
	sqlQuery, args, err := listRunsQuery(limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	reports := make([]domain.SyncReport, 0)
	for rows.Next() {
		var (
			report      domain.SyncReport
			completedAt sql.NullTime
			runError    sql.NullString
		)

		if err := rows.Scan(
			&report.ID,
			&report.CorrelationID,
			&report.SourceAccount,
			&report.DestinationAccount,
			&report.StartedAt,
			&completedAt,
			&report.SourceRecords,
			&report.DestinationRecords,
			&report.MatchedPairs,
			&report.UpdatedBids,
			&report.FailedBids,
			&report.SkippedBids,
			&report.UnmatchedSource,
			&report.UnmatchedDestination,
			&runError,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler execução: %w", err)
		}

		if completedAt.Valid {
			report.CompletedAt = &completedAt.Time
		}
		report.Error = runError.String

		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar execuções: %w", err)
	}

	return reports, nil
}

func listRunsQuery(limit uint64) squirrel.SelectBuilder {
	return squirrel.
		Select(syncRunColumns...).
		From(syncRunsTable).
		OrderBy("started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)
}
