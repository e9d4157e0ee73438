package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/keyword-bid-sync/infrastructure/database/postgres"
	"github.com/vfg2006/keyword-bid-sync/internal/domain"
	"github.com/vfg2006/keyword-bid-sync/pkg/utils"
)

const adGroupMappingsTable = "ad_group_mappings"

var adGroupMappingColumns = []string{
	"id",
	"source_ad_group_id",
	"destination_ad_group_id",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=ad_group_mapping.go -destination=mocks/mock_ad_group_mapping.go -package=mocks

type AdGroupMappingRepository interface {
	ListMappings(ctx context.Context) ([]domain.AdGroupMapping, error)
	GetMapping(ctx context.Context, id string) (*domain.AdGroupMapping, error)
	SaveOrUpdate(ctx context.Context, mapping *domain.AdGroupMapping) error
	DeleteMapping(ctx context.Context, id string) error
}

type adGroupMappingRepository struct {
	conn postgres.Queryer
}

func NewAdGroupMappingRepository(conn postgres.Queryer) AdGroupMappingRepository {
	return &adGroupMappingRepository{
		conn: conn,
	}
}

func (r *adGroupMappingRepository) ListMappings(ctx context.Context) ([]domain.AdGroupMapping, error) {
	sqlQuery, args, err := squirrel.
		Select(adGroupMappingColumns...).
		From(adGroupMappingsTable).
		OrderBy("destination_ad_group_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	mappings := make([]domain.AdGroupMapping, 0)
	for rows.Next() {
		var mapping domain.AdGroupMapping
		if err := rows.Scan(
			&mapping.ID,
			&mapping.SourceAdGroupID,
			&mapping.DestinationAdGroupID,
			&mapping.CreatedAt,
			&mapping.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler mapeamento: %w", err)
		}
		mappings = append(mappings, mapping)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar mapeamentos: %w", err)
	}

	return mappings, nil
}

func (r *adGroupMappingRepository) GetMapping(ctx context.Context, id string) (*domain.AdGroupMapping, error) {
	sqlQuery, args, err := squirrel.
		Select(adGroupMappingColumns...).
		From(adGroupMappingsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	mapping := &domain.AdGroupMapping{}
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&mapping.ID,
		&mapping.SourceAdGroupID,
		&mapping.DestinationAdGroupID,
		&mapping.CreatedAt,
		&mapping.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return mapping, nil
}

// SaveOrUpdate grava o mapeamento; um grupo de destino só pode apontar para uma origem
func (r *adGroupMappingRepository) SaveOrUpdate(ctx context.Context, mapping *domain.AdGroupMapping) error {
	if mapping.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id: %w", err)
		}
		mapping.ID = id
	}

	now := time.Now()
	sqlQuery, args, err := upsertMappingQuery(mapping, now).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&mapping.ID, &mapping.CreatedAt, &mapping.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

func upsertMappingQuery(mapping *domain.AdGroupMapping, now time.Time) squirrel.InsertBuilder {
	return squirrel.StatementBuilder.
		Insert(adGroupMappingsTable).
		Columns(adGroupMappingColumns...).
		Values(mapping.ID, mapping.SourceAdGroupID, mapping.DestinationAdGroupID, now, now).
		Suffix(`
			ON CONFLICT (destination_ad_group_id) DO UPDATE SET
				source_ad_group_id = EXCLUDED.source_ad_group_id,
				updated_at = EXCLUDED.updated_at
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *adGroupMappingRepository) DeleteMapping(ctx context.Context, id string) error {
	sqlQuery, args, err := squirrel.
		Delete(adGroupMappingsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
