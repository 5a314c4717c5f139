package repositories

import (
	"context"
	"errors"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SyncLogRepository interface {
	// GetLatest returns the most recent sync log, or nil when no run happened yet.
	GetLatest(ctx context.Context) (*models.SyncLog, error)
	Create(ctx context.Context, log *models.SyncLog) error
}

type syncLogRepo struct {
	db *pgxpool.Pool
}

func NewSyncLogRepository(db *pgxpool.Pool) SyncLogRepository {
	return &syncLogRepo{db: db}
}

func (r *syncLogRepo) GetLatest(ctx context.Context) (*models.SyncLog, error) {
	var log models.SyncLog
	err := r.db.QueryRow(ctx,
		`SELECT id, account_count, asset_count, unresolved_symbols, sync_date, created_at
		 FROM sync_logs ORDER BY sync_date DESC LIMIT 1`).
		Scan(&log.ID, &log.AccountCount, &log.AssetCount, &log.UnresolvedSymbols, &log.SyncDate, &log.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *syncLogRepo) Create(ctx context.Context, log *models.SyncLog) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO sync_logs (account_count, asset_count, unresolved_symbols, sync_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		log.AccountCount, log.AssetCount, log.UnresolvedSymbols, log.SyncDate,
	).Scan(&log.ID, &log.CreatedAt)
}
