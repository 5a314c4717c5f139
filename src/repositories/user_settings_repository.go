package repositories

import (
	"context"
	"errors"

	"server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserSettingsRepository interface {
	// Get returns the current settings, or nil when none have been saved yet.
	Get(ctx context.Context) (*models.UserSettings, error)
	Save(ctx context.Context, settings *models.UserSettings) error
	Update(ctx context.Context, settings *models.UserSettings) error
}

type userSettingsRepo struct {
	db *pgxpool.Pool
}

func NewUserSettingsRepository(db *pgxpool.Pool) UserSettingsRepository {
	return &userSettingsRepo{db: db}
}

func (r *userSettingsRepo) Get(ctx context.Context) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := r.db.QueryRow(ctx,
		`SELECT id, ynab_api_token, sync_schedule, ynab_budget_id, created_at, updated_at
		 FROM user_settings ORDER BY id DESC LIMIT 1`).
		Scan(&settings.ID, &settings.YNABAPIToken, &settings.SyncSchedule, &settings.YNABBudgetID, &settings.CreatedAt, &settings.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save overwrites the singleton row; older rows are cleared first.
func (r *userSettingsRepo) Save(ctx context.Context, settings *models.UserSettings) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM user_settings`); err != nil {
		return err
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO user_settings (ynab_api_token, sync_schedule, ynab_budget_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		settings.YNABAPIToken, settings.SyncSchedule, settings.YNABBudgetID,
	).Scan(&settings.ID, &settings.CreatedAt, &settings.UpdatedAt)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *userSettingsRepo) Update(ctx context.Context, settings *models.UserSettings) error {
	return r.db.QueryRow(ctx,
		`UPDATE user_settings
		 SET ynab_api_token = $2, sync_schedule = $3, ynab_budget_id = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		settings.ID, settings.YNABAPIToken, settings.SyncSchedule, settings.YNABBudgetID,
	).Scan(&settings.UpdatedAt)
}
