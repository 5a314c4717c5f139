package repositories

import (
	"context"

	"server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepository interface {
	GetAll(ctx context.Context) ([]models.Asset, error)
	GetByID(ctx context.Context, id int) (*models.Asset, error)
	Create(ctx context.Context, asset *models.Asset) error
	Update(ctx context.Context, asset *models.Asset) error
	Delete(ctx context.Context, id int) (bool, error)
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) GetAll(ctx context.Context) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, symbol, amount, ynab_account_id, created_at, updated_at FROM assets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		if err := rows.Scan(&asset.ID, &asset.Symbol, &asset.Amount, &asset.YNABAccountID, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *assetRepo) GetByID(ctx context.Context, id int) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.QueryRow(ctx,
		`SELECT id, symbol, amount, ynab_account_id, created_at, updated_at FROM assets WHERE id = $1`, id).
		Scan(&asset.ID, &asset.Symbol, &asset.Amount, &asset.YNABAccountID, &asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO assets (symbol, amount, ynab_account_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		asset.Symbol, asset.Amount, asset.YNABAccountID,
	).Scan(&asset.ID, &asset.CreatedAt, &asset.UpdatedAt)
}

func (r *assetRepo) Update(ctx context.Context, asset *models.Asset) error {
	return r.db.QueryRow(ctx,
		`UPDATE assets
		 SET symbol = $2, amount = $3, ynab_account_id = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		asset.ID, asset.Symbol, asset.Amount, asset.YNABAccountID,
	).Scan(&asset.UpdatedAt)
}

func (r *assetRepo) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
