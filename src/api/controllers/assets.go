package controllers

import (
	"context"
	"errors"
	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type AssetsControllerI interface {
	GetAllAssets(ctx context.Context) ([]*schemas.AssetResponse, error)
	GetAssetByID(ctx context.Context, id int) (*schemas.AssetResponse, error)
	CreateAsset(ctx context.Context, req *schemas.CreateAssetRequest) (*schemas.AssetResponse, error)
	UpdateAsset(ctx context.Context, req *schemas.UpdateAssetRequest) (*schemas.AssetResponse, error)
	DeleteAsset(ctx context.Context, id int) error
}

type AssetsController struct {
	assetRepo repositories.AssetRepository
}

func NewAssetsController(assetRepo repositories.AssetRepository) *AssetsController {
	return &AssetsController{assetRepo: assetRepo}
}

func (c *AssetsController) GetAllAssets(ctx context.Context) ([]*schemas.AssetResponse, error) {
	assets, err := c.assetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*schemas.AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, assetResponse(&assets[i]))
	}
	return responses, nil
}

func (c *AssetsController) GetAssetByID(ctx context.Context, id int) (*schemas.AssetResponse, error) {
	asset, err := c.assetRepo.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("asset not found")
	}
	if err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

func (c *AssetsController) CreateAsset(ctx context.Context, req *schemas.CreateAssetRequest) (*schemas.AssetResponse, error) {
	if err := validateAsset(req.Symbol, req.Amount, req.YNABAccountID); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		Symbol:        req.Symbol,
		Amount:        req.Amount,
		YNABAccountID: req.YNABAccountID,
	}
	if err := c.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

func (c *AssetsController) UpdateAsset(ctx context.Context, req *schemas.UpdateAssetRequest) (*schemas.AssetResponse, error) {
	asset, err := c.assetRepo.GetByID(ctx, req.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("asset not found")
	}
	if err != nil {
		return nil, err
	}

	if req.Symbol != nil {
		asset.Symbol = *req.Symbol
	}
	if req.Amount != nil {
		asset.Amount = *req.Amount
	}
	if req.YNABAccountID != nil {
		asset.YNABAccountID = *req.YNABAccountID
	}
	if err := validateAsset(asset.Symbol, asset.Amount, asset.YNABAccountID); err != nil {
		return nil, err
	}

	if err := c.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return assetResponse(asset), nil
}

func (c *AssetsController) DeleteAsset(ctx context.Context, id int) error {
	deleted, err := c.assetRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NotFound("asset not found")
	}
	return nil
}

func validateAsset(symbol string, amount decimal.Decimal, ynabAccountID string) error {
	if symbol == "" {
		return utils.BadRequest("symbol must not be empty")
	}
	if !amount.IsPositive() {
		return utils.BadRequest("amount must be a positive number")
	}
	if _, err := uuid.Parse(ynabAccountID); err != nil {
		return utils.BadRequest("ynabAccountId must be a valid UUID")
	}
	return nil
}

func assetResponse(asset *models.Asset) *schemas.AssetResponse {
	return &schemas.AssetResponse{
		ID:            asset.ID,
		Symbol:        asset.Symbol,
		Amount:        asset.Amount,
		YNABAccountID: asset.YNABAccountID,
		CreatedAt:     asset.CreatedAt,
		UpdatedAt:     asset.UpdatedAt,
	}
}
