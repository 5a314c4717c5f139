package controllers

import (
	"context"
	"server/src/clients/ynab"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/services"
	"server/src/utils"
)

type YNABControllerI interface {
	GetAccounts(ctx context.Context, token string) ([]*schemas.YNABAccountResponse, error)
	TriggerSync(ctx context.Context) (*schemas.SyncSummary, error)
}

type YNABController struct {
	ynabClient   ynab.YNABServiceClientI
	settingsRepo repositories.UserSettingsRepository
	syncService  services.SyncServiceI
}

func NewYNABController(ynabClient ynab.YNABServiceClientI, settingsRepo repositories.UserSettingsRepository, syncService services.SyncServiceI) *YNABController {
	return &YNABController{
		ynabClient:   ynabClient,
		settingsRepo: settingsRepo,
		syncService:  syncService,
	}
}

// GetAccounts lists the accounts of the token's budget with balances converted
// from milliunits. An empty token falls back to the stored settings token.
func (c *YNABController) GetAccounts(ctx context.Context, token string) ([]*schemas.YNABAccountResponse, error) {
	if token == "" {
		settings, err := c.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		if settings == nil {
			return nil, utils.BadRequest("token is required")
		}
		token = settings.YNABAPIToken
	}

	budgetsResponse, err := c.ynabClient.GetBudgets(ctx, token)
	if err != nil {
		return nil, err
	}
	budget := budgetsResponse.Data.DefaultBudget
	if budget == nil {
		if len(budgetsResponse.Data.Budgets) == 0 {
			return nil, utils.BadRequest("no YNAB budget found for the given token")
		}
		budget = &budgetsResponse.Data.Budgets[0]
	}

	accounts, err := c.ynabClient.GetAccounts(ctx, token, budget.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*schemas.YNABAccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, &schemas.YNABAccountResponse{
			ID:       account.ID,
			Name:     account.Name,
			Type:     account.Type,
			Balance:  ynab.MilliunitsToAmount(account.Balance),
			Currency: budget.CurrencyFormat.ISOCode,
		})
	}
	return responses, nil
}

func (c *YNABController) TriggerSync(ctx context.Context) (*schemas.SyncSummary, error) {
	return c.syncService.SyncPortfolio(ctx)
}
