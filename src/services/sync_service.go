package services

import (
	"context"
	"server/src/clients/providers"
	"server/src/clients/ynab"
	"server/src/models"
	"server/src/repositories"
	"server/src/schemas"
	"server/src/utils"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SyncServiceI interface {
	SyncPortfolio(ctx context.Context) (*schemas.SyncSummary, error)
}

// SyncService pushes the current portfolio value into the configured YNAB
// budget. One run is a sequential chain of calls: settings, assets, prices,
// accounts, then one balance-adjusting transaction per linked account.
// Overlapping runs are not mutually excluded.
type SyncService struct {
	assetRepo    repositories.AssetRepository
	settingsRepo repositories.UserSettingsRepository
	syncLogRepo  repositories.SyncLogRepository
	marketData   MarketDataServiceI
	ynabClient   ynab.YNABServiceClientI

	payee string
	memo  string
}

func NewSyncService(
	assetRepo repositories.AssetRepository,
	settingsRepo repositories.UserSettingsRepository,
	syncLogRepo repositories.SyncLogRepository,
	marketData MarketDataServiceI,
	ynabClient ynab.YNABServiceClientI,
	payee, memo string,
) *SyncService {
	return &SyncService{
		assetRepo:    assetRepo,
		settingsRepo: settingsRepo,
		syncLogRepo:  syncLogRepo,
		marketData:   marketData,
		ynabClient:   ynabClient,
		payee:        payee,
		memo:         memo,
	}
}

func (s *SyncService) SyncPortfolio(ctx context.Context) (*schemas.SyncSummary, error) {
	logger := utils.LoggerFromContext(ctx)

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, utils.BadRequest("user settings not configured")
	}
	token := settings.YNABAPIToken

	budget, err := s.resolveBudget(ctx, token, settings.YNABBudgetID)
	if err != nil {
		return nil, err
	}
	currency := budget.CurrencyFormat.ISOCode
	if currency == "" {
		currency = "USD"
	}

	assets, err := s.assetRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	summary := &schemas.SyncSummary{AssetCount: len(assets), UnresolvedSymbols: []string{}}
	if len(assets) == 0 {
		logger.Info("sync: no assets to push")
		return summary, nil
	}

	accounts, err := s.ynabClient.GetAccounts(ctx, token, budget.ID)
	if err != nil {
		return nil, err
	}
	accountsByID := make(map[string]ynab.Account, len(accounts))
	for _, account := range accounts {
		accountsByID[account.ID] = account
	}

	symbols := make([]string, 0, len(assets))
	for _, asset := range assets {
		symbols = append(symbols, asset.Symbol)
	}
	quotes, missing := s.marketData.GetPrices(ctx, symbols, currency)
	summary.UnresolvedSymbols = missing

	priceBySymbol := make(map[string]providers.Quote, len(quotes))
	for _, quote := range quotes {
		priceBySymbol[quote.Symbol] = quote
	}

	// Per-account totals in the budget currency. Assets without a resolved
	// price contribute nothing; the run keeps going.
	totals := make(map[string]decimal.Decimal)
	var accountOrder []string
	for _, asset := range assets {
		quote, ok := priceBySymbol[asset.Symbol]
		if !ok {
			logger.WithField("symbol", asset.Symbol).Warn("sync: skipping asset with unresolved price")
			continue
		}
		price := quote.Price
		if quote.Currency != currency {
			price, err = s.marketData.Convert(ctx, quote.Price, quote.Currency, currency)
			if err != nil {
				logger.WithField("symbol", asset.Symbol).WithError(err).Warn("sync: skipping asset, currency conversion failed")
				continue
			}
		}
		if _, seen := totals[asset.YNABAccountID]; !seen {
			accountOrder = append(accountOrder, asset.YNABAccountID)
		}
		totals[asset.YNABAccountID] = totals[asset.YNABAccountID].Add(asset.Amount.Mul(price))
	}

	today := time.Now().Format(utils.ShortDashDateLayout)
	for _, accountID := range accountOrder {
		account, ok := accountsByID[accountID]
		if !ok {
			logger.WithField("accountId", accountID).Warn("sync: linked account not found in budget")
			continue
		}

		// The push sets the account balance to the portfolio total: the
		// transaction amount is the delta against the current balance.
		delta := totals[accountID].Sub(ynab.MilliunitsToAmount(account.Balance))
		if delta.IsZero() {
			continue
		}

		transaction := &ynab.Transaction{
			AccountID: accountID,
			Date:      today,
			Amount:    ynab.AmountToMilliunits(delta),
			PayeeName: s.payee,
			Memo:      s.memo,
			Cleared:   "cleared",
			Approved:  true,
		}
		if err := s.ynabClient.CreateTransaction(ctx, token, budget.ID, transaction); err != nil {
			return nil, err
		}
		summary.AccountsSynced++
	}

	syncLog := &models.SyncLog{
		AccountCount:      summary.AccountsSynced,
		AssetCount:        summary.AssetCount,
		UnresolvedSymbols: strings.Join(missing, ","),
		SyncDate:          time.Now(),
	}
	if err := s.syncLogRepo.Create(ctx, syncLog); err != nil {
		logger.WithError(err).Warn("sync: could not record sync log")
	}

	logger.WithFields(map[string]interface{}{
		"accounts":   summary.AccountsSynced,
		"assets":     summary.AssetCount,
		"unresolved": missing,
	}).Info("sync: run completed")
	return summary, nil
}

// resolveBudget prefers the configured budget id, then YNAB's default budget,
// then the first budget on the token. No budget at all fails the run.
func (s *SyncService) resolveBudget(ctx context.Context, token string, budgetID *string) (*ynab.Budget, error) {
	budgetsResponse, err := s.ynabClient.GetBudgets(ctx, token)
	if err != nil {
		return nil, err
	}

	if budgetID != nil && *budgetID != "" {
		for _, budget := range budgetsResponse.Data.Budgets {
			if budget.ID == *budgetID {
				return &budget, nil
			}
		}
		return nil, utils.BadRequest("configured YNAB budget not found")
	}
	if budgetsResponse.Data.DefaultBudget != nil {
		return budgetsResponse.Data.DefaultBudget, nil
	}
	if len(budgetsResponse.Data.Budgets) > 0 {
		return &budgetsResponse.Data.Budgets[0], nil
	}
	return nil, utils.BadRequest("no YNAB budget found for the configured token")
}
