package services

import (
	"context"
	"server/src/clients/fx"
	"server/src/clients/providers"
	"server/src/utils"

	"github.com/shopspring/decimal"
)

type MarketDataServiceI interface {
	// GetPrices resolves a best-effort price per symbol. The second return
	// value lists the symbols no provider could resolve; both slices together
	// cover the (deduplicated) input.
	GetPrices(ctx context.Context, symbols []string, currency string) ([]providers.Quote, []string)
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// MarketDataService dispatches price lookups across an ordered provider list:
// the first valid quote per symbol wins, later providers are only consulted
// for symbols the earlier ones missed. There is no cross-provider
// reconciliation and no caching; every call re-fetches.
type MarketDataService struct {
	providers []providers.PriceProvider
	fxClient  fx.FXServiceClientI
}

func NewMarketDataService(providerList []providers.PriceProvider, fxClient fx.FXServiceClientI) *MarketDataService {
	return &MarketDataService{
		providers: providerList,
		fxClient:  fxClient,
	}
}

func (s *MarketDataService) GetPrices(ctx context.Context, symbols []string, currency string) ([]providers.Quote, []string) {
	logger := utils.LoggerFromContext(ctx)

	pending := dedupe(symbols)
	resolved := make(map[string]providers.Quote, len(pending))

	for _, provider := range s.providers {
		if len(pending) == 0 {
			break
		}
		if !provider.IsAvailable() {
			logger.WithField("provider", provider.ProviderName()).Debug("skipping unavailable provider")
			continue
		}

		requested := make(map[string]bool, len(pending))
		for _, symbol := range pending {
			requested[symbol] = true
		}

		for _, quote := range provider.FetchAssetPrices(ctx, pending, currency) {
			if !requested[quote.Symbol] {
				continue
			}
			if !quote.Valid() {
				// An explicit zero/negative price is distinct from a missing
				// symbol, but neither makes it into the output.
				logger.WithFields(map[string]interface{}{
					"provider": provider.ProviderName(),
					"symbol":   quote.Symbol,
				}).Warn("provider returned non-positive price")
				continue
			}
			if _, done := resolved[quote.Symbol]; done {
				continue
			}
			resolved[quote.Symbol] = quote
		}

		remaining := pending[:0]
		for _, symbol := range pending {
			if _, done := resolved[symbol]; !done {
				remaining = append(remaining, symbol)
			}
		}
		pending = remaining
	}

	quotes := make([]providers.Quote, 0, len(resolved))
	for _, symbol := range dedupe(symbols) {
		if quote, ok := resolved[symbol]; ok {
			quotes = append(quotes, quote)
		}
	}
	if len(pending) > 0 {
		logger.WithField("symbols", pending).Info("symbols left unresolved by all providers")
	}
	return quotes, pending
}

func (s *MarketDataService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, err := s.fxClient.GetRate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(rate), nil
}

func dedupe(symbols []string) []string {
	seen := make(map[string]bool, len(symbols))
	unique := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		unique = append(unique, symbol)
	}
	return unique
}
