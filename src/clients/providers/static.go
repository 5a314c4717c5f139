package providers

import (
	"context"
	"server/src/config"

	"github.com/shopspring/decimal"
)

// StaticProvider serves prices from a configured symbol->price table. It backs
// development setups and acts as the terminal fallback in the dispatch order.
type StaticProvider struct {
	Currency string
	Prices   map[string]decimal.Decimal
}

func NewStaticProvider(cfg *config.Config) *StaticProvider {
	prices := make(map[string]decimal.Decimal, len(cfg.Providers.Static.Prices))
	for symbol, price := range cfg.Providers.Static.Prices {
		prices[symbol] = decimal.NewFromFloat(price)
	}
	return &StaticProvider{
		Currency: cfg.Providers.Static.Currency,
		Prices:   prices,
	}
}

func (p *StaticProvider) ProviderName() string {
	return "static"
}

func (p *StaticProvider) IsAvailable() bool {
	return len(p.Prices) > 0
}

func (p *StaticProvider) FetchAssetPrices(_ context.Context, symbols []string, currency string) []Quote {
	quoteCurrency := p.Currency
	if quoteCurrency == "" {
		quoteCurrency = currency
	}

	quotes := make([]Quote, 0, len(symbols))
	for _, symbol := range symbols {
		price, ok := p.Prices[symbol]
		if !ok || !price.IsPositive() {
			continue
		}
		quotes = append(quotes, Quote{Symbol: symbol, Price: price, Currency: quoteCurrency})
	}
	return quotes
}
