package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// Quote is the normalized price shape returned by every provider. It is never
// persisted; a fresh resolution produces fresh quotes.
type Quote struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// Valid reports whether the quote can be used. A zero or negative price is
// never a valid quote, even when the page or API returned it explicitly.
func (q Quote) Valid() bool {
	return q.Price.IsPositive()
}

// PriceProvider resolves prices for a batch of symbols. Implementations never
// return an error: any internal failure degrades to the symbol being omitted
// from the result. The result may be shorter than the input and its ordering
// is not guaranteed.
type PriceProvider interface {
	FetchAssetPrices(ctx context.Context, symbols []string, currency string) []Quote
	ProviderName() string
	IsAvailable() bool
}
