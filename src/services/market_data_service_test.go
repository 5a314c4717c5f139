package services_test

import (
	"context"
	"fmt"
	"server/src/clients/providers"
	"server/src/services"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves a fixed quote table and records what was asked of it.
type fakeProvider struct {
	name      string
	available bool
	quotes    map[string]providers.Quote
	calls     [][]string
}

func (p *fakeProvider) ProviderName() string { return p.name }
func (p *fakeProvider) IsAvailable() bool    { return p.available }

func (p *fakeProvider) FetchAssetPrices(_ context.Context, symbols []string, _ string) []providers.Quote {
	p.calls = append(p.calls, append([]string(nil), symbols...))
	var result []providers.Quote
	for _, symbol := range symbols {
		if quote, ok := p.quotes[symbol]; ok {
			result = append(result, quote)
		}
	}
	return result
}

type fakeFXClient struct {
	rates map[string]decimal.Decimal
}

func (c *fakeFXClient) GetRate(_ context.Context, from, to string) (decimal.Decimal, error) {
	rate, ok := c.rates[from+"/"+to]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rate from %s to %s", from, to)
	}
	return rate, nil
}

func quoteFor(symbol, price, currency string) providers.Quote {
	return providers.Quote{Symbol: symbol, Price: decimal.RequireFromString(price), Currency: currency}
}

func TestMarketDataServiceGetPrices(t *testing.T) {
	t.Run("first valid quote wins and later providers only see the rest", func(t *testing.T) {
		first := &fakeProvider{name: "first", available: true, quotes: map[string]providers.Quote{
			"AAA": quoteFor("AAA", "10", "USD"),
		}}
		second := &fakeProvider{name: "second", available: true, quotes: map[string]providers.Quote{
			"AAA": quoteFor("AAA", "99", "USD"),
			"BBB": quoteFor("BBB", "20", "USD"),
		}}
		service := services.NewMarketDataService([]providers.PriceProvider{first, second}, &fakeFXClient{})

		quotes, missing := service.GetPrices(context.Background(), []string{"AAA", "BBB"}, "USD")
		require.Len(t, quotes, 2)
		assert.Equal(t, "10", quotes[0].Price.String())
		assert.Equal(t, "20", quotes[1].Price.String())
		assert.Empty(t, missing)

		require.Len(t, second.calls, 1)
		assert.Equal(t, []string{"BBB"}, second.calls[0])
	})

	t.Run("unavailable providers are never called", func(t *testing.T) {
		down := &fakeProvider{name: "down", available: false, quotes: map[string]providers.Quote{
			"AAA": quoteFor("AAA", "1", "USD"),
		}}
		up := &fakeProvider{name: "up", available: true, quotes: map[string]providers.Quote{
			"AAA": quoteFor("AAA", "2", "USD"),
		}}
		service := services.NewMarketDataService([]providers.PriceProvider{down, up}, &fakeFXClient{})

		quotes, missing := service.GetPrices(context.Background(), []string{"AAA"}, "USD")
		require.Len(t, quotes, 1)
		assert.Equal(t, "2", quotes[0].Price.String())
		assert.Empty(t, missing)
		assert.Empty(t, down.calls)
	})

	t.Run("zero-price quotes never reach the output", func(t *testing.T) {
		provider := &fakeProvider{name: "zero", available: true, quotes: map[string]providers.Quote{
			"AAA": quoteFor("AAA", "0", "USD"),
		}}
		service := services.NewMarketDataService([]providers.PriceProvider{provider}, &fakeFXClient{})

		quotes, missing := service.GetPrices(context.Background(), []string{"AAA"}, "USD")
		assert.Empty(t, quotes)
		assert.Equal(t, []string{"AAA"}, missing)
	})

	t.Run("unresolved symbols are reported, resolved ones still returned", func(t *testing.T) {
		provider := &fakeProvider{name: "partial", available: true, quotes: map[string]providers.Quote{
			"AAA": quoteFor("AAA", "5", "USD"),
		}}
		service := services.NewMarketDataService([]providers.PriceProvider{provider}, &fakeFXClient{})

		quotes, missing := service.GetPrices(context.Background(), []string{"AAA", "GONE"}, "USD")
		require.Len(t, quotes, 1)
		assert.Equal(t, "AAA", quotes[0].Symbol)
		assert.Equal(t, []string{"GONE"}, missing)
	})

	t.Run("duplicate input symbols resolve once", func(t *testing.T) {
		provider := &fakeProvider{name: "dup", available: true, quotes: map[string]providers.Quote{
			"AAA": quoteFor("AAA", "5", "USD"),
		}}
		service := services.NewMarketDataService([]providers.PriceProvider{provider}, &fakeFXClient{})

		quotes, missing := service.GetPrices(context.Background(), []string{"AAA", "AAA"}, "USD")
		assert.Len(t, quotes, 1)
		assert.Empty(t, missing)
	})
}

func TestMarketDataServiceConvert(t *testing.T) {
	t.Run("same currency is identity", func(t *testing.T) {
		service := services.NewMarketDataService(nil, &fakeFXClient{})
		amount, err := service.Convert(context.Background(), decimal.RequireFromString("12.5"), "USD", "USD")
		require.NoError(t, err)
		assert.Equal(t, "12.5", amount.String())
	})

	t.Run("applies the fetched rate", func(t *testing.T) {
		fxClient := &fakeFXClient{rates: map[string]decimal.Decimal{
			"EUR/USD": decimal.RequireFromString("1.1"),
		}}
		service := services.NewMarketDataService(nil, fxClient)

		amount, err := service.Convert(context.Background(), decimal.RequireFromString("100"), "EUR", "USD")
		require.NoError(t, err)
		assert.Equal(t, "110", amount.String())
	})

	t.Run("propagates missing rates", func(t *testing.T) {
		service := services.NewMarketDataService(nil, &fakeFXClient{})
		_, err := service.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "USD")
		assert.Error(t, err)
	})
}
