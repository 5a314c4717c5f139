package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"server/src/config"
	"server/src/utils"
	"server/src/utils/requests"
	"strings"

	"github.com/shopspring/decimal"
)

// CoinGeckoProvider resolves crypto symbols through the simple-price API.
// Without an API key the provider reports itself unavailable and dispatch
// skips it.
type CoinGeckoProvider struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
}

func NewCoinGeckoProvider(cfg *config.Config) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.Providers.CoinGecko.BaseURL,
		APIKey:  cfg.Providers.CoinGecko.APIKey,
	}
}

func (p *CoinGeckoProvider) ProviderName() string {
	return "coingecko"
}

func (p *CoinGeckoProvider) IsAvailable() bool {
	return p.BaseURL != "" && p.APIKey != ""
}

func (p *CoinGeckoProvider) FetchAssetPrices(ctx context.Context, symbols []string, currency string) []Quote {
	logger := utils.LoggerFromContext(ctx)
	vsCurrency := strings.ToLower(currency)

	endpoint := fmt.Sprintf("%s/simple/price", p.BaseURL)
	params := url.Values{}
	params.Add("ids", strings.ToLower(strings.Join(symbols, ",")))
	params.Add("vs_currencies", vsCurrency)
	params.Add("x_cg_demo_api_key", p.APIKey)

	resp, err := p.API.Get(ctx, endpoint, "", params)
	if err != nil {
		logger.WithError(err).Warn("coingecko: price request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		logger.WithField("status", resp.Status).Warn("coingecko: price request rejected")
		return nil
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var prices map[string]map[string]float64
	if err := json.Unmarshal(responseBody, &prices); err != nil {
		logger.WithError(err).Warn("coingecko: malformed price response")
		return nil
	}

	quotes := make([]Quote, 0, len(symbols))
	for _, symbol := range symbols {
		entry, ok := prices[strings.ToLower(symbol)]
		if !ok {
			continue
		}
		price, ok := entry[vsCurrency]
		if !ok || price <= 0 {
			continue
		}
		quotes = append(quotes, Quote{
			Symbol:   symbol,
			Price:    decimal.NewFromFloat(price),
			Currency: currency,
		})
	}
	return quotes
}
