package fx

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

	"github.com/shopspring/decimal"
)

type FXServiceClientI interface {
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// FXServiceClient fetches conversion rates from a frankfurter-style rates API.
type FXServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

func NewClient(cfg *config.Config) *FXServiceClient {
	return &FXServiceClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.ExternalClients.FX.BaseURL,
	}
}

// GetRate returns how many 'to' units one 'from' unit buys.
func (c *FXServiceClient) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	endpoint := fmt.Sprintf("%s/latest", c.BaseURL)
	params := url.Values{}
	params.Add("from", from)
	params.Add("to", to)

	resp, err := c.API.Get(ctx, endpoint, "", params)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return decimal.Zero, utils.NewHTTPError(resp.StatusCode, "rates request failed: "+resp.Status)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, err
	}

	var ratesResponse GetRatesResponse
	if err := json.Unmarshal(responseBody, &ratesResponse); err != nil {
		return decimal.Zero, err
	}

	rate, ok := ratesResponse.Rates[to]
	if !ok || rate <= 0 {
		return decimal.Zero, fmt.Errorf("no rate from %s to %s", from, to)
	}
	return decimal.NewFromFloat(rate), nil
}
