package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"server/src/config"
	"server/src/utils"
	"server/src/utils/requests"

	"github.com/shopspring/decimal"
)

type YNABServiceClientI interface {
	GetBudgets(ctx context.Context, token string) (*GetBudgetsResponse, error)
	GetAccounts(ctx context.Context, token, budgetID string) ([]Account, error)
	CreateTransaction(ctx context.Context, token, budgetID string, transaction *Transaction) error
}

type YNABServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of YNABServiceClient
func NewClient(cfg *config.Config) *YNABServiceClient {
	return &YNABServiceClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.ExternalClients.YNAB.BaseURL,
	}
}

// GetBudgets fetches all budgets visible to the token, including the default budget if one is set
func (c *YNABServiceClient) GetBudgets(ctx context.Context, token string) (*GetBudgetsResponse, error) {
	endpoint := fmt.Sprintf("%s/budgets?include_accounts=false", c.BaseURL)

	resp, err := c.API.Get(ctx, endpoint, token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, utils.NewHTTPError(resp.StatusCode, "YNAB budgets request failed: "+resp.Status)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var budgetsResponse GetBudgetsResponse
	err = json.Unmarshal(responseBody, &budgetsResponse)
	if err != nil {
		return nil, err
	}
	return &budgetsResponse, nil
}

// GetAccounts fetches the open accounts of a budget
func (c *YNABServiceClient) GetAccounts(ctx context.Context, token, budgetID string) ([]Account, error) {
	endpoint := fmt.Sprintf("%s/budgets/%s/accounts", c.BaseURL, budgetID)

	resp, err := c.API.Get(ctx, endpoint, token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, utils.NewHTTPError(resp.StatusCode, "YNAB accounts request failed: "+resp.Status)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var accountsResponse GetAccountsResponse
	err = json.Unmarshal(responseBody, &accountsResponse)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(accountsResponse.Data.Accounts))
	for _, account := range accountsResponse.Data.Accounts {
		if account.Closed || account.Deleted {
			continue
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// CreateTransaction posts a single transaction to a budget
func (c *YNABServiceClient) CreateTransaction(ctx context.Context, token, budgetID string, transaction *Transaction) error {
	endpoint := fmt.Sprintf("%s/budgets/%s/transactions", c.BaseURL, budgetID)

	resp, err := c.API.Post(ctx, endpoint, token, nil, &CreateTransactionRequest{Transaction: transaction})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return utils.NewHTTPError(resp.StatusCode, "YNAB transaction request failed: "+resp.Status)
	}
	return nil
}

// MilliunitsToAmount converts YNAB's integer representation to a decimal value.
func MilliunitsToAmount(milliunits int64) decimal.Decimal {
	return decimal.NewFromInt(milliunits).Div(decimal.NewFromInt(1000))
}

// AmountToMilliunits converts a decimal value to milliunits, rounding to the
// nearest integer.
func AmountToMilliunits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(1000)).Round(0).IntPart()
}
