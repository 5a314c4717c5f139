package ynab_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"server/src/clients/ynab"
	"server/src/config"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYNABClient(t *testing.T, handler http.HandlerFunc) *ynab.YNABServiceClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.ExternalClients.YNAB.BaseURL = server.URL
	return ynab.NewClient(cfg)
}

func TestYNABServiceClient(t *testing.T) {
	t.Run("GetBudgets sends the bearer token and parses the default budget", func(t *testing.T) {
		client := newYNABClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
			assert.Equal(t, "/budgets", r.URL.Path)
			_, _ = w.Write([]byte(`{"data":{"budgets":[{"id":"b1","name":"Main","currency_format":{"iso_code":"USD"}}],"default_budget":{"id":"b1","name":"Main","currency_format":{"iso_code":"USD"}}}}`))
		})

		response, err := client.GetBudgets(context.Background(), "secret-token")
		require.NoError(t, err)
		require.Len(t, response.Data.Budgets, 1)
		require.NotNil(t, response.Data.DefaultBudget)
		assert.Equal(t, "USD", response.Data.DefaultBudget.CurrencyFormat.ISOCode)
	})

	t.Run("GetAccounts keeps milliunit balances and drops closed accounts", func(t *testing.T) {
		client := newYNABClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/budgets/b1/accounts", r.URL.Path)
			_, _ = w.Write([]byte(`{"data":{"accounts":[
				{"id":"a1","name":"Broker","type":"otherAsset","balance":150000},
				{"id":"a2","name":"Old","type":"checking","balance":10,"closed":true}
			]}}`))
		})

		accounts, err := client.GetAccounts(context.Background(), "token", "b1")
		require.NoError(t, err)
		require.Len(t, accounts, 1)
		assert.Equal(t, int64(150000), accounts[0].Balance)
	})

	t.Run("non-2xx responses surface as errors", func(t *testing.T) {
		client := newYNABClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.GetBudgets(context.Background(), "bad-token")
		assert.Error(t, err)
	})

	t.Run("CreateTransaction posts the transaction envelope", func(t *testing.T) {
		var received ynab.CreateTransactionRequest
		client := newYNABClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/budgets/b1/transactions", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
		})

		transaction := &ynab.Transaction{
			AccountID: "a1",
			Date:      "2026-08-30",
			Amount:    150000,
			PayeeName: "Portfolio Sync",
			Memo:      "Automatic balance adjustment",
			Cleared:   "cleared",
			Approved:  true,
		}
		require.NoError(t, client.CreateTransaction(context.Background(), "token", "b1", transaction))
		require.NotNil(t, received.Transaction)
		assert.Equal(t, int64(150000), received.Transaction.Amount)
		assert.Equal(t, "cleared", received.Transaction.Cleared)
		assert.True(t, received.Transaction.Approved)
	})
}

func TestMilliunitConversion(t *testing.T) {
	t.Run("balance round-trip", func(t *testing.T) {
		displayed := ynab.MilliunitsToAmount(150000)
		assert.True(t, displayed.Equal(decimal.RequireFromString("150.0")))
		assert.Equal(t, int64(150000), ynab.AmountToMilliunits(displayed))
	})

	t.Run("push amounts round to the nearest milliunit", func(t *testing.T) {
		assert.Equal(t, int64(1234), ynab.AmountToMilliunits(decimal.RequireFromString("1.2344")))
		assert.Equal(t, int64(1235), ynab.AmountToMilliunits(decimal.RequireFromString("1.2345")))
	})
}
