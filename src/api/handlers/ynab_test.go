package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"server/src/api/handlers"
	"server/src/schemas"
	"server/src/utils"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeYNABController struct {
	lastToken string
	accounts  []*schemas.YNABAccountResponse
	syncErr   error
}

func (c *fakeYNABController) GetAccounts(_ context.Context, token string) ([]*schemas.YNABAccountResponse, error) {
	c.lastToken = token
	if token == "" {
		return nil, utils.BadRequest("token is required")
	}
	return c.accounts, nil
}

func (c *fakeYNABController) TriggerSync(_ context.Context) (*schemas.SyncSummary, error) {
	if c.syncErr != nil {
		return nil, c.syncErr
	}
	return &schemas.SyncSummary{AccountsSynced: 1}, nil
}

func newYNABHandler(controller *fakeYNABController) *handlers.Handler {
	return handlers.NewHandler(nil, nil, nil, controller)
}

func TestGetYNABAccountsHandler(t *testing.T) {
	t.Run("returns converted balances", func(t *testing.T) {
		controller := &fakeYNABController{accounts: []*schemas.YNABAccountResponse{
			{ID: "a1", Name: "Broker", Type: "otherAsset", Balance: decimal.RequireFromString("150"), Currency: "USD"},
		}}
		handler := newYNABHandler(controller)

		request := httptest.NewRequest(http.MethodPost, "/api/ynab/accounts", strings.NewReader(`{"token":"secret"}`))
		recorder := httptest.NewRecorder()
		handler.GetYNABAccounts(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "secret", controller.lastToken)

		var accounts []schemas.YNABAccountResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &accounts))
		require.Len(t, accounts, 1)
		assert.True(t, accounts[0].Balance.Equal(decimal.RequireFromString("150")))
	})

	t.Run("falls back to the Authorization header", func(t *testing.T) {
		controller := &fakeYNABController{}
		handler := newYNABHandler(controller)

		request := httptest.NewRequest(http.MethodPost, "/api/ynab/accounts", strings.NewReader(`{}`))
		request.Header.Set("Authorization", "Bearer header-token")
		recorder := httptest.NewRecorder()
		handler.GetYNABAccounts(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "header-token", controller.lastToken)
	})

	t.Run("an empty body still honors the Authorization header", func(t *testing.T) {
		controller := &fakeYNABController{}
		handler := newYNABHandler(controller)

		request := httptest.NewRequest(http.MethodPost, "/api/ynab/accounts", nil)
		request.Header.Set("Authorization", "Bearer header-token")
		recorder := httptest.NewRecorder()
		handler.GetYNABAccounts(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "header-token", controller.lastToken)
	})

	t.Run("malformed bodies are rejected before the controller runs", func(t *testing.T) {
		controller := &fakeYNABController{}
		handler := newYNABHandler(controller)

		request := httptest.NewRequest(http.MethodPost, "/api/ynab/accounts", strings.NewReader(`{`))
		recorder := httptest.NewRecorder()
		handler.GetYNABAccounts(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Empty(t, controller.lastToken)
	})
}

func TestTriggerYNABSyncHandler(t *testing.T) {
	t.Run("reports success", func(t *testing.T) {
		handler := newYNABHandler(&fakeYNABController{})

		request := httptest.NewRequest(http.MethodPost, "/api/ynab/sync", nil)
		recorder := httptest.NewRecorder()
		handler.TriggerYNABSync(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response schemas.SyncResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Sync completed successfully", response.Message)
	})

	t.Run("misconfiguration propagates its status code", func(t *testing.T) {
		handler := newYNABHandler(&fakeYNABController{syncErr: utils.BadRequest("user settings not configured")})

		request := httptest.NewRequest(http.MethodPost, "/api/ynab/sync", nil)
		recorder := httptest.NewRecorder()
		handler.TriggerYNABSync(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
