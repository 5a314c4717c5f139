package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"server/src/api"
	"server/src/api/handlers"
	"server/src/schemas"
	"server/src/utils"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggerCapturingController records the logger its request context carried.
type loggerCapturingController struct {
	captured *logrus.Logger
}

func (c *loggerCapturingController) GetAccounts(ctx context.Context, _ string) ([]*schemas.YNABAccountResponse, error) {
	c.captured = utils.LoggerFromContext(ctx)
	return nil, nil
}

func (c *loggerCapturingController) TriggerSync(ctx context.Context) (*schemas.SyncSummary, error) {
	c.captured = utils.LoggerFromContext(ctx)
	return &schemas.SyncSummary{}, nil
}

func TestServerRequestLogger(t *testing.T) {
	t.Run("requests carry the service logger in their context", func(t *testing.T) {
		controller := &loggerCapturingController{}
		logger := logrus.New()
		server := api.NewServer(handlers.NewHandler(nil, nil, nil, controller), logger)

		request := httptest.NewRequest(http.MethodPost, "/api/ynab/sync", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Same(t, logger, controller.captured)
	})

	t.Run("healthcheck responds through the router", func(t *testing.T) {
		server := api.NewServer(handlers.NewHandler(nil, nil, nil, nil), logrus.New())

		request := httptest.NewRequest(http.MethodGet, "/alive", nil)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "alive", recorder.Body.String())
	})
}
