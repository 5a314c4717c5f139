package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"server/src/api/controllers"
	"server/src/utils"
)

type Handler struct {
	AssetsController     controllers.AssetsControllerI
	SettingsController   controllers.SettingsControllerI
	MarketDataController controllers.MarketDataControllerI
	YNABController       controllers.YNABControllerI
}

func NewHandler(
	assetsController controllers.AssetsControllerI,
	settingsController controllers.SettingsControllerI,
	marketDataController controllers.MarketDataControllerI,
	ynabController controllers.YNABControllerI,
) *Handler {
	return &Handler{
		AssetsController:     assetsController,
		SettingsController:   settingsController,
		MarketDataController: marketDataController,
		YNABController:       ynabController,
	}
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}

// decode parses a JSON request body, surfacing malformed payloads as 400s
// before any business logic runs.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return utils.BadRequest("invalid request body: " + err.Error())
	}
	return nil
}
