package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"server/src/schemas"
	"server/src/utils"
	"time"

	"github.com/go-chi/jwtauth"
)

func (h *Handler) GetYNABAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// The body is optional here: the token may come from the bearer header or
	// the stored settings instead.
	var req schemas.GetYNABAccountsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.HandleErrors(w, utils.BadRequest("invalid request body: "+err.Error()))
		return
	}
	token := req.Token
	if token == "" {
		token = jwtauth.TokenFromHeader(r)
	}

	accounts, err := h.YNABController.GetAccounts(ctx, token)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, accounts, http.StatusOK)
}

func (h *Handler) TriggerYNABSync(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	if _, err := h.YNABController.TriggerSync(ctx); err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, schemas.SyncResponse{Message: "Sync completed successfully"}, http.StatusOK)
}
