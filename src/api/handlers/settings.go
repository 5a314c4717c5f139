package handlers

import (
	"context"
	"net/http"
	"server/src/schemas"
	"time"
)

func (h *Handler) GetUserSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	settings, err := h.SettingsController.GetUserSettings(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}

func (h *Handler) SaveUserSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateUserSettingsRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	settings, err := h.SettingsController.SaveUserSettings(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusCreated)
}

func (h *Handler) UpdateUserSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.UpdateUserSettingsRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	settings, err := h.SettingsController.UpdateUserSettings(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, settings, http.StatusOK)
}
