package handlers

import (
	"context"
	"net/http"
	"server/src/schemas"
	"server/src/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllAssets(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assets, err := h.AssetsController.GetAllAssets(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, assets, http.StatusOK)
}

func (h *Handler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := assetID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.AssetsController.GetAssetByID(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreateAssetRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	asset, err := h.AssetsController.CreateAsset(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusCreated)
}

func (h *Handler) UpdateAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := assetID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	var req schemas.UpdateAssetRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}
	req.ID = id

	asset, err := h.AssetsController.UpdateAsset(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, asset, http.StatusOK)
}

func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := assetID(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	if err := h.AssetsController.DeleteAsset(ctx, id); err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func assetID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, utils.BadRequest("id must be an integer")
	}
	return id, nil
}
