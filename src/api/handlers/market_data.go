package handlers

import (
	"context"
	"net/http"
	"server/src/schemas"
	"time"
)

func (h *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	var req schemas.GetPricesRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	prices, err := h.MarketDataController.GetPrices(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, prices, http.StatusOK)
}

func (h *Handler) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.ConvertRequest
	if err := h.decode(r, &req); err != nil {
		h.HandleErrors(w, err)
		return
	}

	converted, err := h.MarketDataController.Convert(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, converted, http.StatusOK)
}

func (h *Handler) ExportPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	file, err := h.MarketDataController.ExportPortfolio(ctx, r.URL.Query().Get("currency"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="portfolio.xlsx"`)
	if err := file.Write(w); err != nil {
		h.HandleErrors(w, err)
	}
}
