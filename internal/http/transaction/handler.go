package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/khata/internal/auth"
	"github.com/MrJamesThe3rd/khata/internal/report"
	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/charts", h.charts)
	r.Delete("/", h.deleteAll)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "access token required", http.StatusUnauthorized)
		return
	}

	txs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to fetch transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) charts(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "access token required", http.StatusUnauthorized)
		return
	}

	txs, err := h.svc.List(r.Context(), userID)
	if err != nil {
		http.Error(w, "failed to fetch transactions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toChartsResponse(report.Build(txs))); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) deleteAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "access token required", http.StatusUnauthorized)
		return
	}

	if err := h.svc.DeleteAll(r.Context(), userID); err != nil {
		http.Error(w, "failed to delete transactions", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
