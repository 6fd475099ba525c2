// internal/api/handler/balance.go
package handler

import (
	"log/slog"
	"net/http"

	"splitledger/internal/service"
)

// BalanceHandler handles HTTP requests for derived balances and settlement
// suggestions. These endpoints are read-only and recompute from scratch on
// every request.
type BalanceHandler struct {
	service service.BalanceService
	logger  *slog.Logger
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(svc service.BalanceService, logger *slog.Logger) *BalanceHandler {
	return &BalanceHandler{
		service: svc,
		logger:  logger,
	}
}

// GetBalances handles GET /balances.
func (h *BalanceHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.service.MemberBalances(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"balances": balances,
	})
}

// GetSettlements handles GET /settlements.
func (h *BalanceHandler) GetSettlements(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.SettlementPlan(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, plan)
}

// GetPairwiseSettlements handles GET /settlements/pairwise.
func (h *BalanceHandler) GetPairwiseSettlements(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.service.PairwiseSettlements(r.Context())
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}
