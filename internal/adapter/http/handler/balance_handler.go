package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/iho/fintrack/internal/adapter/http/dto"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	Balance(ctx context.Context) decimal.Decimal
	SetBalance(ctx context.Context, value string) error
}

// BalanceHandler handles balance-related HTTP requests.
type BalanceHandler struct {
	ledger BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(ledger BalanceService) *BalanceHandler {
	return &BalanceHandler{ledger: ledger}
}

// Get returns the tracked balance.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		Balance: h.ledger.Balance(r.Context()).String(),
	})
}

// Set replaces the tracked balance wholesale.
func (h *BalanceHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.ledger.SetBalance(r.Context(), req.Balance); err != nil {
		writeError(w, mapDomainError(err), "failed to set balance", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BalanceResponse{
		Balance: h.ledger.Balance(r.Context()).String(),
	})
}
