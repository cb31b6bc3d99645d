package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/domain"
)

// BalanceService defines the behavior needed by BalanceHandler.
type BalanceService interface {
	Balances(ctx context.Context) (domain.Ledger, error)
	Apply(ctx context.Context, increments []domain.Increment) (domain.Ledger, error)
}

// BalanceHandler exposes the session ledger.
type BalanceHandler struct {
	balanceUC BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balanceUC BalanceService) *BalanceHandler {
	return &BalanceHandler{balanceUC: balanceUC}
}

// Get returns the current totals.
func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.balanceUC.Balances(r.Context())
	if err != nil {
		writeDomainError(w, "failed to read balances", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalancesFromDomain(ledger))
}

// Increment applies the requested changes all-or-nothing.
func (h *BalanceHandler) Increment(w http.ResponseWriter, r *http.Request) {
	var req dto.IncrementBalancesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.Increments) == 0 {
		writeError(w, http.StatusBadRequest, "no increments given", "")
		return
	}

	ledger, err := h.balanceUC.Apply(r.Context(), req.ToDomain())
	if err != nil {
		writeDomainError(w, "failed to apply increments", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BalancesFromDomain(ledger))
}
