package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/usecase"
)

// SettlementService defines the behavior needed by SettlementHandler.
type SettlementService interface {
	SettleBet(ctx context.Context, betID string) (*usecase.SettlementResult, error)
	SettleAccumulator(ctx context.Context, accumulatorID string) (*usecase.SettlementResult, error)
}

// SettlementHandler closes bets and accumulators against match results.
type SettlementHandler struct {
	settlementUC SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlementUC SettlementService) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

// SettleBet settles a single bet.
func (h *SettlementHandler) SettleBet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bet")
	if !ok {
		return
	}

	result, err := h.settlementUC.SettleBet(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to settle bet", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SettlementFromResult(result))
}

// SettleAccumulator settles an accumulator.
func (h *SettlementHandler) SettleAccumulator(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "accumulator")
	if !ok {
		return
	}

	result, err := h.settlementUC.SettleAccumulator(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to settle accumulator", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SettlementFromResult(result))
}
