package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// AccumulatorService defines the behavior needed by AccumulatorHandler.
type AccumulatorService interface {
	CreateAccumulator(ctx context.Context, input usecase.CreateAccumulatorInput) (*domain.AccumulatorWithBets, error)
	GetAccumulator(ctx context.Context, id string) (*domain.AccumulatorWithBets, error)
	ListAccumulatorsByOffer(ctx context.Context, offerID string) ([]*domain.Accumulator, error)
}

// AccumulatorHandler handles accumulator HTTP requests.
type AccumulatorHandler struct {
	accumulatorUC AccumulatorService
}

// NewAccumulatorHandler creates a new AccumulatorHandler.
func NewAccumulatorHandler(accumulatorUC AccumulatorService) *AccumulatorHandler {
	return &AccumulatorHandler{accumulatorUC: accumulatorUC}
}

// Create records an accumulator and its legs.
func (h *AccumulatorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccumulatorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid accumulator", err)
		return
	}

	acc, err := h.accumulatorUC.CreateAccumulator(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to create accumulator", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccumulatorWithBetsFromDomain(acc))
}

// Get returns an accumulator with its legs.
func (h *AccumulatorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "accumulator")
	if !ok {
		return
	}

	acc, err := h.accumulatorUC.GetAccumulator(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get accumulator", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccumulatorWithBetsFromDomain(acc))
}

// ListByOffer lists the accumulators of an offer.
func (h *AccumulatorHandler) ListByOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "offer")
	if !ok {
		return
	}

	accs, err := h.accumulatorUC.ListAccumulatorsByOffer(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to list accumulators", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccumulatorsFromDomain(accs))
}
