package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// BetService defines the behavior needed by BetHandler.
type BetService interface {
	CreateBet(ctx context.Context, input usecase.CreateBetInput) (*domain.Bet, error)
	GetBet(ctx context.Context, id string) (*domain.BetWithMatch, error)
	ListBetsByOffer(ctx context.Context, offerID string) ([]*domain.Bet, error)
	UpdateBet(ctx context.Context, input usecase.UpdateBetInput) (*domain.Bet, error)
}

// BetHandler handles single-bet HTTP requests.
type BetHandler struct {
	betUC BetService
}

// NewBetHandler creates a new BetHandler.
func NewBetHandler(betUC BetService) *BetHandler {
	return &BetHandler{betUC: betUC}
}

// Create records a single bet.
func (h *BetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid bet", err)
		return
	}

	bet, err := h.betUC.CreateBet(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to create bet", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.BetFromDomain(bet))
}

// Get returns a bet with its match.
func (h *BetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bet")
	if !ok {
		return
	}

	bet, err := h.betUC.GetBet(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get bet", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BetWithMatchFromDomain(bet))
}

// ListByOffer lists the single bets of an offer.
func (h *BetHandler) ListByOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "offer")
	if !ok {
		return
	}

	bets, err := h.betUC.ListBetsByOffer(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to list bets", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BetsFromDomain(bets))
}

// Update applies a partial update to an open bet.
func (h *BetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bet")
	if !ok {
		return
	}

	var req dto.UpdateBetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput(id)
	if err != nil {
		writeDomainError(w, "invalid bet", err)
		return
	}

	bet, err := h.betUC.UpdateBet(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to update bet", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BetFromDomain(bet))
}
