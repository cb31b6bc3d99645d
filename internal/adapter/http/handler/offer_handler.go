package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// OfferService defines the behavior needed by OfferHandler.
type OfferService interface {
	CreateOffer(ctx context.Context, input usecase.CreateOfferInput) (*domain.BookmakerOffer, error)
	GetOffer(ctx context.Context, id string) (*domain.BookmakerOffer, error)
	ListOffersByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.BookmakerOffer, error)
	UpdateOffer(ctx context.Context, input usecase.UpdateOfferInput) (*domain.BookmakerOffer, error)
	DeleteOffer(ctx context.Context, id string) error
	GetOfferTree(ctx context.Context, id string) (*domain.OfferWithBetsAndMatches, error)
}

// OfferHandler handles offer HTTP requests.
type OfferHandler struct {
	offerUC OfferService
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(offerUC OfferService) *OfferHandler {
	return &OfferHandler{offerUC: offerUC}
}

// Create creates an offer.
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOfferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	offer, err := h.offerUC.CreateOffer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create offer", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.OfferFromDomain(offer))
}

// Get returns an offer with its bets and accumulators.
func (h *OfferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "offer")
	if !ok {
		return
	}

	tree, err := h.offerUC.GetOfferTree(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get offer", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OfferTreeFromDomain(tree))
}

// ListByBookmaker lists the offers of a bookmaker.
func (h *OfferHandler) ListByBookmaker(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookmaker")
	if !ok {
		return
	}

	offers, err := h.offerUC.ListOffersByBookmaker(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to list offers", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OffersFromDomain(offers))
}

// Update applies a partial update.
func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "offer")
	if !ok {
		return
	}

	var req dto.UpdateOfferRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	offer, err := h.offerUC.UpdateOffer(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeDomainError(w, "failed to update offer", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.OfferFromDomain(offer))
}

// Delete removes an offer.
func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "offer")
	if !ok {
		return
	}

	if err := h.offerUC.DeleteOffer(r.Context(), id); err != nil {
		writeDomainError(w, "failed to delete offer", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
