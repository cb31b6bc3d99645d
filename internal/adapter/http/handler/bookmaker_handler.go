package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// BookmakerService defines the behavior needed by BookmakerHandler.
type BookmakerService interface {
	CreateBookmaker(ctx context.Context, input usecase.CreateBookmakerInput) (*domain.Bookmaker, error)
	GetBookmaker(ctx context.Context, id string) (*domain.Bookmaker, error)
	ListBookmakers(ctx context.Context, input usecase.ListBookmakersInput) ([]*domain.Bookmaker, error)
	UpdateBookmaker(ctx context.Context, input usecase.UpdateBookmakerInput) (*domain.Bookmaker, error)
	DeleteBookmaker(ctx context.Context, id string) error
	GetBookmakerTree(ctx context.Context, id string) (*domain.BookmakerWithOffersBetsAndMatches, error)
	CountBookmakers(ctx context.Context) (int64, error)
}

// BookmakerHandler handles bookmaker HTTP requests.
type BookmakerHandler struct {
	bookmakerUC BookmakerService
}

// NewBookmakerHandler creates a new BookmakerHandler.
func NewBookmakerHandler(bookmakerUC BookmakerService) *BookmakerHandler {
	return &BookmakerHandler{bookmakerUC: bookmakerUC}
}

// Create creates a bookmaker.
func (h *BookmakerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookmakerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	bookmaker, err := h.bookmakerUC.CreateBookmaker(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create bookmaker", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.BookmakerFromDomain(bookmaker))
}

// Get retrieves a bookmaker by ID.
func (h *BookmakerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookmaker")
	if !ok {
		return
	}

	bookmaker, err := h.bookmakerUC.GetBookmaker(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get bookmaker", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BookmakerFromDomain(bookmaker))
}

// List lists bookmakers.
func (h *BookmakerHandler) List(w http.ResponseWriter, r *http.Request) {
	bookmakers, err := h.bookmakerUC.ListBookmakers(r.Context(), usecase.ListBookmakersInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, "failed to list bookmakers", err)
		return
	}

	total, err := h.bookmakerUC.CountBookmakers(r.Context())
	if err != nil {
		writeDomainError(w, "failed to count bookmakers", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ListBookmakersResponse{
		Bookmakers: dto.BookmakersFromDomain(bookmakers),
		Total:      total,
	})
}

// Update applies a partial update.
func (h *BookmakerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookmaker")
	if !ok {
		return
	}

	var req dto.UpdateBookmakerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	bookmaker, err := h.bookmakerUC.UpdateBookmaker(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeDomainError(w, "failed to update bookmaker", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BookmakerFromDomain(bookmaker))
}

// Delete removes a bookmaker and everything under it.
func (h *BookmakerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookmaker")
	if !ok {
		return
	}

	if err := h.bookmakerUC.DeleteBookmaker(r.Context(), id); err != nil {
		writeDomainError(w, "failed to delete bookmaker", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Tree returns the bookmaker with its offers, accumulators, bets and matches.
func (h *BookmakerHandler) Tree(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "bookmaker")
	if !ok {
		return
	}

	tree, err := h.bookmakerUC.GetBookmakerTree(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to load bookmaker", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.BookmakerTreeFromDomain(tree))
}
