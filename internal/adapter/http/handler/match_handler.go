package handler

import (
	"context"
	"net/http"

	"github.com/iho/matchedbet/internal/adapter/http/dto"
	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// MatchService defines the behavior needed by MatchHandler.
type MatchService interface {
	CreateMatch(ctx context.Context, input usecase.CreateMatchInput) (*domain.Match, error)
	GetMatch(ctx context.Context, id string) (*domain.Match, error)
	ListMatches(ctx context.Context, input usecase.ListMatchesInput) ([]*domain.Match, error)
	UpdateMatch(ctx context.Context, input usecase.UpdateMatchInput) (*domain.Match, error)
	SetOutcome(ctx context.Context, id string, outcome domain.Outcome) (*domain.Match, error)
}

// MatchHandler handles match HTTP requests.
type MatchHandler struct {
	matchUC MatchService
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(matchUC MatchService) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// Create creates a match.
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid match", err)
		return
	}

	match, err := h.matchUC.CreateMatch(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to create match", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.MatchFromDomain(match))
}

// Get retrieves a match by ID.
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "match")
	if !ok {
		return
	}

	match, err := h.matchUC.GetMatch(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get match", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MatchFromDomain(match))
}

// List lists matches.
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchUC.ListMatches(r.Context(), usecase.ListMatchesInput{
		Limit:  parseIntQuery(r, "limit", 20),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeDomainError(w, "failed to list matches", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MatchesFromDomain(matches))
}

// Update applies a partial update.
func (h *MatchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "match")
	if !ok {
		return
	}

	var req dto.UpdateMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	match, err := h.matchUC.UpdateMatch(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeDomainError(w, "failed to update match", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MatchFromDomain(match))
}

// SetOutcome records the match result.
func (h *MatchHandler) SetOutcome(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "match")
	if !ok {
		return
	}

	var req dto.SetOutcomeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	outcome, err := domain.ParseOutcome(req.Outcome)
	if err != nil {
		writeDomainError(w, "invalid outcome", err)
		return
	}

	match, err := h.matchUC.SetOutcome(r.Context(), id, outcome)
	if err != nil {
		writeDomainError(w, "failed to record result", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MatchFromDomain(match))
}
