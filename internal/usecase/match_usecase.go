package usecase

import (
	"context"
	"time"

	"github.com/iho/matchedbet/internal/domain"
)

// MatchUseCase handles match business logic.
type MatchUseCase struct {
	matchRepo MatchRepository
	idGen     IDGenerator
	cache     *treeCache
}

// NewMatchUseCase creates a new MatchUseCase. cache may be nil.
func NewMatchUseCase(matchRepo MatchRepository, idGen IDGenerator, cache Cache) *MatchUseCase {
	return &MatchUseCase{
		matchRepo: matchRepo,
		idGen:     idGen,
		cache:     newTreeCache(cache, 0),
	}
}

// CreateMatchInput represents input for creating a match.
type CreateMatchInput struct {
	MatchDate time.Time
	Outcome   *domain.Outcome
	HomeTeam  string
	AwayTeam  string
}

// CreateMatch creates a new match.
func (uc *MatchUseCase) CreateMatch(ctx context.Context, input CreateMatchInput) (*domain.Match, error) {
	if err := validateTeams(input.HomeTeam, input.AwayTeam); err != nil {
		return nil, err
	}
	if input.Outcome != nil && !input.Outcome.Valid() {
		return nil, domain.ErrInvalidOutcome
	}

	match := &domain.Match{
		ID:        uc.idGen.Generate(),
		HomeTeam:  input.HomeTeam,
		AwayTeam:  input.AwayTeam,
		MatchDate: input.MatchDate.UTC(),
		Outcome:   input.Outcome,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, err
	}

	return match, nil
}

func validateTeams(home, away string) error {
	if err := domain.ValidateName(home); err != nil {
		return err
	}
	if err := domain.ValidateName(away); err != nil {
		return err
	}
	if home == away {
		return domain.ErrSameTeams
	}
	return nil
}

// GetMatch retrieves a match by ID.
func (uc *MatchUseCase) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	return uc.matchRepo.GetByID(ctx, id)
}

// ListMatchesInput represents input for listing matches.
type ListMatchesInput struct {
	Limit  int
	Offset int
}

// ListMatches lists matches, most recent kick-off first.
func (uc *MatchUseCase) ListMatches(ctx context.Context, input ListMatchesInput) ([]*domain.Match, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.matchRepo.List(ctx, limit, offset)
}

// UpdateMatchInput holds the fields to change; nil means unchanged.
type UpdateMatchInput struct {
	MatchDate *time.Time
	HomeTeam  *string
	AwayTeam  *string
	ID        string
}

// UpdateMatch applies a partial update.
func (uc *MatchUseCase) UpdateMatch(ctx context.Context, input UpdateMatchInput) (*domain.Match, error) {
	match, err := uc.matchRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.HomeTeam != nil {
		match.HomeTeam = *input.HomeTeam
	}
	if input.AwayTeam != nil {
		match.AwayTeam = *input.AwayTeam
	}
	if input.MatchDate != nil {
		match.MatchDate = input.MatchDate.UTC()
	}

	if err := validateTeams(match.HomeTeam, match.AwayTeam); err != nil {
		return nil, err
	}

	if err := uc.matchRepo.Update(ctx, match); err != nil {
		return nil, err
	}
	// Any bookmaker may hold bets on this match.
	uc.cache.invalidateAll(ctx)

	return match, nil
}

// SetOutcome records the result of a match.
func (uc *MatchUseCase) SetOutcome(ctx context.Context, id string, outcome domain.Outcome) (*domain.Match, error) {
	if !outcome.Valid() {
		return nil, domain.ErrInvalidOutcome
	}

	match, err := uc.matchRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match.Outcome = &outcome
	if err := uc.matchRepo.Update(ctx, match); err != nil {
		return nil, err
	}
	// Any bookmaker may hold bets on this match.
	uc.cache.invalidateAll(ctx)

	return match, nil
}
