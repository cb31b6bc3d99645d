package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
)

// ErrBetSettled is returned when a settled bet is edited.
var ErrBetSettled = errors.New("settled bets cannot be changed")

// BetUseCase handles bet business logic.
type BetUseCase struct {
	betRepo   BetRepository
	offerRepo OfferRepository
	matchRepo MatchRepository
	idGen     IDGenerator
	cache     *treeCache
}

// NewBetUseCase creates a new BetUseCase. cache may be nil.
func NewBetUseCase(betRepo BetRepository, offerRepo OfferRepository, matchRepo MatchRepository, idGen IDGenerator, cache Cache) *BetUseCase {
	return &BetUseCase{
		betRepo:   betRepo,
		offerRepo: offerRepo,
		matchRepo: matchRepo,
		idGen:     idGen,
		cache:     newTreeCache(cache, 0),
	}
}

// CreateBetInput represents input for creating a single bet.
type CreateBetInput struct {
	BackOdds    *decimal.Decimal
	BackStake   *decimal.Decimal
	LayOdds     *decimal.Decimal
	LayStake    *decimal.Decimal
	Liability   *decimal.Decimal
	OfferID     string
	MatchID     string
	BetCategory domain.BetCategory
	Outcome     domain.Outcome
}

// CreateBet records a new bet against an offer and a match.
func (uc *BetUseCase) CreateBet(ctx context.Context, input CreateBetInput) (*domain.Bet, error) {
	if err := validateBetInput(input); err != nil {
		return nil, err
	}

	offer, err := uc.offerRepo.GetByID(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.matchRepo.GetByID(ctx, input.MatchID); err != nil {
		return nil, err
	}

	bet := newBet(uc.idGen.Generate(), input, nil, time.Now().UTC())
	if err := uc.betRepo.Create(ctx, bet); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, offer.BookmakerID)

	return bet, nil
}

func validateBetInput(input CreateBetInput) error {
	if !input.BetCategory.Valid() {
		return domain.ErrInvalidBetCategory
	}
	if !input.Outcome.Valid() {
		return domain.ErrInvalidOutcome
	}
	return domain.ValidateOptionalPrices(input.BackOdds, input.BackStake, input.LayOdds, input.LayStake, input.Liability)
}

func newBet(id string, input CreateBetInput, accumulatorID *string, now time.Time) *domain.Bet {
	return &domain.Bet{
		ID:            id,
		OfferID:       input.OfferID,
		MatchID:       input.MatchID,
		AccumulatorID: accumulatorID,
		BackOdds:      input.BackOdds,
		BackStake:     input.BackStake,
		LayOdds:       input.LayOdds,
		LayStake:      input.LayStake,
		Liability:     input.Liability,
		BetCategory:   input.BetCategory,
		Outcome:       input.Outcome,
		CreatedAt:     now,
	}
}

// GetBet retrieves a bet with its match.
func (uc *BetUseCase) GetBet(ctx context.Context, id string) (*domain.BetWithMatch, error) {
	bet, err := uc.betRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match, err := uc.matchRepo.GetByID(ctx, bet.MatchID)
	if err != nil {
		return nil, err
	}

	return &domain.BetWithMatch{Bet: bet, Match: match}, nil
}

// ListBetsByOffer lists the single bets of an offer.
func (uc *BetUseCase) ListBetsByOffer(ctx context.Context, offerID string) ([]*domain.Bet, error) {
	return uc.betRepo.ListByOffer(ctx, offerID)
}

// UpdateBetInput holds the fields to change; nil means unchanged.
type UpdateBetInput struct {
	BackOdds    *decimal.Decimal
	BackStake   *decimal.Decimal
	LayOdds     *decimal.Decimal
	LayStake    *decimal.Decimal
	Liability   *decimal.Decimal
	BetCategory *domain.BetCategory
	Outcome     *domain.Outcome
	ID          string
}

// UpdateBet applies a partial update to an unsettled bet.
func (uc *BetUseCase) UpdateBet(ctx context.Context, input UpdateBetInput) (*domain.Bet, error) {
	bet, err := uc.betRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if bet.Settled {
		return nil, ErrBetSettled
	}

	if input.BackOdds != nil {
		bet.BackOdds = input.BackOdds
	}
	if input.BackStake != nil {
		bet.BackStake = input.BackStake
	}
	if input.LayOdds != nil {
		bet.LayOdds = input.LayOdds
	}
	if input.LayStake != nil {
		bet.LayStake = input.LayStake
	}
	if input.Liability != nil {
		bet.Liability = input.Liability
	}
	if input.BetCategory != nil {
		bet.BetCategory = *input.BetCategory
	}
	if input.Outcome != nil {
		bet.Outcome = *input.Outcome
	}

	err = validateBetInput(CreateBetInput{
		BackOdds:    bet.BackOdds,
		BackStake:   bet.BackStake,
		LayOdds:     bet.LayOdds,
		LayStake:    bet.LayStake,
		Liability:   bet.Liability,
		BetCategory: bet.BetCategory,
		Outcome:     bet.Outcome,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.betRepo.Update(ctx, bet); err != nil {
		return nil, err
	}
	uc.cache.invalidateOffer(ctx, uc.offerRepo, bet.OfferID)

	return bet, nil
}

// CountOpenBets returns how many bets are not yet settled.
func (uc *BetUseCase) CountOpenBets(ctx context.Context) (int64, error) {
	return uc.betRepo.CountOpen(ctx)
}
