package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
)

// AccumulatorUseCase handles accumulator business logic.
type AccumulatorUseCase struct {
	txManager       TransactionManager
	accumulatorRepo AccumulatorRepository
	betRepo         BetRepository
	offerRepo       OfferRepository
	matchRepo       MatchRepository
	idGen           IDGenerator
	cache           *treeCache
}

// NewAccumulatorUseCase creates a new AccumulatorUseCase. cache may be nil.
func NewAccumulatorUseCase(
	txManager TransactionManager,
	accumulatorRepo AccumulatorRepository,
	betRepo BetRepository,
	offerRepo OfferRepository,
	matchRepo MatchRepository,
	idGen IDGenerator,
	cache Cache,
) *AccumulatorUseCase {
	return &AccumulatorUseCase{
		txManager:       txManager,
		accumulatorRepo: accumulatorRepo,
		betRepo:         betRepo,
		offerRepo:       offerRepo,
		matchRepo:       matchRepo,
		idGen:           idGen,
		cache:           newTreeCache(cache, 0),
	}
}

// AccumulatorLegInput is one selection of an accumulator.
type AccumulatorLegInput struct {
	MatchID string
	Outcome domain.Outcome
}

// CreateAccumulatorInput represents input for creating an accumulator.
type CreateAccumulatorInput struct {
	OfferID     string
	BetCategory domain.BetCategory
	BackOdds    decimal.Decimal
	BackStake   decimal.Decimal
	LayOdds     decimal.Decimal
	LayStake    decimal.Decimal
	Liability   decimal.Decimal
	Legs        []AccumulatorLegInput
}

// CreateAccumulator creates an accumulator and its legs atomically.
func (uc *AccumulatorUseCase) CreateAccumulator(ctx context.Context, input CreateAccumulatorInput) (*domain.AccumulatorWithBets, error) {
	// 0. Validate inputs before starting transaction
	if !input.BetCategory.Valid() {
		return nil, domain.ErrInvalidBetCategory
	}
	if len(input.Legs) == 0 {
		return nil, domain.ErrEmptyAccumulator
	}
	for _, leg := range input.Legs {
		if !leg.Outcome.Valid() {
			return nil, domain.ErrInvalidOutcome
		}
	}

	acc := &domain.Accumulator{
		OfferID:     input.OfferID,
		BetCategory: input.BetCategory,
		BackOdds:    input.BackOdds,
		BackStake:   input.BackStake,
		LayOdds:     input.LayOdds,
		LayStake:    input.LayStake,
		Liability:   input.Liability,
	}
	if err := domain.ValidatePrices(acc.Prices()); err != nil {
		return nil, err
	}

	offer, err := uc.offerRepo.GetByID(ctx, input.OfferID)
	if err != nil {
		return nil, err
	}

	matchIDs := make([]string, 0, len(input.Legs))
	for _, leg := range input.Legs {
		matchIDs = append(matchIDs, leg.MatchID)
	}
	matches, err := uc.matchRepo.GetByIDs(ctx, matchIDs)
	if err != nil {
		return nil, err
	}
	matchMap := make(map[string]*domain.Match, len(matches))
	for _, m := range matches {
		matchMap[m.ID] = m
	}
	for _, id := range matchIDs {
		if _, ok := matchMap[id]; !ok {
			return nil, domain.ErrMatchNotFound
		}
	}

	// 1. Begin transaction
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	acc.ID = uc.idGen.Generate()
	acc.CreatedAt = now

	if err := uc.accumulatorRepo.CreateTx(ctx, tx, acc); err != nil {
		return nil, err
	}

	// 2. Create legs
	result := &domain.AccumulatorWithBets{
		Accumulator: acc,
		Bets:        make([]*domain.BetWithMatch, 0, len(input.Legs)),
	}
	for _, leg := range input.Legs {
		bet := newBet(uc.idGen.Generate(), CreateBetInput{
			OfferID:     input.OfferID,
			MatchID:     leg.MatchID,
			BetCategory: input.BetCategory,
			Outcome:     leg.Outcome,
		}, &acc.ID, now)

		if err := uc.betRepo.CreateTx(ctx, tx, bet); err != nil {
			return nil, err
		}

		result.Bets = append(result.Bets, &domain.BetWithMatch{Bet: bet, Match: matchMap[leg.MatchID]})
	}

	// 3. Commit transaction
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, offer.BookmakerID)

	return result, nil
}

// GetAccumulator retrieves an accumulator with its legs and their matches.
func (uc *AccumulatorUseCase) GetAccumulator(ctx context.Context, id string) (*domain.AccumulatorWithBets, error) {
	acc, err := uc.accumulatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	legs, err := uc.betRepo.ListByAccumulator(ctx, id)
	if err != nil {
		return nil, err
	}

	builder := &treeBuilder{matchRepo: uc.matchRepo}
	matches, err := builder.matchesByID(ctx, collectMatchIDs(legs, nil))
	if err != nil {
		return nil, err
	}

	return &domain.AccumulatorWithBets{
		Accumulator: acc,
		Bets:        joinMatches(legs, matches),
	}, nil
}

// ListAccumulatorsByOffer lists the accumulators of an offer.
func (uc *AccumulatorUseCase) ListAccumulatorsByOffer(ctx context.Context, offerID string) ([]*domain.Accumulator, error) {
	return uc.accumulatorRepo.ListByOffer(ctx, offerID)
}
