package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/infrastructure/postgres/generated"
	"github.com/iho/matchedbet/internal/usecase"
)

// BetRepository implements usecase.BetRepository.
type BetRepository struct {
	queries *generated.Queries
}

// NewBetRepository creates a new BetRepository.
func NewBetRepository(db generated.DBTX) *BetRepository {
	return &BetRepository{
		queries: generated.New(db),
	}
}

// Create creates a single bet.
func (r *BetRepository) Create(ctx context.Context, bet *domain.Bet) error {
	return r.queries.CreateBet(ctx, betParams(bet))
}

// CreateTx creates a bet within a transaction.
func (r *BetRepository) CreateTx(ctx context.Context, tx usecase.Transaction, bet *domain.Bet) error {
	return txQueries(tx).CreateBet(ctx, betParams(bet))
}

// GetByID retrieves a bet by ID.
func (r *BetRepository) GetByID(ctx context.Context, id string) (*domain.Bet, error) {
	row, err := r.queries.GetBetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBetNotFound
		}

		return nil, err
	}

	return rowToBet(row), nil
}

// GetByIDForUpdate retrieves a bet by ID with a FOR UPDATE lock.
func (r *BetRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Bet, error) {
	row, err := txQueries(tx).GetBetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBetNotFound
		}

		return nil, err
	}

	return rowToBet(row), nil
}

// ListByOffer lists the single bets of an offer; accumulator legs are excluded.
func (r *BetRepository) ListByOffer(ctx context.Context, offerID string) ([]*domain.Bet, error) {
	rows, err := r.queries.ListBetsByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	return rowsToBets(rows), nil
}

// ListByAccumulator lists the legs of an accumulator.
func (r *BetRepository) ListByAccumulator(ctx context.Context, accumulatorID string) ([]*domain.Bet, error) {
	rows, err := r.queries.ListBetsByAccumulator(ctx, pgtype.Text{String: accumulatorID, Valid: true})
	if err != nil {
		return nil, err
	}

	return rowsToBets(rows), nil
}

// Update overwrites an open bet. Settled bets are left untouched.
func (r *BetRepository) Update(ctx context.Context, bet *domain.Bet) error {
	n, err := r.queries.UpdateBet(ctx, generated.UpdateBetParams{
		ID:          bet.ID,
		BackOdds:    decimalPtrToNumeric(bet.BackOdds),
		BackStake:   decimalPtrToNumeric(bet.BackStake),
		LayOdds:     decimalPtrToNumeric(bet.LayOdds),
		LayStake:    decimalPtrToNumeric(bet.LayStake),
		Liability:   decimalPtrToNumeric(bet.Liability),
		BetCategory: string(bet.BetCategory),
		Outcome:     string(bet.Outcome),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBetAlreadySettled
	}

	return nil
}

// MarkSettled flags a bet as settled.
func (r *BetRepository) MarkSettled(ctx context.Context, tx usecase.Transaction, id string) error {
	n, err := txQueries(tx).MarkBetSettled(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBetAlreadySettled
	}

	return nil
}

// MarkAccumulatorLegsSettled flags every leg of an accumulator as settled.
func (r *BetRepository) MarkAccumulatorLegsSettled(ctx context.Context, tx usecase.Transaction, accumulatorID string) error {
	return txQueries(tx).MarkAccumulatorLegsSettled(ctx, pgtype.Text{String: accumulatorID, Valid: true})
}

// CountOpen returns the number of unsettled bets.
func (r *BetRepository) CountOpen(ctx context.Context) (int64, error) {
	return r.queries.CountOpenBets(ctx)
}

func betParams(bet *domain.Bet) generated.CreateBetParams {
	return generated.CreateBetParams{
		ID:            bet.ID,
		OfferID:       bet.OfferID,
		MatchID:       bet.MatchID,
		AccumulatorID: stringPtrToText(bet.AccumulatorID),
		BackOdds:      decimalPtrToNumeric(bet.BackOdds),
		BackStake:     decimalPtrToNumeric(bet.BackStake),
		LayOdds:       decimalPtrToNumeric(bet.LayOdds),
		LayStake:      decimalPtrToNumeric(bet.LayStake),
		Liability:     decimalPtrToNumeric(bet.Liability),
		BetCategory:   string(bet.BetCategory),
		Outcome:       string(bet.Outcome),
		Settled:       bet.Settled,
		CreatedAt:     timeToPgTimestamptz(bet.CreatedAt),
	}
}

func rowsToBets(rows []generated.Bet) []*domain.Bet {
	bets := make([]*domain.Bet, 0, len(rows))
	for _, row := range rows {
		bets = append(bets, rowToBet(row))
	}
	return bets
}

func rowToBet(row generated.Bet) *domain.Bet {
	return &domain.Bet{
		ID:            row.ID,
		OfferID:       row.OfferID,
		MatchID:       row.MatchID,
		AccumulatorID: textToStringPtr(row.AccumulatorID),
		BackOdds:      numericToDecimalPtr(row.BackOdds),
		BackStake:     numericToDecimalPtr(row.BackStake),
		LayOdds:       numericToDecimalPtr(row.LayOdds),
		LayStake:      numericToDecimalPtr(row.LayStake),
		Liability:     numericToDecimalPtr(row.Liability),
		BetCategory:   domain.BetCategory(row.BetCategory),
		Outcome:       domain.Outcome(row.Outcome),
		Settled:       row.Settled,
		CreatedAt:     row.CreatedAt.Time,
	}
}
