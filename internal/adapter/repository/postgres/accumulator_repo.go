package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/infrastructure/postgres/generated"
	"github.com/iho/matchedbet/internal/usecase"
)

// AccumulatorRepository implements usecase.AccumulatorRepository.
type AccumulatorRepository struct {
	queries *generated.Queries
}

// NewAccumulatorRepository creates a new AccumulatorRepository.
func NewAccumulatorRepository(db generated.DBTX) *AccumulatorRepository {
	return &AccumulatorRepository{
		queries: generated.New(db),
	}
}

// CreateTx creates an accumulator within a transaction.
func (r *AccumulatorRepository) CreateTx(ctx context.Context, tx usecase.Transaction, acc *domain.Accumulator) error {
	return txQueries(tx).CreateAccumulator(ctx, generated.CreateAccumulatorParams{
		ID:          acc.ID,
		OfferID:     acc.OfferID,
		BetCategory: string(acc.BetCategory),
		BackOdds:    decimalToNumeric(acc.BackOdds),
		BackStake:   decimalToNumeric(acc.BackStake),
		LayOdds:     decimalToNumeric(acc.LayOdds),
		LayStake:    decimalToNumeric(acc.LayStake),
		Liability:   decimalToNumeric(acc.Liability),
		Settled:     acc.Settled,
		CreatedAt:   timeToPgTimestamptz(acc.CreatedAt),
	})
}

// GetByID retrieves an accumulator by ID.
func (r *AccumulatorRepository) GetByID(ctx context.Context, id string) (*domain.Accumulator, error) {
	row, err := r.queries.GetAccumulatorByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccumulatorNotFound
		}

		return nil, err
	}

	return rowToAccumulator(row), nil
}

// GetByIDForUpdate retrieves an accumulator by ID with a FOR UPDATE lock.
func (r *AccumulatorRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Accumulator, error) {
	row, err := txQueries(tx).GetAccumulatorByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccumulatorNotFound
		}

		return nil, err
	}

	return rowToAccumulator(row), nil
}

// ListByOffer lists the accumulators of an offer.
func (r *AccumulatorRepository) ListByOffer(ctx context.Context, offerID string) ([]*domain.Accumulator, error) {
	rows, err := r.queries.ListAccumulatorsByOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	accs := make([]*domain.Accumulator, 0, len(rows))
	for _, row := range rows {
		accs = append(accs, rowToAccumulator(row))
	}

	return accs, nil
}

// MarkSettled flags an accumulator as settled.
func (r *AccumulatorRepository) MarkSettled(ctx context.Context, tx usecase.Transaction, id string) error {
	n, err := txQueries(tx).MarkAccumulatorSettled(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBetAlreadySettled
	}

	return nil
}

func rowToAccumulator(row generated.Accumulator) *domain.Accumulator {
	return &domain.Accumulator{
		ID:          row.ID,
		OfferID:     row.OfferID,
		BetCategory: domain.BetCategory(row.BetCategory),
		BackOdds:    numericToDecimal(row.BackOdds),
		BackStake:   numericToDecimal(row.BackStake),
		LayOdds:     numericToDecimal(row.LayOdds),
		LayStake:    numericToDecimal(row.LayStake),
		Liability:   numericToDecimal(row.Liability),
		Settled:     row.Settled,
		CreatedAt:   row.CreatedAt.Time,
	}
}
