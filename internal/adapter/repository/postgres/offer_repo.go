package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/infrastructure/postgres/generated"
)

// OfferRepository implements usecase.OfferRepository.
type OfferRepository struct {
	queries *generated.Queries
}

// NewOfferRepository creates a new OfferRepository.
func NewOfferRepository(db generated.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: generated.New(db),
	}
}

// Create creates a new offer.
func (r *OfferRepository) Create(ctx context.Context, offer *domain.BookmakerOffer) error {
	return r.queries.CreateOffer(ctx, generated.CreateOfferParams{
		ID:                  offer.ID,
		BookmakerID:         offer.BookmakerID,
		Description:         offer.Description,
		TermsAndConditions:  offer.TermsAndConditions,
		QualifyingBetAmount: decimalToNumeric(offer.QualifyingBetAmount),
		FreeBetAmount:       decimalToNumeric(offer.FreeBetAmount),
		ExpiresInDays:       intPtrToInt4(offer.ExpiresInDays),
		StartedDate:         timePtrToPgTimestamptz(offer.StartedDate),
		CreatedAt:           timeToPgTimestamptz(offer.CreatedAt),
	})
}

// GetByID retrieves an offer by ID.
func (r *OfferRepository) GetByID(ctx context.Context, id string) (*domain.BookmakerOffer, error) {
	row, err := r.queries.GetOfferByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOfferNotFound
		}

		return nil, err
	}

	return rowToOffer(row), nil
}

// ListByBookmaker lists the offers of a bookmaker, oldest first.
func (r *OfferRepository) ListByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.BookmakerOffer, error) {
	rows, err := r.queries.ListOffersByBookmaker(ctx, bookmakerID)
	if err != nil {
		return nil, err
	}

	offers := make([]*domain.BookmakerOffer, 0, len(rows))
	for _, row := range rows {
		offers = append(offers, rowToOffer(row))
	}

	return offers, nil
}

// Update overwrites the mutable fields of an offer.
func (r *OfferRepository) Update(ctx context.Context, offer *domain.BookmakerOffer) error {
	n, err := r.queries.UpdateOffer(ctx, generated.UpdateOfferParams{
		ID:                  offer.ID,
		Description:         offer.Description,
		TermsAndConditions:  offer.TermsAndConditions,
		QualifyingBetAmount: decimalToNumeric(offer.QualifyingBetAmount),
		FreeBetAmount:       decimalToNumeric(offer.FreeBetAmount),
		ExpiresInDays:       intPtrToInt4(offer.ExpiresInDays),
		StartedDate:         timePtrToPgTimestamptz(offer.StartedDate),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOfferNotFound
	}

	return nil
}

// Delete removes an offer.
func (r *OfferRepository) Delete(ctx context.Context, id string) error {
	n, err := r.queries.DeleteOffer(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrOfferNotFound
	}

	return nil
}

func rowToOffer(row generated.BookmakerOffer) *domain.BookmakerOffer {
	return &domain.BookmakerOffer{
		ID:                  row.ID,
		BookmakerID:         row.BookmakerID,
		Description:         row.Description,
		TermsAndConditions:  row.TermsAndConditions,
		QualifyingBetAmount: numericToDecimal(row.QualifyingBetAmount),
		FreeBetAmount:       numericToDecimal(row.FreeBetAmount),
		ExpiresInDays:       int4ToIntPtr(row.ExpiresInDays),
		StartedDate:         pgTimestamptzToTimePtr(row.StartedDate),
		CreatedAt:           row.CreatedAt.Time,
	}
}
