package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/infrastructure/postgres/generated"
)

// BookmakerRepository implements usecase.BookmakerRepository.
type BookmakerRepository struct {
	queries *generated.Queries
}

// NewBookmakerRepository creates a new BookmakerRepository.
func NewBookmakerRepository(db generated.DBTX) *BookmakerRepository {
	return &BookmakerRepository{
		queries: generated.New(db),
	}
}

// Create creates a new bookmaker.
func (r *BookmakerRepository) Create(ctx context.Context, bookmaker *domain.Bookmaker) error {
	return r.queries.CreateBookmaker(ctx, generated.CreateBookmakerParams{
		ID:             bookmaker.ID,
		Name:           bookmaker.Name,
		Url:            bookmaker.URL,
		Logo:           bookmaker.Logo,
		InitialBalance: decimalPtrToNumeric(bookmaker.InitialBalance),
		CreatedAt:      timeToPgTimestamptz(bookmaker.CreatedAt),
	})
}

// GetByID retrieves a bookmaker by ID.
func (r *BookmakerRepository) GetByID(ctx context.Context, id string) (*domain.Bookmaker, error) {
	row, err := r.queries.GetBookmakerByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookmakerNotFound
		}

		return nil, err
	}

	return rowToBookmaker(row), nil
}

// List lists bookmakers with pagination, newest first.
func (r *BookmakerRepository) List(ctx context.Context, limit, offset int) ([]*domain.Bookmaker, error) {
	rows, err := r.queries.ListBookmakers(ctx, generated.ListBookmakersParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	bookmakers := make([]*domain.Bookmaker, 0, len(rows))
	for _, row := range rows {
		bookmakers = append(bookmakers, rowToBookmaker(row))
	}

	return bookmakers, nil
}

// Update overwrites the mutable fields of a bookmaker.
func (r *BookmakerRepository) Update(ctx context.Context, bookmaker *domain.Bookmaker) error {
	n, err := r.queries.UpdateBookmaker(ctx, generated.UpdateBookmakerParams{
		ID:             bookmaker.ID,
		Name:           bookmaker.Name,
		Url:            bookmaker.URL,
		Logo:           bookmaker.Logo,
		InitialBalance: decimalPtrToNumeric(bookmaker.InitialBalance),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBookmakerNotFound
	}

	return nil
}

// Delete removes a bookmaker and, by cascade, its offers and bets.
func (r *BookmakerRepository) Delete(ctx context.Context, id string) error {
	n, err := r.queries.DeleteBookmaker(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrBookmakerNotFound
	}

	return nil
}

// Count returns the number of bookmakers.
func (r *BookmakerRepository) Count(ctx context.Context) (int64, error) {
	return r.queries.CountBookmakers(ctx)
}

func rowToBookmaker(row generated.Bookmaker) *domain.Bookmaker {
	return &domain.Bookmaker{
		ID:             row.ID,
		Name:           row.Name,
		URL:            row.Url,
		Logo:           row.Logo,
		InitialBalance: numericToDecimalPtr(row.InitialBalance),
		CreatedAt:      row.CreatedAt.Time,
	}
}
