package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/infrastructure/postgres/generated"
)

// MatchRepository implements usecase.MatchRepository.
type MatchRepository struct {
	queries *generated.Queries
}

// NewMatchRepository creates a new MatchRepository.
func NewMatchRepository(db generated.DBTX) *MatchRepository {
	return &MatchRepository{
		queries: generated.New(db),
	}
}

// Create creates a new match.
func (r *MatchRepository) Create(ctx context.Context, match *domain.Match) error {
	return r.queries.CreateMatch(ctx, generated.CreateMatchParams{
		ID:        match.ID,
		HomeTeam:  match.HomeTeam,
		AwayTeam:  match.AwayTeam,
		MatchDate: timeToPgTimestamptz(match.MatchDate),
		Outcome:   outcomeToText(match.Outcome),
		CreatedAt: timeToPgTimestamptz(match.CreatedAt),
	})
}

// GetByID retrieves a match by ID.
func (r *MatchRepository) GetByID(ctx context.Context, id string) (*domain.Match, error) {
	row, err := r.queries.GetMatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}

		return nil, err
	}

	return rowToMatch(row), nil
}

// GetByIDs retrieves the matches with the given IDs. Unknown IDs are skipped.
func (r *MatchRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Match, error) {
	rows, err := r.queries.GetMatchesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, rowToMatch(row))
	}

	return matches, nil
}

// List lists matches, latest kick-off first.
func (r *MatchRepository) List(ctx context.Context, limit, offset int) ([]*domain.Match, error) {
	rows, err := r.queries.ListMatches(ctx, generated.ListMatchesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	matches := make([]*domain.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, rowToMatch(row))
	}

	return matches, nil
}

// Update overwrites a match, including its result.
func (r *MatchRepository) Update(ctx context.Context, match *domain.Match) error {
	n, err := r.queries.UpdateMatch(ctx, generated.UpdateMatchParams{
		ID:        match.ID,
		HomeTeam:  match.HomeTeam,
		AwayTeam:  match.AwayTeam,
		MatchDate: timeToPgTimestamptz(match.MatchDate),
		Outcome:   outcomeToText(match.Outcome),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrMatchNotFound
	}

	return nil
}

func outcomeToText(o *domain.Outcome) pgtype.Text {
	if o == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(*o), Valid: true}
}

func rowToMatch(row generated.Match) *domain.Match {
	var outcome *domain.Outcome
	if row.Outcome.Valid {
		o := domain.Outcome(row.Outcome.String)
		outcome = &o
	}

	return &domain.Match{
		ID:        row.ID,
		HomeTeam:  row.HomeTeam,
		AwayTeam:  row.AwayTeam,
		MatchDate: row.MatchDate.Time,
		Outcome:   outcome,
		CreatedAt: row.CreatedAt.Time,
	}
}
