package usecase

import (
	"context"
	"time"

	"github.com/iho/matchedbet/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// BookmakerRepository defines data access for bookmakers.
type BookmakerRepository interface {
	Create(ctx context.Context, bookmaker *domain.Bookmaker) error
	GetByID(ctx context.Context, id string) (*domain.Bookmaker, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Bookmaker, error)
	Update(ctx context.Context, bookmaker *domain.Bookmaker) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// OfferRepository defines data access for bookmaker offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.BookmakerOffer) error
	GetByID(ctx context.Context, id string) (*domain.BookmakerOffer, error)
	ListByBookmaker(ctx context.Context, bookmakerID string) ([]*domain.BookmakerOffer, error)
	Update(ctx context.Context, offer *domain.BookmakerOffer) error
	Delete(ctx context.Context, id string) error
}

// MatchRepository defines data access for matches.
type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id string) (*domain.Match, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Match, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Match, error)
	Update(ctx context.Context, match *domain.Match) error
}

// BetRepository defines data access for bets.
type BetRepository interface {
	Create(ctx context.Context, bet *domain.Bet) error
	CreateTx(ctx context.Context, tx Transaction, bet *domain.Bet) error
	GetByID(ctx context.Context, id string) (*domain.Bet, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Bet, error)
	ListByOffer(ctx context.Context, offerID string) ([]*domain.Bet, error)
	ListByAccumulator(ctx context.Context, accumulatorID string) ([]*domain.Bet, error)
	Update(ctx context.Context, bet *domain.Bet) error
	MarkSettled(ctx context.Context, tx Transaction, id string) error
	MarkAccumulatorLegsSettled(ctx context.Context, tx Transaction, accumulatorID string) error
	CountOpen(ctx context.Context) (int64, error)
}

// AccumulatorRepository defines data access for accumulators.
type AccumulatorRepository interface {
	CreateTx(ctx context.Context, tx Transaction, acc *domain.Accumulator) error
	GetByID(ctx context.Context, id string) (*domain.Accumulator, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Accumulator, error)
	ListByOffer(ctx context.Context, offerID string) ([]*domain.Accumulator, error)
	MarkSettled(ctx context.Context, tx Transaction, id string) error
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage errors.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release removes a key whose request failed.
	Release(ctx context.Context, key string) error
}

// MetricsRecorder receives ledger and settlement observations.
type MetricsRecorder interface {
	ObserveIncrement(target domain.BalanceTarget, amount float64)
	ObserveBalances(ledger domain.Ledger)
	ObserveSettlement(s domain.Settlement)
	ObserveSettlementError(kind domain.BetType)
}
