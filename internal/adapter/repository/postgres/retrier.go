package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Settlement transactions lock the bet or accumulator row, so two settles of
// the same subject can deadlock or fail serialization. Both are safe to rerun
// from the top because nothing was committed.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"

	// retryReasonConnection labels connection failures pgconn marks safe to retry.
	retryReasonConnection = "connection"
)

// RetryObserver counts reruns of settlement transactions.
type RetryObserver interface {
	ObserveSettlementRetry(reason string)
}

// RetrierConfig bounds how long a settlement keeps retrying. Zero fields take
// the defaults of DefaultRetrierConfig.
type RetrierConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// DefaultRetrierConfig returns the limits used by the server.
func DefaultRetrierConfig() RetrierConfig {
	return RetrierConfig{
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		MaxElapsedTime:  10 * time.Second,
	}
}

func (c RetrierConfig) withDefaults() RetrierConfig {
	d := DefaultRetrierConfig()
	if c.MaxRetries <= 0 {
		c.MaxRetries = d.MaxRetries
	}
	if c.InitialInterval <= 0 {
		c.InitialInterval = d.InitialInterval
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = d.MaxInterval
	}
	if c.MaxElapsedTime <= 0 {
		c.MaxElapsedTime = d.MaxElapsedTime
	}
	return c
}

// Retrier implements usecase.Retrier for settlement transactions.
type Retrier struct {
	cfg      RetrierConfig
	observer RetryObserver
	logger   zerolog.Logger
}

// NewRetrier creates a Retrier. observer may be nil.
func NewRetrier(cfg RetrierConfig, observer RetryObserver, logger zerolog.Logger) *Retrier {
	return &Retrier{
		cfg:      cfg.withDefaults(),
		observer: observer,
		logger:   logger,
	}
}

// Retry reruns operation on deadlocks, serialization failures and connection
// errors raised before anything reached the server. Other errors, such as a
// bet that is already settled, are returned after the first attempt.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.cfg.InitialInterval
	b.MaxInterval = r.cfg.MaxInterval
	b.MaxElapsedTime = r.cfg.MaxElapsedTime

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.cfg.MaxRetries)), ctx)

	attempt := 0
	return backoff.RetryNotify(func() error {
		attempt++
		err := operation()
		if err == nil {
			return nil
		}
		if retryReason(err) == "" {
			return backoff.Permanent(err)
		}
		return err
	}, policy, func(err error, wait time.Duration) {
		reason := retryReason(err)
		if r.observer != nil {
			r.observer.ObserveSettlementRetry(reason)
		}
		r.logger.Warn().
			Err(err).
			Str("reason", reason).
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("settlement transaction failed, retrying")
	})
}

// retryReason names why err may be retried, or returns "" when it may not.
func retryReason(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrDeadlock, pgErrSerializationFailure:
			return pgErr.Code
		}
		return ""
	}
	if pgconn.SafeToRetry(err) {
		return retryReasonConnection
	}
	return ""
}
