package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
)

// ErrLedgerStopped is returned once the balance loop has exited.
var ErrLedgerStopped = errors.New("balance ledger is not running")

// BalanceUseCase owns the session ledger. Every read and write goes through
// a single goroutine (Run), so the ledger itself needs no locking.
type BalanceUseCase struct {
	ledger   *domain.Ledger
	requests chan balanceRequest
	stopped  chan struct{}
	metrics  MetricsRecorder
	logger   zerolog.Logger
}

type balanceRequest struct {
	increments []domain.Increment
	reply      chan balanceReply
}

type balanceReply struct {
	snapshot domain.Ledger
	err      error
}

// NewBalanceUseCase creates a new BalanceUseCase. metrics may be nil.
func NewBalanceUseCase(ledger *domain.Ledger, metrics MetricsRecorder, logger zerolog.Logger) *BalanceUseCase {
	if ledger == nil {
		ledger = domain.NewLedger()
	}

	return &BalanceUseCase{
		ledger:   ledger,
		requests: make(chan balanceRequest),
		stopped:  make(chan struct{}),
		metrics:  metrics,
		logger:   logger,
	}
}

// Run serves ledger requests until ctx is cancelled. It must be called exactly once.
func (uc *BalanceUseCase) Run(ctx context.Context) error {
	defer close(uc.stopped)

	uc.logger.Info().Msg("balance ledger started")

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info().Msg("balance ledger stopped")
			return ctx.Err()
		case req := <-uc.requests:
			req.reply <- uc.apply(req.increments)
		}
	}
}

// apply validates every target before touching the ledger, so a batch is
// applied entirely or not at all.
func (uc *BalanceUseCase) apply(increments []domain.Increment) balanceReply {
	for _, inc := range increments {
		if !inc.Target.Valid() {
			return balanceReply{snapshot: uc.ledger.Snapshot(), err: fmt.Errorf("%w: %d", domain.ErrInvalidTarget, uint8(inc.Target))}
		}
	}

	for _, inc := range increments {
		if err := uc.ledger.Increment(inc.Amount, inc.Target); err != nil {
			return balanceReply{snapshot: uc.ledger.Snapshot(), err: err}
		}

		if uc.metrics != nil {
			uc.metrics.ObserveIncrement(inc.Target, inc.Amount.InexactFloat64())
		}

		uc.logger.Debug().
			Str("target", inc.Target.String()).
			Str("amount", inc.Amount.String()).
			Msg("ledger incremented")
	}

	snapshot := uc.ledger.Snapshot()
	if uc.metrics != nil && len(increments) > 0 {
		uc.metrics.ObserveBalances(snapshot)
	}

	return balanceReply{snapshot: snapshot}
}

func (uc *BalanceUseCase) submit(ctx context.Context, increments []domain.Increment) (domain.Ledger, error) {
	req := balanceRequest{
		increments: increments,
		reply:      make(chan balanceReply, 1),
	}

	select {
	case uc.requests <- req:
	case <-uc.stopped:
		return domain.Ledger{}, ErrLedgerStopped
	case <-ctx.Done():
		return domain.Ledger{}, ctx.Err()
	}

	select {
	case reply := <-req.reply:
		return reply.snapshot, reply.err
	case <-ctx.Done():
		return domain.Ledger{}, ctx.Err()
	}
}

// Increment adds amount to one total and returns the resulting balances.
func (uc *BalanceUseCase) Increment(ctx context.Context, amount decimal.Decimal, target domain.BalanceTarget) (domain.Ledger, error) {
	return uc.submit(ctx, []domain.Increment{{Amount: amount, Target: target}})
}

// Apply adds a batch of increments in one step; readers never see part of a batch.
func (uc *BalanceUseCase) Apply(ctx context.Context, increments []domain.Increment) (domain.Ledger, error) {
	return uc.submit(ctx, increments)
}

// Balances returns the current totals.
func (uc *BalanceUseCase) Balances(ctx context.Context) (domain.Ledger, error) {
	return uc.submit(ctx, nil)
}
