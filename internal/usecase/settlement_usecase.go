package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
)

// BalanceApplier applies a batch of ledger increments in one step.
type BalanceApplier interface {
	Apply(ctx context.Context, increments []domain.Increment) (domain.Ledger, error)
}

// SettlementUseCase closes bets and accumulators and feeds the ledger.
type SettlementUseCase struct {
	txManager       TransactionManager
	betRepo         BetRepository
	accumulatorRepo AccumulatorRepository
	matchRepo       MatchRepository
	outboxRepo      OutboxRepository
	retrier         Retrier
	balances        BalanceApplier
	idGen           IDGenerator
	metrics         MetricsRecorder
	cache           *treeCache
	logger          zerolog.Logger
	commission      decimal.Decimal
}

// SettlementUseCaseConfig holds the collaborators of SettlementUseCase.
type SettlementUseCaseConfig struct {
	TxManager       TransactionManager
	BetRepo         BetRepository
	AccumulatorRepo AccumulatorRepository
	MatchRepo       MatchRepository
	OutboxRepo      OutboxRepository
	Retrier         Retrier
	Balances        BalanceApplier
	IDGen           IDGenerator
	Metrics         MetricsRecorder
	Cache           Cache
	Logger          zerolog.Logger
	// Commission is the exchange's cut of lay winnings, e.g. 0.02.
	Commission decimal.Decimal
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(cfg SettlementUseCaseConfig) *SettlementUseCase {
	return &SettlementUseCase{
		txManager:       cfg.TxManager,
		betRepo:         cfg.BetRepo,
		accumulatorRepo: cfg.AccumulatorRepo,
		matchRepo:       cfg.MatchRepo,
		outboxRepo:      cfg.OutboxRepo,
		retrier:         cfg.Retrier,
		balances:        cfg.Balances,
		idGen:           cfg.IDGen,
		metrics:         cfg.Metrics,
		cache:           newTreeCache(cfg.Cache, 0),
		logger:          cfg.Logger,
		commission:      cfg.Commission,
	}
}

// SettlementResult is a settlement together with the ledger after applying it.
type SettlementResult struct {
	Settlement domain.Settlement
	Balances   domain.Ledger
}

// SettleBet settles a single bet against its match result.
func (uc *SettlementUseCase) SettleBet(ctx context.Context, betID string) (*SettlementResult, error) {
	return uc.settle(ctx, domain.BetTypeSingle, func() (domain.Settlement, error) {
		return uc.settleBetTx(ctx, betID)
	})
}

// SettleAccumulator settles an accumulator and marks its legs settled.
func (uc *SettlementUseCase) SettleAccumulator(ctx context.Context, accumulatorID string) (*SettlementResult, error) {
	return uc.settle(ctx, domain.BetTypeAccumulator, func() (domain.Settlement, error) {
		return uc.settleAccumulatorTx(ctx, accumulatorID)
	})
}

func (uc *SettlementUseCase) settle(ctx context.Context, kind domain.BetType, txFn func() (domain.Settlement, error)) (*SettlementResult, error) {
	var settlement domain.Settlement

	run := func() error {
		s, err := txFn()
		if err != nil {
			return err
		}
		settlement = s
		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, run)
	} else {
		err = run()
	}
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.ObserveSettlementError(kind)
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSettlement(settlement)
	}
	uc.cache.invalidateAll(ctx)

	// The settlement is committed; the ledger only mirrors it for this session.
	balances, err := uc.balances.Apply(ctx, settlement.Increments())
	if err != nil {
		uc.logger.Error().Err(err).
			Str("subject_id", settlement.SubjectID).
			Msg("settlement committed but ledger update failed")
		return nil, err
	}

	uc.logger.Info().
		Str("subject_id", settlement.SubjectID).
		Str("type", string(settlement.Type)).
		Str("winner", string(settlement.Winner)).
		Str("profit", settlement.Profit.String()).
		Msg("settled")

	return &SettlementResult{Settlement: settlement, Balances: balances}, nil
}

func (uc *SettlementUseCase) settleBetTx(ctx context.Context, betID string) (domain.Settlement, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return domain.Settlement{}, err
	}
	defer tx.Rollback(ctx)

	bet, err := uc.betRepo.GetByIDForUpdate(ctx, tx, betID)
	if err != nil {
		return domain.Settlement{}, err
	}

	match, err := uc.matchRepo.GetByID(ctx, bet.MatchID)
	if err != nil {
		return domain.Settlement{}, err
	}

	s, err := domain.SettleBet(bet, match, uc.commission)
	if err != nil {
		return domain.Settlement{}, err
	}
	s.SettledAt = time.Now().UTC()

	if err := uc.betRepo.MarkSettled(ctx, tx, bet.ID); err != nil {
		return domain.Settlement{}, err
	}

	if err := uc.writeEvent(ctx, tx, s, domain.AggregateTypeBet, domain.EventTypeBetSettled); err != nil {
		return domain.Settlement{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Settlement{}, err
	}

	return s, nil
}

func (uc *SettlementUseCase) settleAccumulatorTx(ctx context.Context, accumulatorID string) (domain.Settlement, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return domain.Settlement{}, err
	}
	defer tx.Rollback(ctx)

	acc, err := uc.accumulatorRepo.GetByIDForUpdate(ctx, tx, accumulatorID)
	if err != nil {
		return domain.Settlement{}, err
	}

	legs, err := uc.betRepo.ListByAccumulator(ctx, accumulatorID)
	if err != nil {
		return domain.Settlement{}, err
	}

	builder := &treeBuilder{matchRepo: uc.matchRepo}
	matches, err := builder.matchesByID(ctx, collectMatchIDs(legs, nil))
	if err != nil {
		return domain.Settlement{}, err
	}

	s, err := domain.SettleAccumulator(acc, legs, matches, uc.commission)
	if err != nil {
		return domain.Settlement{}, err
	}
	s.SettledAt = time.Now().UTC()

	if err := uc.accumulatorRepo.MarkSettled(ctx, tx, acc.ID); err != nil {
		return domain.Settlement{}, err
	}
	if err := uc.betRepo.MarkAccumulatorLegsSettled(ctx, tx, acc.ID); err != nil {
		return domain.Settlement{}, err
	}

	if err := uc.writeEvent(ctx, tx, s, domain.AggregateTypeAccumulator, domain.EventTypeAccumulatorSettled); err != nil {
		return domain.Settlement{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Settlement{}, err
	}

	return s, nil
}

func (uc *SettlementUseCase) writeEvent(ctx context.Context, tx Transaction, s domain.Settlement, aggregateType, eventType string) error {
	if uc.outboxRepo == nil {
		return nil
	}

	return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   s.SubjectID,
		AggregateType: aggregateType,
		EventType:     eventType,
		Payload:       domain.NewSettlementEvent(s).ToMap(),
		CreatedAt:     s.SettledAt,
	})
}
