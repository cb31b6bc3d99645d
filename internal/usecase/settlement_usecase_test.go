package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
	"github.com/iho/matchedbet/internal/usecase/mocks"
)

func ptr[T any](v T) *T {
	return &v
}

type settlementFixture struct {
	uc       *usecase.SettlementUseCase
	bets     *mocks.MockBetRepository
	accs     *mocks.MockAccumulatorRepository
	matches  *mocks.MockMatchRepository
	outbox   *mocks.MockOutboxRepository
	tx       *mocks.MockTransaction
	retrier  *mocks.MockRetrier
	metrics  *mocks.MockMetricsRecorder
	balances *usecase.BalanceUseCase
}

func newSettlementFixture(t *testing.T) *settlementFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &settlementFixture{
		bets:    mocks.NewMockBetRepository(ctrl),
		accs:    mocks.NewMockAccumulatorRepository(ctrl),
		matches: mocks.NewMockMatchRepository(ctrl),
		outbox:  mocks.NewMockOutboxRepository(),
		tx:      &mocks.MockTransaction{},
		retrier: &mocks.MockRetrier{},
		metrics: &mocks.MockMetricsRecorder{},
	}
	f.balances = startBalances(t, nil)

	txManager := &mocks.MockTransactionManager{
		BeginFunc: func(ctx context.Context) (usecase.Transaction, error) { return f.tx, nil },
	}

	f.uc = usecase.NewSettlementUseCase(usecase.SettlementUseCaseConfig{
		TxManager:       txManager,
		BetRepo:         f.bets,
		AccumulatorRepo: f.accs,
		MatchRepo:       f.matches,
		OutboxRepo:      f.outbox,
		Retrier:         f.retrier,
		Balances:        f.balances,
		IDGen:           mocks.NewMockIDGenerator(),
		Metrics:         f.metrics,
		Logger:          zerolog.Nop(),
	})

	return f
}

func openBet() *domain.Bet {
	return &domain.Bet{
		ID:          "bet-1",
		OfferID:     "offer-1",
		MatchID:     "match-1",
		BetCategory: domain.BetCategoryQualifying,
		Outcome:     domain.OutcomeHome,
		BackOdds:    ptr(dec("3.0")),
		BackStake:   ptr(dec("10")),
		LayOdds:     ptr(dec("3.1")),
		LayStake:    ptr(dec("9.68")),
		Liability:   ptr(dec("20.33")),
	}
}

func TestSettlementUseCase_SettleBet_BackWins(t *testing.T) {
	ctx := context.Background()
	f := newSettlementFixture(t)
	bet := openBet()

	f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), f.tx, "bet-1").Return(bet, nil)
	f.matches.EXPECT().GetByID(gomock.Any(), "match-1").
		Return(&domain.Match{ID: "match-1", Outcome: ptr(domain.OutcomeHome)}, nil)
	f.bets.EXPECT().MarkSettled(gomock.Any(), f.tx, "bet-1").Return(nil)

	result, err := f.uc.SettleBet(ctx, "bet-1")
	require.NoError(t, err)

	assert.Equal(t, domain.BetSideBack, result.Settlement.Winner)
	assertLedger(t, result.Balances, "-20.33", "20", "-0.33")
	assert.True(t, f.tx.Committed)
	assert.Equal(t, 1, f.retrier.Calls)
	assert.Len(t, f.metrics.Settlements, 1)

	events := f.outbox.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeBetSettled, events[0].EventType)
	assert.Equal(t, domain.AggregateTypeBet, events[0].AggregateType)
	assert.Equal(t, "bet-1", events[0].AggregateID)
	assert.Equal(t, "-0.33", events[0].Payload["profit"])
}

func TestSettlementUseCase_SettleBet_LayWins(t *testing.T) {
	f := newSettlementFixture(t)
	bet := openBet()

	f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "bet-1").Return(bet, nil)
	f.matches.EXPECT().GetByID(gomock.Any(), "match-1").
		Return(&domain.Match{ID: "match-1", Outcome: ptr(domain.OutcomeDraw)}, nil)
	f.bets.EXPECT().MarkSettled(gomock.Any(), gomock.Any(), "bet-1").Return(nil)

	result, err := f.uc.SettleBet(context.Background(), "bet-1")
	require.NoError(t, err)

	assert.Equal(t, domain.BetSideLay, result.Settlement.Winner)
	assertLedger(t, result.Balances, "9.68", "-10", "-0.32")
}

func TestSettlementUseCase_SettleBet_MatchNotFinished(t *testing.T) {
	f := newSettlementFixture(t)

	f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "bet-1").Return(openBet(), nil)
	f.matches.EXPECT().GetByID(gomock.Any(), "match-1").Return(&domain.Match{ID: "match-1"}, nil)

	_, err := f.uc.SettleBet(context.Background(), "bet-1")
	require.ErrorIs(t, err, domain.ErrMatchNotFinished)

	assert.False(t, f.tx.Committed)
	assert.Empty(t, f.outbox.Events())
	assert.Equal(t, 1, f.metrics.SettlementErrors)

	l, err := f.balances.Balances(context.Background())
	require.NoError(t, err)
	assertLedger(t, l, "0", "0", "0")
}

func TestSettlementUseCase_SettleBet_AlreadySettled(t *testing.T) {
	f := newSettlementFixture(t)
	bet := openBet()
	bet.Settled = true

	f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "bet-1").Return(bet, nil)
	f.matches.EXPECT().GetByID(gomock.Any(), "match-1").
		Return(&domain.Match{ID: "match-1", Outcome: ptr(domain.OutcomeHome)}, nil)

	_, err := f.uc.SettleBet(context.Background(), "bet-1")
	assert.ErrorIs(t, err, domain.ErrBetAlreadySettled)
}

func TestSettlementUseCase_SettleBet_NotFound(t *testing.T) {
	f := newSettlementFixture(t)

	f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "missing").Return(nil, domain.ErrBetNotFound)

	_, err := f.uc.SettleBet(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrBetNotFound)
}

func TestSettlementUseCase_SettleBet_OutboxFailureRollsBack(t *testing.T) {
	f := newSettlementFixture(t)
	outboxErr := errors.New("outbox down")
	f.outbox.CreateFunc = func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
		return outboxErr
	}

	f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "bet-1").Return(openBet(), nil)
	f.matches.EXPECT().GetByID(gomock.Any(), "match-1").
		Return(&domain.Match{ID: "match-1", Outcome: ptr(domain.OutcomeHome)}, nil)
	f.bets.EXPECT().MarkSettled(gomock.Any(), gomock.Any(), "bet-1").Return(nil)

	_, err := f.uc.SettleBet(context.Background(), "bet-1")
	require.ErrorIs(t, err, outboxErr)
	assert.False(t, f.tx.Committed)
}

func TestSettlementUseCase_SettleBet_RetriesTransientFailure(t *testing.T) {
	f := newSettlementFixture(t)
	transient := errors.New("deadlock detected")
	f.retrier.RetryFunc = func(ctx context.Context, op func() error) error {
		if err := op(); !errors.Is(err, transient) {
			return err
		}
		return op()
	}

	gomock.InOrder(
		f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "bet-1").Return(nil, transient),
		f.bets.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "bet-1").Return(openBet(), nil),
	)
	f.matches.EXPECT().GetByID(gomock.Any(), "match-1").
		Return(&domain.Match{ID: "match-1", Outcome: ptr(domain.OutcomeHome)}, nil)
	f.bets.EXPECT().MarkSettled(gomock.Any(), gomock.Any(), "bet-1").Return(nil)

	result, err := f.uc.SettleBet(context.Background(), "bet-1")
	require.NoError(t, err)
	assert.True(t, result.Settlement.Profit.Equal(dec("-0.33")))
}

func TestSettlementUseCase_SettleAccumulator(t *testing.T) {
	f := newSettlementFixture(t)
	acc := &domain.Accumulator{
		ID:          "acc-1",
		OfferID:     "offer-1",
		BetCategory: domain.BetCategoryQualifying,
		BackOdds:    dec("3.5"),
		BackStake:   dec("10"),
		LayOdds:     dec("3.6"),
		LayStake:    dec("9.81"),
		Liability:   dec("25.41"),
	}
	legs := []*domain.Bet{
		{ID: "leg-1", MatchID: "m1", AccumulatorID: ptr("acc-1"), Outcome: domain.OutcomeHome},
		{ID: "leg-2", MatchID: "m2", AccumulatorID: ptr("acc-1"), Outcome: domain.OutcomeAway},
	}

	f.accs.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "acc-1").Return(acc, nil)
	f.bets.EXPECT().ListByAccumulator(gomock.Any(), "acc-1").Return(legs, nil)
	f.matches.EXPECT().GetByIDs(gomock.Any(), []string{"m1", "m2"}).Return([]*domain.Match{
		{ID: "m1", Outcome: ptr(domain.OutcomeHome)},
		{ID: "m2", Outcome: ptr(domain.OutcomeAway)},
	}, nil)
	f.accs.EXPECT().MarkSettled(gomock.Any(), gomock.Any(), "acc-1").Return(nil)
	f.bets.EXPECT().MarkAccumulatorLegsSettled(gomock.Any(), gomock.Any(), "acc-1").Return(nil)

	result, err := f.uc.SettleAccumulator(context.Background(), "acc-1")
	require.NoError(t, err)

	assert.Equal(t, domain.BetTypeAccumulator, result.Settlement.Type)
	assertLedger(t, result.Balances, "-25.41", "25", "-0.41")

	events := f.outbox.Events()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventTypeAccumulatorSettled, events[0].EventType)
}

func TestSettlementUseCase_SettleAccumulator_OneLegLoses(t *testing.T) {
	f := newSettlementFixture(t)
	acc := &domain.Accumulator{
		ID:          "acc-1",
		BetCategory: domain.BetCategoryFree,
		BackOdds:    dec("3.5"),
		BackStake:   dec("10"),
		LayOdds:     dec("3.6"),
		LayStake:    dec("7"),
		Liability:   dec("18.2"),
	}
	legs := []*domain.Bet{
		{ID: "leg-1", MatchID: "m1", AccumulatorID: ptr("acc-1"), Outcome: domain.OutcomeHome},
		{ID: "leg-2", MatchID: "m2", AccumulatorID: ptr("acc-1"), Outcome: domain.OutcomeHome},
	}

	f.accs.EXPECT().GetByIDForUpdate(gomock.Any(), gomock.Any(), "acc-1").Return(acc, nil)
	f.bets.EXPECT().ListByAccumulator(gomock.Any(), "acc-1").Return(legs, nil)
	f.matches.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]*domain.Match{
		{ID: "m1", Outcome: ptr(domain.OutcomeHome)},
		{ID: "m2", Outcome: ptr(domain.OutcomeDraw)},
	}, nil)
	f.accs.EXPECT().MarkSettled(gomock.Any(), gomock.Any(), "acc-1").Return(nil)
	f.bets.EXPECT().MarkAccumulatorLegsSettled(gomock.Any(), gomock.Any(), "acc-1").Return(nil)

	result, err := f.uc.SettleAccumulator(context.Background(), "acc-1")
	require.NoError(t, err)

	assert.Equal(t, domain.BetSideLay, result.Settlement.Winner)
	assertLedger(t, result.Balances, "7", "0", "7")
}
