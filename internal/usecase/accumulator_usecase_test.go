package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
	"github.com/iho/matchedbet/internal/usecase/mocks"
)

type accumulatorFixture struct {
	uc      *usecase.AccumulatorUseCase
	accs    *mocks.MockAccumulatorRepository
	bets    *mocks.MockBetRepository
	offers  *mocks.MockOfferRepository
	matches *mocks.MockMatchRepository
	tx      *mocks.MockTransaction
}

func newAccumulatorFixture(t *testing.T) *accumulatorFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &accumulatorFixture{
		accs:    mocks.NewMockAccumulatorRepository(ctrl),
		bets:    mocks.NewMockBetRepository(ctrl),
		offers:  mocks.NewMockOfferRepository(ctrl),
		matches: mocks.NewMockMatchRepository(ctrl),
		tx:      &mocks.MockTransaction{},
	}
	txManager := &mocks.MockTransactionManager{
		BeginFunc: func(ctx context.Context) (usecase.Transaction, error) { return f.tx, nil },
	}
	f.uc = usecase.NewAccumulatorUseCase(txManager, f.accs, f.bets, f.offers, f.matches, mocks.NewMockIDGenerator(), nil)

	return f
}

func accumulatorInput() usecase.CreateAccumulatorInput {
	return usecase.CreateAccumulatorInput{
		OfferID:     "o1",
		BetCategory: domain.BetCategoryQualifying,
		BackOdds:    dec("3.5"),
		BackStake:   dec("10"),
		LayOdds:     dec("3.6"),
		LayStake:    dec("9.81"),
		Liability:   dec("25.41"),
		Legs: []usecase.AccumulatorLegInput{
			{MatchID: "m1", Outcome: domain.OutcomeHome},
			{MatchID: "m2", Outcome: domain.OutcomeAway},
		},
	}
}

func TestAccumulatorUseCase_CreateAccumulator(t *testing.T) {
	f := newAccumulatorFixture(t)

	f.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(&domain.BookmakerOffer{ID: "o1"}, nil)
	f.matches.EXPECT().GetByIDs(gomock.Any(), []string{"m1", "m2"}).Return([]*domain.Match{{ID: "m1"}, {ID: "m2"}}, nil)
	f.accs.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
	f.bets.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx usecase.Transaction, bet *domain.Bet) error {
			require.NotNil(t, bet.AccumulatorID)
			assert.Equal(t, "id-1", *bet.AccumulatorID)
			assert.Nil(t, bet.BackOdds)
			return nil
		}).Times(2)

	result, err := f.uc.CreateAccumulator(context.Background(), accumulatorInput())
	require.NoError(t, err)

	assert.Equal(t, "id-1", result.Accumulator.ID)
	require.Len(t, result.Bets, 2)
	assert.Equal(t, "m2", result.Bets[1].Match.ID)
	assert.True(t, f.tx.Committed)
}

func TestAccumulatorUseCase_CreateAccumulator_LegFailureRollsBack(t *testing.T) {
	f := newAccumulatorFixture(t)
	rolledBack := false
	f.tx.RollbackFunc = func(ctx context.Context) error {
		rolledBack = true
		return nil
	}
	legErr := errors.New("insert failed")

	f.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(&domain.BookmakerOffer{ID: "o1"}, nil)
	f.matches.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]*domain.Match{{ID: "m1"}, {ID: "m2"}}, nil)
	f.accs.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.bets.EXPECT().CreateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(legErr)

	_, err := f.uc.CreateAccumulator(context.Background(), accumulatorInput())
	require.ErrorIs(t, err, legErr)
	assert.False(t, f.tx.Committed)
	assert.True(t, rolledBack)
}

func TestAccumulatorUseCase_CreateAccumulator_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*usecase.CreateAccumulatorInput)
		expectError error
	}{
		{
			name:        "no legs",
			mutate:      func(in *usecase.CreateAccumulatorInput) { in.Legs = nil },
			expectError: domain.ErrEmptyAccumulator,
		},
		{
			name:        "bad leg outcome",
			mutate:      func(in *usecase.CreateAccumulatorInput) { in.Legs[0].Outcome = "WIN" },
			expectError: domain.ErrInvalidOutcome,
		},
		{
			name:        "bad category",
			mutate:      func(in *usecase.CreateAccumulatorInput) { in.BetCategory = "" },
			expectError: domain.ErrInvalidBetCategory,
		},
		{
			name:        "bad odds",
			mutate:      func(in *usecase.CreateAccumulatorInput) { in.BackOdds = dec("0.5") },
			expectError: domain.ErrInvalidOdds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccumulatorFixture(t)
			input := accumulatorInput()
			tt.mutate(&input)

			_, err := f.uc.CreateAccumulator(context.Background(), input)
			assert.ErrorIs(t, err, tt.expectError)
		})
	}
}

func TestAccumulatorUseCase_CreateAccumulator_UnknownMatch(t *testing.T) {
	f := newAccumulatorFixture(t)

	f.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(&domain.BookmakerOffer{ID: "o1"}, nil)
	f.matches.EXPECT().GetByIDs(gomock.Any(), gomock.Any()).Return([]*domain.Match{{ID: "m1"}}, nil)

	_, err := f.uc.CreateAccumulator(context.Background(), accumulatorInput())
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}
