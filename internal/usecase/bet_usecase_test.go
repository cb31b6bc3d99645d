package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
	"github.com/iho/matchedbet/internal/usecase/mocks"
)

func newBetUseCase(t *testing.T) (*usecase.BetUseCase, *mocks.MockBetRepository, *mocks.MockOfferRepository, *mocks.MockMatchRepository) {
	t.Helper()

	uc, bets, offers, matches, _ := newCachedBetUseCase(t)
	return uc, bets, offers, matches
}

func newCachedBetUseCase(t *testing.T) (*usecase.BetUseCase, *mocks.MockBetRepository, *mocks.MockOfferRepository, *mocks.MockMatchRepository, *mocks.MockCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	bets := mocks.NewMockBetRepository(ctrl)
	offers := mocks.NewMockOfferRepository(ctrl)
	matches := mocks.NewMockMatchRepository(ctrl)
	cache := mocks.NewMockCache()

	return usecase.NewBetUseCase(bets, offers, matches, mocks.NewMockIDGenerator(), cache), bets, offers, matches, cache
}

func TestBetUseCase_CreateBet(t *testing.T) {
	uc, bets, offers, matches, cache := newCachedBetUseCase(t)

	offers.EXPECT().GetByID(gomock.Any(), "o1").Return(&domain.BookmakerOffer{ID: "o1", BookmakerID: "b1"}, nil)
	matches.EXPECT().GetByID(gomock.Any(), "m1").Return(&domain.Match{ID: "m1"}, nil)
	bets.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, bet *domain.Bet) error {
		assert.False(t, bet.IsAccumulatorLeg())
		assert.False(t, bet.Settled)
		return nil
	})

	bet, err := uc.CreateBet(context.Background(), usecase.CreateBetInput{
		OfferID:     "o1",
		MatchID:     "m1",
		BetCategory: domain.BetCategoryQualifying,
		Outcome:     domain.OutcomeHome,
		BackOdds:    ptr(dec("2.5")),
		BackStake:   ptr(dec("10")),
	})
	require.NoError(t, err)
	assert.Equal(t, "id-1", bet.ID)
	assert.Nil(t, bet.LayStake)
	assert.Equal(t, 1, cache.Deletes)
}

func TestBetUseCase_CreateBet_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateBetInput
		expectError error
	}{
		{
			name:        "bad category",
			input:       usecase.CreateBetInput{BetCategory: "BONUS", Outcome: domain.OutcomeHome},
			expectError: domain.ErrInvalidBetCategory,
		},
		{
			name:        "bad outcome",
			input:       usecase.CreateBetInput{BetCategory: domain.BetCategoryFree, Outcome: "WIN"},
			expectError: domain.ErrInvalidOutcome,
		},
		{
			name:        "odds of one",
			input:       usecase.CreateBetInput{BetCategory: domain.BetCategoryFree, Outcome: domain.OutcomeDraw, LayOdds: ptr(dec("1"))},
			expectError: domain.ErrInvalidOdds,
		},
		{
			name:        "stake finer than a penny",
			input:       usecase.CreateBetInput{BetCategory: domain.BetCategoryQualifying, Outcome: domain.OutcomeHome, BackStake: ptr(dec("10.005"))},
			expectError: domain.ErrInvalidStake,
		},
		{
			name:        "zero stake",
			input:       usecase.CreateBetInput{BetCategory: domain.BetCategoryFree, Outcome: domain.OutcomeDraw, BackStake: ptr(dec("0"))},
			expectError: domain.ErrInvalidStake,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _, _ := newBetUseCase(t)
			_, err := uc.CreateBet(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.expectError)
		})
	}
}

func TestBetUseCase_UpdateBet(t *testing.T) {
	t.Run("open bet", func(t *testing.T) {
		uc, bets, offers, _, cache := newCachedBetUseCase(t)
		existing := &domain.Bet{ID: "b1", OfferID: "o1", BetCategory: domain.BetCategoryQualifying, Outcome: domain.OutcomeHome}

		bets.EXPECT().GetByID(gomock.Any(), "b1").Return(existing, nil)
		bets.EXPECT().Update(gomock.Any(), existing).Return(nil)
		offers.EXPECT().GetByID(gomock.Any(), "o1").Return(&domain.BookmakerOffer{ID: "o1", BookmakerID: "bk1"}, nil)

		bet, err := uc.UpdateBet(context.Background(), usecase.UpdateBetInput{
			ID:        "b1",
			LayOdds:   ptr(dec("3.2")),
			LayStake:  ptr(dec("9.5")),
			Liability: ptr(dec("20.9")),
		})
		require.NoError(t, err)
		assert.True(t, bet.LayOdds.Equal(dec("3.2")))
		assert.Equal(t, 1, cache.Deletes)
	})

	t.Run("settled bet", func(t *testing.T) {
		uc, bets, _, _ := newBetUseCase(t)
		bets.EXPECT().GetByID(gomock.Any(), "b1").Return(&domain.Bet{ID: "b1", Settled: true}, nil)

		_, err := uc.UpdateBet(context.Background(), usecase.UpdateBetInput{ID: "b1", Outcome: ptr(domain.OutcomeAway)})
		assert.ErrorIs(t, err, usecase.ErrBetSettled)
	})
}

func TestBetUseCase_GetBet(t *testing.T) {
	uc, bets, _, matches := newBetUseCase(t)

	bets.EXPECT().GetByID(gomock.Any(), "b1").Return(&domain.Bet{ID: "b1", MatchID: "m1"}, nil)
	matches.EXPECT().GetByID(gomock.Any(), "m1").Return(&domain.Match{ID: "m1", HomeTeam: "Arsenal"}, nil)

	bwm, err := uc.GetBet(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", bwm.Match.HomeTeam)
}
