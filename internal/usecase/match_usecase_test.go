package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
	"github.com/iho/matchedbet/internal/usecase/mocks"
)

func TestMatchUseCase_CreateMatch(t *testing.T) {
	kickOff := time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       usecase.CreateMatchInput
		expectError error
	}{
		{
			name:  "valid",
			input: usecase.CreateMatchInput{HomeTeam: "Arsenal", AwayTeam: "Chelsea", MatchDate: kickOff},
		},
		{
			name:  "with result",
			input: usecase.CreateMatchInput{HomeTeam: "Arsenal", AwayTeam: "Chelsea", MatchDate: kickOff, Outcome: ptr(domain.OutcomeDraw)},
		},
		{
			name:        "same teams",
			input:       usecase.CreateMatchInput{HomeTeam: "Arsenal", AwayTeam: "Arsenal", MatchDate: kickOff},
			expectError: domain.ErrSameTeams,
		},
		{
			name:        "missing team",
			input:       usecase.CreateMatchInput{HomeTeam: "Arsenal", MatchDate: kickOff},
			expectError: domain.ErrInvalidName,
		},
		{
			name:        "bad outcome",
			input:       usecase.CreateMatchInput{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Outcome: ptr(domain.Outcome("WIN"))},
			expectError: domain.ErrInvalidOutcome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockMatchRepository(ctrl)
			uc := usecase.NewMatchUseCase(repo, mocks.NewMockIDGenerator(), nil)

			if tt.expectError == nil {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			}

			match, err := uc.CreateMatch(context.Background(), tt.input)
			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, kickOff, match.MatchDate)
			assert.Equal(t, tt.input.Outcome != nil, match.Finished())
		})
	}
}

func TestMatchUseCase_SetOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMatchRepository(ctrl)
	uc := usecase.NewMatchUseCase(repo, mocks.NewMockIDGenerator(), nil)

	existing := &domain.Match{ID: "m1", HomeTeam: "Arsenal", AwayTeam: "Chelsea"}
	repo.EXPECT().GetByID(gomock.Any(), "m1").Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	match, err := uc.SetOutcome(context.Background(), "m1", domain.OutcomeAway)
	require.NoError(t, err)
	require.True(t, match.Finished())
	assert.Equal(t, domain.OutcomeAway, *match.Outcome)

	_, err = uc.SetOutcome(context.Background(), "m1", domain.Outcome("nope"))
	assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
}

func TestMatchUseCase_UpdateMatch_RejectsSameTeams(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockMatchRepository(ctrl)
	uc := usecase.NewMatchUseCase(repo, mocks.NewMockIDGenerator(), nil)

	repo.EXPECT().GetByID(gomock.Any(), "m1").Return(&domain.Match{ID: "m1", HomeTeam: "Arsenal", AwayTeam: "Chelsea"}, nil)

	_, err := uc.UpdateMatch(context.Background(), usecase.UpdateMatchInput{ID: "m1", AwayTeam: ptr("Arsenal")})
	assert.ErrorIs(t, err, domain.ErrSameTeams)
}
