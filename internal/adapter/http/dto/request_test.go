package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
)

func TestCreateMatchRequest_ToUseCaseInput(t *testing.T) {
	kickOff := time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC)
	draw := "draw"

	tests := []struct {
		name        string
		request     *CreateMatchRequest
		wantOutcome *domain.Outcome
		expectError error
	}{
		{
			name:    "no outcome",
			request: &CreateMatchRequest{HomeTeam: "Arsenal", AwayTeam: "Chelsea", MatchDate: kickOff},
		},
		{
			name:        "outcome parsed case-insensitively",
			request:     &CreateMatchRequest{HomeTeam: "Arsenal", AwayTeam: "Chelsea", MatchDate: kickOff, Outcome: &draw},
			wantOutcome: func() *domain.Outcome { o := domain.OutcomeDraw; return &o }(),
		},
		{
			name:        "unknown outcome",
			request:     &CreateMatchRequest{Outcome: func() *string { s := "WIN"; return &s }()},
			expectError: domain.ErrInvalidOutcome,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.request.ToUseCaseInput()
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Fatalf("expected %v, got %v", tt.expectError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got.Outcome == nil) != (tt.wantOutcome == nil) {
				t.Fatalf("outcome mismatch: got %v want %v", got.Outcome, tt.wantOutcome)
			}
			if got.Outcome != nil && *got.Outcome != *tt.wantOutcome {
				t.Fatalf("expected outcome %s, got %s", *tt.wantOutcome, *got.Outcome)
			}
			if !got.MatchDate.Equal(kickOff) && tt.request.HomeTeam != "" {
				t.Fatalf("expected match date to carry over")
			}
		})
	}
}

func TestCreateBetRequest_ToUseCaseInput(t *testing.T) {
	var req CreateBetRequest
	body := `{"offer_id":"o1","match_id":"m1","bet_category":"qualifying","outcome":"HOME","back_odds":"2.5","back_stake":"10"}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BetCategory != domain.BetCategoryQualifying || got.Outcome != domain.OutcomeHome {
		t.Fatalf("unexpected enums: %+v", got)
	}
	if got.BackOdds == nil || !got.BackOdds.Equal(decimal.RequireFromString("2.5")) {
		t.Fatalf("expected back odds 2.5, got %v", got.BackOdds)
	}
	if got.LayStake != nil {
		t.Fatalf("expected lay stake to stay nil")
	}

	req.BetCategory = "BONUS"
	if _, err := req.ToUseCaseInput(); !errors.Is(err, domain.ErrInvalidBetCategory) {
		t.Fatalf("expected ErrInvalidBetCategory, got %v", err)
	}
}

func TestUpdateBetRequest_ToUseCaseInput(t *testing.T) {
	away := "away"
	req := &UpdateBetRequest{Outcome: &away}

	got, err := req.ToUseCaseInput("b1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "b1" || got.Outcome == nil || *got.Outcome != domain.OutcomeAway || got.BetCategory != nil {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestCreateAccumulatorRequest_ToUseCaseInput(t *testing.T) {
	req := &CreateAccumulatorRequest{
		OfferID:     "o1",
		BetCategory: "FREE",
		BackOdds:    decimal.RequireFromString("3.5"),
		Legs: []AccumulatorLegRequest{
			{MatchID: "m1", Outcome: "home"},
			{MatchID: "m2", Outcome: "away"},
		},
	}

	got, err := req.ToUseCaseInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Legs) != 2 || got.Legs[1].Outcome != domain.OutcomeAway {
		t.Fatalf("unexpected legs: %+v", got.Legs)
	}

	req.Legs[0].Outcome = "nope"
	if _, err := req.ToUseCaseInput(); !errors.Is(err, domain.ErrInvalidOutcome) {
		t.Fatalf("expected ErrInvalidOutcome, got %v", err)
	}
}

func TestIncrementBalancesRequest_Decode(t *testing.T) {
	var req IncrementBalancesRequest
	body := `{"increments":[{"amount":"-20","target":"exchange"},{"amount":"20.5","target":"Bookmaker"}]}`
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	increments := req.ToDomain()
	if len(increments) != 2 {
		t.Fatalf("expected two increments, got %d", len(increments))
	}
	if increments[0].Target != domain.TargetExchange || !increments[0].Amount.Equal(decimal.NewFromInt(-20)) {
		t.Fatalf("unexpected first increment %+v", increments[0])
	}
	if increments[1].Target != domain.TargetBookmaker {
		t.Fatalf("expected bookmaker target, got %s", increments[1].Target)
	}

	bad := `{"increments":[{"amount":"1","target":"wallet"}]}`
	if err := json.Unmarshal([]byte(bad), &req); !errors.Is(err, domain.ErrInvalidTarget) {
		t.Fatalf("expected ErrInvalidTarget on unknown target, got %v", err)
	}
}
