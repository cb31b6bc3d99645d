package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

func TestOfferFromDomain_ExpiresAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	days := 7
	offer := &domain.BookmakerOffer{ID: "o1", StartedDate: &start, ExpiresInDays: &days}

	resp := OfferFromDomain(offer)
	if resp.ExpiresAt == nil || !resp.ExpiresAt.Equal(start.AddDate(0, 0, 7)) {
		t.Fatalf("expected expiry a week after start, got %v", resp.ExpiresAt)
	}
}

func TestMatchFromDomain(t *testing.T) {
	outcome := domain.OutcomeHome
	resp := MatchFromDomain(&domain.Match{ID: "m1", Outcome: &outcome})
	if resp.Outcome == nil || *resp.Outcome != "HOME" {
		t.Fatalf("expected HOME outcome, got %v", resp.Outcome)
	}

	if MatchFromDomain(nil) != nil {
		t.Fatalf("expected nil match to map to nil")
	}
}

func TestBookmakerTreeFromDomain(t *testing.T) {
	accID := "a1"
	tree := &domain.BookmakerWithOffersBetsAndMatches{
		Bookmaker: &domain.Bookmaker{ID: "b1", Name: "Bet365"},
		Offers: []*domain.OfferWithBetsAndMatches{{
			Offer: &domain.BookmakerOffer{ID: "o1", BookmakerID: "b1"},
			Accumulators: []*domain.AccumulatorWithBets{{
				Accumulator: &domain.Accumulator{ID: accID},
				Bets: []*domain.BetWithMatch{{
					Bet:   &domain.Bet{ID: "l1", AccumulatorID: &accID},
					Match: &domain.Match{ID: "m2"},
				}},
			}},
			Bets: []*domain.BetWithMatch{{Bet: &domain.Bet{ID: "s1"}, Match: &domain.Match{ID: "m1"}}},
		}},
	}

	resp := BookmakerTreeFromDomain(tree)
	if resp.ID != "b1" || len(resp.Offers) != 1 {
		t.Fatalf("unexpected tree %+v", resp)
	}
	offer := resp.Offers[0]
	if offer.ID != "o1" || len(offer.Bets) != 1 || offer.Bets[0].Match.ID != "m1" {
		t.Fatalf("unexpected offer node %+v", offer)
	}
	if len(offer.Accumulators) != 1 || offer.Accumulators[0].Legs[0].ID != "l1" {
		t.Fatalf("unexpected accumulator node %+v", offer.Accumulators)
	}

	body, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(body), `"name":"Bet365"`) || !strings.Contains(string(body), `"offers":[`) {
		t.Fatalf("expected embedded bookmaker fields, got %s", body)
	}
}

func TestSettlementFromResult(t *testing.T) {
	result := &usecase.SettlementResult{
		Settlement: domain.Settlement{
			SubjectID: "b1",
			Type:      domain.BetTypeSingle,
			Category:  domain.BetCategoryQualifying,
			Winner:    domain.BetSideLay,
			Bookmaker: decimal.RequireFromString("-10"),
			Exchange:  decimal.RequireFromString("9.68"),
			Profit:    decimal.RequireFromString("-0.32"),
		},
		Balances: domain.Ledger{Profit: decimal.RequireFromString("-0.32")},
	}

	resp := SettlementFromResult(result)
	if resp.Winner != "LAY" || !resp.Profit.Equal(decimal.RequireFromString("-0.32")) {
		t.Fatalf("unexpected settlement response %+v", resp)
	}
	if !resp.Balances.Profit.Equal(decimal.RequireFromString("-0.32")) {
		t.Fatalf("expected balances to carry over, got %+v", resp.Balances)
	}
}
