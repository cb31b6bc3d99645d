package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// BookmakerResponse represents a bookmaker in API responses.
type BookmakerResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	URL            string           `json:"url"`
	Logo           string           `json:"logo,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// BookmakerFromDomain converts a domain bookmaker to a response.
func BookmakerFromDomain(b *domain.Bookmaker) *BookmakerResponse {
	return &BookmakerResponse{
		ID:             b.ID,
		Name:           b.Name,
		URL:            b.URL,
		Logo:           b.Logo,
		InitialBalance: b.InitialBalance,
		CreatedAt:      b.CreatedAt,
	}
}

// BookmakersFromDomain converts domain bookmakers to responses.
func BookmakersFromDomain(bookmakers []*domain.Bookmaker) []*BookmakerResponse {
	result := make([]*BookmakerResponse, len(bookmakers))
	for i, b := range bookmakers {
		result[i] = BookmakerFromDomain(b)
	}
	return result
}

// ListBookmakersResponse is a page of bookmakers.
type ListBookmakersResponse struct {
	Bookmakers []*BookmakerResponse `json:"bookmakers"`
	Total      int64                `json:"total"`
}

// OfferResponse represents an offer in API responses.
type OfferResponse struct {
	ID                  string          `json:"id"`
	BookmakerID         string          `json:"bookmaker_id"`
	Description         string          `json:"description"`
	TermsAndConditions  string          `json:"terms_and_conditions,omitempty"`
	QualifyingBetAmount decimal.Decimal `json:"qualifying_bet_amount"`
	FreeBetAmount       decimal.Decimal `json:"free_bet_amount"`
	StartedDate         *time.Time      `json:"started_date,omitempty"`
	ExpiresInDays       *int            `json:"expires_in_days,omitempty"`
	ExpiresAt           *time.Time      `json:"expires_at,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// OfferFromDomain converts a domain offer to a response.
func OfferFromDomain(o *domain.BookmakerOffer) *OfferResponse {
	return &OfferResponse{
		ID:                  o.ID,
		BookmakerID:         o.BookmakerID,
		Description:         o.Description,
		TermsAndConditions:  o.TermsAndConditions,
		QualifyingBetAmount: o.QualifyingBetAmount,
		FreeBetAmount:       o.FreeBetAmount,
		StartedDate:         o.StartedDate,
		ExpiresInDays:       o.ExpiresInDays,
		ExpiresAt:           o.ExpiresAt(),
		CreatedAt:           o.CreatedAt,
	}
}

// OffersFromDomain converts domain offers to responses.
func OffersFromDomain(offers []*domain.BookmakerOffer) []*OfferResponse {
	result := make([]*OfferResponse, len(offers))
	for i, o := range offers {
		result[i] = OfferFromDomain(o)
	}
	return result
}

// MatchResponse represents a match in API responses.
type MatchResponse struct {
	ID        string    `json:"id"`
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	MatchDate time.Time `json:"match_date"`
	Outcome   *string   `json:"outcome,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchFromDomain converts a domain match to a response.
func MatchFromDomain(m *domain.Match) *MatchResponse {
	if m == nil {
		return nil
	}
	resp := &MatchResponse{
		ID:        m.ID,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		MatchDate: m.MatchDate,
		CreatedAt: m.CreatedAt,
	}
	if m.Outcome != nil {
		outcome := string(*m.Outcome)
		resp.Outcome = &outcome
	}
	return resp
}

// MatchesFromDomain converts domain matches to responses.
func MatchesFromDomain(matches []*domain.Match) []*MatchResponse {
	result := make([]*MatchResponse, len(matches))
	for i, m := range matches {
		result[i] = MatchFromDomain(m)
	}
	return result
}

// BetResponse represents a bet in API responses.
type BetResponse struct {
	ID            string           `json:"id"`
	OfferID       string           `json:"offer_id"`
	MatchID       string           `json:"match_id"`
	AccumulatorID *string          `json:"accumulator_id,omitempty"`
	BetCategory   string           `json:"bet_category"`
	Outcome       string           `json:"outcome"`
	BackOdds      *decimal.Decimal `json:"back_odds,omitempty"`
	BackStake     *decimal.Decimal `json:"back_stake,omitempty"`
	LayOdds       *decimal.Decimal `json:"lay_odds,omitempty"`
	LayStake      *decimal.Decimal `json:"lay_stake,omitempty"`
	Liability     *decimal.Decimal `json:"liability,omitempty"`
	Settled       bool             `json:"settled"`
	CreatedAt     time.Time        `json:"created_at"`
	Match         *MatchResponse   `json:"match,omitempty"`
}

// BetFromDomain converts a domain bet to a response.
func BetFromDomain(b *domain.Bet) *BetResponse {
	return &BetResponse{
		ID:            b.ID,
		OfferID:       b.OfferID,
		MatchID:       b.MatchID,
		AccumulatorID: b.AccumulatorID,
		BetCategory:   string(b.BetCategory),
		Outcome:       string(b.Outcome),
		BackOdds:      b.BackOdds,
		BackStake:     b.BackStake,
		LayOdds:       b.LayOdds,
		LayStake:      b.LayStake,
		Liability:     b.Liability,
		Settled:       b.Settled,
		CreatedAt:     b.CreatedAt,
	}
}

// BetsFromDomain converts domain bets to responses.
func BetsFromDomain(bets []*domain.Bet) []*BetResponse {
	result := make([]*BetResponse, len(bets))
	for i, b := range bets {
		result[i] = BetFromDomain(b)
	}
	return result
}

// BetWithMatchFromDomain converts a bet and its match.
func BetWithMatchFromDomain(bwm *domain.BetWithMatch) *BetResponse {
	resp := BetFromDomain(bwm.Bet)
	resp.Match = MatchFromDomain(bwm.Match)
	return resp
}

func betsWithMatches(bets []*domain.BetWithMatch) []*BetResponse {
	result := make([]*BetResponse, len(bets))
	for i, b := range bets {
		result[i] = BetWithMatchFromDomain(b)
	}
	return result
}

// AccumulatorResponse represents an accumulator in API responses.
type AccumulatorResponse struct {
	ID          string          `json:"id"`
	OfferID     string          `json:"offer_id"`
	BetCategory string          `json:"bet_category"`
	BackOdds    decimal.Decimal `json:"back_odds"`
	BackStake   decimal.Decimal `json:"back_stake"`
	LayOdds     decimal.Decimal `json:"lay_odds"`
	LayStake    decimal.Decimal `json:"lay_stake"`
	Liability   decimal.Decimal `json:"liability"`
	Settled     bool            `json:"settled"`
	CreatedAt   time.Time       `json:"created_at"`
	Legs        []*BetResponse  `json:"legs,omitempty"`
}

// AccumulatorFromDomain converts a domain accumulator to a response.
func AccumulatorFromDomain(a *domain.Accumulator) *AccumulatorResponse {
	return &AccumulatorResponse{
		ID:          a.ID,
		OfferID:     a.OfferID,
		BetCategory: string(a.BetCategory),
		BackOdds:    a.BackOdds,
		BackStake:   a.BackStake,
		LayOdds:     a.LayOdds,
		LayStake:    a.LayStake,
		Liability:   a.Liability,
		Settled:     a.Settled,
		CreatedAt:   a.CreatedAt,
	}
}

// AccumulatorsFromDomain converts domain accumulators to responses.
func AccumulatorsFromDomain(accs []*domain.Accumulator) []*AccumulatorResponse {
	result := make([]*AccumulatorResponse, len(accs))
	for i, a := range accs {
		result[i] = AccumulatorFromDomain(a)
	}
	return result
}

// AccumulatorWithBetsFromDomain converts an accumulator with its legs.
func AccumulatorWithBetsFromDomain(awb *domain.AccumulatorWithBets) *AccumulatorResponse {
	resp := AccumulatorFromDomain(awb.Accumulator)
	resp.Legs = betsWithMatches(awb.Bets)
	return resp
}

// OfferTreeResponse is an offer with its accumulators and single bets.
type OfferTreeResponse struct {
	*OfferResponse
	Accumulators []*AccumulatorResponse `json:"accumulators"`
	Bets         []*BetResponse         `json:"bets"`
}

// OfferTreeFromDomain converts a nested offer view.
func OfferTreeFromDomain(t *domain.OfferWithBetsAndMatches) *OfferTreeResponse {
	accs := make([]*AccumulatorResponse, len(t.Accumulators))
	for i, a := range t.Accumulators {
		accs[i] = AccumulatorWithBetsFromDomain(a)
	}
	return &OfferTreeResponse{
		OfferResponse: OfferFromDomain(t.Offer),
		Accumulators:  accs,
		Bets:          betsWithMatches(t.Bets),
	}
}

// BookmakerTreeResponse is a bookmaker with everything under it.
type BookmakerTreeResponse struct {
	*BookmakerResponse
	Offers []*OfferTreeResponse `json:"offers"`
}

// BookmakerTreeFromDomain converts a nested bookmaker view.
func BookmakerTreeFromDomain(t *domain.BookmakerWithOffersBetsAndMatches) *BookmakerTreeResponse {
	offers := make([]*OfferTreeResponse, len(t.Offers))
	for i, o := range t.Offers {
		offers[i] = OfferTreeFromDomain(o)
	}
	return &BookmakerTreeResponse{
		BookmakerResponse: BookmakerFromDomain(t.Bookmaker),
		Offers:            offers,
	}
}

// BalancesResponse represents the session ledger.
type BalancesResponse struct {
	ExchangeBalance  decimal.Decimal `json:"exchange_balance"`
	BookmakerBalance decimal.Decimal `json:"bookmaker_balance"`
	Profit           decimal.Decimal `json:"profit"`
}

// BalancesFromDomain converts a ledger snapshot.
func BalancesFromDomain(l domain.Ledger) *BalancesResponse {
	return &BalancesResponse{
		ExchangeBalance:  l.ExchangeBalance,
		BookmakerBalance: l.BookmakerBalance,
		Profit:           l.Profit,
	}
}

// SettlementResponse is a settlement and the ledger after it.
type SettlementResponse struct {
	SubjectID string            `json:"subject_id"`
	Type      string            `json:"type"`
	Category  string            `json:"category"`
	Winner    string            `json:"winner"`
	Bookmaker decimal.Decimal   `json:"bookmaker"`
	Exchange  decimal.Decimal   `json:"exchange"`
	Profit    decimal.Decimal   `json:"profit"`
	SettledAt time.Time         `json:"settled_at"`
	Balances  *BalancesResponse `json:"balances"`
}

// SettlementFromResult converts a settlement result.
func SettlementFromResult(r *usecase.SettlementResult) *SettlementResponse {
	s := r.Settlement
	return &SettlementResponse{
		SubjectID: s.SubjectID,
		Type:      string(s.Type),
		Category:  string(s.Category),
		Winner:    string(s.Winner),
		Bookmaker: s.Bookmaker,
		Exchange:  s.Exchange,
		Profit:    s.Profit,
		SettledAt: s.SettledAt,
		Balances:  BalancesFromDomain(r.Balances),
	}
}

// DashboardResponse is the landing page payload.
type DashboardResponse struct {
	Title      string            `json:"title"`
	Balances   *BalancesResponse `json:"balances"`
	Bookmakers int64             `json:"bookmakers"`
	OpenBets   int64             `json:"open_bets"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
