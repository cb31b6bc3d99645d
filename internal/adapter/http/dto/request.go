package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/matchedbet/internal/domain"
	"github.com/iho/matchedbet/internal/usecase"
)

// CreateBookmakerRequest represents a request to create a bookmaker.
type CreateBookmakerRequest struct {
	Name           string           `json:"name"`
	URL            string           `json:"url"`
	Logo           string           `json:"logo,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBookmakerRequest) ToUseCaseInput() usecase.CreateBookmakerInput {
	return usecase.CreateBookmakerInput{
		Name:           r.Name,
		URL:            r.URL,
		Logo:           r.Logo,
		InitialBalance: r.InitialBalance,
	}
}

// UpdateBookmakerRequest is a partial bookmaker update.
type UpdateBookmakerRequest struct {
	Name           *string          `json:"name,omitempty"`
	URL            *string          `json:"url,omitempty"`
	Logo           *string          `json:"logo,omitempty"`
	InitialBalance *decimal.Decimal `json:"initial_balance,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateBookmakerRequest) ToUseCaseInput(id string) usecase.UpdateBookmakerInput {
	return usecase.UpdateBookmakerInput{
		ID:             id,
		Name:           r.Name,
		URL:            r.URL,
		Logo:           r.Logo,
		InitialBalance: r.InitialBalance,
	}
}

// CreateOfferRequest represents a request to create an offer.
type CreateOfferRequest struct {
	BookmakerID         string          `json:"bookmaker_id"`
	Description         string          `json:"description"`
	TermsAndConditions  string          `json:"terms_and_conditions,omitempty"`
	QualifyingBetAmount decimal.Decimal `json:"qualifying_bet_amount"`
	FreeBetAmount       decimal.Decimal `json:"free_bet_amount"`
	StartedDate         *time.Time      `json:"started_date,omitempty"`
	ExpiresInDays       *int            `json:"expires_in_days,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateOfferRequest) ToUseCaseInput() usecase.CreateOfferInput {
	return usecase.CreateOfferInput{
		BookmakerID:         r.BookmakerID,
		Description:         r.Description,
		TermsAndConditions:  r.TermsAndConditions,
		QualifyingBetAmount: r.QualifyingBetAmount,
		FreeBetAmount:       r.FreeBetAmount,
		StartedDate:         r.StartedDate,
		ExpiresInDays:       r.ExpiresInDays,
	}
}

// UpdateOfferRequest is a partial offer update.
type UpdateOfferRequest struct {
	Description         *string          `json:"description,omitempty"`
	TermsAndConditions  *string          `json:"terms_and_conditions,omitempty"`
	QualifyingBetAmount *decimal.Decimal `json:"qualifying_bet_amount,omitempty"`
	FreeBetAmount       *decimal.Decimal `json:"free_bet_amount,omitempty"`
	StartedDate         *time.Time       `json:"started_date,omitempty"`
	ExpiresInDays       *int             `json:"expires_in_days,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateOfferRequest) ToUseCaseInput(id string) usecase.UpdateOfferInput {
	return usecase.UpdateOfferInput{
		ID:                  id,
		Description:         r.Description,
		TermsAndConditions:  r.TermsAndConditions,
		QualifyingBetAmount: r.QualifyingBetAmount,
		FreeBetAmount:       r.FreeBetAmount,
		StartedDate:         r.StartedDate,
		ExpiresInDays:       r.ExpiresInDays,
	}
}

// CreateMatchRequest represents a request to create a match.
type CreateMatchRequest struct {
	HomeTeam  string    `json:"home_team"`
	AwayTeam  string    `json:"away_team"`
	MatchDate time.Time `json:"match_date"`
	Outcome   *string   `json:"outcome,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateMatchRequest) ToUseCaseInput() (usecase.CreateMatchInput, error) {
	outcome, err := parseOptionalOutcome(r.Outcome)
	if err != nil {
		return usecase.CreateMatchInput{}, err
	}
	return usecase.CreateMatchInput{
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		MatchDate: r.MatchDate,
		Outcome:   outcome,
	}, nil
}

// UpdateMatchRequest is a partial match update.
type UpdateMatchRequest struct {
	HomeTeam  *string    `json:"home_team,omitempty"`
	AwayTeam  *string    `json:"away_team,omitempty"`
	MatchDate *time.Time `json:"match_date,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateMatchRequest) ToUseCaseInput(id string) usecase.UpdateMatchInput {
	return usecase.UpdateMatchInput{
		ID:        id,
		HomeTeam:  r.HomeTeam,
		AwayTeam:  r.AwayTeam,
		MatchDate: r.MatchDate,
	}
}

// SetOutcomeRequest records a match result.
type SetOutcomeRequest struct {
	Outcome string `json:"outcome"`
}

// CreateBetRequest represents a request to record a single bet.
type CreateBetRequest struct {
	OfferID     string           `json:"offer_id"`
	MatchID     string           `json:"match_id"`
	BetCategory string           `json:"bet_category"`
	Outcome     string           `json:"outcome"`
	BackOdds    *decimal.Decimal `json:"back_odds,omitempty"`
	BackStake   *decimal.Decimal `json:"back_stake,omitempty"`
	LayOdds     *decimal.Decimal `json:"lay_odds,omitempty"`
	LayStake    *decimal.Decimal `json:"lay_stake,omitempty"`
	Liability   *decimal.Decimal `json:"liability,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBetRequest) ToUseCaseInput() (usecase.CreateBetInput, error) {
	category, err := domain.ParseBetCategory(r.BetCategory)
	if err != nil {
		return usecase.CreateBetInput{}, err
	}
	outcome, err := domain.ParseOutcome(r.Outcome)
	if err != nil {
		return usecase.CreateBetInput{}, err
	}
	return usecase.CreateBetInput{
		OfferID:     r.OfferID,
		MatchID:     r.MatchID,
		BetCategory: category,
		Outcome:     outcome,
		BackOdds:    r.BackOdds,
		BackStake:   r.BackStake,
		LayOdds:     r.LayOdds,
		LayStake:    r.LayStake,
		Liability:   r.Liability,
	}, nil
}

// UpdateBetRequest is a partial bet update.
type UpdateBetRequest struct {
	BetCategory *string          `json:"bet_category,omitempty"`
	Outcome     *string          `json:"outcome,omitempty"`
	BackOdds    *decimal.Decimal `json:"back_odds,omitempty"`
	BackStake   *decimal.Decimal `json:"back_stake,omitempty"`
	LayOdds     *decimal.Decimal `json:"lay_odds,omitempty"`
	LayStake    *decimal.Decimal `json:"lay_stake,omitempty"`
	Liability   *decimal.Decimal `json:"liability,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateBetRequest) ToUseCaseInput(id string) (usecase.UpdateBetInput, error) {
	input := usecase.UpdateBetInput{
		ID:        id,
		BackOdds:  r.BackOdds,
		BackStake: r.BackStake,
		LayOdds:   r.LayOdds,
		LayStake:  r.LayStake,
		Liability: r.Liability,
	}
	if r.BetCategory != nil {
		category, err := domain.ParseBetCategory(*r.BetCategory)
		if err != nil {
			return usecase.UpdateBetInput{}, err
		}
		input.BetCategory = &category
	}
	outcome, err := parseOptionalOutcome(r.Outcome)
	if err != nil {
		return usecase.UpdateBetInput{}, err
	}
	input.Outcome = outcome
	return input, nil
}

// AccumulatorLegRequest is one selection of an accumulator.
type AccumulatorLegRequest struct {
	MatchID string `json:"match_id"`
	Outcome string `json:"outcome"`
}

// CreateAccumulatorRequest represents a request to record an accumulator.
type CreateAccumulatorRequest struct {
	OfferID     string                  `json:"offer_id"`
	BetCategory string                  `json:"bet_category"`
	BackOdds    decimal.Decimal         `json:"back_odds"`
	BackStake   decimal.Decimal         `json:"back_stake"`
	LayOdds     decimal.Decimal         `json:"lay_odds"`
	LayStake    decimal.Decimal         `json:"lay_stake"`
	Liability   decimal.Decimal         `json:"liability"`
	Legs        []AccumulatorLegRequest `json:"legs"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccumulatorRequest) ToUseCaseInput() (usecase.CreateAccumulatorInput, error) {
	category, err := domain.ParseBetCategory(r.BetCategory)
	if err != nil {
		return usecase.CreateAccumulatorInput{}, err
	}

	legs := make([]usecase.AccumulatorLegInput, len(r.Legs))
	for i, leg := range r.Legs {
		outcome, err := domain.ParseOutcome(leg.Outcome)
		if err != nil {
			return usecase.CreateAccumulatorInput{}, err
		}
		legs[i] = usecase.AccumulatorLegInput{MatchID: leg.MatchID, Outcome: outcome}
	}

	return usecase.CreateAccumulatorInput{
		OfferID:     r.OfferID,
		BetCategory: category,
		BackOdds:    r.BackOdds,
		BackStake:   r.BackStake,
		LayOdds:     r.LayOdds,
		LayStake:    r.LayStake,
		Liability:   r.Liability,
		Legs:        legs,
	}, nil
}

// IncrementRequest is one ledger change.
type IncrementRequest struct {
	Amount decimal.Decimal      `json:"amount"`
	Target domain.BalanceTarget `json:"target"`
}

// IncrementBalancesRequest applies one or more changes atomically.
type IncrementBalancesRequest struct {
	Increments []IncrementRequest `json:"increments"`
}

// ToDomain converts to ledger increments.
func (r *IncrementBalancesRequest) ToDomain() []domain.Increment {
	increments := make([]domain.Increment, len(r.Increments))
	for i, inc := range r.Increments {
		increments[i] = domain.Increment{Amount: inc.Amount, Target: inc.Target}
	}
	return increments
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func parseOptionalOutcome(s *string) (*domain.Outcome, error) {
	if s == nil {
		return nil, nil
	}
	outcome, err := domain.ParseOutcome(*s)
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}
