package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bet is one matched back/lay pair on a single match. Legs of an accumulator
// carry AccumulatorID and usually no prices of their own.
type Bet struct {
	CreatedAt     time.Time
	AccumulatorID *string
	BackOdds      *decimal.Decimal
	BackStake     *decimal.Decimal
	LayOdds       *decimal.Decimal
	LayStake      *decimal.Decimal
	Liability     *decimal.Decimal
	ID            string
	OfferID       string
	MatchID       string
	BetCategory   BetCategory
	Outcome       Outcome
	Settled       bool
}

// IsAccumulatorLeg reports whether the bet belongs to an accumulator.
func (b *Bet) IsAccumulatorLeg() bool {
	return b.AccumulatorID != nil
}

// Prices returns the bet's pricing, or ErrIncompleteBet if any part is missing.
func (b *Bet) Prices() (Prices, error) {
	if b.BackOdds == nil || b.BackStake == nil || b.LayOdds == nil || b.LayStake == nil || b.Liability == nil {
		return Prices{}, ErrIncompleteBet
	}
	return Prices{
		BackOdds:  *b.BackOdds,
		BackStake: *b.BackStake,
		LayOdds:   *b.LayOdds,
		LayStake:  *b.LayStake,
		Liability: *b.Liability,
	}, nil
}

// Accumulator is a multi-selection back bet laid as one unit.
type Accumulator struct {
	CreatedAt   time.Time
	ID          string
	OfferID     string
	BetCategory BetCategory
	BackOdds    decimal.Decimal
	BackStake   decimal.Decimal
	LayOdds     decimal.Decimal
	LayStake    decimal.Decimal
	Liability   decimal.Decimal
	Settled     bool
}

// Prices returns the accumulator's pricing.
func (a *Accumulator) Prices() Prices {
	return Prices{
		BackOdds:  a.BackOdds,
		BackStake: a.BackStake,
		LayOdds:   a.LayOdds,
		LayStake:  a.LayStake,
		Liability: a.Liability,
	}
}

// Prices are the back and lay terms of a matched pair.
type Prices struct {
	BackOdds  decimal.Decimal
	BackStake decimal.Decimal
	LayOdds   decimal.Decimal
	LayStake  decimal.Decimal
	Liability decimal.Decimal
}
