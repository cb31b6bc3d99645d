package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is the balance effect of closing a bet or accumulator.
type Settlement struct {
	SettledAt time.Time
	SubjectID string
	Type      BetType
	Category  BetCategory
	Winner    BetSide
	Bookmaker decimal.Decimal
	Exchange  decimal.Decimal
	Profit    decimal.Decimal
}

// Increments returns the ledger changes the settlement implies.
func (s Settlement) Increments() []Increment {
	return []Increment{
		{Amount: s.Exchange, Target: TargetExchange},
		{Amount: s.Bookmaker, Target: TargetBookmaker},
		{Amount: s.Profit, Target: TargetProfit},
	}
}

// ValidateCommission checks that an exchange commission rate is a fraction in [0, 1).
func ValidateCommission(commission decimal.Decimal) error {
	if commission.IsNegative() || commission.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return ErrInvalidCommission
	}
	return nil
}

// SettleBet computes the settlement of a single bet against its match result.
func SettleBet(bet *Bet, match *Match, commission decimal.Decimal) (Settlement, error) {
	if bet.Settled {
		return Settlement{}, ErrBetAlreadySettled
	}
	if bet.IsAccumulatorLeg() {
		return Settlement{}, ErrBetInAccumulator
	}
	if !match.Finished() {
		return Settlement{}, ErrMatchNotFinished
	}

	prices, err := bet.Prices()
	if err != nil {
		return Settlement{}, err
	}

	s, err := settle(prices, bet.BetCategory, bet.Outcome == *match.Outcome, commission)
	if err != nil {
		return Settlement{}, err
	}
	s.SubjectID = bet.ID
	s.Type = BetTypeSingle

	return s, nil
}

// SettleAccumulator computes the settlement of an accumulator. The back side
// wins only if every leg's selection matches its match result.
func SettleAccumulator(acc *Accumulator, legs []*Bet, matches map[string]*Match, commission decimal.Decimal) (Settlement, error) {
	if acc.Settled {
		return Settlement{}, ErrBetAlreadySettled
	}
	if len(legs) == 0 {
		return Settlement{}, ErrEmptyAccumulator
	}

	backWon := true
	for _, leg := range legs {
		match, ok := matches[leg.MatchID]
		if !ok {
			return Settlement{}, ErrMatchNotFound
		}
		if !match.Finished() {
			return Settlement{}, ErrMatchNotFinished
		}
		if leg.Outcome != *match.Outcome {
			backWon = false
		}
	}

	s, err := settle(acc.Prices(), acc.BetCategory, backWon, commission)
	if err != nil {
		return Settlement{}, err
	}
	s.SubjectID = acc.ID
	s.Type = BetTypeAccumulator

	return s, nil
}

func settle(p Prices, category BetCategory, backWon bool, commission decimal.Decimal) (Settlement, error) {
	if !category.Valid() {
		return Settlement{}, ErrInvalidBetCategory
	}
	if err := ValidateCommission(commission); err != nil {
		return Settlement{}, err
	}

	s := Settlement{Category: category}
	if backWon {
		// Free bets are stake-not-returned, so winnings exclude the stake either way.
		s.Winner = BetSideBack
		s.Bookmaker = p.BackStake.Mul(p.BackOdds.Sub(decimal.NewFromInt(1)))
		s.Exchange = p.Liability.Neg()
	} else {
		s.Winner = BetSideLay
		if category == BetCategoryQualifying {
			s.Bookmaker = p.BackStake.Neg()
		} else {
			s.Bookmaker = decimal.Zero
		}
		s.Exchange = p.LayStake.Mul(decimal.NewFromInt(1).Sub(commission))
	}
	s.Profit = s.Bookmaker.Add(s.Exchange)

	return s, nil
}
