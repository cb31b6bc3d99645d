package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func pricedBet(category BetCategory, outcome Outcome) *Bet {
	return &Bet{
		ID:          "bet-1",
		MatchID:     "match-1",
		BetCategory: category,
		Outcome:     outcome,
		BackOdds:    ptr(d("3.0")),
		BackStake:   ptr(d("10")),
		LayOdds:     ptr(d("3.1")),
		LayStake:    ptr(d("9.68")),
		Liability:   ptr(d("20.33")),
	}
}

func finishedMatch(outcome Outcome) *Match {
	return &Match{ID: "match-1", HomeTeam: "Arsenal", AwayTeam: "Chelsea", Outcome: ptr(outcome)}
}

func TestSettleBet(t *testing.T) {
	tests := []struct {
		name      string
		category  BetCategory
		selection Outcome
		result    Outcome
		winner    BetSide
		bookmaker string
		exchange  string
		profit    string
	}{
		{
			name:      "qualifying bet, back wins",
			category:  BetCategoryQualifying,
			selection: OutcomeHome,
			result:    OutcomeHome,
			winner:    BetSideBack,
			bookmaker: "20",
			exchange:  "-20.33",
			profit:    "-0.33",
		},
		{
			name:      "qualifying bet, lay wins",
			category:  BetCategoryQualifying,
			selection: OutcomeHome,
			result:    OutcomeDraw,
			winner:    BetSideLay,
			bookmaker: "-10",
			exchange:  "9.68",
			profit:    "-0.32",
		},
		{
			name:      "free bet, back wins",
			category:  BetCategoryFree,
			selection: OutcomeAway,
			result:    OutcomeAway,
			winner:    BetSideBack,
			bookmaker: "20",
			exchange:  "-20.33",
			profit:    "-0.33",
		},
		{
			name:      "free bet, lay wins keeps the stake",
			category:  BetCategoryFree,
			selection: OutcomeAway,
			result:    OutcomeHome,
			winner:    BetSideLay,
			bookmaker: "0",
			exchange:  "9.68",
			profit:    "9.68",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := SettleBet(pricedBet(tt.category, tt.selection), finishedMatch(tt.result), decimal.Zero)
			require.NoError(t, err)

			assert.Equal(t, "bet-1", s.SubjectID)
			assert.Equal(t, BetTypeSingle, s.Type)
			assert.Equal(t, tt.winner, s.Winner)
			assert.True(t, s.Bookmaker.Equal(d(tt.bookmaker)), "bookmaker: got %s", s.Bookmaker)
			assert.True(t, s.Exchange.Equal(d(tt.exchange)), "exchange: got %s", s.Exchange)
			assert.True(t, s.Profit.Equal(d(tt.profit)), "profit: got %s", s.Profit)
		})
	}
}

func TestSettleBet_AppliesCommissionToLayWinnings(t *testing.T) {
	s, err := SettleBet(pricedBet(BetCategoryQualifying, OutcomeHome), finishedMatch(OutcomeAway), d("0.02"))
	require.NoError(t, err)

	assert.True(t, s.Exchange.Equal(d("9.4864")), "exchange: got %s", s.Exchange)
}

func TestSettleBet_Errors(t *testing.T) {
	settled := pricedBet(BetCategoryQualifying, OutcomeHome)
	settled.Settled = true

	leg := pricedBet(BetCategoryQualifying, OutcomeHome)
	leg.AccumulatorID = ptr("acc-1")

	incomplete := pricedBet(BetCategoryQualifying, OutcomeHome)
	incomplete.Liability = nil

	tests := []struct {
		name       string
		bet        *Bet
		match      *Match
		commission decimal.Decimal
		want       error
	}{
		{"already settled", settled, finishedMatch(OutcomeHome), decimal.Zero, ErrBetAlreadySettled},
		{"accumulator leg", leg, finishedMatch(OutcomeHome), decimal.Zero, ErrBetInAccumulator},
		{"match not finished", pricedBet(BetCategoryQualifying, OutcomeHome), &Match{ID: "match-1"}, decimal.Zero, ErrMatchNotFinished},
		{"missing liability", incomplete, finishedMatch(OutcomeHome), decimal.Zero, ErrIncompleteBet},
		{"invalid category", pricedBet(BetCategory("BOGUS"), OutcomeHome), finishedMatch(OutcomeHome), decimal.Zero, ErrInvalidBetCategory},
		{"commission of one", pricedBet(BetCategoryQualifying, OutcomeHome), finishedMatch(OutcomeHome), d("1"), ErrInvalidCommission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SettleBet(tt.bet, tt.match, tt.commission)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSettleAccumulator(t *testing.T) {
	acc := &Accumulator{
		ID:          "acc-1",
		BetCategory: BetCategoryQualifying,
		BackOdds:    d("6"),
		BackStake:   d("5"),
		LayOdds:     d("6.5"),
		LayStake:    d("4.62"),
		Liability:   d("25.41"),
	}
	legs := []*Bet{
		{ID: "leg-1", MatchID: "m1", Outcome: OutcomeHome, AccumulatorID: ptr("acc-1")},
		{ID: "leg-2", MatchID: "m2", Outcome: OutcomeDraw, AccumulatorID: ptr("acc-1")},
	}

	t.Run("every leg wins", func(t *testing.T) {
		matches := map[string]*Match{
			"m1": {ID: "m1", Outcome: ptr(OutcomeHome)},
			"m2": {ID: "m2", Outcome: ptr(OutcomeDraw)},
		}

		s, err := SettleAccumulator(acc, legs, matches, decimal.Zero)
		require.NoError(t, err)

		assert.Equal(t, BetTypeAccumulator, s.Type)
		assert.Equal(t, BetSideBack, s.Winner)
		assert.True(t, s.Bookmaker.Equal(d("25")), "bookmaker: got %s", s.Bookmaker)
		assert.True(t, s.Exchange.Equal(d("-25.41")), "exchange: got %s", s.Exchange)
	})

	t.Run("one leg loses", func(t *testing.T) {
		matches := map[string]*Match{
			"m1": {ID: "m1", Outcome: ptr(OutcomeHome)},
			"m2": {ID: "m2", Outcome: ptr(OutcomeAway)},
		}

		s, err := SettleAccumulator(acc, legs, matches, decimal.Zero)
		require.NoError(t, err)

		assert.Equal(t, BetSideLay, s.Winner)
		assert.True(t, s.Bookmaker.Equal(d("-5")), "bookmaker: got %s", s.Bookmaker)
		assert.True(t, s.Exchange.Equal(d("4.62")), "exchange: got %s", s.Exchange)
	})

	t.Run("unfinished leg", func(t *testing.T) {
		matches := map[string]*Match{
			"m1": {ID: "m1", Outcome: ptr(OutcomeHome)},
			"m2": {ID: "m2"},
		}

		_, err := SettleAccumulator(acc, legs, matches, decimal.Zero)
		assert.ErrorIs(t, err, ErrMatchNotFinished)
	})

	t.Run("missing match", func(t *testing.T) {
		_, err := SettleAccumulator(acc, legs, map[string]*Match{}, decimal.Zero)
		assert.ErrorIs(t, err, ErrMatchNotFound)
	})

	t.Run("no legs", func(t *testing.T) {
		_, err := SettleAccumulator(acc, nil, nil, decimal.Zero)
		assert.ErrorIs(t, err, ErrEmptyAccumulator)
	})
}

func TestSettlement_Increments(t *testing.T) {
	s := Settlement{Bookmaker: d("20"), Exchange: d("-20.33"), Profit: d("-0.33")}

	incs := s.Increments()
	require.Len(t, incs, 3)

	l := NewLedger()
	for _, inc := range incs {
		require.NoError(t, l.Increment(inc.Amount, inc.Target))
	}

	assertTotals(t, l, "-20.33", "20", "-0.33")
}
