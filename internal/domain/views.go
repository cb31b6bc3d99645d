package domain

// BetWithMatch is a bet joined with the match it was placed on.
type BetWithMatch struct {
	Bet   *Bet
	Match *Match
}

// AccumulatorWithBets is an accumulator with its legs.
type AccumulatorWithBets struct {
	Accumulator *Accumulator
	Bets        []*BetWithMatch
}

// OfferWithBetsAndMatches is an offer with its accumulators and single bets.
type OfferWithBetsAndMatches struct {
	Offer        *BookmakerOffer
	Accumulators []*AccumulatorWithBets
	Bets         []*BetWithMatch
}

// BookmakerWithOffersBetsAndMatches is the full tree under one bookmaker.
type BookmakerWithOffersBetsAndMatches struct {
	Bookmaker *Bookmaker
	Offers    []*OfferWithBetsAndMatches
}
