package domain

import "errors"

var (
	// Ledger errors
	ErrInvalidTarget = errors.New("invalid balance target")

	// Lookup errors
	ErrBookmakerNotFound   = errors.New("bookmaker not found")
	ErrOfferNotFound       = errors.New("bookmaker offer not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrBetNotFound         = errors.New("bet not found")
	ErrAccumulatorNotFound = errors.New("accumulator not found")

	// Enumeration errors
	ErrInvalidBetCategory = errors.New("invalid bet category")
	ErrInvalidOutcome     = errors.New("invalid outcome")

	// Settlement errors
	ErrBetAlreadySettled = errors.New("bet already settled")
	ErrMatchNotFinished  = errors.New("match has no result yet")
	ErrIncompleteBet     = errors.New("bet is missing odds, stakes or liability")
	ErrBetInAccumulator  = errors.New("bet is an accumulator leg and settles with its accumulator")
	ErrEmptyAccumulator  = errors.New("accumulator has no legs")
	ErrInvalidCommission = errors.New("commission must be between 0 and 1")
)
