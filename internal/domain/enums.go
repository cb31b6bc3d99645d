package domain

import (
	"fmt"
	"strings"
)

// BetCategory says whether a bet unlocks an offer or spends its free bet.
type BetCategory string

const (
	BetCategoryQualifying BetCategory = "QUALIFYING"
	BetCategoryFree       BetCategory = "FREE"
)

// ParseBetCategory parses a category name, case-insensitively.
func ParseBetCategory(s string) (BetCategory, error) {
	c := BetCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBetCategory, s)
	}
	return c, nil
}

func (c BetCategory) Valid() bool {
	return c == BetCategoryQualifying || c == BetCategoryFree
}

// Outcome is a full-time match result.
type Outcome string

const (
	OutcomeHome Outcome = "HOME"
	OutcomeDraw Outcome = "DRAW"
	OutcomeAway Outcome = "AWAY"
)

// ParseOutcome parses an outcome name, case-insensitively.
func ParseOutcome(s string) (Outcome, error) {
	o := Outcome(strings.ToUpper(strings.TrimSpace(s)))
	if !o.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
	}
	return o, nil
}

func (o Outcome) Valid() bool {
	switch o {
	case OutcomeHome, OutcomeDraw, OutcomeAway:
		return true
	}
	return false
}

// BetSide is the side of a matched pair.
type BetSide string

const (
	BetSideBack BetSide = "BACK"
	BetSideLay  BetSide = "LAY"
)

// BetType distinguishes single bets from accumulators.
type BetType string

const (
	BetTypeSingle      BetType = "SINGLE"
	BetTypeAccumulator BetType = "ACCUMULATOR"
)
