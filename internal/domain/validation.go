package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName      = errors.New("invalid name")
	ErrInvalidURL       = errors.New("invalid URL")
	ErrInvalidOdds      = errors.New("odds must be greater than 1")
	ErrInvalidStake     = errors.New("stake must be positive")
	ErrInvalidLiability = errors.New("liability must not be negative")
	ErrInvalidAmount    = errors.New("amount must not be negative")
	ErrInvalidExpiry    = errors.New("expiry must not be negative")
	ErrSameTeams        = errors.New("home and away teams must differ")
)

// Validation constants
const (
	MaxNameLength = 255
	MinNameLength = 1
)

// Column limits of the NUMERIC(precision, scale) fields storing prices.
// Values that do not fit are rejected instead of being rounded by Postgres.
const (
	MoneyPrecision = 14
	MoneyScale     = 2
	OddsPrecision  = 10
	OddsScale      = 3
)

// fitsNumeric reports whether d can be stored in NUMERIC(precision, scale)
// without rounding or overflow.
func fitsNumeric(d decimal.Decimal, precision, scale int32) bool {
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	limit := decimal.New(1, precision-scale)
	return d.Abs().LessThan(limit)
}

// ValidateMoney checks that an amount fits a money column.
func ValidateMoney(amount decimal.Decimal) error {
	if !fitsNumeric(amount, MoneyPrecision, MoneyScale) {
		return fmt.Errorf("at most %d decimal places and %d integer digits, got %s",
			MoneyScale, MoneyPrecision-MoneyScale, amount)
	}
	return nil
}

// ValidateName validates a bookmaker name or team name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateURL validates an absolute http(s) URL.
func ValidateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	return nil
}

// ValidateOdds validates decimal odds.
func ValidateOdds(odds decimal.Decimal) error {
	if odds.LessThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: got %s", ErrInvalidOdds, odds)
	}
	if !fitsNumeric(odds, OddsPrecision, OddsScale) {
		return fmt.Errorf("%w: at most %d decimal places, got %s", ErrInvalidOdds, OddsScale, odds)
	}
	return nil
}

// ValidateStake validates a back or lay stake.
func ValidateStake(stake decimal.Decimal) error {
	if !stake.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidStake, stake)
	}
	if err := ValidateMoney(stake); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStake, err)
	}
	return nil
}

// ValidateLiability validates the exchange liability of a lay.
func ValidateLiability(liability decimal.Decimal) error {
	if liability.IsNegative() {
		return ErrInvalidLiability
	}
	if err := ValidateMoney(liability); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLiability, err)
	}
	return nil
}

// ValidatePrices validates a complete set of back/lay terms.
func ValidatePrices(p Prices) error {
	if err := ValidateOdds(p.BackOdds); err != nil {
		return fmt.Errorf("back odds: %w", err)
	}
	if err := ValidateOdds(p.LayOdds); err != nil {
		return fmt.Errorf("lay odds: %w", err)
	}
	if err := ValidateStake(p.BackStake); err != nil {
		return fmt.Errorf("back stake: %w", err)
	}
	if err := ValidateStake(p.LayStake); err != nil {
		return fmt.Errorf("lay stake: %w", err)
	}
	return ValidateLiability(p.Liability)
}

// ValidateOptionalPrices validates whichever price fields are present on a bet.
func ValidateOptionalPrices(backOdds, backStake, layOdds, layStake, liability *decimal.Decimal) error {
	if backOdds != nil {
		if err := ValidateOdds(*backOdds); err != nil {
			return fmt.Errorf("back odds: %w", err)
		}
	}
	if layOdds != nil {
		if err := ValidateOdds(*layOdds); err != nil {
			return fmt.Errorf("lay odds: %w", err)
		}
	}
	if backStake != nil {
		if err := ValidateStake(*backStake); err != nil {
			return fmt.Errorf("back stake: %w", err)
		}
	}
	if layStake != nil {
		if err := ValidateStake(*layStake); err != nil {
			return fmt.Errorf("lay stake: %w", err)
		}
	}
	if liability != nil {
		return ValidateLiability(*liability)
	}
	return nil
}

// ValidateNonNegative validates offer amounts and balances.
func ValidateNonNegative(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if err := ValidateMoney(amount); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 100
	const DefaultPageSize = 20

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
