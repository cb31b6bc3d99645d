package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BalanceTarget selects which running total an increment applies to.
// The zero value is not a target, so an omitted or null target is rejected.
type BalanceTarget uint8

const (
	TargetExchange BalanceTarget = iota + 1
	TargetBookmaker
	TargetProfit
)

// BalanceTargets lists every valid target in display order.
var BalanceTargets = []BalanceTarget{TargetExchange, TargetBookmaker, TargetProfit}

// String returns the lowercase wire name of the target.
func (t BalanceTarget) String() string {
	switch t {
	case TargetExchange:
		return "exchange"
	case TargetBookmaker:
		return "bookmaker"
	case TargetProfit:
		return "profit"
	default:
		return fmt.Sprintf("BalanceTarget(%d)", uint8(t))
	}
}

// Valid reports whether t is one of the enumerated targets.
func (t BalanceTarget) Valid() bool {
	return t >= TargetExchange && t <= TargetProfit
}

// ParseBalanceTarget parses a target name, case-insensitively.
func ParseBalanceTarget(s string) (BalanceTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exchange":
		return TargetExchange, nil
	case "bookmaker":
		return TargetBookmaker, nil
	case "profit":
		return TargetProfit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t BalanceTarget) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *BalanceTarget) UnmarshalText(b []byte) error {
	parsed, err := ParseBalanceTarget(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Ledger holds the running totals of a tracking session.
// The zero value is a valid ledger with all totals at zero.
type Ledger struct {
	ExchangeBalance  decimal.Decimal
	BookmakerBalance decimal.Decimal
	Profit           decimal.Decimal
}

// NewLedger returns a ledger with every total at zero.
func NewLedger() *Ledger {
	return &Ledger{
		ExchangeBalance:  decimal.Zero,
		BookmakerBalance: decimal.Zero,
		Profit:           decimal.Zero,
	}
}

// Increment adds amount to the total selected by target.
// Any amount is accepted. An unknown target leaves the ledger untouched.
func (l *Ledger) Increment(amount decimal.Decimal, target BalanceTarget) error {
	switch target {
	case TargetExchange:
		l.ExchangeBalance = l.ExchangeBalance.Add(amount)
	case TargetBookmaker:
		l.BookmakerBalance = l.BookmakerBalance.Add(amount)
	case TargetProfit:
		l.Profit = l.Profit.Add(amount)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidTarget, uint8(target))
	}
	return nil
}

// Get returns the current value of one total.
func (l *Ledger) Get(target BalanceTarget) (decimal.Decimal, error) {
	switch target {
	case TargetExchange:
		return l.ExchangeBalance, nil
	case TargetBookmaker:
		return l.BookmakerBalance, nil
	case TargetProfit:
		return l.Profit, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %d", ErrInvalidTarget, uint8(target))
	}
}

// Snapshot returns a copy of the ledger.
func (l *Ledger) Snapshot() Ledger {
	return *l
}

// Increment is a single signed change to one ledger total.
type Increment struct {
	Amount decimal.Decimal
	Target BalanceTarget
}
