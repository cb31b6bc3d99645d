package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bookmaker is a betting site where back bets are placed.
type Bookmaker struct {
	CreatedAt      time.Time
	InitialBalance *decimal.Decimal
	ID             string
	Name           string
	URL            string
	Logo           string
}

// BookmakerOffer is a promotion: place a qualifying bet, receive a free bet.
type BookmakerOffer struct {
	CreatedAt           time.Time
	StartedDate         *time.Time
	ExpiresInDays       *int
	ID                  string
	BookmakerID         string
	Description         string
	TermsAndConditions  string
	QualifyingBetAmount decimal.Decimal
	FreeBetAmount       decimal.Decimal
}

// ExpiresAt returns when the offer lapses, if it has both a start date and a lifetime.
func (o *BookmakerOffer) ExpiresAt() *time.Time {
	if o.StartedDate == nil || o.ExpiresInDays == nil {
		return nil
	}
	t := o.StartedDate.AddDate(0, 0, *o.ExpiresInDays)
	return &t
}

// Expired reports whether the offer has lapsed at now.
func (o *BookmakerOffer) Expired(now time.Time) bool {
	exp := o.ExpiresAt()
	return exp != nil && !now.Before(*exp)
}
