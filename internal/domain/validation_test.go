package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	t.Run("valid name", func(t *testing.T) {
		if err := ValidateName("Bet365"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		err := ValidateName("   ")
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		tooLong := strings.Repeat("a", MaxNameLength+1)
		err := ValidateName(tooLong)
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})
}

func TestValidateURL(t *testing.T) {
	t.Parallel()

	if err := ValidateURL("https://www.bet365.com"); err != nil {
		t.Fatalf("expected valid URL, got %v", err)
	}

	for _, raw := range []string{"bet365.com", "ftp://bet365.com", "https://", "::"} {
		if err := ValidateURL(raw); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("expected ErrInvalidURL for %q, got %v", raw, err)
		}
	}
}

func TestValidatePrices(t *testing.T) {
	t.Parallel()

	valid := Prices{
		BackOdds:  d("2.5"),
		BackStake: d("10"),
		LayOdds:   d("2.6"),
		LayStake:  d("9.62"),
		Liability: d("15.39"),
	}
	if err := ValidatePrices(valid); err != nil {
		t.Fatalf("expected valid prices, got %v", err)
	}

	evens := valid
	evens.BackOdds = d("1")
	if err := ValidatePrices(evens); !errors.Is(err, ErrInvalidOdds) {
		t.Fatalf("expected ErrInvalidOdds, got %v", err)
	}

	noStake := valid
	noStake.LayStake = decimal.Zero
	if err := ValidatePrices(noStake); !errors.Is(err, ErrInvalidStake) {
		t.Fatalf("expected ErrInvalidStake, got %v", err)
	}

	negLiability := valid
	negLiability.Liability = d("-1")
	if err := ValidatePrices(negLiability); !errors.Is(err, ErrInvalidLiability) {
		t.Fatalf("expected ErrInvalidLiability, got %v", err)
	}
}

func TestValidateOptionalPrices(t *testing.T) {
	t.Parallel()

	if err := ValidateOptionalPrices(nil, nil, nil, nil, nil); err != nil {
		t.Fatalf("expected accumulator leg without prices to be valid, got %v", err)
	}

	odds := d("0.5")
	if err := ValidateOptionalPrices(&odds, nil, nil, nil, nil); !errors.Is(err, ErrInvalidOdds) {
		t.Fatalf("expected ErrInvalidOdds, got %v", err)
	}
}

func TestValidatePrices_ColumnScale(t *testing.T) {
	t.Parallel()

	valid := Prices{
		BackOdds:  d("2.125"),
		BackStake: d("10.50"),
		LayOdds:   d("2.200"),
		LayStake:  d("9.62"),
		Liability: d("11.54"),
	}
	if err := ValidatePrices(valid); err != nil {
		t.Fatalf("expected values within column scale to pass, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Prices)
		want   error
	}{
		{"stake with three decimals", func(p *Prices) { p.BackStake = d("10.005") }, ErrInvalidStake},
		{"odds with four decimals", func(p *Prices) { p.LayOdds = d("2.2005") }, ErrInvalidOdds},
		{"liability with three decimals", func(p *Prices) { p.Liability = d("11.545") }, ErrInvalidLiability},
		{"stake too large", func(p *Prices) { p.LayStake = d("1000000000000") }, ErrInvalidStake},
		{"odds too large", func(p *Prices) { p.BackOdds = d("10000000") }, ErrInvalidOdds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := ValidatePrices(p); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateNonNegative_Scale(t *testing.T) {
	t.Parallel()

	if err := ValidateNonNegative(d("150.50")); err != nil {
		t.Fatalf("expected 150.50 to be valid, got %v", err)
	}
	if err := ValidateNonNegative(d("150.505")); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	t.Parallel()

	limit, offset := ValidatePagination(0, -5)
	if limit != 20 || offset != 0 {
		t.Fatalf("expected defaults 20/0, got %d/%d", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 100 {
		t.Fatalf("expected limit capped to 100, got %d", limit)
	}
}
