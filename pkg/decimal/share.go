package decimal

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Share represents a part of a whole as a percentage
type Share struct {
	Part  int64
	Whole int64
}

// NewShare creates a new Share
func NewShare(part, whole int) Share {
	return Share{Part: int64(part), Whole: int64(whole)}
}

// Percent returns the share as a percentage rounded to 2 places.
// An empty whole yields zero.
func (s Share) Percent() decimal.Decimal {
	if s.Whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(s.Part).Mul(hundred).Div(decimal.NewFromInt(s.Whole)).Round(2)
}

// Fraction returns the share as a fraction of one without rounding
func (s Share) Fraction() decimal.Decimal {
	if s.Whole == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(s.Part).Div(decimal.NewFromInt(s.Whole))
}

// String returns the percentage with a trailing percent sign
func (s Share) String() string {
	return s.Percent().StringFixed(2) + "%"
}
