package output

import "github.com/shopspring/decimal"

// FormatPercentage formats a decimal as a percentage with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }
