package utils

import (
	"fmt"
	"strings"

	"bankledger/internal/models"
	"github.com/shopspring/decimal"
)

// moneyScale is the fixed fractional scale of all monetary values.
const moneyScale = 2

// Normalize rounds a monetary value to two fractional digits using
// round-half-to-even (banker's rounding). It is idempotent.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(moneyScale)
}

// RequirePositive validates that the given number is strictly greater
// than zero.
func RequirePositive(d decimal.Decimal, field string) error {
	if d.Sign() <= 0 {
		return models.NewInvalidOperation(fmt.Sprintf("%s must be greater than zero.", field))
	}
	return nil
}

// RequirePositiveID validates that the given identifier is strictly
// greater than zero.
func RequirePositiveID(id int64, field string) error {
	if id <= 0 {
		return models.NewInvalidOperation(fmt.Sprintf("%s must be greater than zero.", field))
	}
	return nil
}

// RequireNonEmpty validates that the given string contains at least one
// non-whitespace character.
func RequireNonEmpty(s, field string) error {
	if strings.TrimSpace(s) == "" {
		return models.NewInvalidOperation(fmt.Sprintf("%s must not be empty.", field))
	}
	return nil
}
