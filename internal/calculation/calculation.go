// Package calculation holds the pure monetary operations of the ledger:
// validated additions and subtractions on balances and the savings
// interest formula. All results are normalized to two fractional digits.
package calculation

import (
	"bankledger/internal/config"
	"bankledger/internal/models"
	"bankledger/internal/utils"
	"github.com/shopspring/decimal"
)

// monthlyRatePrecision is the number of fractional digits kept when
// deriving the monthly rate from the annual percentage.
const monthlyRatePrecision = 10

var monthsTimesPercent = decimal.NewFromInt(12 * 100)

// Service performs balance arithmetic and interest calculations. It keeps
// no state of its own; the configured annual rate is read on every call.
type Service struct {
	cfg *config.Config
}

// NewService initializes a new calculation service
func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// AddAmount returns the normalized sum of balance and amount. The amount
// must be strictly positive.
func (s *Service) AddAmount(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, models.NewInvalidOperation("Amount to add must be greater than zero.")
	}
	return utils.Normalize(balance.Add(amount)), nil
}

// SubtractAmount returns the normalized difference of balance and amount.
// The amount must be strictly positive. Sufficiency of funds is the
// caller's responsibility.
func (s *Service) SubtractAmount(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Decimal{}, models.NewInvalidOperation("Amount to subtract must be greater than zero.")
	}
	return utils.Normalize(balance.Sub(amount)), nil
}

// CalculateSavingsInterest computes one month of interest on the given
// base. It returns zero when the base or the configured annual rate is
// not positive.
func (s *Service) CalculateSavingsInterest(base decimal.Decimal) decimal.Decimal {
	rate := s.cfg.AnnualInterestRate
	if base.Sign() <= 0 || rate.Sign() <= 0 {
		return decimal.Zero
	}

	// Annual percentage to monthly fraction, e.g. 5 -> 5/1200.
	monthlyRate := rate.DivRound(monthsTimesPercent, monthlyRatePrecision)

	return utils.Normalize(base.Mul(monthlyRate))
}
