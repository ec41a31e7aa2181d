package calculation

import (
	"errors"
	"testing"

	"bankledger/internal/config"
	"bankledger/internal/models"
	"github.com/shopspring/decimal"
)

func newTestService(annualRate string) (*Service, *config.Config) {
	cfg := &config.Config{
		AnnualInterestRate:   decimal.RequireFromString(annualRate),
		SavingsWithdrawLimit: decimal.RequireFromString("1000"),
	}
	return NewService(cfg), cfg
}

func TestAddAmount(t *testing.T) {
	svc, _ := newTestService("5")

	got, err := svc.AddAmount(decimal.RequireFromString("1000"), decimal.RequireFromString("500"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "1500.00" {
		t.Errorf("expected 1500.00, got %s", got.StringFixed(2))
	}
}

func TestAddAmount_RejectsNonPositive(t *testing.T) {
	svc, _ := newTestService("5")

	for _, amount := range []string{"0", "-0.01"} {
		_, err := svc.AddAmount(decimal.RequireFromString("100"), decimal.RequireFromString(amount))
		var invalid *models.InvalidOperationError
		if !errors.As(err, &invalid) {
			t.Errorf("AddAmount with amount %s: expected InvalidOperationError, got %v", amount, err)
		}
	}
}

func TestSubtractAmount(t *testing.T) {
	svc, _ := newTestService("5")

	got, err := svc.SubtractAmount(decimal.RequireFromString("1000"), decimal.RequireFromString("250.555"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "749.44" {
		t.Errorf("expected 749.44, got %s", got.StringFixed(2))
	}
}

func TestSubtractAmount_RejectsNonPositive(t *testing.T) {
	svc, _ := newTestService("5")

	_, err := svc.SubtractAmount(decimal.RequireFromString("100"), decimal.Zero)
	var invalid *models.InvalidOperationError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidOperationError, got %v", err)
	}
}

func TestSubtractAmount_DoesNotCheckSufficiency(t *testing.T) {
	svc, _ := newTestService("5")

	got, err := svc.SubtractAmount(decimal.RequireFromString("100"), decimal.RequireFromString("150"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StringFixed(2) != "-50.00" {
		t.Errorf("expected -50.00, got %s", got.StringFixed(2))
	}
}

func TestCalculateSavingsInterest(t *testing.T) {
	svc, _ := newTestService("5")

	got := svc.CalculateSavingsInterest(decimal.RequireFromString("1000"))
	if got.StringFixed(2) != "4.17" {
		t.Errorf("expected 4.17, got %s", got.StringFixed(2))
	}

	got = svc.CalculateSavingsInterest(decimal.RequireFromString("1500"))
	if got.StringFixed(2) != "6.25" {
		t.Errorf("expected 6.25, got %s", got.StringFixed(2))
	}
}

func TestCalculateSavingsInterest_ZeroForNonPositiveBase(t *testing.T) {
	svc, _ := newTestService("5")

	for _, base := range []string{"0", "-100"} {
		got := svc.CalculateSavingsInterest(decimal.RequireFromString(base))
		if !got.IsZero() {
			t.Errorf("expected 0 interest for base %s, got %s", base, got)
		}
	}
}

func TestCalculateSavingsInterest_ZeroForNonPositiveRate(t *testing.T) {
	svc, _ := newTestService("0")

	got := svc.CalculateSavingsInterest(decimal.RequireFromString("1000"))
	if !got.IsZero() {
		t.Errorf("expected 0 interest for zero rate, got %s", got)
	}
}

func TestCalculateSavingsInterest_ReadsLiveRate(t *testing.T) {
	svc, cfg := newTestService("5")

	before := svc.CalculateSavingsInterest(decimal.RequireFromString("1000"))
	cfg.AnnualInterestRate = decimal.RequireFromString("12")
	after := svc.CalculateSavingsInterest(decimal.RequireFromString("1000"))

	if before.StringFixed(2) != "4.17" {
		t.Errorf("expected 4.17 before rate change, got %s", before.StringFixed(2))
	}
	if after.StringFixed(2) != "10.00" {
		t.Errorf("expected 10.00 after rate change, got %s", after.StringFixed(2))
	}
}
