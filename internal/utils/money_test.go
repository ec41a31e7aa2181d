package utils

import (
	"errors"
	"testing"

	"bankledger/internal/models"
	"github.com/shopspring/decimal"
)

func TestNormalize_RoundsHalfToEven(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.345", "2.34"},
		{"2.355", "2.36"},
		{"1.005", "1.00"},
		{"4.166666", "4.17"},
		{"-2.345", "-2.34"},
		{"10", "10.00"},
		{"0.004", "0.00"},
	}
	for _, tc := range cases {
		got := Normalize(decimal.RequireFromString(tc.in))
		if got.StringFixed(2) != tc.want {
			t.Errorf("Normalize(%s) = %s, want %s", tc.in, got.StringFixed(2), tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"2.345", "1000", "0.005", "99.999"} {
		once := Normalize(decimal.RequireFromString(in))
		twice := Normalize(once)
		if !twice.Equal(once) {
			t.Errorf("Normalize not idempotent for %s: %s != %s", in, twice, once)
		}
	}
}

func TestRequirePositive(t *testing.T) {
	if err := RequirePositive(decimal.RequireFromString("0.01"), "Amount"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, in := range []string{"0", "-1"} {
		err := RequirePositive(decimal.RequireFromString(in), "Amount")
		var invalid *models.InvalidOperationError
		if !errors.As(err, &invalid) {
			t.Errorf("RequirePositive(%s) = %v, want InvalidOperationError", in, err)
		}
	}
}

func TestRequireNonEmpty(t *testing.T) {
	if err := RequireNonEmpty("Alice", "Owner Name"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RequireNonEmpty("   ", "Owner Name"); err == nil {
		t.Error("expected error for blank value")
	}
}
