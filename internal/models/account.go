package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType discriminates the two supported account variants.
type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

// Account is a bank account record. MonthlyInterestBase is only meaningful
// for savings accounts: it is the balance snapshot the next interest cycle
// is computed against.
type Account struct {
	ID                  int64           `json:"id"`
	OwnerName           string          `json:"owner_name"`
	Type                AccountType     `json:"type"`
	Balance             decimal.Decimal `json:"balance"`
	MonthlyInterestBase decimal.Decimal `json:"monthly_interest_base"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// AccountDetails is the read-only projection returned to callers after
// account creation.
type AccountDetails struct {
	ID        int64           `json:"id"`
	OwnerName string          `json:"owner_name"`
	Balance   decimal.Decimal `json:"balance"`
	Type      AccountType     `json:"type"`
}

// Details returns the caller-facing projection of the account.
func (a *Account) Details() *AccountDetails {
	return &AccountDetails{
		ID:        a.ID,
		OwnerName: a.OwnerName,
		Balance:   a.Balance,
		Type:      a.Type,
	}
}
