// Package repository defines the persistence contracts of the ledger and
// provides an in-memory and a postgres implementation.
package repository

import (
	"context"

	"bankledger/internal/models"
)

// AccountStore persists account records. Save assigns the id and creation
// timestamp on first save and refreshes the update timestamp on every
// save. Identifiers are assigned monotonically.
type AccountStore interface {
	Save(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	FindByType(ctx context.Context, accountType models.AccountType) ([]*models.Account, error)
}

// UserStore persists API users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
