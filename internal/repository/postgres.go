package repository

import (
	"context"
	"database/sql"
	"fmt"

	"bankledger/internal/models"
)

// PostgresAccountStore provides account persistence on postgres.
type PostgresAccountStore struct {
	db *sql.DB
}

// NewPostgresAccountStore initializes a postgres-backed account store
func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

func (r *PostgresAccountStore) Save(ctx context.Context, account *models.Account) error {
	if account.ID == 0 {
		query := `
			INSERT INTO bank.accounts (owner_name, account_type, balance, monthly_interest_base, created_at, updated_at)
			VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
			RETURNING id, created_at, updated_at`
		err := r.db.QueryRowContext(ctx, query,
			account.OwnerName, account.Type, account.Balance, account.MonthlyInterestBase).
			Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create account: %w", err)
		}
		return nil
	}

	query := `
		UPDATE bank.accounts
		SET balance = $2, monthly_interest_base = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $1
		RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query,
		account.ID, account.Balance, account.MonthlyInterestBase).
		Scan(&account.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.NewNotFound("Account", account.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (r *PostgresAccountStore) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	account := &models.Account{}
	query := `
		SELECT id, owner_name, account_type, balance, monthly_interest_base, created_at, updated_at
		FROM bank.accounts
		WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.OwnerName, &account.Type, &account.Balance,
			&account.MonthlyInterestBase, &account.CreatedAt, &account.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.NewNotFound("Account", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

func (r *PostgresAccountStore) FindByType(ctx context.Context, accountType models.AccountType) ([]*models.Account, error) {
	query := `
		SELECT id, owner_name, account_type, balance, monthly_interest_base, created_at, updated_at
		FROM bank.accounts
		WHERE account_type = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, accountType)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		account := &models.Account{}
		if err := rows.Scan(&account.ID, &account.OwnerName, &account.Type, &account.Balance,
			&account.MonthlyInterestBase, &account.CreatedAt, &account.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	return accounts, nil
}

// PostgresUserStore provides user persistence on postgres.
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore initializes a postgres-backed user store
func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (r *PostgresUserStore) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO bank.users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM bank.users
		WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
