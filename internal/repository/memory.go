package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bankledger/internal/models"
)

// MemoryAccountStore is an in-memory AccountStore. All access is guarded
// by a single mutex; stored records are copied on the way in and out so
// callers never alias internal state.
type MemoryAccountStore struct {
	mu       sync.RWMutex
	accounts map[int64]*models.Account
	nextID   int64
}

// NewMemoryAccountStore creates an empty in-memory account store.
func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{accounts: make(map[int64]*models.Account)}
}

func (s *MemoryAccountStore) Save(ctx context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if account.ID == 0 {
		s.nextID++
		account.ID = s.nextID
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	stored := *account
	s.accounts[account.ID] = &stored
	return nil
}

func (s *MemoryAccountStore) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, exists := s.accounts[id]
	if !exists {
		return nil, models.NewNotFound("Account", id)
	}
	cp := *account
	return &cp, nil
}

func (s *MemoryAccountStore) FindByType(ctx context.Context, accountType models.AccountType) ([]*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Account
	for _, account := range s.accounts {
		if account.Type == accountType {
			cp := *account
			result = append(result, &cp)
		}
	}
	return result, nil
}

// MemoryUserStore is an in-memory UserStore.
type MemoryUserStore struct {
	mu     sync.RWMutex
	users  map[string]*models.User
	nextID int64
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Email]; exists {
		return fmt.Errorf("user with email %s already exists", user.Email)
	}
	s.nextID++
	user.ID = s.nextID
	user.CreatedAt = time.Now()

	stored := *user
	s.users[user.Email] = &stored
	return nil
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[email]
	if !exists {
		return nil, fmt.Errorf("user not found")
	}
	cp := *user
	return &cp, nil
}
