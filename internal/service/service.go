package service

import (
	"context"
	"fmt"
	"time"

	"bankledger/internal/calculation"
	"bankledger/internal/config"
	"bankledger/internal/models"
	"bankledger/internal/repository"
	"bankledger/internal/utils"
	"bankledger/internal/utils/email"
	"bankledger/pkg/metrics"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Account type selectors used by the create-account boundary.
const (
	AccountSelectorChecking = 1
	AccountSelectorSavings  = 2
)

// Service handles business logic
type Service struct {
	accounts repository.AccountStore
	users    repository.UserStore
	calc     *calculation.Service
	config   *config.Config
	log      *logrus.Logger
	metrics  *metrics.Collector
	notifier *email.Sender
}

// NewService initializes a new service. The notifier may be nil when
// statement notifications are not configured.
func NewService(
	accounts repository.AccountStore,
	users repository.UserStore,
	calc *calculation.Service,
	cfg *config.Config,
	log *logrus.Logger,
	collector *metrics.Collector,
	notifier *email.Sender,
) *Service {
	return &Service{
		accounts: accounts,
		users:    users,
		calc:     calc,
		config:   cfg,
		log:      log,
		metrics:  collector,
		notifier: notifier,
	}
}

// Register creates a new user with hashed password
func (s *Service) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// CreateAccount creates a checking (selector 1) or savings (selector 2)
// account with the given normalized initial balance and returns its
// read-only projection. For savings accounts the monthly interest base
// starts at the initial balance.
func (s *Service) CreateAccount(ctx context.Context, ownerName string, initialBalance decimal.Decimal, accountType int) (*models.AccountDetails, error) {
	var account *models.Account
	switch accountType {
	case AccountSelectorChecking:
		account = &models.Account{
			OwnerName: ownerName,
			Type:      models.AccountTypeChecking,
			Balance:   utils.Normalize(initialBalance),
		}
	case AccountSelectorSavings:
		balance := utils.Normalize(initialBalance)
		account = &models.Account{
			OwnerName:           ownerName,
			Type:                models.AccountTypeSavings,
			Balance:             balance,
			MonthlyInterestBase: balance,
		}
	default:
		s.metrics.OperationFailed("create_account")
		return nil, models.NewInvalidOperation("Invalid account type.")
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		s.metrics.OperationFailed("create_account")
		return nil, err
	}

	s.metrics.AccountCreated(string(account.Type))
	s.log.Infof("Account created: id=%d type=%s", account.ID, account.Type)
	return account.Details(), nil
}

// Deposit adds the amount to the account balance. A deposit into a
// savings account raises the monthly interest base to the new balance
// when it exceeds the old base. Withdrawals never touch the base.
func (s *Service) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	s.log.Debugf("Initiating deposit: account=%d", accountID)
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.metrics.OperationFailed("deposit")
		return err
	}

	newBalance, err := s.calc.AddAmount(account.Balance, amount)
	if err != nil {
		s.metrics.OperationFailed("deposit")
		return err
	}
	account.Balance = newBalance
	if account.Type == models.AccountTypeSavings {
		account.MonthlyInterestBase = decimal.Max(account.MonthlyInterestBase, account.Balance)
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		s.metrics.OperationFailed("deposit")
		return err
	}
	s.metrics.DepositCompleted()
	s.log.Debugf("Deposit completed: account=%d", accountID)
	return nil
}

// Withdraw subtracts the amount from the account balance. Checking
// accounts require sufficient funds; savings withdrawals are capped per
// transaction by the configured limit and also require sufficient funds
// so no balance ever goes negative.
func (s *Service) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	s.log.Debugf("Initiating withdrawal: account=%d", accountID)
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.metrics.OperationFailed("withdraw")
		return err
	}

	switch account.Type {
	case models.AccountTypeChecking:
		err = s.validateCheckingWithdrawal(account, amount)
	case models.AccountTypeSavings:
		err = s.validateSavingsWithdrawal(account, amount)
	default:
		err = models.NewInvalidOperation("Withdrawal is not supported for this type of account.")
	}
	if err != nil {
		s.metrics.OperationFailed("withdraw")
		return err
	}

	newBalance, err := s.calc.SubtractAmount(account.Balance, amount)
	if err != nil {
		s.metrics.OperationFailed("withdraw")
		return err
	}
	account.Balance = newBalance

	if err := s.accounts.Save(ctx, account); err != nil {
		s.metrics.OperationFailed("withdraw")
		return err
	}
	s.metrics.WithdrawalCompleted()
	s.log.Debugf("Withdrawal completed: account=%d", accountID)
	return nil
}

func (s *Service) validateCheckingWithdrawal(account *models.Account, amount decimal.Decimal) error {
	if account.Balance.LessThan(amount) {
		return models.NewInvalidOperation("Insufficient balance for withdrawal.")
	}
	return nil
}

func (s *Service) validateSavingsWithdrawal(account *models.Account, amount decimal.Decimal) error {
	if amount.GreaterThan(s.config.SavingsWithdrawLimit) {
		return models.NewInvalidOperation(fmt.Sprintf(
			"Withdrawal amount exceeds the maximum allowed limit of %s for savings accounts.",
			s.config.SavingsWithdrawLimit.String()))
	}
	if account.Balance.LessThan(amount) {
		return models.NewInvalidOperation("Insufficient balance for withdrawal.")
	}
	return nil
}

// GetBalance returns the current balance of the account.
func (s *Service) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return account.Balance, nil
}

// CalculateInterest credits one month of interest to a savings account.
// The interest is computed on the monthly interest base, added to the
// balance, and the base is reset to the new balance so the next cycle
// compounds on it. Returns the credited interest.
func (s *Service) CalculateInterest(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	s.log.Debugf("Initiating interest calculation: account=%d", accountID)
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		s.metrics.OperationFailed("calculate_interest")
		return decimal.Decimal{}, err
	}
	if account.Type != models.AccountTypeSavings {
		s.metrics.OperationFailed("calculate_interest")
		return decimal.Decimal{}, models.NewInvalidOperation("Interest calculation is only applicable to savings accounts.")
	}

	interest := s.calc.CalculateSavingsInterest(account.MonthlyInterestBase)
	newBalance, err := s.calc.AddAmount(account.Balance, interest)
	if err != nil {
		s.metrics.OperationFailed("calculate_interest")
		return decimal.Decimal{}, err
	}
	account.Balance = newBalance
	account.MonthlyInterestBase = newBalance

	if err := s.accounts.Save(ctx, account); err != nil {
		s.metrics.OperationFailed("calculate_interest")
		return decimal.Decimal{}, err
	}
	s.metrics.InterestCredited()
	s.log.Infof("Interest credited: account=%d interest=%s", accountID, interest.StringFixed(2))
	return interest, nil
}

// ApplyMonthlyInterest runs one interest cycle over every savings
// account. Failures on individual accounts are logged and skipped so one
// bad record does not stall the run. A statement summary is mailed when
// a notifier is configured.
func (s *Service) ApplyMonthlyInterest(ctx context.Context) error {
	accounts, err := s.accounts.FindByType(ctx, models.AccountTypeSavings)
	if err != nil {
		return fmt.Errorf("failed to list savings accounts: %w", err)
	}

	credited := 0
	total := decimal.Zero
	for _, account := range accounts {
		interest, err := s.CalculateInterest(ctx, account.ID)
		if err != nil {
			s.log.Warnf("Skipping interest for account %d: %v", account.ID, err)
			continue
		}
		credited++
		total = total.Add(interest)
	}
	s.log.Infof("Monthly interest run complete: credited=%d total=%s", credited, total.StringFixed(2))

	if s.notifier != nil && s.notifier.Enabled() {
		if err := s.notifier.SendInterestStatement(credited, total); err != nil {
			s.log.Warnf("Statement notification failed: %v", err)
		}
	}
	return nil
}
