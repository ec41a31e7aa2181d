package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	Port        string
	MetricsPort string
	DBConn      string
	LogLevel    string
	JWTSecret   string
	KeyRateURL  string

	// Savings account business rules
	AnnualInterestRate   decimal.Decimal
	SavingsWithdrawLimit decimal.Decimal

	// SMTP settings for interest statement notifications
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
	StatementEmail string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		DBConn:      getEnv("DB_CONN", "host=localhost port=5432 user=bank password=bank dbname=bank sslmode=disable"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		KeyRateURL:  getEnv("KEY_RATE_URL", "https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"),

		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SenderEmail:    getEnv("SENDER_EMAIL", "noreply@bankledger.local"),
		StatementEmail: getEnv("STATEMENT_EMAIL", ""),
	}

	rate, err := decimal.NewFromString(getEnv("SAVINGS_INTEREST_RATE", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid SAVINGS_INTEREST_RATE: %w", err)
	}
	cfg.AnnualInterestRate = rate

	limit, err := decimal.NewFromString(getEnv("SAVINGS_WITHDRAW_LIMIT", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SAVINGS_WITHDRAW_LIMIT: %w", err)
	}
	if limit.Sign() <= 0 {
		return nil, fmt.Errorf("SAVINGS_WITHDRAW_LIMIT must be greater than zero")
	}
	cfg.SavingsWithdrawLimit = limit

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
