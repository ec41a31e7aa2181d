package email

import (
	"fmt"
	"net/smtp"
	"time"

	"bankledger/internal/config"
	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether SMTP delivery is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != "" && s.cfg.StatementEmail != ""
}

// SendInterestStatement sends a summary of a monthly interest run.
func (s *Sender) SendInterestStatement(credited int, totalInterest decimal.Decimal) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.StatementEmail}
	e.Subject = "Monthly Interest Statement"

	body := fmt.Sprintf(
		"Monthly interest run completed on %s.\n\n"+
			"Savings accounts credited: %d\n"+
			"Total interest paid: %s\n",
		time.Now().Format("2006-01-02 15:04:05"), credited, totalInterest.StringFixed(2),
	)
	body += "\nBest regards,\nBank Ledger"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send statement to %s: %v", s.cfg.StatementEmail, err)
		return fmt.Errorf("failed to send statement: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.StatementEmail, e.Subject)
	return nil
}
