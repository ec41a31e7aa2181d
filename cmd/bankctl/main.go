package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"bankledger/internal/calculation"
	"bankledger/internal/config"
	"bankledger/internal/models"
	"bankledger/internal/repository"
	"bankledger/internal/service"
	"bankledger/internal/utils"
	"bankledger/pkg/metrics"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// console is the interactive menu over the transaction service. It keeps
// its state in an in-memory store for the lifetime of the session.
type console struct {
	svc *service.Service
	in  *bufio.Reader
}

func main() {
	logger := logrus.New()
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		// Keep the menu clean unless logging is asked for explicitly.
		logLevel = logrus.WarnLevel
	}
	logger.SetLevel(logLevel)

	_ = godotenv.Load()
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	calc := calculation.NewService(cfg)
	accounts := repository.NewMemoryAccountStore()
	users := repository.NewMemoryUserStore()
	collector := metrics.NewCollector(logger)
	svc := service.NewService(accounts, users, calc, cfg, logger, collector, nil)

	c := &console{svc: svc, in: bufio.NewReader(os.Stdin)}
	c.run()
}

func (c *console) run() {
	for {
		c.displayMenu()
		choice, err := c.readInt("")
		if err != nil {
			fmt.Println("Invalid choice. Please try again.")
			continue
		}

		var opErr error
		switch choice {
		case 1:
			opErr = c.createAccount()
		case 2:
			opErr = c.depositMoney()
		case 3:
			opErr = c.withdrawMoney()
		case 4:
			opErr = c.displayBalance()
		case 5:
			opErr = c.calculateInterest()
		case 6:
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
			continue
		}
		if opErr != nil {
			fmt.Fprintln(os.Stderr, "Error: "+opErr.Error())
		}
	}
}

func (c *console) displayMenu() {
	fmt.Println("1. Create Account")
	fmt.Println("2. Deposit Money")
	fmt.Println("3. Withdraw Money")
	fmt.Println("4. Display Balance")
	fmt.Println("5. Calculate Interest (Savings Account)")
	fmt.Println("6. Quit")
	fmt.Print("Enter your choice: ")
}

func (c *console) createAccount() error {
	fmt.Print("Enter your name: ")
	ownerName, err := c.readLine()
	if err != nil {
		return err
	}
	if err := utils.RequireNonEmpty(ownerName, "Owner Name"); err != nil {
		return err
	}

	balance, err := c.readDecimal("Enter initial balance: ")
	if err != nil {
		return err
	}
	if err := utils.RequirePositive(balance, "Initial Balance"); err != nil {
		return err
	}

	accountType, err := c.readInt("Choose account type (1 for checking, 2 for savings): ")
	if err != nil {
		return err
	}

	details, err := c.svc.CreateAccount(context.Background(), ownerName, balance, accountType)
	if err != nil {
		return err
	}

	switch details.Type {
	case models.AccountTypeSavings:
		fmt.Printf("Savings Account created successfully. Account ID: %d\n", details.ID)
	default:
		fmt.Printf("Checking Account created successfully. Account ID: %d\n", details.ID)
	}
	return nil
}

func (c *console) depositMoney() error {
	accountID, err := c.readAccountID()
	if err != nil {
		return err
	}
	amount, err := c.readDecimal("Enter amount to deposit: ")
	if err != nil {
		return err
	}
	if err := utils.RequirePositive(amount, "Amount to Deposit"); err != nil {
		return err
	}

	if err := c.svc.Deposit(context.Background(), accountID, amount); err != nil {
		return err
	}
	fmt.Printf("%s deposited successfully.\n", amount.String())
	return nil
}

func (c *console) withdrawMoney() error {
	accountID, err := c.readAccountID()
	if err != nil {
		return err
	}
	amount, err := c.readDecimal("Enter amount to withdraw: ")
	if err != nil {
		return err
	}

	if err := c.svc.Withdraw(context.Background(), accountID, amount); err != nil {
		return err
	}
	fmt.Printf("%s withdrawn successfully.\n", amount.String())
	return nil
}

func (c *console) displayBalance() error {
	accountID, err := c.readAccountID()
	if err != nil {
		return err
	}

	balance, err := c.svc.GetBalance(context.Background(), accountID)
	if err != nil {
		return err
	}
	fmt.Printf("Account balance: %s\n", balance.StringFixed(2))
	return nil
}

func (c *console) calculateInterest() error {
	accountID, err := c.readAccountID()
	if err != nil {
		return err
	}

	interest, err := c.svc.CalculateInterest(context.Background(), accountID)
	if err != nil {
		return err
	}
	fmt.Printf("Interest for this month is %s euros\n", interest.StringFixed(2))
	return nil
}

func (c *console) readAccountID() (int64, error) {
	fmt.Print("Enter account ID: ")
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid account id: %q", line)
	}
	if err := utils.RequirePositiveID(id, "Account ID"); err != nil {
		return 0, err
	}
	return id, nil
}

func (c *console) readDecimal(prompt string) (decimal.Decimal, error) {
	fmt.Print(prompt)
	line, err := c.readLine()
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount: %q", line)
	}
	return d, nil
}

func (c *console) readInt(prompt string) (int, error) {
	if prompt != "" {
		fmt.Print(prompt)
	}
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(line)
}

func (c *console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
