package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"bankledger/internal/calculation"
	"bankledger/internal/config"
	"bankledger/internal/handler"
	"bankledger/internal/integrations/centralbank"
	"bankledger/internal/middleware"
	"bankledger/internal/repository"
	"bankledger/internal/service"
	"bankledger/internal/utils/email"
	"bankledger/pkg/metrics"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	_ = godotenv.Load()
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	accounts := repository.NewPostgresAccountStore(db)
	users := repository.NewPostgresUserStore(db)
	calc := calculation.NewService(cfg)
	collector := metrics.NewCollector(logger)
	notifier := email.NewSender(cfg, logger)
	svc := service.NewService(accounts, users, calc, cfg, logger, collector, notifier)
	h := handler.NewHandler(svc, logger)
	rateClient := centralbank.NewClient(cfg, logger)

	// Schedule the monthly interest run
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@monthly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := svc.ApplyMonthlyInterest(ctx); err != nil {
			logger.Errorf("Monthly interest run failed: %v", err)
		}
	}); err != nil {
		logger.Fatalf("Failed to schedule interest run: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := mux.NewRouter()
	// Public routes
	r.HandleFunc("/register", h.Register).Methods("POST")
	r.HandleFunc("/login", h.Login).Methods("POST")
	r.HandleFunc("/health", h.Health).Methods("GET")
	// Protected routes
	authRouter := r.PathPrefix("/").Subrouter()
	authRouter.Use(middleware.AuthMiddleware(cfg))
	authRouter.HandleFunc("/accounts", h.CreateAccount).Methods("POST")
	authRouter.HandleFunc("/accounts/{id}/deposit", h.Deposit).Methods("POST")
	authRouter.HandleFunc("/accounts/{id}/withdraw", h.Withdraw).Methods("POST")
	authRouter.HandleFunc("/accounts/{id}/balance", h.GetBalance).Methods("GET")
	authRouter.HandleFunc("/accounts/{id}/interest", h.CalculateInterest).Methods("POST")
	// Central bank key rate endpoint
	r.HandleFunc("/key-rate", func(w http.ResponseWriter, r *http.Request) {
		rate, err := rateClient.GetKeyRate()
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to get key rate: %v", err), http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"key_rate": rate.String()})
	}).Methods("GET")

	// Expose operation metrics
	collector.StartServer(fmt.Sprintf(":%s", cfg.MetricsPort))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
