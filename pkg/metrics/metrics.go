package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Collector aggregates the ledger operation counters.
type Collector struct {
	registry         *prometheus.Registry
	accountsCreated  *prometheus.CounterVec
	deposits         prometheus.Counter
	withdrawals      prometheus.Counter
	interestCredits  prometheus.Counter
	operationsFailed *prometheus.CounterVec
	logger           *logrus.Logger
}

// NewCollector creates a collector with its own registry.
func NewCollector(logger *logrus.Logger) *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		accountsCreated: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_created_total",
			Help: "Total number of created accounts",
		}, []string{"type"}),
		deposits: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "deposits_total",
			Help: "Total number of successful deposits",
		}),
		withdrawals: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "withdrawals_total",
			Help: "Total number of successful withdrawals",
		}),
		interestCredits: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "interest_credits_total",
			Help: "Total number of interest credits applied",
		}),
		operationsFailed: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "operations_failed_total",
			Help: "Total number of failed operations",
		}, []string{"operation"}),
		logger: logger,
	}
}

func (c *Collector) AccountCreated(accountType string) {
	c.accountsCreated.WithLabelValues(accountType).Inc()
}

func (c *Collector) DepositCompleted() {
	c.deposits.Inc()
}

func (c *Collector) WithdrawalCompleted() {
	c.withdrawals.Inc()
}

func (c *Collector) InterestCredited() {
	c.interestCredits.Inc()
}

func (c *Collector) OperationFailed(operation string) {
	c.operationsFailed.WithLabelValues(operation).Inc()
}

// Handler returns the /metrics HTTP handler for this collector.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// StartServer serves /metrics on the given address in the background.
func (c *Collector) StartServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		c.logger.Infof("Starting metrics server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			c.logger.Errorf("Metrics server failed: %v", err)
		}
	}()

	return server
}
