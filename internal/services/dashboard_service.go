package services

import (
	"fmt"
	"log/slog"
	"time"

	"household-ledger/internal/ledger"
	"household-ledger/internal/repositories"
)

type dashboardService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewDashboardService creates a dashboard service over the transaction store
func NewDashboardService(
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// GetDashboard fetches the user's full history once and recomputes
// every derived value from it. The engine is stateless: any filter or
// data change re-runs the whole derivation.
func (s *dashboardService) GetDashboard(userID string, state ledger.FilterState, now time.Time) (*DashboardView, error) {
	start := time.Now()

	transactions, err := s.transactionRepo.ListByUser(userID)
	if err != nil {
		slog.Error("failed to fetch transactions for dashboard",
			"user_id", userID,
			"error", err)
		s.metrics.IncrementCounter("dashboard.view", map[string]string{"status": "error"})
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	// Monthly aggregates track the selected month when one is chosen,
	// otherwise the month containing "now". They always run over the
	// unfiltered list: search and day selections change what is shown,
	// not what the month earned or spent.
	ref := now
	if !state.Month.IsAll() {
		ref = state.Month.First()
	}

	filtered := ledger.Apply(transactions, state)

	view := &DashboardView{
		UserID:          userID,
		Monthly:         ledger.MonthlySummary(transactions, ref),
		Today:           ledger.DailySummary(transactions, now),
		AvailableMonths: ledger.AvailableMonths(transactions),
		Groups:          ledger.GroupByMonth(filtered),
		Filter:          state,
	}

	s.metrics.IncrementCounter("dashboard.view", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("dashboard.derive", time.Since(start))

	slog.Info("dashboard view generated",
		"user_id", userID,
		"transaction_count", len(transactions),
		"filtered_count", len(filtered),
		"group_count", len(view.Groups))

	return view, nil
}
