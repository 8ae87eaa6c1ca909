package services

import (
	"time"

	"household-ledger/internal/ledger"
)

// DashboardServiceInterface assembles the derived dashboard view for
// one user from their full transaction history
type DashboardServiceInterface interface {
	GetDashboard(userID string, state ledger.FilterState, now time.Time) (*DashboardView, error)
}

// MetricsRecorderInterface abstracts metric recording so services can
// be tested without a live Prometheus registry
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}

// DashboardView is the full derived state the dashboard renders:
// aggregates over the unfiltered history plus the filtered, grouped
// transaction list.
type DashboardView struct {
	UserID          string
	Monthly         ledger.MonthlyTotals
	Today           ledger.DailyTotals
	AvailableMonths []ledger.MonthOption
	Groups          []ledger.MonthGroup
	Filter          ledger.FilterState
}
