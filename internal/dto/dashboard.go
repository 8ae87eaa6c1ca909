package dto

import (
	"household-ledger/internal/services"
)

// MonthOptionResponse is one month selector entry
type MonthOptionResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// MonthGroupResponse is one display section of the filtered list
type MonthGroupResponse struct {
	Key          string                `json:"key"`
	Label        string                `json:"label"`
	Transactions []TransactionResponse `json:"transactions"`
}

// FilterStateResponse echoes the filter the view was derived under
type FilterStateResponse struct {
	Search string `json:"search"`
	Month  string `json:"month"`
	Date   string `json:"date,omitempty"`
}

// DashboardViewResponse is the wire form of the derived dashboard
type DashboardViewResponse struct {
	UserID          string                `json:"user_id"`
	Balance         float64               `json:"balance"`
	Income          float64               `json:"income"`
	Expenses        float64               `json:"expenses"`
	TodayIncome     float64               `json:"today_income"`
	TodayExpenses   float64               `json:"today_expenses"`
	AvailableMonths []MonthOptionResponse `json:"available_months"`
	Groups          []MonthGroupResponse  `json:"groups"`
	Filter          FilterStateResponse   `json:"filter"`
}

// GetDashboardResponse wraps the dashboard payload
type GetDashboardResponse struct {
	Data DashboardViewResponse `json:"data"`
}

// NewDashboardViewResponse converts the service view to wire form
func NewDashboardViewResponse(view *services.DashboardView) DashboardViewResponse {
	months := make([]MonthOptionResponse, 0, len(view.AvailableMonths))
	for _, m := range view.AvailableMonths {
		months = append(months, MonthOptionResponse{Key: m.Key.String(), Label: m.Label})
	}

	groups := make([]MonthGroupResponse, 0, len(view.Groups))
	for i := range view.Groups {
		g := &view.Groups[i]
		groups = append(groups, MonthGroupResponse{
			Key:          g.Key.String(),
			Label:        g.Label,
			Transactions: NewTransactionResponses(g.Transactions),
		})
	}

	filter := FilterStateResponse{
		Search: view.Filter.Search,
		Month:  view.Filter.Month.String(),
	}
	if view.Filter.Day != nil {
		filter.Date = view.Filter.Day.UTC().Format(dateLayout)
	}

	return DashboardViewResponse{
		UserID:          view.UserID,
		Balance:         view.Monthly.Balance.InexactFloat64(),
		Income:          view.Monthly.Income.InexactFloat64(),
		Expenses:        view.Monthly.Expense.InexactFloat64(),
		TodayIncome:     view.Today.Income.InexactFloat64(),
		TodayExpenses:   view.Today.Expense.InexactFloat64(),
		AvailableMonths: months,
		Groups:          groups,
		Filter:          filter,
	}
}
