package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"household-ledger/internal/models"
)

// MonthlyTotals holds the aggregates for one reference month.
// Balance is always income minus expense.
type MonthlyTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// DailyTotals holds the income and expense sums for one calendar day
type DailyTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySummary sums income and expense over the transactions whose
// date falls in the same calendar month as ref. Aggregates always run
// over the unfiltered list: search and day selections change what is
// shown, not what the month earned or spent.
func MonthlySummary(transactions []models.Transaction, ref time.Time) MonthlyTotals {
	income, expense := decimal.Zero, decimal.Zero

	for i := range transactions {
		t := &transactions[i]
		if !models.SameCalendarMonth(t.Date, ref) {
			continue
		}
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return MonthlyTotals{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// DailySummary sums income and expense over the transactions dated on
// the same calendar day as the given day
func DailySummary(transactions []models.Transaction, day time.Time) DailyTotals {
	income, expense := decimal.Zero, decimal.Zero

	for i := range transactions {
		t := &transactions[i]
		if !models.SameCalendarDay(t.Date, day) {
			continue
		}
		if t.IsIncome() {
			income = income.Add(t.Amount)
		} else {
			expense = expense.Add(t.Amount)
		}
	}

	return DailyTotals{Income: income, Expense: expense}
}
