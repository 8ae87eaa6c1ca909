package ledger

import (
	"sort"
	"strings"
	"time"

	"household-ledger/internal/models"
)

// FilterState is the tuple driving the visible transaction subset:
// free-text search, a month selection, and an optional single day.
// The zero value means "no filters".
type FilterState struct {
	Search string
	Month  MonthKey
	Day    *time.Time
}

// Matches reports whether a transaction passes every active filter.
// Predicates AND together; an inactive filter contributes true.
func (f FilterState) Matches(t *models.Transaction) bool {
	return f.matchesSearch(t) && f.Month.Contains(t.Date) && f.matchesDay(t)
}

func (f FilterState) matchesSearch(t *models.Transaction) bool {
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.Category), needle)
}

func (f FilterState) matchesDay(t *models.Transaction) bool {
	if f.Day == nil {
		return true
	}
	return models.SameCalendarDay(t.Date, *f.Day)
}

// SelectDay narrows the view to one calendar day. The month filter
// follows the day so the month selector stays consistent with what is
// on screen.
func (f *FilterState) SelectDay(day time.Time) {
	d := models.NormalizeDate(day)
	f.Day = &d
	f.Month = MonthKeyOf(d)
}

// SelectMonth switches the month filter. A selected day that falls
// outside the new month is cleared rather than silently hiding every
// transaction.
func (f *FilterState) SelectMonth(key MonthKey) {
	f.Month = key
	if f.Day != nil && !key.Contains(*f.Day) {
		f.Day = nil
	}
}

// Clear resets search, month, and day simultaneously
func (f *FilterState) Clear() {
	*f = FilterState{}
}

// Apply returns the transactions passing the filter, newest first.
// The sort is stable: transactions sharing a date keep their arrival
// order, which the store already returns date-descending.
func Apply(transactions []models.Transaction, state FilterState) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for i := range transactions {
		if state.Matches(&transactions[i]) {
			filtered = append(filtered, transactions[i])
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	return filtered
}
