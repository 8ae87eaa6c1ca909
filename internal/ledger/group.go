package ledger

import (
	"sort"

	"household-ledger/internal/models"
)

// MonthGroup is a display section: the transactions of one calendar
// month under a shared heading.
type MonthGroup struct {
	Key          MonthKey
	Label        string
	Transactions []models.Transaction
}

// MonthOption is one entry of the month selector
type MonthOption struct {
	Key   MonthKey
	Label string
}

// GroupByMonth partitions an already-filtered, date-descending list
// into month sections. Groups come out newest-first by the date of
// their first member; within a group the input order is preserved.
// Every transaction lands in exactly one group.
func GroupByMonth(transactions []models.Transaction) []MonthGroup {
	groups := make([]MonthGroup, 0)
	index := make(map[MonthKey]int)

	for i := range transactions {
		key := MonthKeyOf(transactions[i].Date)
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, MonthGroup{Key: key, Label: key.Label()})
		}
		groups[gi].Transactions = append(groups[gi].Transactions, transactions[i])
	}

	// Input is newest-first, so first-seen order already ranks groups
	// by the date of their first member.
	return groups
}

// AvailableMonths returns the distinct months present in the full
// list, newest first, for populating the month selector.
func AvailableMonths(transactions []models.Transaction) []MonthOption {
	options := make([]MonthOption, 0)
	seen := make(map[MonthKey]bool)

	for i := range transactions {
		key := MonthKeyOf(transactions[i].Date)
		if seen[key] {
			continue
		}
		seen[key] = true
		options = append(options, MonthOption{Key: key, Label: key.Label()})
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Key.First().After(options[j].Key.First())
	})
	return options
}
