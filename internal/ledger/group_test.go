package ledger

import (
	"testing"

	"household-ledger/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByMonth_PartitionsByCalendarMonth(t *testing.T) {
	transactions := []models.Transaction{
		tx("july rent", "lodging", models.TransactionTypeExpense, 500, day(2024, 7, 1)),
		tx("june salary", "salary", models.TransactionTypeIncome, 100, day(2024, 6, 28)),
		tx("june lunch", "food", models.TransactionTypeExpense, 12, day(2024, 6, 2)),
	}

	groups := GroupByMonth(transactions)

	require.Len(t, groups, 2)

	assert.Equal(t, "2024-7", groups[0].Key.String())
	assert.Equal(t, "July 2024", groups[0].Label)
	require.Len(t, groups[0].Transactions, 1)

	assert.Equal(t, "2024-6", groups[1].Key.String())
	assert.Equal(t, "June 2024", groups[1].Label)
	require.Len(t, groups[1].Transactions, 2)
	assert.Equal(t, "june salary", groups[1].Transactions[0].Description)
	assert.Equal(t, "june lunch", groups[1].Transactions[1].Description)
}

func TestGroupByMonth_EveryTransactionLandsInOneGroup(t *testing.T) {
	transactions := []models.Transaction{
		tx("a", "general", models.TransactionTypeExpense, 1, day(2024, 6, 3)),
		tx("b", "general", models.TransactionTypeExpense, 1, day(2024, 6, 2)),
		tx("c", "general", models.TransactionTypeExpense, 1, day(2024, 5, 30)),
		tx("d", "general", models.TransactionTypeExpense, 1, day(2024, 5, 1)),
	}

	groups := GroupByMonth(transactions)

	total := 0
	for _, g := range groups {
		total += len(g.Transactions)
	}
	assert.Equal(t, len(transactions), total)
}

func TestGroupByMonth_Empty(t *testing.T) {
	groups := GroupByMonth(nil)
	assert.Empty(t, groups)
}

func TestAvailableMonths_DistinctNewestFirst(t *testing.T) {
	transactions := []models.Transaction{
		tx("a", "general", models.TransactionTypeExpense, 1, day(2024, 5, 10)),
		tx("b", "general", models.TransactionTypeExpense, 1, day(2024, 7, 1)),
		tx("c", "general", models.TransactionTypeExpense, 1, day(2024, 6, 2)),
		tx("d", "general", models.TransactionTypeExpense, 1, day(2024, 6, 15)),
	}

	options := AvailableMonths(transactions)

	require.Len(t, options, 3)
	assert.Equal(t, "2024-7", options[0].Key.String())
	assert.Equal(t, "2024-6", options[1].Key.String())
	assert.Equal(t, "2024-5", options[2].Key.String())
	assert.Equal(t, "July 2024", options[0].Label)
}

func TestAvailableMonths_Empty(t *testing.T) {
	assert.Empty(t, AvailableMonths(nil))
}

func TestAvailableMonths_SpansYears(t *testing.T) {
	transactions := []models.Transaction{
		tx("old", "general", models.TransactionTypeExpense, 1, day(2023, 12, 31)),
		tx("new", "general", models.TransactionTypeExpense, 1, day(2024, 1, 1)),
	}

	options := AvailableMonths(transactions)

	require.Len(t, options, 2)
	assert.Equal(t, "2024-1", options[0].Key.String())
	assert.Equal(t, "2023-12", options[1].Key.String())
}

func TestGroupsFollowFilteredList(t *testing.T) {
	transactions := []models.Transaction{
		tx("june food", "food", models.TransactionTypeExpense, 12, day(2024, 6, 2)),
		tx("june rent", "lodging", models.TransactionTypeExpense, 500, day(2024, 6, 1)),
		tx("may food", "food", models.TransactionTypeExpense, 9, day(2024, 5, 20)),
	}

	filtered := Apply(transactions, FilterState{Search: "food"})
	groups := GroupByMonth(filtered)

	require.Len(t, groups, 2)
	require.Len(t, groups[0].Transactions, 1)
	assert.Equal(t, "june food", groups[0].Transactions[0].Description)
	require.Len(t, groups[1].Transactions, 1)
	assert.Equal(t, "may food", groups[1].Transactions[0].Description)

	// The month selector still reflects the unfiltered history
	assert.Len(t, AvailableMonths(transactions), 2)
}
