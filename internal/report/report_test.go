package report_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/khata/internal/report"
	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

func tx(date string, txType transaction.Type, amount int64, cat string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Type:     txType,
		Amount:   amount,
		Category: cat,
	}
}

func TestBuild(t *testing.T) {
	txs := []*transaction.Transaction{
		tx("2025-12-25", transaction.TypeDebit, 200000, "Cash Withdrawal"),
		tx("2025-12-24", transaction.TypeCredit, 150000, "UPI Payment"),
		tx("2025-12-24", transaction.TypeCredit, 50000, "Income"),
		tx("2025-12-25", transaction.TypeDebit, 30000, "Cash Withdrawal"),
		tx("2025-12-23", transaction.TypeDebit, 98000, "Bill Payment"),
	}

	charts := report.Build(txs)

	// Credits summed per date, ascending.
	require.Len(t, charts.Credits, 1)
	assert.Equal(t, report.SeriesPoint{Date: "2025-12-24", Amount: 200000}, charts.Credits[0])

	// Debits summed per date, ascending.
	require.Len(t, charts.Debits, 2)
	assert.Equal(t, report.SeriesPoint{Date: "2025-12-23", Amount: 98000}, charts.Debits[0])
	assert.Equal(t, report.SeriesPoint{Date: "2025-12-25", Amount: 230000}, charts.Debits[1])

	// Debit totals per category, largest first. Credits stay out.
	require.Len(t, charts.Expenses, 2)
	assert.Equal(t, report.CategoryTotal{Category: "Cash Withdrawal", Amount: 230000}, charts.Expenses[0])
	assert.Equal(t, report.CategoryTotal{Category: "Bill Payment", Amount: 98000}, charts.Expenses[1])
}

func TestBuild_UncategorizedDebitsFallToOther(t *testing.T) {
	charts := report.Build([]*transaction.Transaction{
		tx("2025-01-01", transaction.TypeDebit, 1000, ""),
	})

	require.Len(t, charts.Expenses, 1)
	assert.Equal(t, "Other", charts.Expenses[0].Category)
}

func TestBuild_Idempotent(t *testing.T) {
	txs := []*transaction.Transaction{
		tx("2025-12-24", transaction.TypeCredit, 150000, "UPI Payment"),
		tx("2025-12-25", transaction.TypeDebit, 200000, "Cash Withdrawal"),
		tx("2025-12-25", transaction.TypeDebit, 200000, "Shopping"), // tie broken by name
	}

	first := report.Build(txs)
	second := report.Build(txs)
	assert.Equal(t, first, second)

	require.Len(t, first.Expenses, 2)
	assert.Equal(t, "Cash Withdrawal", first.Expenses[0].Category)
	assert.Equal(t, "Shopping", first.Expenses[1].Category)
}

func TestBuild_Empty(t *testing.T) {
	charts := report.Build(nil)
	assert.Empty(t, charts.Credits)
	assert.Empty(t, charts.Debits)
	assert.Empty(t, charts.Expenses)
}
