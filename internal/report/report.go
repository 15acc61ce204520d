// Package report groups a user's transactions into the series the
// dashboard charts consume. Pure functions of the stored set.
package report

import (
	"sort"

	"github.com/MrJamesThe3rd/khata/internal/category"
	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

// SeriesPoint is one dated bucket of summed amounts, in paise.
type SeriesPoint struct {
	Date   string
	Amount int64
}

// CategoryTotal is the summed debit amount for one category, in paise.
type CategoryTotal struct {
	Category string
	Amount   int64
}

// Charts holds the three series: credits and debits summed per date
// (ascending; the YYYY-MM-DD form sorts correctly as text), and debit
// totals per category (largest spend first).
type Charts struct {
	Credits  []SeriesPoint
	Debits   []SeriesPoint
	Expenses []CategoryTotal
}

// Build aggregates the transaction set. Deterministic for a given input,
// so re-running it never changes the series.
func Build(txs []*transaction.Transaction) Charts {
	creditsByDate := make(map[string]int64)
	debitsByDate := make(map[string]int64)
	byCategory := make(map[string]int64)

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeCredit:
			creditsByDate[tx.Date] += tx.Amount
		case transaction.TypeDebit:
			debitsByDate[tx.Date] += tx.Amount

			label := tx.Category
			if label == "" {
				label = category.Other
			}

			byCategory[label] += tx.Amount
		}
	}

	charts := Charts{
		Credits:  dateSeries(creditsByDate),
		Debits:   dateSeries(debitsByDate),
		Expenses: categoryTotals(byCategory),
	}

	return charts
}

func dateSeries(sums map[string]int64) []SeriesPoint {
	points := make([]SeriesPoint, 0, len(sums))
	for date, amount := range sums {
		points = append(points, SeriesPoint{Date: date, Amount: amount})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

func categoryTotals(sums map[string]int64) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(sums))
	for label, amount := range sums {
		totals = append(totals, CategoryTotal{Category: label, Amount: amount})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}

		return totals[i].Category < totals[j].Category
	})

	return totals
}
