package statement

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

// ParsedTransaction is one normalized statement row, ready to be stored.
type ParsedTransaction struct {
	Date        string // YYYY-MM-DD
	Description string
	Type        transaction.Type
	Amount      int64 // paise, non-negative
}

// SkipReason explains why a row was dropped. Statement exports are full of
// titles, totals, and separator rows, so skipping is routine rather than
// exceptional.
type SkipReason string

const (
	SkipNoDate           SkipReason = "no date cell"
	SkipNoDescription    SkipReason = "no description column"
	SkipEmptyDescription SkipReason = "empty description"
	SkipNoAmountColumn   SkipReason = "no amount column"
	SkipBadAmount        SkipReason = "unparseable amount"
)

// normalizeRow turns resolved cells into a ParsedTransaction, or reports
// why the row does not hold one.
func normalizeRow(row []string, cols map[role]int) (*ParsedTransaction, SkipReason) {
	description := strings.TrimSpace(cellAt(row, cols[roleDescription]))
	if description == "" {
		return nil, SkipEmptyDescription
	}

	amount, ok := normalizeAmount(cellAt(row, cols[roleAmount]))
	if !ok {
		return nil, SkipBadAmount
	}

	txType := transaction.TypeDebit

	if typeCol, found := cols[roleType]; found {
		if strings.Contains(strings.ToUpper(cellAt(row, typeCol)), "CR") {
			txType = transaction.TypeCredit
		}
	}

	date, err := normalizeDate(cellAt(row, cols[roleDate]))
	if err != nil {
		return nil, SkipNoDate
	}

	return &ParsedTransaction{
		Date:        date,
		Description: description,
		Type:        txType,
		Amount:      amount,
	}, ""
}

// normalizeDate rewrites D/M/YYYY as YYYY-MM-DD with zero padding. It is a
// pure string transform; no calendar validation and no timezone.
func normalizeDate(cell string) (string, error) {
	m := datePattern.FindStringSubmatch(cell)
	if m == nil {
		return "", fmt.Errorf("not a date cell: %q", cell)
	}

	day, month, year := m[1], m[2], m[3]

	return year + "-" + pad2(month) + "-" + pad2(day), nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}

	return s
}

// normalizeAmount extracts the first decimal substring, strips thousands
// separators, and converts to paise. Currency markers and anything after
// the number are ignored: "INR 1,500.00" -> 150000.
func normalizeAmount(cell string) (int64, bool) {
	m := amountPattern.FindString(cell)
	if m == "" {
		return 0, false
	}

	clean := strings.ReplaceAll(m, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, false
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), true
}

// cellAt safely gets a trimmed cell value from a row.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
