// Package statement extracts normalized transactions from loosely
// structured bank-statement spreadsheets. The input carries no schema: the
// header row sits below an unpredictable amount of letterhead, columns
// appear in any order under any name, and amounts mix currency markers with
// thousands separators. Everything here is content-driven heuristics with
// positional fallbacks, tuned to be format-agnostic at the cost of the
// occasional misread.
package statement

import (
	"io"
)

// Parser turns one statement file into a transaction stream. It holds no
// state, so one Parser can serve concurrent uploads.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Result is the outcome of parsing one file. Skipped keeps the per-row
// drop decisions inspectable; callers surface only Transactions.
type Result struct {
	Transactions []ParsedTransaction
	Skipped      []SkippedRow
}

// SkippedRow records a dropped row by its 0-based sheet index.
type SkippedRow struct {
	Row    int
	Reason SkipReason
}

// Parse reads the whole file and extracts transactions in sheet order.
// A file in which no transaction data can be located yields an empty
// Result, not an error; only an unreadable file fails.
func (p *Parser) Parse(r io.Reader, filename string) (*Result, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	rows, err := readSheet(data, filename)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	start, found := locateStart(rows)
	if !found {
		return result, nil
	}

	for i := start; i < len(rows); i++ {
		row := trimRow(rows[i])

		cols, missing := resolveRoles(row)
		if cols == nil {
			result.Skipped = append(result.Skipped, SkippedRow{Row: i, Reason: skipReasonFor(missing)})
			continue
		}

		parsed, reason := normalizeRow(row, cols)
		if parsed == nil {
			result.Skipped = append(result.Skipped, SkippedRow{Row: i, Reason: reason})
			continue
		}

		result.Transactions = append(result.Transactions, *parsed)
	}

	return result, nil
}

// locateStart finds where tabular transaction data begins: the first row
// with at least one date-like cell. Letterhead, report titles, and header
// rows all lack one.
func locateStart(rows [][]string) (int, bool) {
	for i, row := range rows {
		for j := range row {
			if isDateLike(cellAt(row, j)) {
				return i, true
			}
		}
	}

	return 0, false
}

func skipReasonFor(missing role) SkipReason {
	switch missing {
	case roleDescription:
		return SkipNoDescription
	case roleAmount:
		return SkipNoAmountColumn
	}

	return SkipNoDate
}

func trimRow(row []string) []string {
	trimmed := make([]string, len(row))
	for i := range row {
		trimmed[i] = cellAt(row, i)
	}

	return trimmed
}
