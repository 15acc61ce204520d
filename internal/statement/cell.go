package statement

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MrJamesThe3rd/khata/internal/transaction"
)

// minDescriptionLen is the shortest cell that still reads like narration
// text. Anything at or below it is assumed to be a code, flag, or amount.
const minDescriptionLen = 10

var (
	// datePattern matches the D/M/YYYY shapes banks put in statement cells,
	// e.g. "24/12/2025" or "5/1/2025". Calendar validity is not checked.
	datePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)

	// amountPattern matches a decimal with optional thousands separators and
	// exactly two fractional digits, e.g. "1,500.00" or "2000.00".
	amountPattern = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

// isDateLike reports whether the trimmed cell starts with a slash date.
func isDateLike(cell string) bool {
	return datePattern.MatchString(cell)
}

// isAmountLike reports whether the cell carries a monetary value, either by
// currency marker or by decimal shape.
func isAmountLike(cell string) bool {
	return strings.Contains(cell, "INR") || amountPattern.MatchString(cell)
}

// parseTypeMarker maps the CR/DR flag cells some statements carry to a
// transaction direction. Only the four exact spellings count; a description
// that merely mentions "credit" is not a marker.
func parseTypeMarker(cell string) (transaction.Type, bool) {
	switch strings.ToUpper(cell) {
	case "CR", "CR.":
		return transaction.TypeCredit, true
	case "DR", "DR.":
		return transaction.TypeDebit, true
	}

	return "", false
}

// isDescriptionLike reports whether the cell is long enough to be narration
// text. The caller is responsible for excluding cells already claimed by
// other roles.
func isDescriptionLike(cell string) bool {
	return utf8.RuneCountInString(cell) > minDescriptionLen
}
