// Package category assigns reporting labels to transactions from their
// description text.
package category

import (
	"strings"
)

// Other is the label for descriptions no rule matches.
const Other = "Other"

// rule maps a keyword group to a label. Keywords are matched as lowercase
// substrings, not whole words: "bil" catching "mobile bill" is intended,
// even though it over-matches now and then.
type rule struct {
	label    string
	keywords []string
}

// rules is evaluated in order and the first match wins, so a description
// containing both "upi" and "refund" stays a UPI Payment. Keep the more
// specific payment channels above the generic buckets.
var rules = []rule{
	{label: "UPI Payment", keywords: []string{"upi", "paytm", "phonepe"}},
	{label: "Cash Withdrawal", keywords: []string{"nfs", "cash", "atm"}},
	{label: "Card Payment", keywords: []string{"visa", "card"}},
	{label: "Bill Payment", keywords: []string{"bill", "bpay", "bil"}},
	{label: "Shopping", keywords: []string{"amazon", "flipkart", "shopping"}},
	{label: "Refund", keywords: []string{"refund"}},
	{label: "Income", keywords: []string{"salary", "credit"}},
}

// Categorize returns the label of the first rule whose keyword group
// matches the description, or Other. Pure and total: every input gets
// exactly one label.
func Categorize(description string) string {
	desc := strings.ToLower(description)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(desc, kw) {
				return r.label
			}
		}
	}

	return Other
}
