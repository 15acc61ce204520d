package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the direction of a transaction. A credit increases the
// account balance, a debit decreases it.
type Type string

const (
	TypeCredit Type = "credit"
	TypeDebit  Type = "debit"
)

// Transaction is a single normalized statement entry owned by a user.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        string // YYYY-MM-DD, compared lexicographically
	Description string
	Type        Type
	Amount      int64 // Amount in paise, always non-negative; direction lives in Type
	Category    string
	CreatedAt   time.Time
}
