package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one normalized statement row in the canonical schema.
// Every supported bank format is mapped into this shape; positive amounts
// are money in, negative amounts are money out.
type Transaction struct {
	Date        time.Time       `json:"date"`        // zero when the source row had no parseable date
	Description string          `json:"description"` // cleaned display string
	Category    Category        `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// HasDate reports whether the transaction carries a parsed date.
func (t Transaction) HasDate() bool {
	return !t.Date.IsZero()
}

// Set is the canonical transaction set produced from one upload. It is
// replaced wholesale on every successful upload; there are no merge or
// append semantics.
type Set struct {
	Bank         string        `json:"bank"`
	Columns      []string      `json:"columns"`
	Transactions []Transaction `json:"transactions"`
}

// Len returns the number of retained transactions.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Transactions)
}

// HasColumn reports whether the canonical column was present in the upload.
func (s *Set) HasColumn(name string) bool {
	if s == nil {
		return false
	}
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}
