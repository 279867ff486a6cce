package pipeline

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmountCell coerces one raw amount cell to a decimal. An empty cell
// is a true zero; a non-empty cell that fails to parse is missing, which is
// distinct from zero until the caller decides how to fill it.
func parseAmountCell(raw string) (val decimal.Decimal, missing bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(cleanAmountString(s))
	if err != nil {
		return decimal.Zero, true
	}
	return d, false
}

// cleanAmountString strips currency symbols and thousands separators so
// exports like "₹1,234.56" or "1,500 Cr" still coerce.
func cleanAmountString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// reconcileDebitCredit folds separate Debit/Credit cells into one signed
// amount: Credit − Debit, so outflows come out negative. Unparseable cells
// collapse to zero after the parse step, matching the fill-then-sum
// convention; the result is never missing.
func reconcileDebitCredit(debitRaw, creditRaw string) decimal.Decimal {
	debit, missing := parseAmountCell(debitRaw)
	if missing {
		debit = decimal.Zero
	}
	credit, missing := parseAmountCell(creditRaw)
	if missing {
		credit = decimal.Zero
	}
	return credit.Sub(debit)
}

// reconcileSingleAmount coerces a single signed Amount cell. Empty and
// unparseable cells are missing; the owning row is dropped by the caller.
func reconcileSingleAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, true
	}
	d, missing := parseAmountCell(s)
	if missing {
		return decimal.Zero, true
	}
	return d, false
}
