package pipeline

import (
	"errors"
	"strings"

	"github.com/finwise-app/finwise/internal/bank"
	"github.com/finwise-app/finwise/internal/domain"
)

// ErrNoAmountColumns is returned when neither a Debit/Credit pair nor a
// single Amount column can be found; without one no row can satisfy the
// canonical-schema invariant.
var ErrNoAmountColumns = errors.New("no amount columns found")

// Report carries the aggregate row counts for one normalization run.
// Per-row parse failures are silent; these counts are all callers see.
type Report struct {
	RawRows       int `json:"raw_rows"`
	Kept          int `json:"kept"`
	DroppedAmount int `json:"dropped_amount"`
	DroppedDate   int `json:"dropped_date"`
}

// Normalize turns a raw statement table into the canonical transaction set
// for the given bank profile. It is a pure transformation: map columns,
// reconcile amounts, categorize and clean descriptions, parse dates, and
// drop rows that cannot satisfy the schema invariants.
func Normalize(table *Table, profile *bank.Profile) (*domain.Set, Report, error) {
	var report Report

	cols, err := MapColumns(table.Headers, profile)
	if err != nil {
		return nil, report, err
	}

	debitIdx, hasDebit := cols[bank.ColDebit]
	creditIdx, hasCredit := cols[bank.ColCredit]
	amountIdx, hasAmount := cols[bank.ColAmount]
	splitAmounts := hasDebit && hasCredit
	if !splitAmounts && !hasAmount {
		return nil, report, ErrNoAmountColumns
	}

	dateIdx, hasDate := cols[bank.ColDate]
	descIdx, hasDesc := cols[bank.ColDescription]
	categoryIdx, hasCategory := cols[bank.ColCategory]

	set := &domain.Set{
		Bank:         profile.ID,
		Columns:      canonicalColumns(hasDate, hasDesc),
		Transactions: make([]domain.Transaction, 0, len(table.Rows)),
	}

	report.RawRows = len(table.Rows)
	for _, row := range table.Rows {
		var txn domain.Transaction

		rawDesc := ""
		if hasDesc {
			rawDesc = table.Cell(row, descIdx)
		}

		if splitAmounts {
			debitRaw := table.Cell(row, debitIdx)
			creditRaw := table.Cell(row, creditIdx)
			// Empty debit, credit and description together is a filler row,
			// not a zero-amount transaction. A lone empty pair next to a
			// real description still reconciles to zero and is kept.
			if blank(debitRaw) && blank(creditRaw) && blank(rawDesc) {
				report.DroppedAmount++
				continue
			}
			txn.Amount = reconcileDebitCredit(debitRaw, creditRaw)
		} else {
			amount, missing := reconcileSingleAmount(table.Cell(row, amountIdx))
			if missing {
				report.DroppedAmount++
				continue
			}
			txn.Amount = amount
		}

		if hasDate {
			date, ok := ParseDate(table.Cell(row, dateIdx), profile)
			if !ok {
				report.DroppedDate++
				continue
			}
			txn.Date = date
		}

		txn.Category = resolveCategory(rawDesc, table.Cell(row, categoryIdx), hasCategory)
		txn.Description = CleanDescription(rawDesc, profile)

		set.Transactions = append(set.Transactions, txn)
	}

	report.Kept = len(set.Transactions)
	return set, report, nil
}

// resolveCategory prefers a caller-supplied Category cell when it names a
// taxonomy label; anything else falls through to keyword categorization of
// the raw description.
func resolveCategory(rawDesc, rawCategory string, hasCategory bool) domain.Category {
	if hasCategory {
		if c, ok := NormalizeCategory(rawCategory); ok {
			return c
		}
	}
	return Categorize(rawDesc)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func canonicalColumns(hasDate, hasDesc bool) []string {
	cols := make([]string, 0, 4)
	if hasDate {
		cols = append(cols, bank.ColDate)
	}
	if hasDesc {
		cols = append(cols, bank.ColDescription)
	}
	return append(cols, bank.ColCategory, bank.ColAmount)
}
