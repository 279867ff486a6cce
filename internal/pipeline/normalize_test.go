package pipeline

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise-app/finwise/internal/bank"
	"github.com/finwise-app/finwise/internal/domain"
)

func TestNormalize_SBIStatement(t *testing.T) {
	table := &Table{
		Headers: []string{"Txn Date", "Description", "Debit", "Credit"},
		Rows: [][]string{
			{"1 Jan 2024", "UPI/DR/123456/SWIGGY", "150", "0"},
			{"2 Jan 2024", "SALARY NEFT CREDIT", "0", "50000"},
			{"3 Jan 2024", "", "", ""},
		},
	}

	set, report, err := Normalize(table, bank.Lookup("sbi"))
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	assert.Equal(t, "sbi", set.Bank)
	assert.Equal(t, []string{bank.ColDate, bank.ColDescription, bank.ColCategory, bank.ColAmount}, set.Columns)

	first := set.Transactions[0]
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "UPI Payment - Swiggy", first.Description)
	assert.Equal(t, domain.CategoryFoodDining, first.Category)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(-150)), "got %s", first.Amount)

	second := set.Transactions[1]
	assert.Equal(t, "Salary Credit", second.Description)
	assert.Equal(t, domain.CategoryIncome, second.Category)
	assert.True(t, second.Amount.Equal(decimal.NewFromInt(50000)), "got %s", second.Amount)

	// The all-empty third row carries no transaction and is dropped.
	assert.Equal(t, Report{RawRows: 3, Kept: 2, DroppedAmount: 1}, report)
}

func TestNormalize_EmptyPairWithDescriptionIsZero(t *testing.T) {
	table := &Table{
		Headers: []string{"Txn Date", "Description", "Debit", "Credit"},
		Rows: [][]string{
			{"4 Jan 2024", "BALANCE ENQUIRY", "", ""},
		},
	}

	set, report, err := Normalize(table, bank.Lookup("sbi"))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	// Empty Debit/Credit cells next to a real description are zero, not
	// missing; the row stays.
	assert.True(t, set.Transactions[0].Amount.IsZero())
	assert.Zero(t, report.DroppedAmount)
}

func TestNormalize_AmountSigns(t *testing.T) {
	table := &Table{
		Headers: []string{"Date", "Particulars", "Debit", "Credit"},
		Rows: [][]string{
			{"05/01/2024", "UPI/SWIGGY/payment", "250", "0"},
			{"06/01/2024", "NEFT SALARY JAN", "0", "45000"},
			{"07/01/2024", "₹1,234.56 formatted debit", "₹1,234.56", ""},
		},
	}

	set, _, err := Normalize(table, bank.Lookup("kotak"))
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	assert.True(t, set.Transactions[0].Amount.Equal(decimal.NewFromInt(-250)))
	assert.True(t, set.Transactions[1].Amount.Equal(decimal.NewFromInt(45000)))
	assert.True(t, set.Transactions[2].Amount.Equal(decimal.RequireFromString("-1234.56")))
}

func TestNormalize_SingleAmountColumn(t *testing.T) {
	table := &Table{
		Headers: []string{"Date", "Description", "Amount"},
		Rows: [][]string{
			{"2024-01-05", "AMAZON PURCHASE", "-499"},
			{"2024-01-06", "REFUND", "499"},
			{"2024-01-07", "BROKEN ROW", "n/a"},
			{"2024-01-08", "EMPTY AMOUNT", ""},
		},
	}

	set, report, err := Normalize(table, bank.Lookup(""))
	require.NoError(t, err)

	// Unparseable and empty single-Amount cells drop the whole row.
	require.Equal(t, 2, set.Len())
	assert.Equal(t, 4, report.RawRows)
	assert.Equal(t, 2, report.Kept)
	assert.Equal(t, 2, report.DroppedAmount)
	assert.True(t, set.Transactions[0].Amount.Equal(decimal.NewFromInt(-499)))
	assert.True(t, set.Transactions[1].Amount.Equal(decimal.NewFromInt(499)))
}

func TestNormalize_DroppedDates(t *testing.T) {
	table := &Table{
		Headers: []string{"Txn Date", "Description", "Debit", "Credit"},
		Rows: [][]string{
			{"1 Jan 2024", "UPI/DR/1/SWIGGY", "100", ""},
			{"not a date", "UPI/DR/2/ZOMATO", "200", ""},
		},
	}

	set, report, err := Normalize(table, bank.Lookup("sbi"))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, 1, report.DroppedDate)
}

func TestNormalize_NoAmountColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"Date", "Description"},
		Rows:    [][]string{{"2024-01-05", "AMAZON"}},
	}

	_, _, err := Normalize(table, bank.Lookup(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoAmountColumns))
}

func TestNormalize_DebitOnlyIsNotEnough(t *testing.T) {
	// A lone Debit column does not form a split pair; the generic profile
	// maps it to Amount instead, so rows still normalize.
	table := &Table{
		Headers: []string{"Date", "Description", "Debit"},
		Rows:    [][]string{{"2024-01-05", "AMAZON", "300"}},
	}

	set, _, err := Normalize(table, bank.Lookup(""))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.True(t, set.Transactions[0].Amount.Equal(decimal.NewFromInt(300)))
}

func TestNormalize_CategoryColumnPassthrough(t *testing.T) {
	table := &Table{
		Headers: []string{"Date", "Description", "Category", "Amount"},
		Rows: [][]string{
			{"2024-01-05", "SWIGGY ORDER", "food & dining", "-250"},
			{"2024-01-06", "SWIGGY ORDER", "Not A Real Category", "-250"},
		},
	}

	set, _, err := Normalize(table, bank.Lookup(""))
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	// A taxonomy label passes through case-insensitively.
	assert.Equal(t, domain.CategoryFoodDining, set.Transactions[0].Category)
	// Anything else falls back to keyword categorization of the description.
	assert.Equal(t, domain.CategoryFoodDining, set.Transactions[1].Category)
}

func TestNormalize_NoDescriptionColumn(t *testing.T) {
	table := &Table{
		Headers: []string{"Date", "Amount"},
		Rows:    [][]string{{"2024-01-05", "-100"}},
	}

	set, _, err := Normalize(table, bank.Lookup(""))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	assert.Equal(t, []string{bank.ColDate, bank.ColCategory, bank.ColAmount}, set.Columns)
	assert.Equal(t, "Unknown Transaction", set.Transactions[0].Description)
	assert.Equal(t, domain.CategoryOther, set.Transactions[0].Category)
}

func TestNormalize_RaggedRows(t *testing.T) {
	table := &Table{
		Headers: []string{"Txn Date", "Description", "Debit", "Credit"},
		Rows: [][]string{
			{"1 Jan 2024", "UPI/DR/1/SWIGGY", "100"}, // missing Credit cell
		},
	}

	set, _, err := Normalize(table, bank.Lookup("sbi"))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.True(t, set.Transactions[0].Amount.Equal(decimal.NewFromInt(-100)))
}

func TestNormalize_ColumnConflict(t *testing.T) {
	table := &Table{
		Headers: []string{"Debit", "Debit Amount", "Credit", "Description", "Txn Date"},
		Rows:    [][]string{{"100", "100", "0", "x", "1 Jan 2024"}},
	}

	_, _, err := Normalize(table, bank.Lookup("sbi"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnConflict))
}
