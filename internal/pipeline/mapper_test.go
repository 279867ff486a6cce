package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise-app/finwise/internal/bank"
)

func TestMapColumns_SBI(t *testing.T) {
	headers := []string{"Txn Date", "Value Date", "Description", "Ref No./Cheque No.", "Debit", "Credit", "Balance"}

	cols, err := MapColumns(headers, bank.Lookup("sbi"))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		bank.ColDate:        0,
		bank.ColDescription: 2,
		bank.ColDebit:       4,
		bank.ColCredit:      5,
	}, cols)
}

func TestMapColumns_AxisSynonyms(t *testing.T) {
	headers := []string{"Tran Date", "CHQNO", "PARTICULARS", "Withdrawal Amt", "Deposit Amt", "Closing Balance"}

	cols, err := MapColumns(headers, bank.Lookup("axis"))
	require.NoError(t, err)

	assert.Equal(t, 0, cols[bank.ColDate])
	assert.Equal(t, 2, cols[bank.ColDescription])
	assert.Equal(t, 3, cols[bank.ColDebit])
	assert.Equal(t, 4, cols[bank.ColCredit])
}

func TestMapColumns_CaseAndWhitespace(t *testing.T) {
	headers := []string{"  TXN DATE  ", "dEsCrIpTiOn", "DEBIT", "credit"}

	cols, err := MapColumns(headers, bank.Lookup("sbi"))
	require.NoError(t, err)
	assert.Len(t, cols, 4)
}

func TestMapColumns_UnmatchedHeadersIgnored(t *testing.T) {
	headers := []string{"Txn Date", "Description", "Debit", "Credit", "Some Bank Internal Code"}

	cols, err := MapColumns(headers, bank.Lookup("sbi"))
	require.NoError(t, err)
	assert.Len(t, cols, 4)
}

func TestMapColumns_Generic(t *testing.T) {
	headers := []string{"Date", "Description", "Category", "Amount"}

	cols, err := MapColumns(headers, bank.Lookup("generic"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		bank.ColDate:        0,
		bank.ColDescription: 1,
		bank.ColCategory:    2,
		bank.ColAmount:      3,
	}, cols)
}

// A header already carrying a canonical name passes through even when the
// profile has no rule for it: sbi has no Amount rule but a literal "Amount"
// header still lands.
func TestMapColumns_CanonicalPassthrough(t *testing.T) {
	headers := []string{"Txn Date", "Description", "Amount"}

	cols, err := MapColumns(headers, bank.Lookup("sbi"))
	require.NoError(t, err)
	assert.Equal(t, 2, cols[bank.ColAmount])
}

func TestMapColumns_Conflict(t *testing.T) {
	headers := []string{"Debit", "Debit Amount"}

	_, err := MapColumns(headers, bank.Lookup("sbi"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrColumnConflict))
	assert.Contains(t, err.Error(), "Debit Amount")
}

func TestMapColumns_GenericExactMatchOnly(t *testing.T) {
	// The generic profile matches exactly, so "Transaction Details" must not
	// be claimed by the "details" synonym.
	headers := []string{"Date", "Transaction Details", "Amount"}

	cols, err := MapColumns(headers, bank.Lookup("generic"))
	require.NoError(t, err)
	_, hasDesc := cols[bank.ColDescription]
	assert.False(t, hasDesc)
}
