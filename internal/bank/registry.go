package bank

import "strings"

// GenericID identifies the fallback profile used when no bank is given or
// the identifier is not recognised.
const GenericID = "generic"

var sbi = &Profile{
	ID:          "sbi",
	DisplayName: "State Bank of India",
	// SBI exports: Txn Date, Value Date, Description, Ref No./Cheque No., Debit, Credit, Balance
	ColumnRules: []ColumnRule{
		{Canonical: ColDate, Keywords: []string{"txn date", "transaction date"}},
		{Canonical: ColDescription, Keywords: []string{"description", "particulars"}},
		{Canonical: ColDebit, Keywords: []string{"debit"}},
		{Canonical: ColCredit, Keywords: []string{"credit"}},
	},
	DateLayout: "2 Jan 2006",
	CleanRules: []CleanRule{
		{
			Tokens: []string{"UPI/DR", "UPI/CR"},
			Merchant: &MerchantExtract{
				Delimiter: "/",
				Segment:   -1,
				MinParts:  4,
				MinLen:    3,
				Format:    "UPI Payment - %s",
				Fallback:  "UPI Payment",
			},
		},
		{
			Tokens:    []string{"BY TRANSFER"},
			Overrides: []Override{{Token: "MAHAB", Label: "Money Transfer"}},
			Label:     "Bank Transfer",
		},
		{
			Tokens: []string{"TO TRANSFER"},
			Overrides: []Override{
				{Token: "Hamara", Label: "Payment to Hamara"},
				{Token: "SONU", Label: "Payment to Contact"},
			},
			Label: "Money Transfer",
		},
		{Tokens: []string{"AMC"}, Label: "Annual Maintenance Charge"},
		{Tokens: []string{"ECS/ACH RETURN"}, Label: "ECS Return Charges"},
		{
			Tokens:    []string{"NEFT"},
			Overrides: []Override{{Token: "SALARY", Label: "Salary Credit"}},
			Label:     "NEFT Transfer",
		},
		{Tokens: []string{"ATM"}, AllOf: []string{"WDL"}, Label: "ATM Cash Withdrawal"},
	},
}

var kotak = &Profile{
	ID:          "kotak",
	DisplayName: "Kotak Mahindra Bank",
	// Kotak exports: Date, Particulars, Debit, Credit, Balance
	ColumnRules: []ColumnRule{
		{Canonical: ColDate, Keywords: []string{"date"}},
		{Canonical: ColDescription, Keywords: []string{"particulars", "description", "narration"}},
		{Canonical: ColDebit, Keywords: []string{"debit", "withdrawal"}},
		{Canonical: ColCredit, Keywords: []string{"credit", "deposit"}},
	},
	DateLayout: "02/01/2006",
	CleanRules: []CleanRule{
		{
			Tokens: []string{"UPI/"},
			Merchant: &MerchantExtract{
				Delimiter: "/",
				Segment:   1,
				MinParts:  2,
				MinLen:    1,
				Format:    "UPI - %s",
				Fallback:  "UPI Payment",
			},
		},
		{
			Tokens:    []string{"IMPS/"},
			Overrides: []Override{{Token: "AMAZON", Label: "IMPS - Amazon"}},
			Label:     "IMPS Transfer",
		},
		{Tokens: []string{"ATM"}, Label: "ATM Cash Withdrawal"},
		{Tokens: []string{"SALARY"}, AllOf: []string{"NEFT"}, Label: "Salary Credit"},
		{Tokens: []string{"MOBILE RECHARGE"}, Label: "Mobile Recharge"},
	},
}

var axis = &Profile{
	ID:          "axis",
	DisplayName: "Axis Bank",
	// Axis exports: Tran Date, Description, Chq/Ref Number, Value Dt, Withdrawal Amt, Deposit Amt, Closing Balance
	ColumnRules: []ColumnRule{
		{Canonical: ColDate, Keywords: []string{"tran date", "transaction date", "date"}},
		{Canonical: ColDescription, Keywords: []string{"description", "particulars"}},
		{Canonical: ColDebit, Keywords: []string{"withdrawal", "debit"}},
		{Canonical: ColCredit, Keywords: []string{"deposit", "credit"}},
	},
	DateLayout: "02/01/2006",
	CleanRules: []CleanRule{
		{
			Tokens: []string{"UPI-"},
			Merchant: &MerchantExtract{
				Delimiter: "-",
				Segment:   1,
				MinParts:  2,
				MinLen:    1,
				Format:    "UPI - %s",
				Fallback:  "UPI Payment",
			},
		},
		{
			Tokens:    []string{"NEFT-"},
			Overrides: []Override{{Token: "SALARY", Label: "Salary Credit"}},
			Label:     "NEFT Transfer",
		},
		{Tokens: []string{"ATM-"}, Label: "ATM Cash Withdrawal"},
	},
}

// generic matches headers exactly against a universal synonym table and
// applies no bank-specific cleaning.
var generic = &Profile{
	ID:          GenericID,
	DisplayName: "Generic",
	ColumnRules: []ColumnRule{
		{Canonical: ColDate, Exact: true, Keywords: []string{"date", "transaction date", "posted date", "txn date"}},
		{Canonical: ColDescription, Exact: true, Keywords: []string{"description", "details", "merchant", "narration", "memo"}},
		{Canonical: ColCategory, Exact: true, Keywords: []string{"category", "cat", "type"}},
		{Canonical: ColAmount, Exact: true, Keywords: []string{"amount", "amt", "value", "debit", "credit", "amount (inr)", "amount(rs)", "amount inr", "amount rs"}},
	},
}

var profiles = map[string]*Profile{
	sbi.ID:   sbi,
	kotak.ID: kotak,
	axis.ID:  axis,
}

// Lookup returns the profile for a bank identifier, falling back to the
// generic profile when the identifier is empty or unknown.
func Lookup(id string) *Profile {
	if p, ok := profiles[strings.ToLower(strings.TrimSpace(id))]; ok {
		return p
	}
	return generic
}

// IDs lists the supported bank identifiers, excluding the generic fallback.
func IDs() []string {
	return []string{sbi.ID, kotak.ID, axis.ID}
}
