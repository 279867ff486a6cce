// Package bank defines the per-bank statement profiles: column-mapping
// rules, date layouts, and description-cleaning rules for every supported
// export format, plus a generic fallback for unknown banks.
package bank

// Canonical column names every statement format is mapped into.
const (
	ColDate        = "Date"
	ColDescription = "Description"
	ColDebit       = "Debit"
	ColCredit      = "Credit"
	ColAmount      = "Amount"
	ColCategory    = "Category"
)

// ColumnRule maps raw statement headers onto one canonical column.
// Headers are lower-cased and trimmed before matching. With Exact unset the
// rule fires when any keyword is contained in the header; with Exact set the
// header must equal one of the keywords.
type ColumnRule struct {
	Canonical string
	Keywords  []string
	Exact     bool
}

// Override rewrites a description to a fixed label when the token is
// contained in the raw string. Tokens are matched case-sensitively, the way
// the narrations actually appear in exports.
type Override struct {
	Token string
	Label string
}

// MerchantExtract describes how to pull a merchant token out of a
// delimiter-separated narration (UPI-style strings).
type MerchantExtract struct {
	Delimiter string
	Segment   int // index of the merchant segment; -1 means last
	MinParts  int // minimum split length for extraction to apply
	MinLen    int // minimum merchant token length to accept
	Format    string
	Fallback  string
}

// CleanRule is one ordered description-cleaning rule. The rule fires when
// any Tokens entry and every AllOf entry is contained in the raw
// description. A firing rule either extracts a merchant (Merchant set),
// applies the first matching Override, or falls back to Label.
type CleanRule struct {
	Tokens    []string
	AllOf     []string
	Overrides []Override
	Label     string
	Merchant  *MerchantExtract
}

// Profile bundles everything format-specific about one bank's export:
// which raw headers mean what, how dates are written, and how narrations
// are cleaned for display.
type Profile struct {
	ID          string
	DisplayName string
	ColumnRules []ColumnRule
	DateLayout  string // primary date layout; empty means permissive parsing only
	CleanRules  []CleanRule
}

// Generic reports whether this is the fallback profile for unknown banks.
func (p *Profile) Generic() bool {
	return p.ID == GenericID
}
