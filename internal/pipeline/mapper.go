package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/finwise-app/finwise/internal/bank"
)

// ErrColumnConflict is returned when two raw headers map onto the same
// canonical column. The upload fails with a message naming both headers
// rather than silently letting one overwrite the other.
var ErrColumnConflict = errors.New("ambiguous column mapping")

// canonicalNames is the set of names a raw header may already carry; such
// headers pass through unmapped but still feed downstream stages.
var canonicalNames = map[string]bool{
	bank.ColDate:        true,
	bank.ColDescription: true,
	bank.ColDebit:       true,
	bank.ColCredit:      true,
	bank.ColAmount:      true,
	bank.ColCategory:    true,
}

// MapColumns resolves raw statement headers to canonical column indices
// using the profile's rule set. Matching is case-insensitive, trimmed, and
// first-match-wins per header in rule order. Headers matching no rule are
// ignored unless they already carry a canonical name.
func MapColumns(headers []string, profile *bank.Profile) (map[string]int, error) {
	cols := make(map[string]int)
	source := make(map[string]string) // canonical -> raw header that claimed it

	assign := func(canonical, raw string, idx int) error {
		if prev, taken := source[canonical]; taken {
			return fmt.Errorf("%w: headers %q and %q both map to %s", ErrColumnConflict, prev, raw, canonical)
		}
		cols[canonical] = idx
		source[canonical] = raw
		return nil
	}

	for idx, raw := range headers {
		lc := strings.ToLower(strings.TrimSpace(raw))
		if lc == "" {
			continue
		}

		canonical := matchRules(lc, profile.ColumnRules)
		if canonical == "" && canonicalNames[strings.TrimSpace(raw)] {
			canonical = strings.TrimSpace(raw)
		}
		if canonical == "" {
			continue
		}
		if err := assign(canonical, raw, idx); err != nil {
			return nil, err
		}
	}
	return cols, nil
}

func matchRules(header string, rules []bank.ColumnRule) string {
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if rule.Exact {
				if header == kw {
					return rule.Canonical
				}
			} else if strings.Contains(header, kw) {
				return rule.Canonical
			}
		}
	}
	return ""
}
