package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/finwise-app/finwise/internal/bank"
)

const (
	// maxDescriptionLen is where untouched narrations get truncated.
	maxDescriptionLen = 40
	unknownLabel      = "Unknown Transaction"
)

// CleanDescription rewrites a raw narration into a short display string
// using the profile's ordered cleaning rules; the first firing rule wins.
// Narrations matching no rule are truncated verbatim. The output is display
// only and must never feed back into categorization.
func CleanDescription(raw string, profile *bank.Profile) string {
	desc := strings.TrimSpace(raw)
	if desc == "" {
		return unknownLabel
	}

	for _, rule := range profile.CleanRules {
		if !ruleFires(desc, rule) {
			continue
		}
		if rule.Merchant != nil {
			return extractMerchant(desc, rule.Merchant)
		}
		for _, ov := range rule.Overrides {
			if strings.Contains(desc, ov.Token) {
				return ov.Label
			}
		}
		return rule.Label
	}

	return Truncate(desc)
}

// Truncate shortens a description to the display limit with an ellipsis
// marker; shorter strings come back verbatim. The limit counts runes, not
// bytes, so multi-byte narrations are never cut mid-rune.
func Truncate(desc string) string {
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return string([]rune(desc)[:maxDescriptionLen]) + "..."
	}
	return desc
}

func ruleFires(desc string, rule bank.CleanRule) bool {
	any := false
	for _, tok := range rule.Tokens {
		if strings.Contains(desc, tok) {
			any = true
			break
		}
	}
	if !any {
		return false
	}
	for _, tok := range rule.AllOf {
		if !strings.Contains(desc, tok) {
			return false
		}
	}
	return true
}

// extractMerchant splits a delimiter-separated narration and formats the
// merchant-bearing segment, title-cased. Narrations too short to carry a
// merchant fall back to the rule's generic label.
func extractMerchant(desc string, m *bank.MerchantExtract) string {
	parts := strings.Split(desc, m.Delimiter)
	if len(parts) < m.MinParts {
		return m.Fallback
	}

	seg := m.Segment
	if seg < 0 {
		seg = len(parts) - 1
	}
	merchant := strings.TrimSpace(parts[seg])
	if len(merchant) < m.MinLen {
		return m.Fallback
	}
	return fmt.Sprintf(m.Format, titleCase(merchant))
}

func titleCase(s string) string {
	return cases.Title(language.English).String(strings.ToLower(s))
}
