// Package llm renders transaction context for the language model, builds
// the chat prompts, and wraps the Gemini client with model fallback.
package llm

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/finwise-app/finwise/internal/domain"
)

// RenderContext serializes the set one line per transaction for prompt
// embedding. Absent fields render as "?" (date, category) or empty
// (description).
func RenderContext(set *domain.Set) string {
	lines := make([]string, 0, set.Len())
	for _, t := range set.Transactions {
		date := "?"
		if t.HasDate() {
			date = t.Date.Format("2006-01-02")
		}
		category := "?"
		if t.Category != "" {
			category = string(t.Category)
		}
		lines = append(lines, fmt.Sprintf("On %s you spent ₹%s on %s: %s",
			date, t.Amount.Abs().StringFixed(2), category, t.Description))
	}
	return strings.Join(lines, "\n")
}

// TruncateContext keeps the tail of an overlong context so the most recent
// transactions survive; returns whether anything was cut. The cut point
// advances to the next rune boundary so the kept tail stays valid UTF-8
// (every rendered line carries a multi-byte ₹).
func TruncateContext(context string, maxChars int) (string, bool) {
	if maxChars <= 0 || len(context) <= maxChars {
		return context, false
	}
	cut := len(context) - maxChars
	for cut < len(context) && !utf8.RuneStart(context[cut]) {
		cut++
	}
	return context[cut:], true
}
