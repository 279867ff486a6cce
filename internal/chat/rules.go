// Package chat answers natural-language questions about the transaction
// set with deterministic rules, and produces the local savings analysis
// used when the language model is unavailable.
package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/finwise-app/finwise/internal/domain"
)

// Answer is one rule-produced reply plus metadata about which rule fired.
type Answer struct {
	Response string         `json:"response"`
	Meta     map[string]any `json:"meta"`
}

var (
	categoryPattern = regexp.MustCompile(`(?:on|category)\s+([\w &-]+)`)
	yearPattern     = regexp.MustCompile(`(20\d{2})`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MatchRule tries the deterministic query rules in order: total spending,
// highest/lowest transaction, spending by category, by month, and by
// category within a month. ok is false when no rule applies and the query
// should go to the language model.
func MatchRule(query string, set *domain.Set) (Answer, bool) {
	q := strings.ToLower(query)

	if strings.Contains(q, "total") {
		total := 0.0
		for _, t := range set.Transactions {
			total += t.Amount.InexactFloat64()
		}
		return Answer{
			Response: fmt.Sprintf("Your total spending is %.2f.", total),
			Meta:     map[string]any{"rule": "total"},
		}, true
	}

	if containsAny(q, "highest", "largest", "max") {
		if t, ok := extremeTransaction(set, true); ok {
			return extremeAnswer("Highest", t, "highest"), true
		}
	}
	if containsAny(q, "lowest", "smallest", "min") {
		if t, ok := extremeTransaction(set, false); ok {
			return extremeAnswer("Lowest", t, "lowest"), true
		}
	}

	cat := matchedCategory(q)
	monthIdx := matchedMonth(q)
	year, hasYear := matchedYear(q)

	if cat != "" && monthIdx == 0 {
		total := sumWhere(set, func(t domain.Transaction) bool {
			return strings.EqualFold(string(t.Category), cat)
		})
		return Answer{
			Response: fmt.Sprintf("You spent %.2f on %s.", total, cat),
			Meta:     map[string]any{"rule": "category", "category": cat},
		}, true
	}

	if monthIdx > 0 {
		total := sumWhere(set, func(t domain.Transaction) bool {
			if !t.HasDate() || int(t.Date.Month()) != monthIdx {
				return false
			}
			if hasYear && t.Date.Year() != year {
				return false
			}
			return cat == "" || strings.EqualFold(string(t.Category), cat)
		})

		monthName := cases.Title(language.English).String(monthNames[monthIdx-1])
		scope := monthName
		if hasYear {
			scope += " " + strconv.Itoa(year)
		}
		meta := map[string]any{"rule": "month", "month": monthName}
		if cat != "" {
			meta["rule"] = "category+month"
			meta["category"] = cat
			scope = cat + " in " + scope
		}
		if hasYear {
			meta["year"] = year
		}
		return Answer{
			Response: fmt.Sprintf("You spent %.2f in %s.", total, scope),
			Meta:     meta,
		}, true
	}

	return Answer{}, false
}

func extremeTransaction(set *domain.Set, highest bool) (domain.Transaction, bool) {
	if set.Len() == 0 {
		return domain.Transaction{}, false
	}
	best := set.Transactions[0]
	for _, t := range set.Transactions[1:] {
		if highest && t.Amount.GreaterThan(best.Amount) || !highest && t.Amount.LessThan(best.Amount) {
			best = t
		}
	}
	return best, true
}

func extremeAnswer(label string, t domain.Transaction, rule string) Answer {
	date := ""
	if t.HasDate() {
		date = t.Date.Format("2006-01-02")
	}
	return Answer{
		Response: fmt.Sprintf("%s transaction is %.2f on %s for %s: %s",
			label, t.Amount.InexactFloat64(), date, t.Category, t.Description),
		Meta: map[string]any{"rule": rule},
	}
}

func sumWhere(set *domain.Set, keep func(domain.Transaction) bool) float64 {
	total := 0.0
	for _, t := range set.Transactions {
		if keep(t) {
			total += t.Amount.InexactFloat64()
		}
	}
	return total
}

func matchedCategory(q string) string {
	m := categoryPattern.FindStringSubmatch(q)
	if m == nil {
		return ""
	}
	cat := m[1]
	// The capture is greedy over spaces; cut a trailing month scope like
	// "in february" before it is taken for part of the category name.
	if idx := strings.Index(cat, " in "); idx != -1 {
		cat = cat[:idx]
	}
	return strings.TrimSpace(yearPattern.ReplaceAllString(cat, ""))
}

func matchedMonth(q string) int {
	for i, name := range monthNames {
		if strings.Contains(q, name) {
			return i + 1
		}
	}
	return 0
}

func matchedYear(q string) (int, bool) {
	m := yearPattern.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

func containsAny(q string, tokens ...string) bool {
	for _, tok := range tokens {
		if strings.Contains(q, tok) {
			return true
		}
	}
	return false
}
