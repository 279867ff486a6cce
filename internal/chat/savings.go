package chat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/finwise-app/finwise/internal/domain"
)

var savingsKeywords = []string{
	"save", "saving", "savings", "waste", "wasted", "useless",
	"cut down", "reduce", "optimize", "where can i save",
}

const (
	maxSuggestions   = 6
	premiumThreshold = 0.2 // 20% above the category median
	highSpendFloor   = 1000.0
)

// SavingsIntent reports whether the query is asking about saving money or
// wasteful spending.
func SavingsIntent(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range savingsKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

type merchantAgg struct {
	name     string
	total    float64
	count    int
	catCount map[string]int
	amounts  []float64
}

// topCategory is the category the merchant's transactions most often carry.
// Ties go to the lexicographically smallest name so the pick is stable.
func (m *merchantAgg) topCategory() string {
	best := ""
	for cat, n := range m.catCount {
		if best == "" || n > m.catCount[best] || (n == m.catCount[best] && cat < best) {
			best = cat
		}
	}
	return best
}

// LocalSuggestions produces rule-based savings advice from the set alone.
// Used as the fallback when the model call fails on a savings question.
func LocalSuggestions(set *domain.Set) string {
	if set.Len() == 0 {
		return "I need valid transaction data (Amount column) to suggest savings."
	}

	catTotals := map[string]float64{}
	catAmounts := map[string][]float64{}
	merchants := map[string]*merchantAgg{}
	for _, t := range set.Transactions {
		amt := t.Amount.InexactFloat64()
		cat := string(t.Category)
		catTotals[cat] += amt
		catAmounts[cat] = append(catAmounts[cat], amt)

		m := merchants[t.Description]
		if m == nil {
			m = &merchantAgg{name: t.Description, catCount: map[string]int{}}
			merchants[t.Description] = m
		}
		m.total += amt
		m.count++
		m.catCount[cat]++
		m.amounts = append(m.amounts, amt)
	}

	catMedians := map[string]float64{}
	for cat, vals := range catAmounts {
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		catMedians[cat] = median(sorted)
	}

	var suggestions []string

	// Biggest categories first.
	topCats := sortedKeys(catTotals)
	if len(topCats) > 3 {
		topCats = topCats[:3]
	}
	if len(topCats) > 0 {
		lines := make([]string, len(topCats))
		for i, c := range topCats {
			lines[i] = fmt.Sprintf("%s: Rs %.0f", c, catTotals[c])
		}
		suggestions = append(suggestions,
			fmt.Sprintf("Your top spending categories are %s. Consider setting weekly limits for these.", strings.Join(lines, ", ")))
	}

	// High-spend merchants, with premium vs category median where it applies.
	sorted := make([]*merchantAgg, 0, len(merchants))
	for _, m := range merchants {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].total != sorted[j].total {
			return sorted[i].total > sorted[j].total
		}
		return sorted[i].name < sorted[j].name
	})
	top := sorted
	if len(top) > 5 {
		top = top[:5]
	}
	for _, m := range top {
		avg := m.total / float64(m.count)
		cat := m.topCategory()
		med := catMedians[cat]
		premium := 0.0
		if med > 0 {
			premium = (avg - med) / med
		}
		switch {
		case premium > premiumThreshold:
			suggestions = append(suggestions, fmt.Sprintf(
				"You spent Rs %.0f on %s, which is %.0f%% higher than your %s median. You can save by switching to cheaper alternatives or reducing frequency.",
				m.total, m.name, premium*100, cat))
		case m.total > highSpendFloor:
			suggestions = append(suggestions, fmt.Sprintf(
				"You spent Rs %.0f on %s over %d visits. Consider reducing this habit to save money.",
				m.total, m.name, m.count))
		}
	}

	// Subscription-like: the same amount repeating.
	for _, m := range sorted {
		if m.count < 2 || !allEqual(m.amounts) {
			continue
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Subscription-like: %s appears %d× at Rs %.0f. Check for plan downgrades or duplicate charges.",
			m.name, m.count, m.amounts[0]))
	}

	if len(suggestions) == 0 {
		return "I didn't find clear savings patterns. Try asking about a specific category or merchant."
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return "Here are ways you can save based on your transactions:\n- " + strings.Join(suggestions, "\n- ")
}

// Summaries renders the aggregate helper lines attached to savings prompts.
func Summaries(set *domain.Set) string {
	if set.Len() == 0 {
		return ""
	}

	catTotals := map[string]float64{}
	merchTotals := map[string]float64{}
	for _, t := range set.Transactions {
		catTotals[string(t.Category)] += t.Amount.InexactFloat64()
		merchTotals[t.Description] += t.Amount.InexactFloat64()
	}

	var lines []string
	if top := topLine(catTotals, 5); top != "" {
		lines = append(lines, "Top categories by spend: "+top)
	}
	if top := topLine(merchTotals, 5); top != "" {
		lines = append(lines, "Top merchants/items: "+top)
	}
	return strings.Join(lines, "\n")
}

func topLine(totals map[string]float64, n int) string {
	keys := sortedKeys(totals)
	if len(keys) > n {
		keys = keys[:n]
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: Rs %.0f", k, totals[k])
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(totals map[string]float64) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if totals[keys[i]] != totals[keys[j]] {
			return totals[keys[i]] > totals[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func allEqual(vals []float64) bool {
	for _, v := range vals[1:] {
		if v != vals[0] {
			return false
		}
	}
	return true
}
