// Package analytics computes aggregate statistics over the canonical
// transaction set: the dashboard summary and the advanced statistical
// analysis. Everything here is a pure function of the set.
package analytics

import (
	"sort"

	"github.com/finwise-app/finwise/internal/bank"
	"github.com/finwise-app/finwise/internal/domain"
)

// Dashboard is the summary payload behind the dashboard endpoint.
type Dashboard struct {
	TotalSpending     float64         `json:"totalSpending"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalCategories   int             `json:"totalCategories"`
	AvgTransaction    float64         `json:"avgTransaction"`
	Categories        []CategoryTotal `json:"categories,omitempty"`
	Monthly           []MonthTotal    `json:"monthly,omitempty"`
	TopMerchants      []MerchantTotal `json:"topMerchants,omitempty"`
}

// CategoryTotal is one category's signed total.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthTotal is one calendar month's signed total.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// MerchantTotal is one merchant's signed total.
type MerchantTotal struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
}

// BuildDashboard computes the dashboard summary for the live set.
func BuildDashboard(set *domain.Set) Dashboard {
	d := Dashboard{TotalTransactions: set.Len()}
	if set.Len() == 0 {
		return d
	}

	var sum float64
	categories := map[string]float64{}
	merchants := map[string]float64{}
	months := map[string]float64{}
	for _, t := range set.Transactions {
		amt := t.Amount.InexactFloat64()
		sum += amt
		categories[string(t.Category)] += amt
		merchants[t.Description] += amt
		if t.HasDate() {
			months[t.Date.Format("2006-01")] += amt
		}
	}

	d.TotalSpending = abs(sum)
	d.TotalCategories = len(categories)
	d.AvgTransaction = abs(sum / float64(set.Len()))
	d.Categories = topTotals(categories, 10, func(k string, v float64) CategoryTotal {
		return CategoryTotal{Category: k, Total: v}
	})
	d.TopMerchants = topTotals(merchants, 8, func(k string, v float64) MerchantTotal {
		return MerchantTotal{Merchant: k, Total: v}
	})

	if set.HasColumn(bank.ColDate) {
		for month, total := range months {
			d.Monthly = append(d.Monthly, MonthTotal{Month: month, Total: total})
		}
		sort.Slice(d.Monthly, func(i, j int) bool { return d.Monthly[i].Month < d.Monthly[j].Month })
	}
	return d
}

// topTotals sorts a totals map descending by value and keeps the first n.
func topTotals[T any](totals map[string]float64, n int, build func(string, float64) T) []T {
	keys := sortedKeysByTotal(totals)
	if len(keys) > n {
		keys = keys[:n]
	}
	out := []T{}
	for _, k := range keys {
		out = append(out, build(k, totals[k]))
	}
	return out
}

func sortedKeysByTotal(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
