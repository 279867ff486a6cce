package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/finwise-app/finwise/internal/domain"
)

// Advanced is the payload behind the advanced-analytics endpoint.
type Advanced struct {
	Statistics        Statistics      `json:"statistics"`
	Outliers          []Outlier       `json:"outliers"`
	CategoryTrends    []CategoryTrend `json:"categoryTrends"`
	WeekdaySpending   [7]float64      `json:"weekdaySpending"`
	HourlySpending    [24]float64     `json:"hourlySpending"`
	FrequentMerchants []MerchantStats `json:"frequentMerchants"`
	DataQuality       DataQuality     `json:"dataQuality"`
	Insights          []Insight       `json:"insights"`
}

// Statistics summarizes the distribution of absolute amounts.
type Statistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
	Q25    float64 `json:"q25"`
	Q75    float64 `json:"q75"`
}

// Outlier is one transaction flagged by the IQR fence.
type Outlier struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// CategoryTrend is one category's absolute-amount statistics.
type CategoryTrend struct {
	Category string  `json:"category"`
	Avg      float64 `json:"avg"`
	Median   float64 `json:"median"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MerchantStats is one merchant's visit statistics.
type MerchantStats struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
	Avg      float64 `json:"avg"`
	Count    int     `json:"count"`
}

// DataQuality reports completeness of the canonical set.
type DataQuality struct {
	Total        int     `json:"total"`
	Missing      int     `json:"missing"`
	Duplicates   int     `json:"duplicates"`
	Completeness float64 `json:"completeness"`
}

// Insight is one generated observation shown on the analytics page.
type Insight struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

const (
	maxOutliers     = 10
	maxTrends       = 8
	maxMerchants    = 8
	iqrFenceFactor  = 1.5
	canonicalFields = 4
)

// BuildAdvanced computes the full statistical analysis for the live set.
func BuildAdvanced(set *domain.Set) Advanced {
	var a Advanced
	if set.Len() == 0 {
		return a
	}

	absAmounts := make([]float64, set.Len())
	for i, t := range set.Transactions {
		absAmounts[i] = abs(t.Amount.InexactFloat64())
	}

	a.Statistics = describe(absAmounts)
	a.Outliers = iqrOutliers(set, absAmounts, a.Statistics)
	a.CategoryTrends = categoryTrends(set)
	a.WeekdaySpending = weekdaySpending(set)
	a.HourlySpending = hourlySpending(set, a.Statistics)
	a.FrequentMerchants = frequentMerchants(set)
	a.DataQuality = dataQuality(set)
	a.Insights = buildInsights(a)
	return a
}

func describe(vals []float64) Statistics {
	s := Statistics{Count: len(vals), Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range vals {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(vals))

	var sq float64
	for _, v := range vals {
		sq += (v - s.Mean) * (v - s.Mean)
	}
	if len(vals) > 1 {
		s.Std = math.Sqrt(sq / float64(len(vals)-1))
	}

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	s.Median = quantile(sorted, 0.5)
	s.Q25 = quantile(sorted, 0.25)
	s.Q75 = quantile(sorted, 0.75)
	return s
}

// quantile linearly interpolates over a sorted slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func iqrOutliers(set *domain.Set, absAmounts []float64, stats Statistics) []Outlier {
	iqr := stats.Q75 - stats.Q25
	lower := stats.Q25 - iqrFenceFactor*iqr
	upper := stats.Q75 + iqrFenceFactor*iqr

	out := []Outlier{}
	for i, t := range set.Transactions {
		if absAmounts[i] >= lower && absAmounts[i] <= upper {
			continue
		}
		date := "Unknown"
		if t.HasDate() {
			date = t.Date.Format("2006-01-02")
		}
		out = append(out, Outlier{
			Amount:      t.Amount.InexactFloat64(),
			Description: t.Description,
			Category:    string(t.Category),
			Date:        date,
		})
		if len(out) == maxOutliers {
			break
		}
	}
	return out
}

func categoryTrends(set *domain.Set) []CategoryTrend {
	byCat := map[string][]float64{}
	for _, t := range set.Transactions {
		byCat[string(t.Category)] = append(byCat[string(t.Category)], abs(t.Amount.InexactFloat64()))
	}

	trends := make([]CategoryTrend, 0, len(byCat))
	for cat, vals := range byCat {
		var total float64
		for _, v := range vals {
			total += v
		}
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		trends = append(trends, CategoryTrend{
			Category: cat,
			Avg:      total / float64(len(vals)),
			Median:   quantile(sorted, 0.5),
			Total:    total,
			Count:    len(vals),
		})
	}
	sort.Slice(trends, func(i, j int) bool {
		if trends[i].Total != trends[j].Total {
			return trends[i].Total > trends[j].Total
		}
		return trends[i].Category < trends[j].Category
	})
	if len(trends) > maxTrends {
		trends = trends[:maxTrends]
	}
	return trends
}

func weekdaySpending(set *domain.Set) [7]float64 {
	var days [7]float64
	for _, t := range set.Transactions {
		if !t.HasDate() {
			continue
		}
		// Monday-first indexing, matching the frontend's day labels.
		idx := (int(t.Date.Weekday()) + 6) % 7
		days[idx] += abs(t.Amount.InexactFloat64())
	}
	return days
}

// hourlySpending buckets by the time component when statements carry one;
// date-only statements get the total spread across business hours instead
// of a misleading spike at midnight.
func hourlySpending(set *domain.Set, stats Statistics) [24]float64 {
	var hours [24]float64
	hasTime := false
	for _, t := range set.Transactions {
		if t.HasDate() && (t.Date.Hour() != 0 || t.Date.Minute() != 0) {
			hasTime = true
			break
		}
	}

	if hasTime {
		for _, t := range set.Transactions {
			if t.HasDate() {
				hours[t.Date.Hour()] += abs(t.Amount.InexactFloat64())
			}
		}
		return hours
	}

	total := stats.Mean * float64(stats.Count)
	perHour := total / 13
	for h := 9; h <= 21; h++ {
		hours[h] = perHour
	}
	return hours
}

func frequentMerchants(set *domain.Set) []MerchantStats {
	totals := map[string]float64{}
	counts := map[string]int{}
	for _, t := range set.Transactions {
		totals[t.Description] += abs(t.Amount.InexactFloat64())
		counts[t.Description]++
	}

	merchants := make([]MerchantStats, 0, len(totals))
	for m, total := range totals {
		merchants = append(merchants, MerchantStats{
			Merchant: m,
			Total:    total,
			Avg:      total / float64(counts[m]),
			Count:    counts[m],
		})
	}
	sort.Slice(merchants, func(i, j int) bool {
		if merchants[i].Count != merchants[j].Count {
			return merchants[i].Count > merchants[j].Count
		}
		return merchants[i].Merchant < merchants[j].Merchant
	})
	if len(merchants) > maxMerchants {
		merchants = merchants[:maxMerchants]
	}
	return merchants
}

func dataQuality(set *domain.Set) DataQuality {
	q := DataQuality{Total: set.Len(), Completeness: 100}
	seen := map[string]bool{}
	for _, t := range set.Transactions {
		if !t.HasDate() {
			q.Missing++
		}
		if t.Description == "" || t.Description == "Unknown Transaction" {
			q.Missing++
		}
		key := fmt.Sprintf("%s|%s|%s|%s", t.Date.Format("2006-01-02"), t.Description, t.Category, t.Amount.String())
		if seen[key] {
			q.Duplicates++
		}
		seen[key] = true
	}

	if q.Total > 0 {
		cells := q.Total * canonicalFields
		q.Completeness = math.Round(float64(cells-q.Missing)/float64(cells)*100*100) / 100
	}
	return q
}

func buildInsights(a Advanced) []Insight {
	insights := []Insight{}

	if len(a.CategoryTrends) > 0 {
		top := a.CategoryTrends[0]
		insights = append(insights, Insight{
			Icon:  "📊",
			Title: "Top Spending Category",
			Text:  fmt.Sprintf("You spent the most on %s with ₹%.2f across %d transactions.", top.Category, top.Total, top.Count),
		})
	}

	insights = append(insights, Insight{
		Icon:  "💰",
		Title: "Largest Transaction",
		Text:  fmt.Sprintf("Your largest single transaction was ₹%.2f. Review large purchases to identify savings opportunities.", a.Statistics.Max),
	})

	maxDay, maxSpend := 0, a.WeekdaySpending[0]
	for d, v := range a.WeekdaySpending {
		if v > maxSpend {
			maxDay, maxSpend = d, v
		}
	}
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	insights = append(insights, Insight{
		Icon:  "📅",
		Title: "Peak Spending Day",
		Text:  fmt.Sprintf("You spend the most on %s (₹%.2f). Consider budgeting extra for this day.", days[maxDay], maxSpend),
	})

	if len(a.FrequentMerchants) > 0 {
		top := a.FrequentMerchants[0]
		insights = append(insights, Insight{
			Icon:  "🏪",
			Title: "Most Frequent Merchant",
			Text:  fmt.Sprintf("You transact most often with %s (%d times), spending ₹%.2f in total.", top.Merchant, top.Count, top.Total),
		})
	}

	if a.Statistics.Mean > 0 {
		cv := a.Statistics.Std / a.Statistics.Mean * 100
		consistency := "highly variable"
		advice := "Try to maintain consistent spending habits."
		switch {
		case cv < 50:
			consistency = "very consistent"
			advice = "This is good!"
		case cv < 100:
			consistency = "moderately consistent"
		}
		insights = append(insights, Insight{
			Icon:  "📈",
			Title: "Spending Consistency",
			Text:  fmt.Sprintf("Your spending is %s with a coefficient of variation of %.1f%%. %s", consistency, cv, advice),
		})
	}

	if a.DataQuality.Completeness >= 95 {
		insights = append(insights, Insight{
			Icon:  "✅",
			Title: "Data Quality",
			Text:  fmt.Sprintf("Your financial data is %.1f%% complete with only %d missing values. Excellent data quality!", a.DataQuality.Completeness, a.DataQuality.Missing),
		})
	} else {
		insights = append(insights, Insight{
			Icon:  "⚠️",
			Title: "Data Quality Warning",
			Text:  fmt.Sprintf("Your data has %d missing values (%.1f%% complete). Consider data cleanup for better insights.", a.DataQuality.Missing, a.DataQuality.Completeness),
		})
	}

	return insights
}
