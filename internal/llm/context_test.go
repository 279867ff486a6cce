package llm

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise-app/finwise/internal/domain"
)

func TestRenderContext(t *testing.T) {
	set := &domain.Set{Transactions: []domain.Transaction{
		{
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Description: "UPI Payment - Swiggy",
			Category:    domain.CategoryFoodDining,
			Amount:      decimal.NewFromInt(-150),
		},
		{
			Description: "Mystery",
			Amount:      decimal.NewFromFloat(99.5),
		},
	}}

	got := RenderContext(set)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "On 2024-01-05 you spent ₹150.00 on Food & Dining: UPI Payment - Swiggy", lines[0])
	// Missing date and category render as "?".
	assert.Equal(t, "On ? you spent ₹99.50 on ?: Mystery", lines[1])
}

func TestRenderContext_Empty(t *testing.T) {
	assert.Empty(t, RenderContext(&domain.Set{}))
}

func TestTruncateContext(t *testing.T) {
	context := "aaaa\nbbbb\ncccc"

	got, truncated := TruncateContext(context, 100)
	assert.False(t, truncated)
	assert.Equal(t, context, got)

	got, truncated = TruncateContext(context, 4)
	assert.True(t, truncated)
	assert.Equal(t, "cccc", got)

	// Zero and negative limits disable truncation.
	got, truncated = TruncateContext(context, 0)
	assert.False(t, truncated)
	assert.Equal(t, context, got)
}

func TestTruncateContext_RuneBoundary(t *testing.T) {
	// ₹ is three bytes; a limit landing inside one must not keep a broken
	// lead-in byte sequence.
	context := strings.Repeat("₹", 10)

	got, truncated := TruncateContext(context, 7)
	assert.True(t, truncated)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("₹", 2), got)
}
