package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finwise-app/finwise/internal/bank"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		bank string
		raw  string
		want time.Time
		ok   bool
	}{
		{"sbi layout", "sbi", "1 Jan 2024", date(2024, 1, 1), true},
		{"sbi padded day", "sbi", "15 Oct 2023", date(2023, 10, 15), true},
		{"kotak layout", "kotak", "05/01/2024", date(2024, 1, 5), true},
		{"axis layout", "axis", "31/12/2023", date(2023, 12, 31), true},
		{"iso fallback", "sbi", "2024-01-05", date(2024, 1, 5), true},
		{"day first fallback on kotak", "sbi", "05/01/2024", date(2024, 1, 5), true},
		{"dotted fallback", "generic", "05.01.2024", date(2024, 1, 5), true},
		{"textual fallback", "generic", "Jan 5, 2024", date(2024, 1, 5), true},
		{"garbage", "sbi", "not a date", time.Time{}, false},
		{"empty", "sbi", "", time.Time{}, false},
		{"whitespace", "kotak", "   ", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.raw, bank.Lookup(tt.bank))
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
			}
		})
	}
}

// Day-first layouts are tried before month-first ones, so an ambiguous
// "03/04/2024" reads as 3 April.
func TestParseDate_DayFirstWins(t *testing.T) {
	got, ok := ParseDate("03/04/2024", bank.Lookup("generic"))
	assert.True(t, ok)
	assert.Equal(t, date(2024, 4, 3), got)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
