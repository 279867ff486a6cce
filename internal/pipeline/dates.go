package pipeline

import (
	"strings"
	"time"

	"github.com/finwise-app/finwise/internal/bank"
)

// fallbackLayouts are tried in order when the profile's primary layout does
// not match. Day-first layouts come before month-first ones because every
// supported bank exports day-first.
var fallbackLayouts = []string{
	"2 Jan 2006",
	"02 Jan 2006",
	"2-Jan-2006",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02",
	"2006/01/02",
	"02.01.2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// ParseDate parses a bank-formatted date cell. The profile's exact layout
// is tried first, then the permissive fallback list. ok is false when
// nothing matches; retention of the owning row is the caller's decision.
func ParseDate(raw string, profile *bank.Profile) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if profile.DateLayout != "" {
		if t, err := time.Parse(profile.DateLayout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range fallbackLayouts {
		if layout == profile.DateLayout {
			continue
		}
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
