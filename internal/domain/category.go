package domain

import (
	"strings"
	"time"
	"unicode"
)

type Category struct {
	ID        string
	Name      string
	Unit      string
	Enabled   bool
	Target    TargetRule
	SortOrder int
}

// LogEntry is one logged portion. DayKey is the pre-bucketed calendar day the
// entry counts toward; SlotID (meal, session) is opaque to evaluation.
type LogEntry struct {
	ID         string
	CategoryID string
	SlotID     string
	Portion    Portion
	LoggedAt   time.Time
	DayKey     string
}

// EnabledCategories returns the enabled categories in their input order.
func EnabledCategories(categories []Category) []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Enabled {
			out = append(out, c)
		}
	}
	return out
}

// NormalizeName lowercases s and strips everything but ASCII letters and digits.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
