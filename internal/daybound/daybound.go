// Package daybound maps instants to the calendar day they count toward when
// a day is allowed to run past midnight.
package daybound

import (
	"errors"
	"fmt"
	"time"
)

// KeyLayout is the canonical day key format.
const KeyLayout = "2006-01-02"

// MaxCutoffMinutes is the last minute of a day.
const MaxCutoffMinutes = 24*60 - 1

var ErrInvalidDayKey = errors.New("invalid day key")

// DayStart returns local midnight of the calendar day instant counts toward.
// Instants earlier than cutoffMinutes past local midnight belong to the
// previous day. Minutes are wall-clock minutes in instant's location, so DST
// transitions do not shift the boundary.
func DayStart(instant time.Time, cutoffMinutes int) time.Time {
	cutoff := ClampCutoff(cutoffMinutes)
	y, m, d := instant.Date()
	elapsed := instant.Hour()*60 + instant.Minute()
	if elapsed < cutoff {
		d--
	}
	return time.Date(y, m, d, 0, 0, 0, 0, instant.Location())
}

// DayKey returns the YYYY-MM-DD key for DayStart(instant, cutoffMinutes).
func DayKey(instant time.Time, cutoffMinutes int) string {
	return DayStart(instant, cutoffMinutes).Format(KeyLayout)
}

// ClampCutoff limits a cutoff to [0, MaxCutoffMinutes].
func ClampCutoff(cutoffMinutes int) int {
	switch {
	case cutoffMinutes < 0:
		return 0
	case cutoffMinutes > MaxCutoffMinutes:
		return MaxCutoffMinutes
	default:
		return cutoffMinutes
	}
}

// ParseDayKey parses a day key as midnight in loc.
func ParseDayKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(KeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDayKey, key)
	}
	return t, nil
}

// DayKeysBetween lists every day key from start to end inclusive.
// Returns nil when end precedes start.
func DayKeysBetween(start, end string) ([]string, error) {
	from, err := ParseDayKey(start, time.UTC)
	if err != nil {
		return nil, err
	}
	to, err := ParseDayKey(end, time.UTC)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, nil
	}

	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(KeyLayout))
	}
	return keys, nil
}

// InRange reports whether key lies within [start, end]. Day keys order
// lexically the same as chronologically.
func InRange(key, start, end string) bool {
	return key >= start && key <= end
}
