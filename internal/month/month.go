// Package month provides a value type for YYYY-MM month keys, the unit of
// time used by recurrence windows, cashflow series and need payments.
package month

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Key identifies a calendar month.
type Key struct {
	Year  int
	Month time.Month
}

// Parse parses a "YYYY-MM" key.
func Parse(s string) (Key, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Key{}, fmt.Errorf("invalid month key format: %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Key{}, fmt.Errorf("invalid year in month key %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return Key{}, fmt.Errorf("invalid month in month key %q: %w", s, err)
	}
	if m < 1 || m > 12 {
		return Key{}, fmt.Errorf("month out of range in key %q", s)
	}
	return Key{Year: year, Month: time.Month(m)}, nil
}

// FromTime returns the key for the month containing t.
func FromTime(t time.Time) Key {
	return Key{Year: t.Year(), Month: t.Month()}
}

// String formats the key as "YYYY-MM".
func (k Key) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, int(k.Month))
}

// Index returns year*12 + (month-1), so that subtracting two indexes gives
// the number of whole months between the keys.
func (k Key) Index() int {
	return k.Year*12 + int(k.Month) - 1
}

// Add returns the key n months after k (n may be negative).
func (k Key) Add(n int) Key {
	idx := k.Index() + n
	year := idx / 12
	m := idx%12 + 1
	if m <= 0 {
		m += 12
		year--
	}
	return Key{Year: year, Month: time.Month(m)}
}

// Start returns midnight UTC on the first day of the month.
func (k Key) Start() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month. A date d is in the
// month iff Start() <= d < End().
func (k Key) End() time.Time {
	return k.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls within the month.
func (k Key) Contains(t time.Time) bool {
	return !t.Before(k.Start()) && t.Before(k.End())
}

// Before reports whether k is strictly earlier than other.
func (k Key) Before(other Key) bool {
	return k.Index() < other.Index()
}
