// Package format renders currency amounts and business dates the way the
// rest of the application displays them.
package format

import (
	"fmt"
	"time"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "৳"

// DateLayout is the storage format for all business dates. Creation audit
// fields use full RFC 3339 timestamps instead.
const DateLayout = "2006-01-02"

func Currency(amount float64) string {
	return fmt.Sprintf("%s %.2f", CurrencySymbol, amount)
}

func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Date renders a stored date for display, e.g. "05 Mar 2025". Timestamps are
// accepted too; unparseable input is returned unchanged.
func Date(s string) string {
	if s == "" {
		return ""
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format("02 Jan 2006")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("02 Jan 2006")
	}
	return s
}

// MonthYear renders the month bucket a date falls into, e.g. "Mar 2025".
func MonthYear(s string) string {
	if s == "" {
		return "Unknown Date"
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format("Jan 2006")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("Jan 2006")
	}
	return s
}
