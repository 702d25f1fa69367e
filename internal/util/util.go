package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatMoney formats a dollar amount for display (e.g., "$12.50").
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// NormalizeFilter lowercases and trims a filter control value. An "all"
// value or empty string disables the corresponding predicate.
func NormalizeFilter(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// FilterDisabled reports whether a normalized control value disables its
// predicate.
func FilterDisabled(value string) bool {
	return value == "" || value == "all"
}

// AllFieldsFilled reports whether every value is non-empty after trimming.
func AllFieldsFilled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}

	return true
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
