// Package dateutils provides the calendar arithmetic and date formatting the
// wallet's views rely on.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted from users and used for display.
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutDisplay  = "02/01/2006"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutDashed   = "02-01-2006"
	MonthKeyLayout     = "2006-01"
)

// InputFormats lists the layouts ParseDate tries, in order. Day-first only:
// month-first input is ambiguous with the display format.
var InputFormats = []string{
	DateLayoutISO,
	DateLayoutDisplay,
	DateLayoutEuropean,
	DateLayoutDashed,
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using InputFormats.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	for _, layout := range InputFormats {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %q", dateStr)
}

// CleanDateString trims and collapses whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ToISODate formats t as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// FormatDisplay formats t as DD/MM/YYYY, the way listings show dates.
// The zero time renders as an empty string.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutDisplay)
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// TrailingMonths returns the first day of each of the n calendar months
// ending with the month containing now, oldest first.
func TrailingMonths(now time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	start := StartOfMonth(now)
	months := make([]time.Time, n)
	for i := 0; i < n; i++ {
		// Normalizing from day 1 avoids AddDate overflowing short months.
		months[i] = start.AddDate(0, i-(n-1), 0)
	}
	return months
}

var laoShortMonths = [12]string{
	"ມ.ກ.", "ກ.ພ.", "ມ.ນ.", "ມ.ສ.", "ພ.ພ.", "ມິ.ຖ.",
	"ກ.ລ.", "ສ.ຫ.", "ກ.ຍ.", "ຕ.ລ.", "ພ.ຈ.", "ທ.ວ.",
}

// ShortMonthLabel returns an abbreviated month name for chart axes. Lao
// locales ("lo", "lo-LA") get Lao abbreviations, everything else English.
func ShortMonthLabel(month time.Month, locale string) string {
	if month < time.January || month > time.December {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(locale), "lo") {
		return laoShortMonths[month-1]
	}
	return month.String()[:3]
}
