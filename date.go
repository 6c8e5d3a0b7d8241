package cvbot

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in priority order: full date, year-month
// (dashed then slashed), year only.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006/01", "2006"}

var (
	yearMonthRe = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})`)
	yearRe      = regexp.MustCompile(`^(\d{4})`)
)

// ParseDate parses a heterogeneous CV date string. Exact layouts are
// tried in priority order; the sentinel tokens "present", "current" and
// "now" (and a blank string) resolve to now; otherwise a regex-based
// year-month then year extraction is attempted. Returns an EDATEFORMAT
// error if no representation succeeds.
func ParseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "present", "current", "now":
		return now, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	if m := yearMonthRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month < 1 || month > 12 {
			return time.Time{}, Errorf(EDATEFORMAT, "month out of range in date: %q", s)
		}
		return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
	}
	if m := yearRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, Errorf(EDATEFORMAT, "unrecognized date format: %q", s)
}

// MonthsBetween returns the number of calendar months between two
// dates, order-independent. When the later date's day-of-month is on or
// after the earlier date's, the count rounds up by one month. This is a
// deliberate policy favoring slight over-counting of partial months;
// downstream skill-year totals depend on it.
func MonthsBetween(a, b time.Time) int {
	if b.Before(a) {
		a, b = b, a
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() >= a.Day() {
		months++
	}
	return months
}
