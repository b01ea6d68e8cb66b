package core

import (
	"strconv"
	"strings"
)

// monthTable maps month tokens to month numbers. Full names come before
// their abbreviations so that prefix matching prefers the longer form,
// and "sept" is carried as an alternate for September.
var monthTable = []struct {
	name string
	num  int
}{
	{"january", 1}, {"jan", 1},
	{"february", 2}, {"feb", 2},
	{"march", 3}, {"mar", 3},
	{"april", 4}, {"apr", 4},
	{"may", 5},
	{"june", 6}, {"jun", 6},
	{"july", 7}, {"jul", 7},
	{"august", 8}, {"aug", 8},
	{"september", 9}, {"sept", 9}, {"sep", 9},
	{"october", 10}, {"oct", 10},
	{"november", 11}, {"nov", 11},
	{"december", 12}, {"dec", 12},
}

// MonthNumber resolves a free-form month token to 1..12, or 0 when the
// token cannot be resolved. The input is lower-cased and trimmed, and
// only the first whitespace-delimited token is considered, so labels
// like "April 2025" and "apr (fy25)" resolve by their leading word.
// Purely numeric tokens pass through when they fall in 1..12.
func MonthNumber(token string) int {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return 0
	}
	first := strings.Fields(t)[0]
	for _, e := range monthTable {
		if strings.HasPrefix(first, e.name) {
			return e.num
		}
	}
	if n, err := strconv.Atoi(first); err == nil && n >= 1 && n <= 12 {
		return n
	}
	return 0
}

// QuarterOf returns "Q1".."Q4" for a month number in 1..12, and "" for
// anything else.
func QuarterOf(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return "Q" + strconv.Itoa((month+2)/3)
}

// MonthQuarter resolves a month token straight to its quarter label,
// returning "" when the token does not resolve.
func MonthQuarter(token string) string {
	return QuarterOf(MonthNumber(token))
}

// ResolveMonth resolves a token to its month number and quarter label in
// one call.
func ResolveMonth(token string) (int, string) {
	n := MonthNumber(token)
	return n, QuarterOf(n)
}

// monthOrderIndex returns the calendar position of a full month name for
// sorting, or -1 for names it does not recognize so unknown labels sort
// first rather than panicking.
func monthOrderIndex(name string) int {
	lower := strings.ToLower(name)
	for i, m := range monthNamesLower {
		if lower == m {
			return i
		}
	}
	return -1
}

var monthNamesLower = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}
