package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthNumber(t *testing.T) {
	cases := []struct {
		token string
		want  int
	}{
		{"April", 4},
		{"april", 4},
		{"apr", 4},
		{"APR", 4},
		{"April 2025", 4},
		{"  may  ", 5},
		{"sept", 9},
		{"sep", 9},
		{"September", 9},
		{"4", 4},
		{"12", 12},
		{"13", 0},
		{"0", 0},
		{"2025", 0},
		{"xyz", 0},
		{"", 0},
		{"   ", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, MonthNumber(c.token), "token %q", c.token)
	}
}

func TestMonthNumber_FullNameBeforeAbbreviation(t *testing.T) {
	// "june-fy25" resolves by its leading word even with trailing noise,
	// and full names win over shorter prefixes.
	assert.Equal(t, 6, MonthNumber("june 2025 (fy25)"))
	assert.Equal(t, 1, MonthNumber("january"))
	assert.Equal(t, 1, MonthNumber("jan"))
}

func TestMonthNumber_EquivalentSpellings(t *testing.T) {
	for _, token := range []string{"April", "april", "apr", "April 2025", "4"} {
		assert.Equal(t, 4, MonthNumber(token), "token %q", token)
	}
}

func TestQuarterOf(t *testing.T) {
	cases := []struct {
		month int
		want  string
	}{
		{1, "Q1"}, {2, "Q1"}, {3, "Q1"},
		{4, "Q2"}, {5, "Q2"}, {6, "Q2"},
		{7, "Q3"}, {8, "Q3"}, {9, "Q3"},
		{10, "Q4"}, {11, "Q4"}, {12, "Q4"},
		{0, ""}, {13, ""}, {-1, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, QuarterOf(c.month), "month %d", c.month)
	}
}

func TestMonthQuarter(t *testing.T) {
	assert.Equal(t, "Q2", MonthQuarter("April"))
	assert.Equal(t, "Q3", MonthQuarter("sept"))
	assert.Equal(t, "Q4", MonthQuarter("December 2024"))
	assert.Equal(t, "", MonthQuarter("xyz"))
}

func TestResolveMonth(t *testing.T) {
	n, q := ResolveMonth("October")
	assert.Equal(t, 10, n)
	assert.Equal(t, "Q4", q)

	n, q = ResolveMonth("not-a-month")
	assert.Equal(t, 0, n)
	assert.Equal(t, "", q)
}

func TestMonthOrderIndex(t *testing.T) {
	assert.Equal(t, 0, monthOrderIndex("January"))
	assert.Equal(t, 11, monthOrderIndex("december"))
	assert.Equal(t, -1, monthOrderIndex("mystery"))
}
