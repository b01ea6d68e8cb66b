package core

import (
	"fmt"

	"github.com/ticketdash/ticketdash/schema"
)

// MatchesPeriod reports whether a fact falls inside the filter. Zero
// filter fields are wildcards.
func MatchesPeriod(f schema.NormalizedFact, p schema.PeriodFilter) bool {
	if p.Year != 0 && f.Year != p.Year {
		return false
	}
	if p.Quarter != "" && f.Quarter != p.Quarter {
		return false
	}
	if p.Month != 0 && f.Month != p.Month {
		return false
	}
	return true
}

// FilterByPeriod returns the facts matching the filter.
func FilterByPeriod(facts []schema.NormalizedFact, p schema.PeriodFilter) []schema.NormalizedFact {
	var matched []schema.NormalizedFact
	for _, f := range facts {
		if MatchesPeriod(f, p) {
			matched = append(matched, f)
		}
	}
	return matched
}

// PeriodLabel renders a filter as a human label, like "2025 Q2",
// "2025 Month 4" or "2025".
func PeriodLabel(p schema.PeriodFilter) string {
	switch {
	case p.Quarter != "":
		return fmt.Sprintf("%d %s", p.Year, p.Quarter)
	case p.Month != 0:
		return fmt.Sprintf("%d Month %d", p.Year, p.Month)
	default:
		return fmt.Sprintf("%d", p.Year)
	}
}

// ComparePeriods filters the same fact list by two period filters and
// compares their totals. The difference is always period1 minus period2,
// so swapping the filters flips every sign. Percent fields are against
// the period2 value and zero when that value is zero.
func ComparePeriods(facts []schema.NormalizedFact, p1, p2 schema.PeriodFilter, comparisonType string) schema.PeriodComparison {
	t1 := PeriodTotalsFor(FilterByPeriod(facts, p1))
	t1.Label = PeriodLabel(p1)
	t2 := PeriodTotalsFor(FilterByPeriod(facts, p2))
	t2.Label = PeriodLabel(p2)

	diff := schema.PeriodDifference{
		TotalTickets:       t1.TotalTickets - t2.TotalTickets,
		ResolvedIn2Days:    t1.ResolvedIn2Days - t2.ResolvedIn2Days,
		ResolvedAfter2Days: t1.ResolvedAfter2Days - t2.ResolvedAfter2Days,
		SuccessRate:        round2(t1.SuccessRate - t2.SuccessRate),
	}
	diff.TotalTicketsPercent = PercentChange(float64(diff.TotalTickets), float64(t2.TotalTickets))
	diff.ResolvedIn2DaysPercent = PercentChange(float64(diff.ResolvedIn2Days), float64(t2.ResolvedIn2Days))

	return schema.PeriodComparison{
		ComparisonType: comparisonType,
		Period1:        t1,
		Period2:        t2,
		Difference:     diff,
	}
}

// CompareFlexible filters facts by a primary and an optional compare
// period. When hasCompare is false, Compare and Changes stay nil and the
// result is just the primary totals.
func CompareFlexible(facts []schema.NormalizedFact, primary, compare schema.PeriodFilter, hasCompare bool) schema.FlexibleComparison {
	result := schema.FlexibleComparison{
		Primary: flexibleTotals(FilterByPeriod(facts, primary)),
	}
	if !hasCompare {
		return result
	}
	cmp := flexibleTotals(FilterByPeriod(facts, compare))
	result.Compare = &cmp

	rateChange := round2(result.Primary.SuccessRate - cmp.SuccessRate)
	result.Changes = &schema.FlexibleChanges{
		TotalTickets:           result.Primary.TotalTickets - cmp.TotalTickets,
		TotalTicketsPercent:    PercentChange(float64(result.Primary.TotalTickets-cmp.TotalTickets), float64(cmp.TotalTickets)),
		ResolvedIn2Days:        result.Primary.ResolvedIn2Days - cmp.ResolvedIn2Days,
		ResolvedIn2DaysPercent: PercentChange(float64(result.Primary.ResolvedIn2Days-cmp.ResolvedIn2Days), float64(cmp.ResolvedIn2Days)),
		SuccessRate:            rateChange,
		SuccessRatePercent:     rateChange,
	}
	return result
}

func flexibleTotals(facts []schema.NormalizedFact) schema.FlexibleStats {
	totals := PeriodTotalsFor(facts)
	return schema.FlexibleStats{
		TotalTickets:       totals.TotalTickets,
		ResolvedIn2Days:    totals.ResolvedIn2Days,
		ResolvedAfter2Days: totals.ResolvedAfter2Days,
		SuccessRate:        totals.SuccessRate,
		Records:            totals.Records,
	}
}
