package core

import (
	"fmt"
	"sort"

	"github.com/ticketdash/ticketdash/schema"
)

// Aggregation holds year, quarter and month buckets produced by a single
// fold over a fact list. All three granularities come from the same pass,
// so quarter totals always sum to their year and months to their quarter.
type Aggregation struct {
	Years    map[int]*schema.YearStats
	Quarters map[string]*schema.QuarterStats // keyed "2025-Q2"
	Months   map[string]*schema.MonthStats   // keyed "2025-4"
}

// AggregateFacts folds facts into sparse year, quarter and month buckets.
// Facts with an unresolved month are excluded from every bucket so the
// roll-up stays internally consistent. Buckets exist only for periods
// that have data, and success rates are recomputed from the summed counts
// after the fold.
func AggregateFacts(facts []schema.NormalizedFact) *Aggregation {
	agg := &Aggregation{
		Years:    map[int]*schema.YearStats{},
		Quarters: map[string]*schema.QuarterStats{},
		Months:   map[string]*schema.MonthStats{},
	}

	// 1. Fold every resolvable fact into all three granularities.
	for _, f := range facts {
		if f.Month == 0 {
			continue
		}
		ys, ok := agg.Years[f.Year]
		if !ok {
			ys = &schema.YearStats{Year: f.Year}
			agg.Years[f.Year] = ys
		}
		ys.TotalTickets += f.TotalTickets
		ys.ResolvedIn2Days += f.ResolvedIn2Days
		ys.ResolvedAfter2Days += f.ResolvedAfter2Days

		qk := quarterKey(f.Year, f.Quarter)
		qs, ok := agg.Quarters[qk]
		if !ok {
			qs = &schema.QuarterStats{Year: f.Year, Quarter: f.Quarter}
			agg.Quarters[qk] = qs
		}
		qs.TotalTickets += f.TotalTickets
		qs.ResolvedIn2Days += f.ResolvedIn2Days
		qs.ResolvedAfter2Days += f.ResolvedAfter2Days
		qs.Records = append(qs.Records, f)

		mk := monthKey(f.Year, f.Month)
		ms, ok := agg.Months[mk]
		if !ok {
			ms = &schema.MonthStats{Year: f.Year, Month: f.Month, DisplayName: f.DisplayName}
			agg.Months[mk] = ms
		}
		ms.TotalTickets += f.TotalTickets
		ms.ResolvedIn2Days += f.ResolvedIn2Days
		ms.ResolvedAfter2Days += f.ResolvedAfter2Days
	}

	// 2. Recompute rates from the summed counts.
	for _, ys := range agg.Years {
		ys.SuccessRate = Rate(ys.ResolvedIn2Days, ys.TotalTickets)
	}
	for _, qs := range agg.Quarters {
		qs.SuccessRate = Rate(qs.ResolvedIn2Days, qs.TotalTickets)
	}
	for _, ms := range agg.Months {
		ms.SuccessRate = Rate(ms.ResolvedIn2Days, ms.TotalTickets)
	}
	return agg
}

func quarterKey(year int, quarter string) string {
	return fmt.Sprintf("%d-%s", year, quarter)
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%d-%d", year, month)
}

// BuildProjectStatistics assembles the comprehensive statistics view for
// one project: the focus year broken into quarters and months, plus
// all-time slices at every granularity.
func BuildProjectStatistics(facts []schema.NormalizedFact, focusYear int, project *schema.ProjectInfo) schema.ProjectStatistics {
	agg := AggregateFacts(facts)

	// 1. Focus-year slice.
	yearData := schema.YearStats{Year: focusYear}
	if ys, ok := agg.Years[focusYear]; ok {
		yearData = *ys
	}
	currentMonths := monthsForYear(agg, focusYear)
	currentQuarters := quartersForYear(agg, focusYear, currentMonths)
	quarterMap := make(map[string]schema.QuarterStats, len(currentQuarters))
	for _, qs := range currentQuarters {
		quarterMap[qs.Quarter] = qs
	}

	// 2. All-time slices, most recent first.
	allYears := make([]schema.YearStats, 0, len(agg.Years))
	for _, ys := range agg.Years {
		allYears = append(allYears, *ys)
	}
	sort.Slice(allYears, func(i, j int) bool { return allYears[i].Year > allYears[j].Year })

	allQuarters := make([]schema.QuarterStats, 0, len(agg.Quarters))
	for _, qs := range agg.Quarters {
		allQuarters = append(allQuarters, *qs)
	}
	sort.Slice(allQuarters, func(i, j int) bool {
		if allQuarters[i].Year != allQuarters[j].Year {
			return allQuarters[i].Year > allQuarters[j].Year
		}
		return allQuarters[i].Quarter > allQuarters[j].Quarter
	})

	allMonths := make([]schema.MonthStats, 0, len(agg.Months))
	for _, ms := range agg.Months {
		allMonths = append(allMonths, *ms)
	}
	sort.Slice(allMonths, func(i, j int) bool {
		if allMonths[i].Year != allMonths[j].Year {
			return allMonths[i].Year > allMonths[j].Year
		}
		return allMonths[i].Month > allMonths[j].Month
	})

	return schema.ProjectStatistics{
		Project: project,
		CurrentYear: schema.CurrentYearStats{
			Year:          focusYear,
			Data:          yearData,
			Quarters:      quarterMap,
			QuartersArray: currentQuarters,
			Months:        currentMonths,
		},
		AllYears:    allYears,
		AllQuarters: allQuarters,
		AllMonths:   allMonths,
	}
}

func monthsForYear(agg *Aggregation, year int) []schema.MonthStats {
	var months []schema.MonthStats
	for _, ms := range agg.Months {
		if ms.Year == year {
			months = append(months, *ms)
		}
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

func quartersForYear(agg *Aggregation, year int, months []schema.MonthStats) []schema.QuarterStats {
	var quarters []schema.QuarterStats
	for _, qs := range agg.Quarters {
		if qs.Year != year {
			continue
		}
		q := *qs
		q.Months = map[string]schema.MonthStats{}
		for _, ms := range months {
			if QuarterOf(ms.Month) != q.Quarter {
				continue
			}
			named := ms
			named.Name = ms.DisplayName
			if named.Name == "" {
				named.Name = schema.MonthNames[ms.Month-1]
			}
			q.Months[named.Name] = named
		}
		quarters = append(quarters, q)
	}
	sort.Slice(quarters, func(i, j int) bool { return quarters[i].Quarter < quarters[j].Quarter })
	return quarters
}

// PeriodTotalsFor collapses a fact list to its summed totals, with the
// contributing facts sorted by month.
func PeriodTotalsFor(facts []schema.NormalizedFact) schema.PeriodTotals {
	totals := schema.PeriodTotals{Records: sortFactsByMonth(facts)}
	for _, f := range facts {
		totals.TotalTickets += f.TotalTickets
		totals.ResolvedIn2Days += f.ResolvedIn2Days
		totals.ResolvedAfter2Days += f.ResolvedAfter2Days
	}
	totals.SuccessRate = Rate(totals.ResolvedIn2Days, totals.TotalTickets)
	return totals
}

func sortFactsByMonth(facts []schema.NormalizedFact) []schema.NormalizedFact {
	sorted := make([]schema.NormalizedFact, len(facts))
	copy(sorted, facts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Month < sorted[j].Month
	})
	return sorted
}
