package core

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ticketdash/ticketdash/schema"
)

// RollupRecords groups analysis records into per-project year/quarter
// trees for the cross-project records view. A record spanning several
// months lands in every quarter those months resolve to, with its full
// totals counted in each, and its embedded month detail is attached to
// each of those quarters. Months that do not resolve are dropped from
// the quarter axis.
func RollupRecords(records []schema.AnalysisRecord) map[string]*schema.ProjectRollup {
	rollups := map[string]*schema.ProjectRollup{}

	for _, rec := range records {
		// 1. Find or create the project bucket.
		key := "unassigned"
		var projectID *int64
		if rec.ProjectID > 0 {
			key = strconv.FormatInt(rec.ProjectID, 10)
			id := rec.ProjectID
			projectID = &id
		}
		proj, ok := rollups[key]
		if !ok {
			name := rec.ProjectName
			if name == "" {
				name = schema.UnassignedLabel
			}
			proj = &schema.ProjectRollup{
				ProjectID:   projectID,
				ProjectName: name,
				Years:       map[int]*schema.RollupYear{},
			}
			rollups[key] = proj
		}
		year, ok := proj.Years[rec.Year]
		if !ok {
			year = &schema.RollupYear{Quarters: map[string]*schema.RollupQuarter{}}
			proj.Years[rec.Year] = year
		}

		// 2. Resolve the quarters the record's months span.
		quarters := recordQuarters(rec.Months)
		if len(quarters) == 0 {
			continue
		}
		monthFacts, _ := parseAnalysisData(rec.AnalysisData)
		ref := schema.RecordRef{
			ID:              rec.ID,
			Filename:        rec.Filename,
			Months:          rec.Months,
			TotalTickets:    rec.TotalTickets,
			ResolvedIn2Days: rec.ResolvedIn2Days,
			SuccessRate:     rec.SuccessRate,
			CreatedAt:       rec.CreatedAt,
		}

		// 3. Count the record, and its month detail, in each quarter.
		for _, q := range quarters {
			quarter, ok := year.Quarters[q]
			if !ok {
				quarter = &schema.RollupQuarter{Months: map[string]*schema.RollupMonth{}}
				year.Quarters[q] = quarter
			}
			quarter.TotalTickets += rec.TotalTickets
			quarter.ResolvedIn2Days += rec.ResolvedIn2Days
			quarter.Records = append(quarter.Records, ref)

			for _, mf := range monthFacts {
				name := mf.DisplayName
				if name == "" {
					name = string(mf.Month)
				}
				month, ok := quarter.Months[name]
				if !ok {
					month = &schema.RollupMonth{Name: name}
					quarter.Months[name] = month
				}
				month.TotalTickets += mf.TotalTickets
				month.ResolvedIn2Days += mf.ResolvedIn2Days
				month.Records = append(month.Records, schema.RecordRef{
					ID:              rec.ID,
					Filename:        rec.Filename,
					TotalTickets:    mf.TotalTickets,
					ResolvedIn2Days: mf.ResolvedIn2Days,
				})
			}
		}
	}

	// 4. Recompute rates from the accumulated counts.
	for _, proj := range rollups {
		for _, year := range proj.Years {
			for _, quarter := range year.Quarters {
				quarter.SuccessRate = Rate(quarter.ResolvedIn2Days, quarter.TotalTickets)
				for _, month := range quarter.Months {
					month.SuccessRate = Rate(month.ResolvedIn2Days, month.TotalTickets)
				}
			}
		}
	}
	return rollups
}

func recordQuarters(months []string) []string {
	seen := map[string]bool{}
	var quarters []string
	for _, m := range months {
		q := MonthQuarter(m)
		if q == "" || seen[q] {
			continue
		}
		seen[q] = true
		quarters = append(quarters, q)
	}
	return quarters
}

// AggregateValues summarizes value records for one project: overall and
// latest-quarter averages plus a sparse year/quarter breakdown. Values
// are averaged, never summed. Returns nil when there are no records.
func AggregateValues(records []schema.ValueRecord) *schema.ValueSummary {
	if len(records) == 0 {
		return nil
	}
	summary := &schema.ValueSummary{
		TotalDataPoints: len(records),
		Years:           map[int]*schema.ValueYear{},
	}

	var total float64
	for _, rec := range records {
		total += rec.Value
		if rec.Year > summary.LatestYear {
			summary.LatestYear = rec.Year
		}
		year, ok := summary.Years[rec.Year]
		if !ok {
			year = &schema.ValueYear{Quarters: map[string]*schema.ValueQuarter{}}
			summary.Years[rec.Year] = year
		}
		quarter, ok := year.Quarters[rec.Quarter]
		if !ok {
			quarter = &schema.ValueQuarter{}
			year.Quarters[rec.Quarter] = quarter
		}
		quarter.Months = append(quarter.Months, rec.Month)
		quarter.Values = append(quarter.Values, rec.Value)
		quarter.Count++
	}
	summary.OverallAverage = round2(total / float64(len(records)))

	for _, year := range summary.Years {
		for _, quarter := range year.Quarters {
			var sum float64
			for _, v := range quarter.Values {
				sum += v
			}
			quarter.Average = round2(sum / float64(quarter.Count))
		}
	}

	// Latest quarter is the highest quarter numeral within the latest year.
	latest := summary.Years[summary.LatestYear]
	for q := range latest.Quarters {
		if quarterNumeral(q) > quarterNumeral(summary.LatestQuarter) {
			summary.LatestQuarter = q
		}
	}
	if quarter, ok := latest.Quarters[summary.LatestQuarter]; ok {
		summary.LatestQuarterAverage = quarter.Average
	}
	return summary
}

func quarterNumeral(q string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(q, "Q"))
	if err != nil {
		return 0
	}
	return n
}

// ValueDashboard groups value records into per-project year trees with
// averaged quarters. Quarter months are reordered into calendar order
// after the fold; the per-year allMonths list keeps the input order.
func ValueDashboard(records []schema.ValueRecord) map[string]*schema.ValueProjectRollup {
	rollups := map[string]*schema.ValueProjectRollup{}

	for _, rec := range records {
		key := "unassigned"
		var projectID *int64
		if rec.ProjectID > 0 {
			key = strconv.FormatInt(rec.ProjectID, 10)
			id := rec.ProjectID
			projectID = &id
		}
		proj, ok := rollups[key]
		if !ok {
			name := rec.ProjectName
			if name == "" {
				name = schema.UnassignedLabel
			}
			proj = &schema.ValueProjectRollup{
				ProjectID:   projectID,
				ProjectName: name,
				Years:       map[int]*schema.ValueYear{},
			}
			rollups[key] = proj
		}
		year, ok := proj.Years[rec.Year]
		if !ok {
			year = &schema.ValueYear{Quarters: map[string]*schema.ValueQuarter{}}
			proj.Years[rec.Year] = year
		}
		quarter, ok := year.Quarters[rec.Quarter]
		if !ok {
			quarter = &schema.ValueQuarter{}
			year.Quarters[rec.Quarter] = quarter
		}
		quarter.Months = append(quarter.Months, rec.Month)
		quarter.Values = append(quarter.Values, rec.Value)
		quarter.Count++
		year.AllMonths = append(year.AllMonths, schema.ValueMonthPoint{
			Month:   rec.Month,
			Quarter: rec.Quarter,
			Value:   rec.Value,
		})
	}

	for _, proj := range rollups {
		for _, year := range proj.Years {
			for _, quarter := range year.Quarters {
				sortQuarterMonths(quarter)
				var sum float64
				for _, v := range quarter.Values {
					sum += v
				}
				quarter.Average = round2(sum / float64(quarter.Count))
			}
		}
	}
	return rollups
}

// sortQuarterMonths reorders the parallel month/value slices into
// calendar order.
func sortQuarterMonths(q *schema.ValueQuarter) {
	idx := make([]int, len(q.Months))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return monthOrderIndex(q.Months[idx[a]]) < monthOrderIndex(q.Months[idx[b]])
	})
	months := make([]string, len(idx))
	values := make([]float64, len(idx))
	for i, j := range idx {
		months[i] = q.Months[j]
		values[i] = q.Values[j]
	}
	q.Months = months
	q.Values = values
}

type portfolioMonthAcc struct {
	sum   float64
	count int
}

// PortfolioValueRollup averages portfolio-attached value records into
// per-portfolio quarter and month buckets. Portfolios with no data
// points are dropped, and results come back ordered by portfolio name.
func PortfolioValueRollup(portfolios []schema.Portfolio, records []schema.ValueRecord) []*schema.PortfolioStats {
	stats := make(map[int64]*schema.PortfolioStats, len(portfolios))
	monthAccs := map[*schema.PortfolioQuarter]map[string]*portfolioMonthAcc{}
	for _, p := range portfolios {
		stats[p.ID] = &schema.PortfolioStats{
			ID:           p.ID,
			Name:         p.Name,
			Description:  p.Description,
			ProjectCount: p.ProjectCount,
			Years:        map[int]*schema.PortfolioYear{},
		}
	}

	for _, rec := range records {
		if rec.PortfolioID == nil {
			continue
		}
		ps, ok := stats[*rec.PortfolioID]
		if !ok {
			continue
		}
		ps.TotalDataPoints++
		year, ok := ps.Years[rec.Year]
		if !ok {
			year = &schema.PortfolioYear{Quarters: map[string]*schema.PortfolioQuarter{}}
			ps.Years[rec.Year] = year
		}
		quarter, ok := year.Quarters[rec.Quarter]
		if !ok {
			quarter = &schema.PortfolioQuarter{}
			year.Quarters[rec.Quarter] = quarter
		}
		quarter.Count++
		quarter.Sum += rec.Value

		accs, ok := monthAccs[quarter]
		if !ok {
			accs = map[string]*portfolioMonthAcc{}
			monthAccs[quarter] = accs
		}
		month := strings.ToLower(rec.Month)
		acc, ok := accs[month]
		if !ok {
			acc = &portfolioMonthAcc{}
			accs[month] = acc
		}
		acc.sum += rec.Value
		acc.count++
	}

	// Finalize averages and sorted months, keeping only portfolios with data.
	var results []*schema.PortfolioStats
	for _, ps := range stats {
		if ps.TotalDataPoints == 0 {
			continue
		}
		for _, year := range ps.Years {
			for _, quarter := range year.Quarters {
				quarter.Average = round2(quarter.Sum / float64(quarter.Count))
				for month, acc := range monthAccs[quarter] {
					quarter.Months = append(quarter.Months, schema.PortfolioMonthAverage{
						Month:   month,
						Average: round2(acc.sum / float64(acc.count)),
						Count:   acc.count,
					})
				}
				sort.SliceStable(quarter.Months, func(i, j int) bool {
					return monthOrderIndex(quarter.Months[i].Month) < monthOrderIndex(quarter.Months[j].Month)
				})
			}
		}
		results = append(results, ps)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}
