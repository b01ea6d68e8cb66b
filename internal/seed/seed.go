// Package seed generates synthetic demo data for local development.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	json "github.com/goccy/go-json"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/schema"
)

// demoProjects are the projects seeded into an empty database.
var demoProjects = []struct {
	name        string
	description string
}{
	{"Customer Support", "Customer support ticket analysis"},
	{"Technical Support", "Technical issue tracking and resolution"},
	{"Sales Team", "Sales inquiry and follow-up tracking"},
	{"Product Bugs", "Product bug reports and fixes"},
	{"Feature Requests", "Customer feature request tracking"},
}

// yearSpan is how many years of demo data are generated, ending at the
// requested latest year.
const yearSpan = 3

// Summary reports what a seeding run produced.
type Summary struct {
	Projects int
	Records  int
	Values   int
}

// Seeder writes randomized demo data through a store.
type Seeder struct {
	store contract.Store
	rng   *rand.Rand
}

// New creates a Seeder. The rng is injected so tests can seed it.
func New(st contract.Store, rng *rand.Rand) *Seeder {
	return &Seeder{store: st, rng: rng}
}

// Run wipes existing records and value data points, then generates demo
// projects, analysis records and value series ending at latestYear.
// Existing projects with matching names are reused rather than duplicated.
func (s *Seeder) Run(ctx context.Context, latestYear int) (*Summary, error) {
	if _, err := s.store.DeleteAllRecords(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear records: %w", err)
	}
	for _, kind := range []schema.ValueKind{schema.PerformanceKind, schema.AvailabilityKind} {
		if _, err := s.store.DeleteAllValues(ctx, kind); err != nil {
			return nil, fmt.Errorf("failed to clear %s values: %w", kind, err)
		}
	}

	projects, err := s.ensureProjects(ctx)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Projects: len(projects)}
	for _, p := range projects {
		records, values := s.generateProjectData(p, latestYear)
		if len(records) > 0 {
			if _, err := s.store.SaveRecords(ctx, records); err != nil {
				return nil, fmt.Errorf("failed to save records for %s: %w", p.Name, err)
			}
			sum.Records += len(records)
		}
		for kind, vals := range values {
			if len(vals) == 0 {
				continue
			}
			if _, err := s.store.SaveValues(ctx, kind, vals); err != nil {
				return nil, fmt.Errorf("failed to save %s values for %s: %w", kind, p.Name, err)
			}
			sum.Values += len(vals)
		}
	}
	return sum, nil
}

// ensureProjects creates the demo projects, reusing rows that already
// exist under the same name.
func (s *Seeder) ensureProjects(ctx context.Context) ([]schema.Project, error) {
	existing, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	byName := make(map[string]schema.Project, len(existing))
	for _, p := range existing {
		byName[p.Name] = p
	}

	projects := make([]schema.Project, 0, len(demoProjects))
	for _, dp := range demoProjects {
		if p, ok := byName[dp.name]; ok {
			projects = append(projects, p)
			continue
		}
		created, err := s.store.CreateProject(ctx, dp.name, dp.description, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create project %s: %w", dp.name, err)
		}
		projects = append(projects, *created)
	}
	return projects, nil
}

// seedMonth mirrors the per-month shape of real uploads, where the rate
// arrives as a formatted string.
type seedMonth struct {
	DisplayName        string `json:"displayName"`
	Month              string `json:"month"`
	TotalTickets       int    `json:"totalTickets"`
	ResolvedIn2Days    int    `json:"resolvedIn2Days"`
	ResolvedAfter2Days int    `json:"resolvedAfter2Days"`
	SuccessRate        string `json:"successRate"`
}

// generateProjectData builds the records and value points for one project.
// Each quarter has a 75% chance of being covered, with one to three of
// its months present.
func (s *Seeder) generateProjectData(p schema.Project, latestYear int) ([]schema.AnalysisRecord, map[schema.ValueKind][]schema.ValueRecord) {
	var records []schema.AnalysisRecord
	values := map[schema.ValueKind][]schema.ValueRecord{}

	for year := latestYear - yearSpan + 1; year <= latestYear; year++ {
		for _, quarter := range []string{"Q1", "Q2", "Q3", "Q4"} {
			if s.rng.Float64() >= 0.75 {
				continue
			}
			months := s.pickMonths(quarter)

			if rec, ok := s.buildRecord(p, year, quarter, months); ok {
				records = append(records, rec)
			}
			for _, m := range months {
				values[schema.PerformanceKind] = append(values[schema.PerformanceKind],
					s.buildValue(p, year, quarter, m, 75, 100))
				values[schema.AvailabilityKind] = append(values[schema.AvailabilityKind],
					s.buildValue(p, year, quarter, m, 95, 100))
			}
		}
	}
	return records, values
}

// pickMonths picks one to three months of a quarter in calendar order.
func (s *Seeder) pickMonths(quarter string) []string {
	nums := schema.QuarterMonths[quarter]
	keep := s.rng.IntN(3) + 1

	picked := make([]int, len(nums))
	copy(picked, nums)
	s.rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	picked = picked[:keep]

	var months []string
	for _, n := range nums {
		for _, kept := range picked {
			if n == kept {
				months = append(months, schema.MonthNames[n-1])
			}
		}
	}
	return months
}

// buildRecord assembles one quarter's analysis record with per-month
// detail and cached top-level totals.
func (s *Seeder) buildRecord(p schema.Project, year int, quarter string, months []string) (schema.AnalysisRecord, bool) {
	monthData := make([]seedMonth, 0, len(months))
	var totalTickets, resolvedIn2Days int
	for _, m := range months {
		total := s.rng.IntN(901) + 100
		rate := s.successRate()
		resolved := total * rate / 100
		monthData = append(monthData, seedMonth{
			DisplayName:        fmt.Sprintf("%s %d", m, year),
			Month:              m,
			TotalTickets:       total,
			ResolvedIn2Days:    resolved,
			ResolvedAfter2Days: total - resolved,
			SuccessRate:        fmt.Sprintf("%.2f", float64(rate)),
		})
		totalTickets += total
		resolvedIn2Days += resolved
	}

	data, err := json.Marshal(monthData)
	if err != nil {
		return schema.AnalysisRecord{}, false
	}
	return schema.AnalysisRecord{
		ProjectID:       p.ID,
		Filename:        fmt.Sprintf("%s_%d_%s_Report.xlsx", p.Name, year, quarter),
		Year:            year,
		Months:          months,
		TotalTickets:    totalTickets,
		ResolvedIn2Days: resolvedIn2Days,
		SuccessRate:     core.Rate(resolvedIn2Days, totalTickets),
		AnalysisData:    data,
	}, true
}

// buildValue builds one data point with a value in [lo, hi].
func (s *Seeder) buildValue(p schema.Project, year int, quarter, month string, lo, hi float64) schema.ValueRecord {
	return schema.ValueRecord{
		ProjectID: p.ID,
		Year:      year,
		Quarter:   quarter,
		Month:     month,
		Value:     lo + s.rng.Float64()*(hi-lo),
		Filename:  fmt.Sprintf("%s_%d_%s_Values.xlsx", p.Name, year, quarter),
	}
}

// successRate returns a percentage biased towards healthy resolution:
// 60% chance of 80-95, 30% chance of 60-79, 10% chance of 40-59.
func (s *Seeder) successRate() int {
	switch r := s.rng.Float64(); {
	case r < 0.6:
		return s.rng.IntN(16) + 80
	case r < 0.9:
		return s.rng.IntN(20) + 60
	default:
		return s.rng.IntN(20) + 40
	}
}
