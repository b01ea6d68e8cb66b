package schema

import "time"

// RecordRef is the compact reference to a contributing record inside a
// rollup bucket.
type RecordRef struct {
	ID              int64     `json:"id"`
	Filename        string    `json:"filename"`
	Months          []string  `json:"months,omitempty"`
	TotalTickets    int       `json:"total_tickets"`
	ResolvedIn2Days int       `json:"resolved_in_2days"`
	SuccessRate     float64   `json:"success_rate,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// RollupMonth is one month bucket of a project rollup, keyed by the
// month's display name.
type RollupMonth struct {
	Name            string      `json:"name"`
	TotalTickets    int         `json:"total_tickets"`
	ResolvedIn2Days int         `json:"resolved_in_2days"`
	SuccessRate     float64     `json:"success_rate"`
	Records         []RecordRef `json:"records"`
}

// RollupQuarter is one quarter bucket of a project rollup.
type RollupQuarter struct {
	TotalTickets    int                     `json:"total_tickets"`
	ResolvedIn2Days int                     `json:"resolved_in_2days"`
	SuccessRate     float64                 `json:"success_rate"`
	Records         []RecordRef             `json:"records"`
	Months          map[string]*RollupMonth `json:"months"`
}

// RollupYear is one year bucket of a project rollup.
type RollupYear struct {
	Quarters map[string]*RollupQuarter `json:"quarters"`
}

// ProjectRollup is the per-project year/quarter/month tree used by the
// cross-project records view. Projects without an owning row keep a nil
// ProjectID and the "Unassigned" label.
type ProjectRollup struct {
	ProjectID   *int64              `json:"project_id"`
	ProjectName string              `json:"project_name"`
	Years       map[int]*RollupYear `json:"years"`
}

// ValueQuarter is one quarter of averaged value records (performance or
// availability). Values are averaged, never summed.
type ValueQuarter struct {
	Months  []string  `json:"months"`
	Values  []float64 `json:"values"`
	Average float64   `json:"average"`
	Count   int       `json:"count"`
}

// ValueYear is one year of averaged value records.
type ValueYear struct {
	Quarters  map[string]*ValueQuarter `json:"quarters"`
	AllMonths []ValueMonthPoint        `json:"allMonths,omitempty"`
}

// ValueMonthPoint is a single month/quarter/value data point.
type ValueMonthPoint struct {
	Month   string  `json:"month"`
	Quarter string  `json:"quarter"`
	Value   float64 `json:"value"`
}

// ValueSummary is the per-project value summary: overall and
// latest-quarter averages plus the full year/quarter breakdown.
type ValueSummary struct {
	TotalDataPoints      int                `json:"totalDataPoints"`
	OverallAverage       float64            `json:"overallAverage"`
	LatestYear           int                `json:"latestYear"`
	LatestQuarter        string             `json:"latestQuarter"`
	LatestQuarterAverage float64            `json:"latestQuarterAverage"`
	Years                map[int]*ValueYear `json:"years"`
}

// ValueProjectRollup groups value records for one project by year.
type ValueProjectRollup struct {
	ProjectID   *int64             `json:"project_id"`
	ProjectName string             `json:"project_name"`
	Years       map[int]*ValueYear `json:"years"`
}

// PortfolioMonthAverage is one averaged month inside a portfolio quarter,
// sorted in calendar order.
type PortfolioMonthAverage struct {
	Month   string  `json:"month"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// PortfolioQuarter is one averaged quarter of a portfolio rollup.
type PortfolioQuarter struct {
	Months  []PortfolioMonthAverage `json:"months"`
	Count   int                     `json:"count"`
	Sum     float64                 `json:"sum"`
	Average float64                 `json:"average"`
}

// PortfolioYear is one year of a portfolio rollup.
type PortfolioYear struct {
	Quarters map[string]*PortfolioQuarter `json:"quarters"`
}

// PortfolioStats is the cross-project rollup for one portfolio.
// Portfolios with no contributing data points are omitted from results.
type PortfolioStats struct {
	ID              int64                  `json:"id"`
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	ProjectCount    int                    `json:"project_count"`
	TotalDataPoints int                    `json:"total_data_points"`
	Years           map[int]*PortfolioYear `json:"years"`
}
