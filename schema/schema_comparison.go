package schema

// PeriodFilter selects a subset of facts for comparison. Zero fields are
// wildcards: Year 0 matches every year, empty Quarter matches every
// quarter, Month 0 matches every month.
type PeriodFilter struct {
	Year    int
	Quarter string
	Month   int
}

// IsZero reports whether no filter field is set.
func (p PeriodFilter) IsZero() bool {
	return p.Year == 0 && p.Quarter == "" && p.Month == 0
}

// PeriodTotals is a period subset collapsed to its totals, with the
// contributing facts sorted by month.
type PeriodTotals struct {
	Label              string           `json:"label,omitempty"`
	TotalTickets       int              `json:"total_tickets"`
	ResolvedIn2Days    int              `json:"resolved_in_2days"`
	ResolvedAfter2Days int              `json:"resolved_after_2days"`
	SuccessRate        float64          `json:"success_rate"`
	Records            []NormalizedFact `json:"records"`
}

// PeriodDifference holds primary-minus-compare deltas for each count
// metric. Percent fields are zero when the compare value is zero.
type PeriodDifference struct {
	TotalTickets           int     `json:"total_tickets"`
	ResolvedIn2Days        int     `json:"resolved_in_2days"`
	ResolvedAfter2Days     int     `json:"resolved_after_2days"`
	SuccessRate            float64 `json:"success_rate"`
	TotalTicketsPercent    float64 `json:"total_tickets_percent"`
	ResolvedIn2DaysPercent float64 `json:"resolved_in_2days_percent"`
}

// PeriodComparison is the typed period-vs-period result.
type PeriodComparison struct {
	ComparisonType string           `json:"comparisonType,omitempty"`
	Period1        PeriodTotals     `json:"period1"`
	Period2        PeriodTotals     `json:"period2"`
	Difference     PeriodDifference `json:"difference"`
}

// FlexibleStats is the camelCase totals shape used by the flexible
// statistics comparison surface.
type FlexibleStats struct {
	TotalTickets       int              `json:"totalTickets"`
	ResolvedIn2Days    int              `json:"resolvedIn2Days"`
	ResolvedAfter2Days int              `json:"resolvedAfter2Days"`
	SuccessRate        float64          `json:"successRate"`
	Records            []NormalizedFact `json:"records"`
}

// FlexibleChanges holds primary-vs-compare deltas for the flexible
// comparison surface.
type FlexibleChanges struct {
	TotalTickets           int     `json:"totalTickets"`
	TotalTicketsPercent    float64 `json:"totalTicketsPercent"`
	ResolvedIn2Days        int     `json:"resolvedIn2Days"`
	ResolvedIn2DaysPercent float64 `json:"resolvedIn2DaysPercent"`
	SuccessRate            float64 `json:"successRate"`
	SuccessRatePercent     float64 `json:"successRatePercent"`
}

// FlexibleComparison is the flexible comparison result. Compare and
// Changes are nil when no compare period was requested.
type FlexibleComparison struct {
	Primary FlexibleStats    `json:"primary"`
	Compare *FlexibleStats   `json:"compare"`
	Changes *FlexibleChanges `json:"changes"`
}
