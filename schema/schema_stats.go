package schema

import "time"

// NormalizedFact is a single project/year/month tuple produced by
// flattening an analysis record. Facts are ephemeral: built per request,
// never persisted.
type NormalizedFact struct {
	RecordID           int64     `json:"id,omitempty"`
	ProjectID          int64     `json:"project_id,omitempty"`
	ProjectName        string    `json:"project_name,omitempty"`
	Filename           string    `json:"filename,omitempty"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
	Year               int       `json:"year"`
	Month              int       `json:"month"`
	Quarter            string    `json:"quarter,omitempty"`
	DisplayName        string    `json:"displayName,omitempty"`
	TotalTickets       int       `json:"total_tickets"`
	ResolvedIn2Days    int       `json:"resolved_in_2days"`
	ResolvedAfter2Days int       `json:"resolved_after_2days"`
	SuccessRate        float64   `json:"success_rate"`
}

// YearStats holds the accumulated counts for one calendar year.
type YearStats struct {
	Year               int     `json:"year"`
	TotalTickets       int     `json:"total_tickets"`
	ResolvedIn2Days    int     `json:"resolved_in_2days"`
	ResolvedAfter2Days int     `json:"resolved_after_2days"`
	SuccessRate        float64 `json:"success_rate"`
}

// MonthStats holds the accumulated counts for one month of one year.
type MonthStats struct {
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	DisplayName        string  `json:"displayName,omitempty"`
	Name               string  `json:"name,omitempty"`
	TotalTickets       int     `json:"total_tickets"`
	ResolvedIn2Days    int     `json:"resolved_in_2days"`
	ResolvedAfter2Days int     `json:"resolved_after_2days"`
	SuccessRate        float64 `json:"success_rate"`
}

// QuarterStats holds the accumulated counts for one quarter of one year,
// with the contributing facts and a monthly breakdown keyed by display
// name. Month sums roll up exactly into the quarter totals.
type QuarterStats struct {
	Year               int                   `json:"year"`
	Quarter            string                `json:"quarter"`
	TotalTickets       int                   `json:"total_tickets"`
	ResolvedIn2Days    int                   `json:"resolved_in_2days"`
	ResolvedAfter2Days int                   `json:"resolved_after_2days"`
	SuccessRate        float64               `json:"success_rate"`
	Months             map[string]MonthStats `json:"months,omitempty"`
	Records            []NormalizedFact      `json:"records,omitempty"`
}

// CurrentYearStats is the focus-year slice of a project statistics view.
type CurrentYearStats struct {
	Year          int                     `json:"year"`
	Data          YearStats               `json:"data"`
	Quarters      map[string]QuarterStats `json:"quarters"`
	QuartersArray []QuarterStats          `json:"quartersArray"`
	Months        []MonthStats            `json:"months"`
}

// ProjectInfo is the identity slice of a project statistics view.
type ProjectInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProjectStatistics is the comprehensive per-project aggregation: the
// focus year broken into quarters and months, plus all-time slices at
// every granularity. All slices are derived from the same fact list in a
// single pass, so totals are mutually consistent.
type ProjectStatistics struct {
	Project     *ProjectInfo     `json:"project"`
	CurrentYear CurrentYearStats `json:"currentYear"`
	AllYears    []YearStats      `json:"allYears"`
	AllQuarters []QuarterStats   `json:"allQuarters"`
	AllMonths   []MonthStats     `json:"allMonths"`
}
