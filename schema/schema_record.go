package schema

import (
	"strconv"
	"time"

	json "github.com/goccy/go-json"
)

// MonthToken holds a month as either a name ("April") or a number (4).
// Stored analysis data contains both shapes, so unmarshaling accepts both.
type MonthToken string

// UnmarshalJSON accepts a JSON string or number.
func (m *MonthToken) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = MonthToken(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*m = MonthToken(strconv.Itoa(int(n)))
	return nil
}

// MarshalJSON writes numeric tokens back as numbers so stored data
// round-trips in its original shape.
func (m MonthToken) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(m)); err == nil {
		return json.Marshal(n)
	}
	return json.Marshal(string(m))
}

// FlexFloat is a float64 that also accepts quoted numbers ("80.00").
// Values that cannot be parsed decode to zero rather than failing the
// surrounding record.
type FlexFloat float64

// UnmarshalJSON accepts a JSON number or a numeric string.
func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*f = 0
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexFloat(n)
	} else {
		*f = 0
	}
	return nil
}

// MonthFact is one month's ticket counts embedded in an analysis record.
// The camelCase field names are part of the persisted contract and must
// round-trip through JSON exactly.
type MonthFact struct {
	DisplayName        string     `json:"displayName"`
	Month              MonthToken `json:"month"`
	TotalTickets       int        `json:"totalTickets"`
	ResolvedIn2Days    int        `json:"resolvedIn2Days"`
	ResolvedAfter2Days *int       `json:"resolvedAfter2Days,omitempty"`
	SuccessRate        FlexFloat  `json:"successRate"`

	// Percentage is an alternate name for SuccessRate found in older
	// uploads; readers prefer it when set.
	Percentage FlexFloat `json:"percentage,omitempty"`
}

// AnalysisRecord is one uploaded analysis covering one or more months of a
// single project year. AnalysisData is the authoritative per-month detail;
// the top-level totals are a cached sum enforced at write time only.
type AnalysisRecord struct {
	ID              int64           `json:"id"`
	ProjectID       int64           `json:"project_id"`
	ProjectName     string          `json:"project_name,omitempty"`
	Filename        string          `json:"filename"`
	Year            int             `json:"year"`
	Months          []string        `json:"months"`
	TotalTickets    int             `json:"total_tickets"`
	ResolvedIn2Days int             `json:"resolved_in_2days"`
	SuccessRate     float64         `json:"success_rate"`
	AnalysisData    json.RawMessage `json:"analysis_data"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ValueRecord is a single performance or availability data point: one
// project/year/quarter/month with a float value. Unlike analysis records
// there is no sub-structure; aggregation averages values.
type ValueRecord struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	ProjectName string    `json:"project_name"`
	PortfolioID *int64    `json:"portfolio_id,omitempty"`
	Year        int       `json:"year"`
	Quarter     string    `json:"quarter"`
	Month       string    `json:"month"`
	Value       float64   `json:"value"`
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"created_at"`
}
