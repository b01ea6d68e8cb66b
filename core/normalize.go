package core

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/ticketdash/ticketdash/schema"
)

// FlattenRecord expands one analysis record into per-month facts.
// Each embedded month entry becomes one fact with its month and quarter
// resolved from the display name, falling back to the raw month token.
// A record whose analysis data cannot be parsed degrades to a single
// unresolved fact carrying the record-level totals, so broken uploads
// stay visible in aggregates instead of silently vanishing.
func FlattenRecord(rec schema.AnalysisRecord) []schema.NormalizedFact {
	monthFacts, ok := parseAnalysisData(rec.AnalysisData)
	if !ok {
		return []schema.NormalizedFact{fallbackFact(rec)}
	}
	facts := make([]schema.NormalizedFact, 0, len(monthFacts))
	for _, mf := range monthFacts {
		facts = append(facts, normalizeMonthFact(rec, mf))
	}
	return facts
}

// FlattenRecords flattens a record list into one combined fact list.
func FlattenRecords(recs []schema.AnalysisRecord) []schema.NormalizedFact {
	var facts []schema.NormalizedFact
	for _, rec := range recs {
		facts = append(facts, FlattenRecord(rec)...)
	}
	return facts
}

// parseAnalysisData decodes the embedded month array. Some backends hand
// the column back double-encoded (a JSON string containing JSON), so a
// failed first decode retries through an intermediate string. Empty and
// null columns are valid and yield zero facts.
func parseAnalysisData(raw json.RawMessage) ([]schema.MonthFact, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}
	var facts []schema.MonthFact
	if err := json.Unmarshal(trimmed, &facts); err == nil {
		return facts, true
	}
	var inner string
	if err := json.Unmarshal(trimmed, &inner); err != nil {
		return nil, false
	}
	if inner == "" {
		return nil, true
	}
	if err := json.Unmarshal([]byte(inner), &facts); err != nil {
		return nil, false
	}
	return facts, true
}

func normalizeMonthFact(rec schema.AnalysisRecord, mf schema.MonthFact) schema.NormalizedFact {
	token := mf.DisplayName
	if token == "" {
		token = string(mf.Month)
	}
	monthNum, quarter := ResolveMonth(token)

	after := mf.TotalTickets - mf.ResolvedIn2Days
	if mf.ResolvedAfter2Days != nil {
		after = *mf.ResolvedAfter2Days
	}
	rate := float64(mf.Percentage)
	if rate == 0 {
		rate = float64(mf.SuccessRate)
	}
	return schema.NormalizedFact{
		RecordID:           rec.ID,
		ProjectID:          rec.ProjectID,
		ProjectName:        rec.ProjectName,
		Filename:           rec.Filename,
		CreatedAt:          rec.CreatedAt,
		Year:               rec.Year,
		Month:              monthNum,
		Quarter:            quarter,
		DisplayName:        mf.DisplayName,
		TotalTickets:       mf.TotalTickets,
		ResolvedIn2Days:    mf.ResolvedIn2Days,
		ResolvedAfter2Days: after,
		SuccessRate:        rate,
	}
}

func fallbackFact(rec schema.AnalysisRecord) schema.NormalizedFact {
	return schema.NormalizedFact{
		RecordID:           rec.ID,
		ProjectID:          rec.ProjectID,
		ProjectName:        rec.ProjectName,
		Filename:           rec.Filename,
		CreatedAt:          rec.CreatedAt,
		Year:               rec.Year,
		TotalTickets:       rec.TotalTickets,
		ResolvedIn2Days:    rec.ResolvedIn2Days,
		ResolvedAfter2Days: rec.TotalTickets - rec.ResolvedIn2Days,
		SuccessRate:        rec.SuccessRate,
	}
}
