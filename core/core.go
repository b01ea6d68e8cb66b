// Package core has the aggregation engine for ticket analytics: month
// resolution, record flattening, period aggregation, comparison and
// cross-project rollups. Everything here is a pure transform over
// in-memory fact lists; storage and transport live elsewhere.
package core

import "math"

// Rate returns resolved/total*100 rounded to 2 decimals, or 0 when total
// is 0. Rates are always recomputed from summed counts, never averaged
// across children.
func Rate(resolved, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(resolved) / float64(total) * 100)
}

// PercentChange returns diff/base*100 rounded to 2 decimals, or 0 when
// base is 0.
func PercentChange(diff, base float64) float64 {
	if base == 0 {
		return 0
	}
	return round2(diff / base * 100)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
