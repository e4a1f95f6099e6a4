package models

import "math"

// Percentage returns attended/total as a percentage rounded to two decimals.
// Used by the incremental summary update. Zero when no classes were held.
func Percentage(attended, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(attended)/float64(total)*100*100) / 100
}

// WholePercentage returns attended/total rounded to the nearest whole
// percent. Used by the on-demand report; deliberately a different rounding
// rule than Percentage.
func WholePercentage(attended, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(attended) / float64(total) * 100))
}
