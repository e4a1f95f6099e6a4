package models

import (
	"fmt"
	"time"
)

// AcademicYear formats the academic year starting in the given moment's
// calendar year as "YYYY-YY", e.g. 2026 -> "2026-27". Submissions always use
// the wall clock, not the submitted class date.
func AcademicYear(now time.Time) string {
	year := now.Year()
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
