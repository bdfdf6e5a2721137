// file: internals/features/academics/results/service/gpa_service.go
package service

import (
	"math"

	resultModel "uniportal_backend/internals/features/academics/results/model"
)

// WeightedGPA computes the credit-unit weighted grade point average on the
// 5.0 scale, rounded to two decimals. Zero results give 0.
func WeightedGPA(results []resultModel.Result) (gpa float64, totalUnits int) {
	var points float64
	for _, r := range results {
		units := 3
		if r.Course != nil && r.Course.CourseCreditUnits > 0 {
			units = r.Course.CourseCreditUnits
		}
		points += resultModel.GradePoint(r.ResultGrade) * float64(units)
		totalUnits += units
	}
	if totalUnits == 0 {
		return 0, 0
	}
	return math.Round(points/float64(totalUnits)*100) / 100, totalUnits
}

// TermKey orders transcript terms chronologically by academic year then
// semester string.
type TermKey struct {
	AcademicYear string
	Semester     string
}

// GroupByTerm splits results into per-term buckets preserving first-seen
// order of the keys.
func GroupByTerm(results []resultModel.Result) ([]TermKey, map[TermKey][]resultModel.Result) {
	order := []TermKey{}
	buckets := map[TermKey][]resultModel.Result{}
	for _, r := range results {
		k := TermKey{AcademicYear: r.ResultAcademicYear, Semester: r.ResultSemester}
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], r)
	}
	return order, buckets
}
