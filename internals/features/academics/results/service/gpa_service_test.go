// file: internals/features/academics/results/service/gpa_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	resultModel "uniportal_backend/internals/features/academics/results/model"
)

func resultRow(year, sem, grade string, units int) resultModel.Result {
	return resultModel.Result{
		ResultID:           uuid.New(),
		ResultAcademicYear: year,
		ResultSemester:     sem,
		ResultGrade:        grade,
		Course: &resultModel.CourseRef{
			CourseID:          uuid.New(),
			CourseCreditUnits: units,
		},
	}
}

func TestWeightedGPA(t *testing.T) {
	results := []resultModel.Result{
		resultRow("2025/2026", "1", "A", 4), // 5.0 * 4 = 20
		resultRow("2025/2026", "1", "C", 2), // 3.0 * 2 = 6
	}
	gpa, units := WeightedGPA(results)
	assert.Equal(t, 6, units)
	assert.InDelta(t, 4.33, gpa, 0.001) // 26 / 6 rounded to 2dp
}

func TestWeightedGPAEmpty(t *testing.T) {
	gpa, units := WeightedGPA(nil)
	assert.Zero(t, gpa)
	assert.Zero(t, units)
}

func TestWeightedGPADefaultsMissingUnits(t *testing.T) {
	r := resultRow("2025/2026", "1", "B", 0)
	r.Course = nil

	gpa, units := WeightedGPA([]resultModel.Result{r})
	assert.Equal(t, 3, units)
	assert.InDelta(t, 4.0, gpa, 0.001)
}

func TestGroupByTermPreservesOrder(t *testing.T) {
	results := []resultModel.Result{
		resultRow("2024/2025", "1", "A", 3),
		resultRow("2024/2025", "2", "B", 3),
		resultRow("2024/2025", "1", "C", 3),
		resultRow("2025/2026", "1", "A", 3),
	}

	order, buckets := GroupByTerm(results)
	assert.Len(t, order, 3)
	assert.Equal(t, TermKey{"2024/2025", "1"}, order[0])
	assert.Equal(t, TermKey{"2024/2025", "2"}, order[1])
	assert.Equal(t, TermKey{"2025/2026", "1"}, order[2])
	assert.Len(t, buckets[order[0]], 2)
	assert.Len(t, buckets[order[1]], 1)
}

func TestGradeForScoreBands(t *testing.T) {
	cases := map[int]string{
		95: "A", 80: "A",
		79: "B", 70: "B",
		69: "C", 60: "C",
		59: "D", 50: "D",
		49: "E", 40: "E",
		39: "F", 0: "F",
	}
	for score, want := range cases {
		assert.Equal(t, want, resultModel.GradeForScore(score), "score %d", score)
	}
}
