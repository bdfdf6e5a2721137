// file: internals/features/academics/results/dto/result_dto.go
package dto

import (
	"time"

	resultModel "uniportal_backend/internals/features/academics/results/model"
)

type ResultResponse struct {
	ResultID     string    `json:"result_id"`
	CourseCode   string    `json:"course_code"`
	CourseTitle  string    `json:"course_title"`
	CreditUnits  int       `json:"credit_units"`
	AcademicYear string    `json:"academic_year"`
	Semester     string    `json:"semester"`
	Score        int       `json:"score"`
	Grade        string    `json:"grade"`
	PublishedAt  time.Time `json:"published_at"`
}

type TermResultsResponse struct {
	AcademicYear string           `json:"academic_year"`
	Semester     string           `json:"semester"`
	Results      []ResultResponse `json:"results"`
	GPA          float64          `json:"gpa"`
	TotalUnits   int              `json:"total_units"`
}

type TranscriptResponse struct {
	StudentID string                `json:"student_id"`
	Terms     []TermResultsResponse `json:"terms"`
	CGPA      float64               `json:"cgpa"`
}

func ToResultResponse(m *resultModel.Result) ResultResponse {
	resp := ResultResponse{
		ResultID:     m.ResultID.String(),
		AcademicYear: m.ResultAcademicYear,
		Semester:     m.ResultSemester,
		Score:        m.ResultScore,
		Grade:        m.ResultGrade,
		PublishedAt:  m.ResultPublishedAt,
	}
	if m.Course != nil {
		resp.CourseCode = m.Course.CourseCode
		resp.CourseTitle = m.Course.CourseTitle
		resp.CreditUnits = m.Course.CourseCreditUnits
	}
	return resp
}
