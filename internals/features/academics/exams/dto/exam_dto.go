// file: internals/features/academics/exams/dto/exam_dto.go
package dto

import (
	"time"

	examModel "uniportal_backend/internals/features/academics/exams/model"
)

type ExamResponse struct {
	ExamID          string    `json:"exam_id"`
	CourseID        string    `json:"course_id"`
	Title           string    `json:"title"`
	Venue           string    `json:"venue"`
	Start           time.Time `json:"start"`
	DurationMinutes int       `json:"duration_minutes"`
	AcademicYear    string    `json:"academic_year"`
	Semester        string    `json:"semester"`
}

// ClearanceSummary rides along with the timetable so the app can show the
// sit/blocked banner without a second request.
type ClearanceSummary struct {
	Cached            bool   `json:"cached"`
	OverallCleared    bool   `json:"overall_cleared"`
	FinancialCleared  bool   `json:"financial_cleared"`
	AttendanceCleared bool   `json:"attendance_cleared"`
	Notes             string `json:"notes"`
}

type TimetableResponse struct {
	Exams     []ExamResponse   `json:"exams"`
	Clearance ClearanceSummary `json:"clearance"`
}

type EntryPermitResponse struct {
	ExamID         string `json:"exam_id"`
	Permitted      bool   `json:"permitted"`
	OverallCleared bool   `json:"overall_cleared"`
	Notes          string `json:"notes"`
}

func ToExamResponse(m *examModel.Exam) ExamResponse {
	return ExamResponse{
		ExamID:          m.ExamID.String(),
		CourseID:        m.ExamCourseID.String(),
		Title:           m.ExamTitle,
		Venue:           m.ExamVenue,
		Start:           m.ExamStart,
		DurationMinutes: m.ExamDurationMinutes,
		AcademicYear:    m.ExamAcademicYear,
		Semester:        m.ExamSemester,
	}
}
