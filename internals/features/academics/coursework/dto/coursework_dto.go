// file: internals/features/academics/coursework/dto/coursework_dto.go
package dto

import (
	"time"

	courseworkModel "uniportal_backend/internals/features/academics/coursework/model"
)

type SubmitAssignmentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=65535"`
}

type AssignmentResponse struct {
	AssignmentID string    `json:"assignment_id"`
	CourseID     string    `json:"course_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MaxScore     int       `json:"max_score"`
	DueAt        time.Time `json:"due_at"`
	Submitted    bool      `json:"submitted"`
}

type SubmissionResponse struct {
	SubmissionID string    `json:"submission_id"`
	AssignmentID string    `json:"assignment_id"`
	Content      string    `json:"content"`
	Score        *int      `json:"score,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func ToAssignmentResponse(m *courseworkModel.Assignment, submitted bool) AssignmentResponse {
	return AssignmentResponse{
		AssignmentID: m.AssignmentID.String(),
		CourseID:     m.AssignmentCourseID.String(),
		Title:        m.AssignmentTitle,
		Description:  m.AssignmentDescription,
		MaxScore:     m.AssignmentMaxScore,
		DueAt:        m.AssignmentDueAt,
		Submitted:    submitted,
	}
}

func ToSubmissionResponse(m *courseworkModel.Submission) SubmissionResponse {
	return SubmissionResponse{
		SubmissionID: m.SubmissionID.String(),
		AssignmentID: m.SubmissionAssignmentID.String(),
		Content:      m.SubmissionContent,
		Score:        m.SubmissionScore,
		SubmittedAt:  m.SubmissionSubmittedAt,
	}
}
