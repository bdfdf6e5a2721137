// file: internals/features/clearance/dto/clearance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"uniportal_backend/internals/features/clearance/service"
)

////////////////////////////////////////////////////////////////////////////////
// CLEARANCE — DTO
////////////////////////////////////////////////////////////////////////////////

// Request (POST /clearance/evaluate). Year/semester are optional and fall
// back to the student's own term.
type EvaluateRequestDTO struct {
	AcademicYear string `json:"academic_year,omitempty" validate:"omitempty,max=12"`
	Semester     string `json:"semester,omitempty" validate:"omitempty,max=10"`
}

type GateResponse struct {
	Cleared bool     `json:"cleared"`
	Notes   string   `json:"notes"`
	Details []string `json:"details,omitempty"`
}

type FinancialGateResponse struct {
	GateResponse
	TotalFees          float64 `json:"total_fees"`
	TotalPaid          float64 `json:"total_paid"`
	OutstandingBalance float64 `json:"outstanding_balance"`
}

type AssignmentGateResponse struct {
	HasAccess        bool     `json:"has_access"`
	Notes            string   `json:"notes"`
	Details          []string `json:"details,omitempty"`
	TotalTuitionFees float64  `json:"total_tuition_fees"`
	TotalTuitionPaid float64  `json:"total_tuition_paid"`
	PercentagePaid   int      `json:"percentage_paid"`
	RequiredAmount   float64  `json:"required_amount"`
	ShortfallAmount  float64  `json:"shortfall_amount,omitempty"`
}

type AttendanceGateResponse struct {
	Cleared      bool   `json:"cleared"`
	Notes        string `json:"notes"`
	Percentage   int    `json:"percentage"`
	PresentCount int    `json:"present_count"`
	TotalCount   int    `json:"total_count"`
}

type VerdictResponse struct {
	StudentID        uuid.UUID              `json:"student_id"`
	AcademicYear     string                 `json:"academic_year"`
	Semester         string                 `json:"semester"`
	Financial        FinancialGateResponse  `json:"financial"`
	AssignmentAccess AssignmentGateResponse `json:"assignment_access"`
	Attendance       AttendanceGateResponse `json:"attendance"`
	OverallCleared   bool                   `json:"overall_cleared"`
	EvaluatedAt      time.Time              `json:"evaluated_at"`
	Error            string                 `json:"error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToVerdictResponse(v *service.Verdict) VerdictResponse {
	return VerdictResponse{
		StudentID:    v.StudentID,
		AcademicYear: v.AcademicYear,
		Semester:     v.Semester,
		Financial: FinancialGateResponse{
			GateResponse: GateResponse{
				Cleared: v.Financial.Cleared,
				Notes:   v.Financial.Notes,
				Details: v.Financial.Details,
			},
			TotalFees:          v.Financial.TotalFees,
			TotalPaid:          v.Financial.TotalPaid,
			OutstandingBalance: v.Financial.OutstandingBalance,
		},
		AssignmentAccess: AssignmentGateResponse{
			HasAccess:        v.AssignmentAccess.HasAccess,
			Notes:            v.AssignmentAccess.Notes,
			Details:          v.AssignmentAccess.Details,
			TotalTuitionFees: v.AssignmentAccess.TotalTuitionFees,
			TotalTuitionPaid: v.AssignmentAccess.TotalTuitionPaid,
			PercentagePaid:   v.AssignmentAccess.PercentagePaid,
			RequiredAmount:   v.AssignmentAccess.RequiredAmount,
			ShortfallAmount:  v.AssignmentAccess.ShortfallAmount,
		},
		Attendance: AttendanceGateResponse{
			Cleared:      v.Attendance.Cleared,
			Notes:        v.Attendance.Notes,
			Percentage:   v.Attendance.Percentage,
			PresentCount: v.Attendance.PresentCount,
			TotalCount:   v.Attendance.TotalCount,
		},
		OverallCleared: v.OverallCleared,
		EvaluatedAt:    v.EvaluatedAt,
		Error:          v.Error,
	}
}
