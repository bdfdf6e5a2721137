// file: internals/features/finance/fees/dto/fee_dto.go
package dto

import (
	feeModel "uniportal_backend/internals/features/finance/fees/model"
)

type FeeRecordResponse struct {
	FeeRecordID  string   `json:"fee_record_id"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Status       string   `json:"status"`
	BalanceDue   *float64 `json:"balance_due,omitempty"`
	Outstanding  float64  `json:"outstanding"`
	Paid         float64  `json:"paid"`
	AcademicYear string   `json:"academic_year"`
	Semester     string   `json:"semester"`
}

// StatementResponse is the per-term fee statement with the running totals
// the finance office prints.
type StatementResponse struct {
	AcademicYear     string              `json:"academic_year"`
	Semester         string              `json:"semester"`
	Records          []FeeRecordResponse `json:"records"`
	TotalBilled      float64             `json:"total_billed"`
	TotalPaid        float64             `json:"total_paid"`
	TotalOutstanding float64             `json:"total_outstanding"`
}

func ToFeeRecordResponse(m *feeModel.FeeRecord) FeeRecordResponse {
	return FeeRecordResponse{
		FeeRecordID:  m.FeeRecordID.String(),
		Category:     m.FeeRecordCategory,
		Description:  m.FeeRecordDescription,
		Amount:       m.FeeRecordAmount,
		Status:       string(m.FeeRecordStatus),
		BalanceDue:   m.FeeRecordBalanceDue,
		Outstanding:  m.OutstandingAmount(),
		Paid:         m.PaidAmount(),
		AcademicYear: m.FeeRecordAcademicYear,
		Semester:     m.FeeRecordSemester,
	}
}
