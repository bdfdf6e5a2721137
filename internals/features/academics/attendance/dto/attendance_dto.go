// file: internals/features/academics/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	attendanceModel "uniportal_backend/internals/features/academics/attendance/model"
)

type AttendanceRecordResponse struct {
	RecordID string    `json:"record_id"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Note     *string   `json:"note,omitempty"`
}

type AttendanceSummaryResponse struct {
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	PresentCount int       `json:"present_count"`
	AbsentCount  int       `json:"absent_count"`
	ExcusedCount int       `json:"excused_count"`
	TotalCount   int       `json:"total_count"`
	Percentage   int       `json:"percentage"`
}

func ToAttendanceRecordResponse(m *attendanceModel.AttendanceRecord) AttendanceRecordResponse {
	return AttendanceRecordResponse{
		RecordID: m.AttendanceRecordID.String(),
		Date:     m.AttendanceRecordDate,
		Status:   string(m.AttendanceRecordStatus),
		Note:     m.AttendanceRecordNote,
	}
}
