// file: internals/features/clearance/model/clearance_result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — cached clearance verdict per (student, year, semester)
// =========================================================

// ClearanceResult is a cache, not a source of truth: each evaluation
// overwrites the row for its (student, academic year, semester) key, and
// readers must tolerate staleness.
type ClearanceResult struct {
	// PK
	ClearanceResultID uuid.UUID `gorm:"column:clearance_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"clearance_result_id"`

	// Unique triple (student, year, semester); the upsert conflicts on this.
	ClearanceResultStudentID    uuid.UUID `gorm:"column:clearance_result_student_id;type:uuid;not null;uniqueIndex:uniq_clearance_term,priority:1" json:"clearance_result_student_id"`
	ClearanceResultAcademicYear string    `gorm:"column:clearance_result_academic_year;type:varchar(12);not null;uniqueIndex:uniq_clearance_term,priority:2" json:"clearance_result_academic_year"`
	ClearanceResultSemester     string    `gorm:"column:clearance_result_semester;type:varchar(10);not null;uniqueIndex:uniq_clearance_term,priority:3" json:"clearance_result_semester"`

	// Gates
	ClearanceResultFinancialCleared  bool `gorm:"column:clearance_result_financial_cleared;not null;default:false" json:"clearance_result_financial_cleared"`
	ClearanceResultAttendanceCleared bool `gorm:"column:clearance_result_attendance_cleared;not null;default:false" json:"clearance_result_attendance_cleared"`
	ClearanceResultAssignmentAccess  bool `gorm:"column:clearance_result_assignment_access;not null;default:false" json:"clearance_result_assignment_access"`
	ClearanceResultOverallCleared    bool `gorm:"column:clearance_result_overall_cleared;not null;default:false;index" json:"clearance_result_overall_cleared"`

	// Per-gate notes (surfaced verbatim in the portal UI)
	ClearanceResultFinancialNotes  string `gorm:"column:clearance_result_financial_notes;type:text;not null;default:''" json:"clearance_result_financial_notes"`
	ClearanceResultAttendanceNotes string `gorm:"column:clearance_result_attendance_notes;type:text;not null;default:''" json:"clearance_result_attendance_notes"`
	ClearanceResultAssignmentNotes string `gorm:"column:clearance_result_assignment_notes;type:text;not null;default:''" json:"clearance_result_assignment_notes"`

	// Ordered detail lines per gate, stored as JSON arrays of strings
	ClearanceResultFinancialDetails  datatypes.JSON `gorm:"column:clearance_result_financial_details;type:jsonb" json:"clearance_result_financial_details,omitempty"`
	ClearanceResultAttendanceDetails datatypes.JSON `gorm:"column:clearance_result_attendance_details;type:jsonb" json:"clearance_result_attendance_details,omitempty"`
	ClearanceResultAssignmentDetails datatypes.JSON `gorm:"column:clearance_result_assignment_details;type:jsonb" json:"clearance_result_assignment_details,omitempty"`

	ClearanceResultAttendancePercentage int `gorm:"column:clearance_result_attendance_percentage;not null;default:0" json:"clearance_result_attendance_percentage"`

	// Set whenever an evaluation clears the student overall.
	ClearanceResultClearedAt *time.Time `gorm:"column:clearance_result_cleared_at" json:"clearance_result_cleared_at,omitempty"`

	ClearanceResultCreatedAt time.Time `gorm:"column:clearance_result_created_at;not null;default:now()" json:"clearance_result_created_at"`
	ClearanceResultUpdatedAt time.Time `gorm:"column:clearance_result_updated_at;not null;default:now()" json:"clearance_result_updated_at"`
}

func (ClearanceResult) TableName() string {
	return "clearance_results"
}

// =========================================================
// HOOKS
// =========================================================

func (m *ClearanceResult) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ClearanceResultCreatedAt.IsZero() {
		m.ClearanceResultCreatedAt = now
	}
	m.ClearanceResultUpdatedAt = now
	return nil
}
