// file: internals/features/academics/attendance/model/attendance_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — daily attendance status
// =========================================================

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusExcused:
		return true
	default:
		return false
	}
}

// =========================================================
// MODEL — one row per student per calendar day
// =========================================================

type AttendanceRecord struct {
	// PK
	AttendanceRecordID uuid.UUID `gorm:"column:attendance_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_record_id"`

	// FK → students(student_id)
	AttendanceRecordStudentID uuid.UUID `gorm:"column:attendance_record_student_id;type:uuid;not null;index:ix_attendance_student_date,priority:1" json:"attendance_record_student_id"`

	AttendanceRecordDate   time.Time        `gorm:"column:attendance_record_date;type:date;not null;index:ix_attendance_student_date,priority:2" json:"attendance_record_date"`
	AttendanceRecordStatus AttendanceStatus `gorm:"column:attendance_record_status;type:varchar(20);not null" json:"attendance_record_status"`

	// Optional note from the marking lecturer
	AttendanceRecordNote *string `gorm:"column:attendance_record_note;type:varchar(160)" json:"attendance_record_note,omitempty"`

	AttendanceRecordCreatedAt time.Time      `gorm:"column:attendance_record_created_at;not null;default:now()" json:"attendance_record_created_at"`
	AttendanceRecordDeletedAt gorm.DeletedAt `gorm:"column:attendance_record_deleted_at;index" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
