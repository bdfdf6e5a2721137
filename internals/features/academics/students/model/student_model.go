// file: internals/features/academics/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL
// =========================================================

// Student is the portal-facing academic record. The account (users row) is
// linked through StudentUserID; auth claims carry the student id directly.
type Student struct {
	// PK
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`

	// FK → users(id), optional until the account is activated
	StudentUserID *uuid.UUID `gorm:"column:student_user_id;type:uuid;index" json:"student_user_id,omitempty"`

	// Registration number, e.g. "BSC/2023/0142"
	StudentRegNumber string `gorm:"column:student_reg_number;type:varchar(30);not null;uniqueIndex" json:"student_reg_number"`

	StudentFullName    string `gorm:"column:student_full_name;type:varchar(120);not null" json:"student_full_name"`
	StudentProgramCode string `gorm:"column:student_program_code;type:varchar(20);not null;index" json:"student_program_code"`

	// Current enrolment position
	StudentYearOfStudy  int    `gorm:"column:student_year_of_study;not null;default:1;check:student_year_of_study>=1" json:"student_year_of_study"`
	StudentSemester     string `gorm:"column:student_semester;type:varchar(10);not null" json:"student_semester"`
	StudentAcademicYear string `gorm:"column:student_academic_year;type:varchar(12);not null" json:"student_academic_year"`

	StudentAvatarURL *string `gorm:"column:student_avatar_url;type:varchar(255)" json:"student_avatar_url,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;not null;default:now()" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;not null;default:now()" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// =========================================================
// HOOKS
// =========================================================

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.StudentCreatedAt.IsZero() {
		m.StudentCreatedAt = now
	}
	m.StudentUpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.StudentUpdatedAt = time.Now()
	return nil
}
