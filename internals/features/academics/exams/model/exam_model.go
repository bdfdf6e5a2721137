// file: internals/features/academics/exams/model/exam_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — examination sitting
// =========================================================

type Exam struct {
	// PK
	ExamID uuid.UUID `gorm:"column:exam_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"exam_id"`

	// FK → courses(course_id)
	ExamCourseID uuid.UUID `gorm:"column:exam_course_id;type:uuid;not null;index" json:"exam_course_id"`

	ExamTitle string    `gorm:"column:exam_title;type:varchar(160);not null" json:"exam_title"`
	ExamVenue string    `gorm:"column:exam_venue;type:varchar(120);not null" json:"exam_venue"`
	ExamStart time.Time `gorm:"column:exam_start;not null;index" json:"exam_start"`

	ExamDurationMinutes int `gorm:"column:exam_duration_minutes;not null;default:120;check:exam_duration_minutes>=30" json:"exam_duration_minutes"`

	ExamAcademicYear string `gorm:"column:exam_academic_year;type:varchar(12);not null;index:ix_exam_term,priority:1" json:"exam_academic_year"`
	ExamSemester     string `gorm:"column:exam_semester;type:varchar(10);not null;index:ix_exam_term,priority:2" json:"exam_semester"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;not null;default:now()" json:"exam_created_at"`
	ExamUpdatedAt time.Time      `gorm:"column:exam_updated_at;not null;default:now()" json:"exam_updated_at"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"-"`
}

func (Exam) TableName() string {
	return "exams"
}

func (m *Exam) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.ExamCreatedAt.IsZero() {
		m.ExamCreatedAt = now
	}
	m.ExamUpdatedAt = now
	return nil
}

func (m *Exam) BeforeUpdate(tx *gorm.DB) error {
	m.ExamUpdatedAt = time.Now()
	return nil
}
