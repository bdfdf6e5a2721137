// file: internals/features/academics/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — course catalogue
// =========================================================

type Course struct {
	// PK
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`

	// Unit code, e.g. "CSC2103"
	CourseCode  string `gorm:"column:course_code;type:varchar(20);not null;uniqueIndex" json:"course_code"`
	CourseTitle string `gorm:"column:course_title;type:varchar(160);not null" json:"course_title"`

	CourseProgramCode  string `gorm:"column:course_program_code;type:varchar(20);not null;index:ix_course_program_term,priority:1" json:"course_program_code"`
	CourseYearOfStudy  int    `gorm:"column:course_year_of_study;not null;index:ix_course_program_term,priority:2" json:"course_year_of_study"`
	CourseSemester     string `gorm:"column:course_semester;type:varchar(10);not null;index:ix_course_program_term,priority:3" json:"course_semester"`
	CourseCreditUnits  int    `gorm:"column:course_credit_units;not null;default:3;check:course_credit_units>=1" json:"course_credit_units"`
	CourseLecturerName string `gorm:"column:course_lecturer_name;type:varchar(120);not null" json:"course_lecturer_name"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;not null;default:now()" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;not null;default:now()" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

func (m *Course) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.CourseCreatedAt.IsZero() {
		m.CourseCreatedAt = now
	}
	m.CourseUpdatedAt = now
	return nil
}

func (m *Course) BeforeUpdate(tx *gorm.DB) error {
	m.CourseUpdatedAt = time.Now()
	return nil
}
