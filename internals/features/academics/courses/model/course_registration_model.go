// file: internals/features/academics/courses/model/course_registration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — per-term unit registration
// =========================================================

// CourseRegistration records that a student carries a unit in a given term.
// A student registers a unit at most once per term; the unique index is
// checked at the DB so concurrent submits cannot double-register.
type CourseRegistration struct {
	// PK
	CourseRegistrationID uuid.UUID `gorm:"column:course_registration_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"course_registration_id"`

	// FK → students(student_id)
	CourseRegistrationStudentID uuid.UUID `gorm:"column:course_registration_student_id;type:uuid;not null;uniqueIndex:uniq_course_registration,priority:1" json:"course_registration_student_id"`

	// FK → courses(course_id)
	CourseRegistrationCourseID uuid.UUID `gorm:"column:course_registration_course_id;type:uuid;not null;uniqueIndex:uniq_course_registration,priority:2" json:"course_registration_course_id"`

	CourseRegistrationAcademicYear string `gorm:"column:course_registration_academic_year;type:varchar(12);not null;uniqueIndex:uniq_course_registration,priority:3" json:"course_registration_academic_year"`
	CourseRegistrationSemester     string `gorm:"column:course_registration_semester;type:varchar(10);not null;uniqueIndex:uniq_course_registration,priority:4" json:"course_registration_semester"`

	CourseRegistrationCreatedAt time.Time      `gorm:"column:course_registration_created_at;not null;default:now()" json:"course_registration_created_at"`
	CourseRegistrationDeletedAt gorm.DeletedAt `gorm:"column:course_registration_deleted_at;index" json:"-"`

	// Preloaded catalogue row
	Course *Course `gorm:"foreignKey:CourseRegistrationCourseID;references:CourseID" json:"course,omitempty"`
}

func (CourseRegistration) TableName() string {
	return "course_registrations"
}

func (m *CourseRegistration) BeforeCreate(tx *gorm.DB) error {
	if m.CourseRegistrationCreatedAt.IsZero() {
		m.CourseRegistrationCreatedAt = time.Now()
	}
	return nil
}
