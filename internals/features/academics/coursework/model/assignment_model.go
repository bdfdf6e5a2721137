// file: internals/features/academics/coursework/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — coursework assignment
// =========================================================

type Assignment struct {
	// PK
	AssignmentID uuid.UUID `gorm:"column:assignment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`

	// FK → courses(course_id)
	AssignmentCourseID uuid.UUID `gorm:"column:assignment_course_id;type:uuid;not null;index" json:"assignment_course_id"`

	AssignmentTitle       string    `gorm:"column:assignment_title;type:varchar(160);not null" json:"assignment_title"`
	AssignmentDescription string    `gorm:"column:assignment_description;type:text;not null" json:"assignment_description"`
	AssignmentMaxScore    int       `gorm:"column:assignment_max_score;not null;default:100" json:"assignment_max_score"`
	AssignmentDueAt       time.Time `gorm:"column:assignment_due_at;not null;index" json:"assignment_due_at"`

	AssignmentCreatedAt time.Time      `gorm:"column:assignment_created_at;not null;default:now()" json:"assignment_created_at"`
	AssignmentUpdatedAt time.Time      `gorm:"column:assignment_updated_at;not null;default:now()" json:"assignment_updated_at"`
	AssignmentDeletedAt gorm.DeletedAt `gorm:"column:assignment_deleted_at;index" json:"-"`
}

func (Assignment) TableName() string {
	return "assignments"
}

func (m *Assignment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.AssignmentCreatedAt.IsZero() {
		m.AssignmentCreatedAt = now
	}
	m.AssignmentUpdatedAt = now
	return nil
}

func (m *Assignment) BeforeUpdate(tx *gorm.DB) error {
	m.AssignmentUpdatedAt = time.Now()
	return nil
}
