// file: internals/features/academics/coursework/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — assignment submission
// =========================================================

// Submission is a student's answer to an assignment. One submission per
// student per assignment; resubmitting overwrites through the upsert in the
// controller, the unique index backs it.
type Submission struct {
	// PK
	SubmissionID uuid.UUID `gorm:"column:submission_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"submission_id"`

	// FK → assignments(assignment_id)
	SubmissionAssignmentID uuid.UUID `gorm:"column:submission_assignment_id;type:uuid;not null;uniqueIndex:uniq_submission,priority:1" json:"submission_assignment_id"`

	// FK → students(student_id)
	SubmissionStudentID uuid.UUID `gorm:"column:submission_student_id;type:uuid;not null;uniqueIndex:uniq_submission,priority:2" json:"submission_student_id"`

	SubmissionContent string `gorm:"column:submission_content;type:text;not null" json:"submission_content"`

	// Set by the marking lecturer, nil until graded
	SubmissionScore *int `gorm:"column:submission_score;check:submission_score>=0" json:"submission_score,omitempty"`

	SubmissionSubmittedAt time.Time      `gorm:"column:submission_submitted_at;not null;default:now()" json:"submission_submitted_at"`
	SubmissionUpdatedAt   time.Time      `gorm:"column:submission_updated_at;not null;default:now()" json:"submission_updated_at"`
	SubmissionDeletedAt   gorm.DeletedAt `gorm:"column:submission_deleted_at;index" json:"-"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (m *Submission) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.SubmissionSubmittedAt.IsZero() {
		m.SubmissionSubmittedAt = now
	}
	m.SubmissionUpdatedAt = now
	return nil
}

func (m *Submission) BeforeUpdate(tx *gorm.DB) error {
	m.SubmissionUpdatedAt = time.Now()
	return nil
}
