// file: internals/features/academics/results/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// MODEL — published exam result
// =========================================================

type Result struct {
	// PK
	ResultID uuid.UUID `gorm:"column:result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"result_id"`

	// FK → students(student_id)
	ResultStudentID uuid.UUID `gorm:"column:result_student_id;type:uuid;not null;index:ix_result_student_term,priority:1" json:"result_student_id"`

	// FK → courses(course_id)
	ResultCourseID uuid.UUID `gorm:"column:result_course_id;type:uuid;not null" json:"result_course_id"`

	ResultAcademicYear string `gorm:"column:result_academic_year;type:varchar(12);not null;index:ix_result_student_term,priority:2" json:"result_academic_year"`
	ResultSemester     string `gorm:"column:result_semester;type:varchar(10);not null;index:ix_result_student_term,priority:3" json:"result_semester"`

	// Final mark out of 100
	ResultScore int    `gorm:"column:result_score;not null;check:result_score>=0 AND result_score<=100" json:"result_score"`
	ResultGrade string `gorm:"column:result_grade;type:varchar(2);not null" json:"result_grade"`

	ResultPublishedAt time.Time      `gorm:"column:result_published_at;not null;default:now()" json:"result_published_at"`
	ResultDeletedAt   gorm.DeletedAt `gorm:"column:result_deleted_at;index" json:"-"`

	// Preloaded catalogue row for title/units on the transcript
	Course *CourseRef `gorm:"foreignKey:ResultCourseID;references:CourseID" json:"course,omitempty"`
}

func (Result) TableName() string {
	return "results"
}

// CourseRef mirrors the columns of courses the transcript needs. Kept as a
// slim read model so results does not import the courses package.
type CourseRef struct {
	CourseID          uuid.UUID `gorm:"column:course_id;primaryKey" json:"course_id"`
	CourseCode        string    `gorm:"column:course_code" json:"course_code"`
	CourseTitle       string    `gorm:"column:course_title" json:"course_title"`
	CourseCreditUnits int       `gorm:"column:course_credit_units" json:"course_credit_units"`
}

func (CourseRef) TableName() string {
	return "courses"
}

// =========================================================
// GRADING SCALE
// =========================================================

// GradePoint maps a letter grade to its 5.0-scale points.
func GradePoint(grade string) float64 {
	switch grade {
	case "A":
		return 5.0
	case "B":
		return 4.0
	case "C":
		return 3.0
	case "D":
		return 2.0
	case "E":
		return 1.0
	default:
		return 0.0
	}
}

// GradeForScore applies the standard grading bands.
func GradeForScore(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	case score >= 40:
		return "E"
	default:
		return "F"
	}
}
