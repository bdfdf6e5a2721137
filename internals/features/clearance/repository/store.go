// file: internals/features/clearance/repository/store.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	attendanceModel "uniportal_backend/internals/features/academics/attendance/model"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	clearanceModel "uniportal_backend/internals/features/clearance/model"
	feeModel "uniportal_backend/internals/features/finance/fees/model"
)

// Store is the data access surface the evaluator needs. The GORM
// implementation backs production; tests run against an in-memory fake.
type Store interface {
	// FindStudentByID returns gorm.ErrRecordNotFound when the id does not
	// resolve.
	FindStudentByID(ctx context.Context, id uuid.UUID) (*studentModel.Student, error)

	// FeeRecordsByTerm scopes to (student, academic year, semester).
	FeeRecordsByTerm(ctx context.Context, studentID uuid.UUID, academicYear, semester string) ([]feeModel.FeeRecord, error)

	// FeeRecordsByYear broadens to any semester of the academic year.
	FeeRecordsByYear(ctx context.Context, studentID uuid.UUID, academicYear string) ([]feeModel.FeeRecord, error)

	// AttendanceSince returns rows with date >= from, ordered by date asc.
	AttendanceSince(ctx context.Context, studentID uuid.UUID, from time.Time) ([]attendanceModel.AttendanceRecord, error)

	// CachedResult returns gorm.ErrRecordNotFound when no row exists for
	// the triple.
	CachedResult(ctx context.Context, studentID uuid.UUID, academicYear, semester string) (*clearanceModel.ClearanceResult, error)

	// UpsertResult writes the full row, replacing any prior result for the
	// same (student, year, semester).
	UpsertResult(ctx context.Context, res *clearanceModel.ClearanceResult) error
}
