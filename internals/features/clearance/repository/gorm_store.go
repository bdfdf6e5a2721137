// file: internals/features/clearance/repository/gorm_store.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	attendanceModel "uniportal_backend/internals/features/academics/attendance/model"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	clearanceModel "uniportal_backend/internals/features/clearance/model"
	feeModel "uniportal_backend/internals/features/finance/fees/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

var _ Store = (*GormStore)(nil)

func (s *GormStore) FindStudentByID(ctx context.Context, id uuid.UUID) (*studentModel.Student, error) {
	var st studentModel.Student
	if err := s.DB.WithContext(ctx).
		First(&st, "student_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *GormStore) FeeRecordsByTerm(ctx context.Context, studentID uuid.UUID, academicYear, semester string) ([]feeModel.FeeRecord, error) {
	var rows []feeModel.FeeRecord
	err := s.DB.WithContext(ctx).
		Where("fee_record_student_id = ? AND fee_record_academic_year = ? AND fee_record_semester = ?",
			studentID, academicYear, semester).
		Order("fee_record_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) FeeRecordsByYear(ctx context.Context, studentID uuid.UUID, academicYear string) ([]feeModel.FeeRecord, error) {
	var rows []feeModel.FeeRecord
	err := s.DB.WithContext(ctx).
		Where("fee_record_student_id = ? AND fee_record_academic_year = ?", studentID, academicYear).
		Order("fee_record_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) AttendanceSince(ctx context.Context, studentID uuid.UUID, from time.Time) ([]attendanceModel.AttendanceRecord, error) {
	var rows []attendanceModel.AttendanceRecord
	err := s.DB.WithContext(ctx).
		Where("attendance_record_student_id = ? AND attendance_record_date >= ?", studentID, from).
		Order("attendance_record_date ASC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) CachedResult(ctx context.Context, studentID uuid.UUID, academicYear, semester string) (*clearanceModel.ClearanceResult, error) {
	var res clearanceModel.ClearanceResult
	if err := s.DB.WithContext(ctx).
		Where("clearance_result_student_id = ? AND clearance_result_academic_year = ? AND clearance_result_semester = ?",
			studentID, academicYear, semester).
		First(&res).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *GormStore) UpsertResult(ctx context.Context, res *clearanceModel.ClearanceResult) error {
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "clearance_result_student_id"},
				{Name: "clearance_result_academic_year"},
				{Name: "clearance_result_semester"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"clearance_result_financial_cleared",
				"clearance_result_attendance_cleared",
				"clearance_result_assignment_access",
				"clearance_result_overall_cleared",
				"clearance_result_financial_notes",
				"clearance_result_attendance_notes",
				"clearance_result_assignment_notes",
				"clearance_result_financial_details",
				"clearance_result_attendance_details",
				"clearance_result_assignment_details",
				"clearance_result_attendance_percentage",
				"clearance_result_cleared_at",
				"clearance_result_updated_at",
			}),
		}).
		Create(res).Error
}
