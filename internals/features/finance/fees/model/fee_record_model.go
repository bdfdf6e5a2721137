// file: internals/features/finance/fees/model/fee_record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — fee record status
// =========================================================

type FeeStatus string

const (
	FeeStatusPaid    FeeStatus = "paid"
	FeeStatusPartial FeeStatus = "partial"
	FeeStatusPending FeeStatus = "pending"
)

func (s FeeStatus) Valid() bool {
	switch s {
	case FeeStatusPaid, FeeStatusPartial, FeeStatusPending:
		return true
	default:
		return false
	}
}

// Common fee categories. Category is free-form for legacy rows; tuition
// classification also falls back to a description keyword match.
const (
	FeeCategoryTuition       = "tuition"
	FeeCategoryAccommodation = "accommodation"
	FeeCategoryLibrary       = "library"
	FeeCategoryExamination   = "examination"
)

// =========================================================
// MODEL
// =========================================================

type FeeRecord struct {
	// PK
	FeeRecordID uuid.UUID `gorm:"column:fee_record_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"fee_record_id"`

	// FK → students(student_id)
	FeeRecordStudentID uuid.UUID `gorm:"column:fee_record_student_id;type:uuid;not null;index:ix_fee_record_student" json:"fee_record_student_id"`

	FeeRecordCategory    string `gorm:"column:fee_record_category;type:varchar(30);not null;index" json:"fee_record_category"`
	FeeRecordDescription string `gorm:"column:fee_record_description;type:varchar(160);not null" json:"fee_record_description"`

	FeeRecordAmount float64 `gorm:"column:fee_record_amount;not null;check:fee_record_amount>=0" json:"fee_record_amount"`

	FeeRecordStatus FeeStatus `gorm:"column:fee_record_status;type:varchar(20);not null;default:'pending';index:ix_fee_record_status" json:"fee_record_status"`

	// Remaining balance for partial/pending rows; nil means the full amount
	// is still due.
	FeeRecordBalanceDue *float64 `gorm:"column:fee_record_balance_due;check:fee_record_balance_due>=0" json:"fee_record_balance_due,omitempty"`

	FeeRecordAcademicYear string `gorm:"column:fee_record_academic_year;type:varchar(12);not null;index:ix_fee_record_term,priority:1" json:"fee_record_academic_year"`
	FeeRecordSemester     string `gorm:"column:fee_record_semester;type:varchar(10);not null;index:ix_fee_record_term,priority:2" json:"fee_record_semester"`

	FeeRecordCreatedAt time.Time      `gorm:"column:fee_record_created_at;not null;default:now()" json:"fee_record_created_at"`
	FeeRecordUpdatedAt time.Time      `gorm:"column:fee_record_updated_at;not null;default:now()" json:"fee_record_updated_at"`
	FeeRecordDeletedAt gorm.DeletedAt `gorm:"column:fee_record_deleted_at;index" json:"-"`
}

func (FeeRecord) TableName() string {
	return "fee_records"
}

// OutstandingAmount is the amount still due on this row. Paid rows owe
// nothing; for the rest, balance_due wins over the full amount when set.
func (m FeeRecord) OutstandingAmount() float64 {
	if m.FeeRecordStatus == FeeStatusPaid {
		return 0
	}
	if m.FeeRecordBalanceDue != nil {
		return *m.FeeRecordBalanceDue
	}
	return m.FeeRecordAmount
}

// PaidAmount mirrors OutstandingAmount from the other side.
func (m FeeRecord) PaidAmount() float64 {
	return m.FeeRecordAmount - m.OutstandingAmount()
}

// =========================================================
// HOOKS
// =========================================================

func (m *FeeRecord) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.FeeRecordCreatedAt.IsZero() {
		m.FeeRecordCreatedAt = now
	}
	m.FeeRecordUpdatedAt = now
	return nil
}

func (m *FeeRecord) BeforeUpdate(tx *gorm.DB) error {
	m.FeeRecordUpdatedAt = time.Now()
	return nil
}
