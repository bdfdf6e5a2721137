// file: internals/features/finance/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// =========================================================
// ENUM — payment status
// =========================================================

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// =========================================================
// MODEL — gateway payment against a fee record
// =========================================================

type Payment struct {
	// PK
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`

	// FK → students(student_id)
	PaymentStudentID uuid.UUID `gorm:"column:payment_student_id;type:uuid;not null;index" json:"payment_student_id"`

	// FK → fee_records(fee_record_id)
	PaymentFeeRecordID uuid.UUID `gorm:"column:payment_fee_record_id;type:uuid;not null;index" json:"payment_fee_record_id"`

	// Gateway order reference, e.g. "FEE-<uuid>"
	PaymentOrderID string `gorm:"column:payment_order_id;type:varchar(64);not null;uniqueIndex" json:"payment_order_id"`

	PaymentAmount float64       `gorm:"column:payment_amount;not null;check:payment_amount>0" json:"payment_amount"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`

	// Snap token handed to the client app
	PaymentSnapToken *string `gorm:"column:payment_snap_token;type:varchar(128)" json:"payment_snap_token,omitempty"`

	PaymentPaidAt    *time.Time     `gorm:"column:payment_paid_at" json:"payment_paid_at,omitempty"`
	PaymentCreatedAt time.Time      `gorm:"column:payment_created_at;not null;default:now()" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"column:payment_updated_at;not null;default:now()" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

func (m *Payment) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if m.PaymentCreatedAt.IsZero() {
		m.PaymentCreatedAt = now
	}
	m.PaymentUpdatedAt = now
	return nil
}

func (m *Payment) BeforeUpdate(tx *gorm.DB) error {
	m.PaymentUpdatedAt = time.Now()
	return nil
}
