// file: internals/features/finance/payments/dto/payment_dto.go
package dto

import (
	"time"

	paymentModel "uniportal_backend/internals/features/finance/payments/model"
)

type CheckoutRequest struct {
	FeeRecordID string   `json:"fee_record_id" validate:"required,uuid4"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
}

type PaymentResponse struct {
	PaymentID   string     `json:"payment_id"`
	FeeRecordID string     `json:"fee_record_id"`
	OrderID     string     `json:"order_id"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	SnapToken   *string    `json:"snap_token,omitempty"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToPaymentResponse(m *paymentModel.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   m.PaymentID.String(),
		FeeRecordID: m.PaymentFeeRecordID.String(),
		OrderID:     m.PaymentOrderID,
		Amount:      m.PaymentAmount,
		Status:      string(m.PaymentStatus),
		SnapToken:   m.PaymentSnapToken,
		PaidAt:      m.PaymentPaidAt,
		CreatedAt:   m.PaymentCreatedAt,
	}
}
