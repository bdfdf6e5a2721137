// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "uniportal_backend/internals/features/academics/students/model"
	feeModel "uniportal_backend/internals/features/finance/fees/model"
	"uniportal_backend/internals/features/finance/payments/dto"
	paymentModel "uniportal_backend/internals/features/finance/payments/model"
	paymentService "uniportal_backend/internals/features/finance/payments/service"
	userModel "uniportal_backend/internals/features/users/user/model"
	helper "uniportal_backend/internals/helpers"
)

var validate = validator.New()

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ====================== CHECKOUT ====================== */

// Checkout opens a gateway payment against one fee record. Amount defaults
// to the outstanding balance and may not exceed it.
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	feeRecordID, err := uuid.Parse(req.FeeRecordID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid fee record id")
	}

	var fee feeModel.FeeRecord
	if err := ctrl.DB.First(&fee, "fee_record_id = ? AND fee_record_student_id = ?", feeRecordID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
		}
		log.Printf("[ERROR] fee lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open payment")
	}

	outstanding := fee.OutstandingAmount()
	if outstanding <= 0 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Fee record is already settled")
	}
	amount := outstanding
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount > outstanding {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			fmt.Sprintf("Amount exceeds outstanding balance of %.2f", outstanding))
	}

	payerName, payerEmail := ctrl.payerDetails(studentID)

	payment := paymentModel.Payment{
		PaymentStudentID:   studentID,
		PaymentFeeRecordID: fee.FeeRecordID,
		PaymentOrderID:     fmt.Sprintf("FEE-%s", uuid.New().String()),
		PaymentAmount:      amount,
		PaymentStatus:      paymentModel.PaymentStatusPending,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Printf("[ERROR] payment insert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to open payment")
	}

	token, err := paymentService.GenerateSnapToken(payment, payerName, payerEmail)
	if err != nil {
		log.Printf("[ERROR] snap token generation failed: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway is unavailable")
	}
	payment.PaymentSnapToken = &token
	if err := ctrl.DB.Model(&payment).Update("payment_snap_token", token).Error; err != nil {
		log.Printf("[ERROR] failed to store snap token: %v", err)
	}

	return helper.JsonCreated(c, "Payment opened", dto.ToPaymentResponse(&payment))
}

// ListMine returns the student's payment history, newest first.
func (ctrl *PaymentController) ListMine(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var rows []paymentModel.Payment
	if err := ctrl.DB.Where("payment_student_id = ?", studentID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] payment history query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payments")
	}

	out := make([]dto.PaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToPaymentResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* ====================== WEBHOOK ====================== */

// HandleNotification receives the gateway's server-to-server status push.
// Settled payments are applied to the fee record inside one transaction.
func (ctrl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification body")
	}
	orderID, _ := body["order_id"].(string)
	txStatus, _ := body["transaction_status"].(string)
	if orderID == "" || txStatus == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing order_id or transaction_status")
	}

	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signatureKey, _ := body["signature_key"].(string)
	if !paymentService.VerifyNotificationSignature(orderID, statusCode, grossAmount, signatureKey) {
		log.Printf("[ERROR] payment notification signature mismatch order=%s", orderID)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid notification signature")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var payment paymentModel.Payment
		if err := tx.First(&payment, "payment_order_id = ?", orderID).Error; err != nil {
			return err
		}
		// Replayed notifications for finished payments are acknowledged as-is.
		if payment.PaymentStatus != paymentModel.PaymentStatusPending {
			return nil
		}

		switch txStatus {
		case "settlement", "capture":
			now := time.Now()
			payment.PaymentStatus = paymentModel.PaymentStatusCompleted
			payment.PaymentPaidAt = &now
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}
			return applyToFeeRecord(tx, &payment)
		case "deny", "cancel", "expire", "failure":
			payment.PaymentStatus = paymentModel.PaymentStatusFailed
			return tx.Save(&payment).Error
		default:
			// pending and in-flight statuses, nothing to apply yet
			return nil
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unknown order")
		}
		log.Printf("[ERROR] payment notification failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to process notification")
	}
	return helper.JsonOK(c, "OK", nil)
}

// applyToFeeRecord reduces the fee row's balance by the settled amount and
// flips its status when it reaches zero.
func applyToFeeRecord(tx *gorm.DB, payment *paymentModel.Payment) error {
	var fee feeModel.FeeRecord
	if err := tx.First(&fee, "fee_record_id = ?", payment.PaymentFeeRecordID).Error; err != nil {
		return err
	}

	remaining := fee.OutstandingAmount() - payment.PaymentAmount
	if remaining < 0 {
		remaining = 0
	}
	fee.FeeRecordBalanceDue = &remaining
	if remaining == 0 {
		fee.FeeRecordStatus = feeModel.FeeStatusPaid
	} else {
		fee.FeeRecordStatus = feeModel.FeeStatusPartial
	}
	return tx.Save(&fee).Error
}

/* ====================== INTERNAL ====================== */

func (ctrl *PaymentController) payerDetails(studentID uuid.UUID) (name, email string) {
	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return "Student", ""
	}
	name = st.StudentFullName
	if st.StudentUserID != nil {
		var user userModel.UserModel
		if err := ctrl.DB.First(&user, "id = ?", *st.StudentUserID).Error; err == nil {
			email = user.Email
		}
	}
	return name, email
}
