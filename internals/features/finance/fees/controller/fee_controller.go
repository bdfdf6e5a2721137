// file: internals/features/finance/fees/controller/fee_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "uniportal_backend/internals/features/academics/students/model"
	"uniportal_backend/internals/features/finance/fees/dto"
	feeModel "uniportal_backend/internals/features/finance/fees/model"
	helper "uniportal_backend/internals/helpers"
)

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

// Statement returns the fee rows for one term with billed/paid/outstanding
// totals. ?academic_year= and ?semester= default to the student's current
// term; the whole year is returned when only the year is given.
func (ctrl *FeeController) Statement(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}

	year := strings.TrimSpace(c.Query("academic_year"))
	if year == "" {
		year = st.StudentAcademicYear
	}
	sem := strings.TrimSpace(c.Query("semester"))

	q := ctrl.DB.
		Where("fee_record_student_id = ? AND fee_record_academic_year = ?", studentID, year)
	if sem != "" {
		q = q.Where("fee_record_semester = ?", sem)
	}

	var rows []feeModel.FeeRecord
	if err := q.Order("fee_record_created_at ASC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] fee statement query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load fee statement")
	}

	resp := dto.StatementResponse{
		AcademicYear: year,
		Semester:     sem,
		Records:      make([]dto.FeeRecordResponse, 0, len(rows)),
	}
	for i := range rows {
		resp.Records = append(resp.Records, dto.ToFeeRecordResponse(&rows[i]))
		resp.TotalBilled += rows[i].FeeRecordAmount
		resp.TotalPaid += rows[i].PaidAmount()
		resp.TotalOutstanding += rows[i].OutstandingAmount()
	}
	return helper.JsonOK(c, "OK", resp)
}
