// file: internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/features/academics/attendance/dto"
	attendanceModel "uniportal_backend/internals/features/academics/attendance/model"
	helper "uniportal_backend/internals/helpers"
)

const dateLayout = "2006-01-02"

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// parseRange reads ?from= and ?to= (YYYY-MM-DD); defaults to the last 90
// days ending today.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -90)
	to := now

	if raw := strings.TrimSpace(c.Query("from")); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if raw := strings.TrimSpace(c.Query("to")); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}

/* ====================== LISTING ====================== */

func (ctrl *AttendanceController) ListRecords(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dates must be YYYY-MM-DD")
	}

	p := helper.ParseFiber(c, "date", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"date":   "attendance_record_date",
		"status": "attendance_record_status",
	}
	orderClause, err := p.SafeOrderClause(allowed, "date")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid sort key")
	}
	orderExpr := strings.TrimPrefix(orderClause, "ORDER BY ")

	base := ctrl.DB.Model(&attendanceModel.AttendanceRecord{}).
		Where("attendance_record_student_id = ? AND attendance_record_date BETWEEN ? AND ?", studentID, from, to).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] attendance count failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	var rows []attendanceModel.AttendanceRecord
	if err := base.Order(orderExpr).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		log.Printf("[ERROR] attendance query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	out := make([]dto.AttendanceRecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAttendanceRecordResponse(&rows[i]))
	}
	return helper.JsonList(c, "OK", out, helper.BuildMeta(total, p))
}

/* ====================== SUMMARY ====================== */

func (ctrl *AttendanceController) Summary(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	from, to, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Dates must be YYYY-MM-DD")
	}

	var rows []attendanceModel.AttendanceRecord
	if err := ctrl.DB.
		Where("attendance_record_student_id = ? AND attendance_record_date BETWEEN ? AND ?", studentID, from, to).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] attendance summary query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance summary")
	}

	summary := dto.AttendanceSummaryResponse{From: from, To: to, TotalCount: len(rows)}
	for _, r := range rows {
		switch r.AttendanceRecordStatus {
		case attendanceModel.AttendanceStatusPresent:
			summary.PresentCount++
		case attendanceModel.AttendanceStatusAbsent:
			summary.AbsentCount++
		case attendanceModel.AttendanceStatusExcused:
			summary.ExcusedCount++
		}
	}
	if summary.TotalCount > 0 {
		summary.Percentage = int(math.Round(float64(summary.PresentCount) / float64(summary.TotalCount) * 100))
	}
	return helper.JsonOK(c, "OK", summary)
}
