// file: internals/features/home/controller/dashboard_controller.go
package controller

import (
	"log"
	"math"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "uniportal_backend/internals/features/academics/attendance/model"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	clearanceRepo "uniportal_backend/internals/features/clearance/repository"
	clearanceService "uniportal_backend/internals/features/clearance/service"
	feeModel "uniportal_backend/internals/features/finance/fees/model"
	helper "uniportal_backend/internals/helpers"
)

type DashboardController struct {
	DB        *gorm.DB
	Evaluator *clearanceService.Evaluator
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{
		DB:        db,
		Evaluator: clearanceService.NewEvaluator(clearanceRepo.NewGormStore(db)),
	}
}

// DashboardResponse is the single payload behind the app's landing screen.
type DashboardResponse struct {
	StudentName        string  `json:"student_name"`
	RegNumber          string  `json:"reg_number"`
	AcademicYear       string  `json:"academic_year"`
	Semester           string  `json:"semester"`
	RegisteredUnits    int64   `json:"registered_units"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	AttendancePercent  int     `json:"attendance_percent"`
	ClearanceCached    bool    `json:"clearance_cached"`
	OverallCleared     bool    `json:"overall_cleared"`
	ClearanceNotes     string  `json:"clearance_notes"`
}

// Summary aggregates the dashboard widgets in one round trip. Clearance is
// read from cache only; the landing screen never triggers an evaluation.
func (ctrl *DashboardController) Summary(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}

	resp := DashboardResponse{
		StudentName:  st.StudentFullName,
		RegNumber:    st.StudentRegNumber,
		AcademicYear: st.StudentAcademicYear,
		Semester:     st.StudentSemester,
	}

	if err := ctrl.DB.Table("course_registrations").
		Where("course_registration_student_id = ? AND course_registration_academic_year = ? AND course_registration_semester = ? AND course_registration_deleted_at IS NULL",
			studentID, st.StudentAcademicYear, st.StudentSemester).
		Count(&resp.RegisteredUnits).Error; err != nil {
		log.Printf("[ERROR] dashboard unit count failed: %v", err)
	}

	var fees []feeModel.FeeRecord
	if err := ctrl.DB.
		Where("fee_record_student_id = ? AND fee_record_academic_year = ?", studentID, st.StudentAcademicYear).
		Find(&fees).Error; err != nil {
		log.Printf("[ERROR] dashboard fee query failed: %v", err)
	}
	for _, f := range fees {
		resp.OutstandingBalance += f.OutstandingAmount()
	}

	var present, total int64
	base := ctrl.DB.Model(&attendanceModel.AttendanceRecord{}).
		Where("attendance_record_student_id = ?", studentID).
		Session(&gorm.Session{})
	if err := base.Count(&total).Error; err != nil {
		log.Printf("[ERROR] dashboard attendance count failed: %v", err)
	}
	if err := base.Where("attendance_record_status = ?", attendanceModel.AttendanceStatusPresent).
		Count(&present).Error; err != nil {
		log.Printf("[ERROR] dashboard attendance count failed: %v", err)
	}
	if total > 0 {
		resp.AttendancePercent = int(math.Round(float64(present) / float64(total) * 100))
	}

	if quick, err := ctrl.Evaluator.QuickCheck(c.UserContext(), studentID); err == nil {
		resp.ClearanceCached = quick.Cached
		resp.OverallCleared = quick.OverallCleared
		resp.ClearanceNotes = quick.Notes
	} else {
		log.Printf("[ERROR] dashboard clearance check failed: %v", err)
	}

	return helper.JsonOK(c, "OK", resp)
}
