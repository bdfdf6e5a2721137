// file: internals/features/academics/exams/controller/exam_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examDTO "uniportal_backend/internals/features/academics/exams/dto"
	examModel "uniportal_backend/internals/features/academics/exams/model"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	clearanceRepo "uniportal_backend/internals/features/clearance/repository"
	clearanceService "uniportal_backend/internals/features/clearance/service"
	helper "uniportal_backend/internals/helpers"
)

type ExamController struct {
	DB        *gorm.DB
	Evaluator *clearanceService.Evaluator
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{
		DB:        db,
		Evaluator: clearanceService.NewEvaluator(clearanceRepo.NewGormStore(db)),
	}
}

/* ====================== TIMETABLE ====================== */

// Timetable lists the exams for the student's registered units this term,
// with the cached clearance verdict attached.
func (ctrl *ExamController) Timetable(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}

	var exams []examModel.Exam
	if err := ctrl.DB.
		Where("exam_academic_year = ? AND exam_semester = ?", st.StudentAcademicYear, st.StudentSemester).
		Where("exam_course_id IN (?)", ctrl.DB.
			Table("course_registrations").
			Select("course_registration_course_id").
			Where("course_registration_student_id = ? AND course_registration_deleted_at IS NULL", studentID)).
		Order("exam_start ASC").
		Find(&exams).Error; err != nil {
		log.Printf("[ERROR] exam timetable query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load exam timetable")
	}

	resp := examDTO.TimetableResponse{Exams: make([]examDTO.ExamResponse, 0, len(exams))}
	for i := range exams {
		resp.Exams = append(resp.Exams, examDTO.ToExamResponse(&exams[i]))
	}

	// Cache-only, the timetable never triggers a fresh evaluation.
	quick, err := ctrl.Evaluator.QuickCheck(c.UserContext(), studentID)
	if err != nil {
		log.Printf("[ERROR] clearance quick check failed: %v", err)
	} else {
		resp.Clearance = examDTO.ClearanceSummary{
			Cached:            quick.Cached,
			OverallCleared:    quick.OverallCleared,
			FinancialCleared:  quick.FinancialCleared,
			AttendanceCleared: quick.AttendanceCleared,
			Notes:             quick.Notes,
		}
	}
	return helper.JsonOK(c, "OK", resp)
}

/* ====================== ENTRY PERMIT ====================== */

// EntryPermit decides whether the student may sit one exam. A cached cleared
// verdict is accepted as-is; with no cache the full evaluation runs.
func (ctrl *ExamController) EntryPermit(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	examID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam id")
	}

	var exam examModel.Exam
	if err := ctrl.DB.First(&exam, "exam_id = ?", examID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam not found")
		}
		log.Printf("[ERROR] exam lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check exam entry")
	}

	quick, err := ctrl.Evaluator.QuickCheck(c.UserContext(), studentID)
	if err != nil {
		if errors.Is(err, clearanceService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		log.Printf("[ERROR] clearance quick check failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check exam entry")
	}

	overall := quick.OverallCleared
	notes := quick.Notes
	if !quick.Cached {
		verdict, err := ctrl.Evaluator.Evaluate(c.UserContext(), studentID, exam.ExamAcademicYear, exam.ExamSemester)
		if err != nil {
			if errors.Is(err, clearanceService.ErrStudentNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
			}
			log.Printf("[ERROR] clearance evaluation failed: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check exam entry")
		}
		overall = verdict.OverallCleared
		notes = verdict.Financial.Notes
		if !verdict.Attendance.Cleared {
			notes = verdict.Attendance.Notes
		}
	}

	return helper.JsonOK(c, "OK", examDTO.EntryPermitResponse{
		ExamID:         exam.ExamID.String(),
		Permitted:      overall,
		OverallCleared: overall,
		Notes:          notes,
	})
}
