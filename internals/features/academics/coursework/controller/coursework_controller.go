// file: internals/features/academics/coursework/controller/coursework_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"uniportal_backend/internals/features/academics/coursework/dto"
	courseworkModel "uniportal_backend/internals/features/academics/coursework/model"
	clearanceRepo "uniportal_backend/internals/features/clearance/repository"
	clearanceService "uniportal_backend/internals/features/clearance/service"
	helper "uniportal_backend/internals/helpers"
)

var validate = validator.New()

type CourseworkController struct {
	DB        *gorm.DB
	Evaluator *clearanceService.Evaluator
}

func NewCourseworkController(db *gorm.DB) *CourseworkController {
	return &CourseworkController{
		DB:        db,
		Evaluator: clearanceService.NewEvaluator(clearanceRepo.NewGormStore(db)),
	}
}

/* ====================== LISTING ====================== */

// ListAssignments returns the open coursework for every unit the student is
// registered on this term, flagging the ones already handed in.
func (ctrl *CourseworkController) ListAssignments(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var assignments []courseworkModel.Assignment
	if err := ctrl.DB.
		Where("assignment_course_id IN (?)", ctrl.DB.
			Table("course_registrations").
			Select("course_registration_course_id").
			Where("course_registration_student_id = ? AND course_registration_deleted_at IS NULL", studentID)).
		Order("assignment_due_at ASC").
		Find(&assignments).Error; err != nil {
		log.Printf("[ERROR] assignment query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load assignments")
	}

	submitted := map[uuid.UUID]bool{}
	var subs []courseworkModel.Submission
	if err := ctrl.DB.Select("submission_assignment_id").
		Where("submission_student_id = ?", studentID).
		Find(&subs).Error; err == nil {
		for _, s := range subs {
			submitted[s.SubmissionAssignmentID] = true
		}
	}

	out := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		out = append(out, dto.ToAssignmentResponse(&assignments[i], submitted[assignments[i].AssignmentID]))
	}
	return helper.JsonOK(c, "OK", out)
}

/* ====================== SUBMISSION ====================== */

// Submit hands in coursework. The tuition gate runs first: students below
// the half-paid line are turned away before anything is written.
func (ctrl *CourseworkController) Submit(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	assignmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var req dto.SubmitAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	access, err := ctrl.Evaluator.CheckAssignmentAccessOnly(c.UserContext(), studentID)
	if err != nil {
		if errors.Is(err, clearanceService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		log.Printf("[ERROR] assignment access check failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify assignment access")
	}
	if !access.HasAccess {
		return helper.JsonError(c, fiber.StatusForbidden, access.Notes)
	}

	var assignment courseworkModel.Assignment
	if err := ctrl.DB.First(&assignment, "assignment_id = ?", assignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		log.Printf("[ERROR] assignment lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit")
	}
	if time.Now().After(assignment.AssignmentDueAt) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Assignment deadline has passed")
	}

	// Resubmission replaces the previous answer and clears any score.
	sub := courseworkModel.Submission{
		SubmissionAssignmentID: assignmentID,
		SubmissionStudentID:    studentID,
		SubmissionContent:      req.Content,
		SubmissionSubmittedAt:  time.Now(),
	}
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "submission_assignment_id"},
			{Name: "submission_student_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"submission_content",
			"submission_score",
			"submission_submitted_at",
			"submission_updated_at",
		}),
	}).Create(&sub).Error; err != nil {
		log.Printf("[ERROR] submission upsert failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit")
	}

	return helper.JsonCreated(c, "Submission received", dto.ToSubmissionResponse(&sub))
}

// GetSubmission returns the student's own submission for one assignment.
func (ctrl *CourseworkController) GetSubmission(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	assignmentID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid assignment id")
	}

	var sub courseworkModel.Submission
	if err := ctrl.DB.
		First(&sub, "submission_assignment_id = ? AND submission_student_id = ?", assignmentID, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No submission yet")
		}
		log.Printf("[ERROR] submission lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load submission")
	}
	return helper.JsonOK(c, "OK", dto.ToSubmissionResponse(&sub))
}
