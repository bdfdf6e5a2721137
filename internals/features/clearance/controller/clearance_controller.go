// file: internals/features/clearance/controller/clearance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/features/clearance/dto"
	"uniportal_backend/internals/features/clearance/repository"
	"uniportal_backend/internals/features/clearance/service"
	helper "uniportal_backend/internals/helpers"
)

var validate = validator.New()

type ClearanceController struct {
	Evaluator *service.Evaluator
}

func NewClearanceController(db *gorm.DB) *ClearanceController {
	return &ClearanceController{
		Evaluator: service.NewEvaluator(repository.NewGormStore(db)),
	}
}

// -----------------------------------------
// Evaluate (POST /clearance/evaluate)
// Body (optional): { academic_year, semester }
// Recomputes all gates and refreshes the cached verdict.
// -----------------------------------------
func (ctl *ClearanceController) Evaluate(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Only student accounts can run a clearance check")
	}

	var req dto.EvaluateRequestDTO
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return helper.JsonValidationError(c, err)
		}
	}

	verdict, err := ctl.Evaluator.Evaluate(c.UserContext(), studentID, req.AcademicYear, req.Semester)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "clearance evaluated", dto.ToVerdictResponse(verdict))
}

// -----------------------------------------
// Status (GET /clearance/status)
// Cache-only quick check; never recomputes.
// -----------------------------------------
func (ctl *ClearanceController) Status(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Only student accounts have a clearance status")
	}

	qv, err := ctl.Evaluator.QuickCheck(c.UserContext(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "clearance status", qv)
}

// -----------------------------------------
// AssignmentAccess (GET /clearance/assignment-access)
// Prefers the cached flag; falls back to a full evaluation.
// -----------------------------------------
func (ctl *ClearanceController) AssignmentAccess(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Only student accounts can check assignment access")
	}

	av, err := ctl.Evaluator.CheckAssignmentAccessOnly(c.UserContext(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "assignment access", av)
}

// -----------------------------------------
// DebugAttendance (GET /clearance/debug/attendance)
// Diagnostic only; raw in-window rows + the computed percentage.
// -----------------------------------------
func (ctl *ClearanceController) DebugAttendance(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Only student accounts can audit attendance")
	}

	audit, err := ctl.Evaluator.DebugAttendance(c.UserContext(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "attendance audit", audit)
}
