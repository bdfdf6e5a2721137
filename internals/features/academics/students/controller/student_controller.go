// file: internals/features/academics/students/controller/student_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/features/academics/students/dto"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	helper "uniportal_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GetMe returns the academic record of the signed-in student.
func (ctrl *StudentController) GetMe(c *fiber.Ctx) error {
	studentID := helper.GetStudentUUID(c)
	if studentID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusForbidden, "No student profile linked to this account")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student record not found")
	}
	return helper.JsonOK(c, "OK", dto.ToStudentResponse(&st))
}
