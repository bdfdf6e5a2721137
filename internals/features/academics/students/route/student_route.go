// file: internals/features/academics/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "uniportal_backend/internals/features/academics/students/controller"
)

func StudentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/me", ctrl.GetMe)
}
