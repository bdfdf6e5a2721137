// file: internals/features/academics/coursework/route/coursework_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseworkController "uniportal_backend/internals/features/academics/coursework/controller"
)

func CourseworkUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := courseworkController.NewCourseworkController(db)

	assignments := r.Group("/assignments")
	assignments.Get("/", ctrl.ListAssignments)
	assignments.Post("/:id/submit", ctrl.Submit)
	assignments.Get("/:id/submission", ctrl.GetSubmission)
}
