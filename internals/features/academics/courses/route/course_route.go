// file: internals/features/academics/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "uniportal_backend/internals/features/academics/courses/controller"
)

func CourseUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := r.Group("/courses")
	courses.Get("/catalog", ctrl.ListCatalog)
	courses.Get("/registered", ctrl.ListRegistered)
	courses.Post("/register", ctrl.Register)
}
