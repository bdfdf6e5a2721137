// file: internals/features/academics/exams/route/exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	examController "uniportal_backend/internals/features/academics/exams/controller"
)

func ExamUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := examController.NewExamController(db)

	exams := r.Group("/exams")
	exams.Get("/timetable", ctrl.Timetable)
	exams.Get("/:id/entry-permit", ctrl.EntryPermit)
}
