// file: internals/features/academics/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "uniportal_backend/internals/features/academics/attendance/controller"
)

func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := r.Group("/attendance")
	attendance.Get("/", ctrl.ListRecords)
	attendance.Get("/summary", ctrl.Summary)
}
