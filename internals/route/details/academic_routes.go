// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "uniportal_backend/internals/features/academics/attendance/route"
	courseRoute "uniportal_backend/internals/features/academics/courses/route"
	courseworkRoute "uniportal_backend/internals/features/academics/coursework/route"
	examRoute "uniportal_backend/internals/features/academics/exams/route"
	resultRoute "uniportal_backend/internals/features/academics/results/route"
	studentRoute "uniportal_backend/internals/features/academics/students/route"
	clearanceRoute "uniportal_backend/internals/features/clearance/route"
)

// AcademicRoutes mounts every student-facing academic feature, clearance
// included, on the authenticated group.
func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	studentRoute.StudentUserRoutes(api, db)
	courseRoute.CourseUserRoutes(api, db)
	courseworkRoute.CourseworkUserRoutes(api, db)
	examRoute.ExamUserRoutes(api, db)
	resultRoute.ResultUserRoutes(api, db)
	attendanceRoute.AttendanceUserRoutes(api, db)
	clearanceRoute.ClearanceUserRoutes(api, db)
}
