// file: internals/features/clearance/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uniportal_backend/internals/features/clearance/controller"
	"uniportal_backend/internals/middlewares"
)

// ClearanceUserRoutes mounts the student-facing clearance endpoints on an
// authenticated group.
func ClearanceUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewClearanceController(db)

	grp := r.Group("/clearance")
	grp.Post("/evaluate", middlewares.EvaluateRateLimiter(), ctl.Evaluate)
	grp.Get("/status", ctl.Status)
	grp.Get("/assignment-access", ctl.AssignmentAccess)
	grp.Get("/debug/attendance", ctl.DebugAttendance)
}
