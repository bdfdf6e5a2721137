// file: internals/route/details/home_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeRoute "uniportal_backend/internals/features/home/route"
	tutorialRoute "uniportal_backend/internals/features/tutorials/route"
)

// HomeRoutes mounts the dashboard and help-centre endpoints.
func HomeRoutes(api fiber.Router, db *gorm.DB) {
	homeRoute.HomeRoutes(api, db)
	tutorialRoute.TutorialRoutes(api, db)
}
