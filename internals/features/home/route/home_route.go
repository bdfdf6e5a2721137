// file: internals/features/home/route/home_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeController "uniportal_backend/internals/features/home/controller"
)

func HomeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := homeController.NewDashboardController(db)

	home := r.Group("/home")
	home.Get("/dashboard", ctrl.Summary)
}
