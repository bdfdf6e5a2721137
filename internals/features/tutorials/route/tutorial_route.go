// file: internals/features/tutorials/route/tutorial_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorialController "uniportal_backend/internals/features/tutorials/controller"
)

func TutorialRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tutorialController.NewTutorialController(db)

	tutorials := r.Group("/tutorials")
	tutorials.Get("/", ctrl.List)
}
