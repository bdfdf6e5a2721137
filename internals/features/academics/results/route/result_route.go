// file: internals/features/academics/results/route/result_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultController "uniportal_backend/internals/features/academics/results/controller"
)

func ResultUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewResultController(db)

	results := r.Group("/results")
	results.Get("/", ctrl.TermResults)
	results.Get("/transcript", ctrl.Transcript)
}
