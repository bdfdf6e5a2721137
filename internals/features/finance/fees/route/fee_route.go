// file: internals/features/finance/fees/route/fee_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "uniportal_backend/internals/features/finance/fees/controller"
)

func FeeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := feeController.NewFeeController(db)

	fees := r.Group("/fees")
	fees.Get("/statement", ctrl.Statement)
}
