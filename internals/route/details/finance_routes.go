// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeRoute "uniportal_backend/internals/features/finance/fees/route"
	paymentRoute "uniportal_backend/internals/features/finance/payments/route"
)

// FinanceRoutes mounts the fee statement and payment checkout endpoints.
func FinanceRoutes(api fiber.Router, db *gorm.DB) {
	feeRoute.FeeUserRoutes(api, db)
	paymentRoute.PaymentUserRoutes(api, db)
}

// FinanceWebhookRoutes mounts the gateway callback on the public group.
func FinanceWebhookRoutes(api fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentWebhookRoutes(api, db)
}
