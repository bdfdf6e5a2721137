// file: internals/features/finance/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "uniportal_backend/internals/features/finance/payments/controller"
)

// PaymentUserRoutes carries the authenticated checkout and history routes.
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/checkout", ctrl.Checkout)
	payments.Get("/", ctrl.ListMine)
}

// PaymentWebhookRoutes carries the gateway callback; it rides behind the
// auth middleware skip list, not behind a token.
func PaymentWebhookRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	r.Post("/payments/notification", ctrl.HandleNotification)
}
