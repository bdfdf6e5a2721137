// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "uniportal_backend/internals/features/users/auth/controller"
	"uniportal_backend/internals/middlewares"
)

// AuthPublicRoutes mounts the endpoints reachable without a token.
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	auth.Post("/refresh", ctrl.Refresh)
}

// AuthProtectedRoutes mounts the endpoints that require a valid session.
func AuthProtectedRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me", ctrl.Me)
}
