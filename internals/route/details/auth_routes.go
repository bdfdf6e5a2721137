// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "uniportal_backend/internals/features/users/auth/route"
	userRoute "uniportal_backend/internals/features/users/user/route"
)

// AuthPublicRoutes mounts login, Google sign-in and refresh under /api.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthPublicRoutes(api, db)
}

// AuthProtectedRoutes mounts the session and profile endpoints that ride
// behind the auth middleware.
func AuthProtectedRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthProtectedRoutes(api, db)
	userRoute.UserRoutes(api, db)
}
