// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "uniportal_backend/internals/features/users/user/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Get("/profile", ctrl.GetProfile)
	users.Put("/profile", ctrl.UpdateProfile)
	users.Post("/avatar", ctrl.UploadAvatar)
}
