// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uniportal_backend/internals/constants"
	"uniportal_backend/internals/middlewares"
	authMiddleware "uniportal_backend/internals/middlewares/auth"
	routeDetails "uniportal_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middlewares.DBMiddleware(db))

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	public := app.Group("/api")
	routeDetails.AuthPublicRoutes(public, db)
	routeDetails.FinanceWebhookRoutes(public, db)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up PRIVATE routes...")
	private := app.Group("/api", authMiddleware.AuthMiddleware(db))
	routeDetails.AuthProtectedRoutes(private, db)

	// ===================== PRIVATE (STUDENT ONLY) =====================
	log.Println("[INFO] Setting up STUDENT routes...")
	student := private.Group("",
		authMiddleware.OnlyRoles(constants.RoleErrorStudent("the student portal"), constants.RoleStudent))
	routeDetails.AcademicRoutes(student, db)
	routeDetails.FinanceRoutes(student, db)
	routeDetails.HomeRoutes(student, db)
}
