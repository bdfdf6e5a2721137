// file: internals/features/tutorials/controller/tutorial_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tutorialModel "uniportal_backend/internals/features/tutorials/model"
	helper "uniportal_backend/internals/helpers"
)

type TutorialController struct {
	DB *gorm.DB
}

func NewTutorialController(db *gorm.DB) *TutorialController {
	return &TutorialController{DB: db}
}

func (ctrl *TutorialController) List(c *fiber.Ctx) error {
	var rows []tutorialModel.TutorialVideo
	if err := ctrl.DB.Order("tutorial_video_order ASC, tutorial_video_created_at ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] tutorial query failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tutorials")
	}
	return helper.JsonOK(c, "OK", rows)
}
