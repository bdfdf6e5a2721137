// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uniportal_backend/internals/constants"
	studentModel "uniportal_backend/internals/features/academics/students/model"
	"uniportal_backend/internals/features/users/user/dto"
	userModel "uniportal_backend/internals/features/users/user/model"
	helper "uniportal_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == constants.DummyUserID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonOK(c, "OK", dto.ToUserResponse(&user))
}

func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == constants.DummyUserID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if strings.TrimSpace(req.UserName) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	user.UserName = strings.TrimSpace(req.UserName)
	if err := ctrl.DB.Save(&user).Error; err != nil {
		log.Printf("[ERROR] failed to update profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}
	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(&user))
}

// UploadAvatar accepts a JPEG/PNG form file, converts it to WebP and stores
// the path on the linked student row.
func (ctrl *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == constants.DummyUserID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Avatar file is required")
	}

	var st studentModel.Student
	if err := ctrl.DB.First(&st, "student_user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "No student profile linked to this account")
	}

	path, err := helper.SaveAvatarWebP(fileHeader)
	if err != nil {
		log.Printf("[ERROR] avatar conversion failed: %v", err)
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Could not process the image")
	}

	st.StudentAvatarURL = &path
	if err := ctrl.DB.Save(&st).Error; err != nil {
		log.Printf("[ERROR] failed to store avatar path: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save avatar")
	}
	return helper.JsonUpdated(c, "Avatar updated", fiber.Map{"avatar_url": path})
}
