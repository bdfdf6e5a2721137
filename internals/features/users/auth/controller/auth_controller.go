// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"uniportal_backend/internals/constants"
	"uniportal_backend/internals/features/users/auth/dto"
	authModel "uniportal_backend/internals/features/users/auth/model"
	authRepo "uniportal_backend/internals/features/users/auth/repository"
	authService "uniportal_backend/internals/features/users/auth/service"
	helper "uniportal_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ====================== LOGIN ====================== */

// Login authenticates by email or username plus password and issues the
// access/refresh token pair.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmailOrUsername(ctrl.DB, strings.TrimSpace(req.Identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] login lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := authService.CheckPassword(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	return ctrl.issueTokens(c, user.ID, user.Role, user.UserName)
}

/* ====================== GOOGLE SIGN-IN ====================== */

// GoogleLogin verifies a Google ID token and signs the matching account in.
// Unknown Google accounts are rejected; the registry office provisions users.
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	profile, err := authService.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		log.Printf("[ERROR] google token verification failed: %v", err)
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}

	user, err := authRepo.FindUserByGoogleID(ctrl.DB, profile.GoogleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Fall back to the verified email so first Google sign-in links the account.
		user, err = authRepo.FindUserByEmailOrUsername(ctrl.DB, profile.Email)
		if err == nil && user.GoogleID == nil {
			if uerr := ctrl.DB.Model(user).Update("google_id", profile.GoogleID).Error; uerr != nil {
				log.Printf("[ERROR] failed to link google id: %v", uerr)
			}
		}
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusForbidden, "No account registered for this Google identity")
		}
		log.Printf("[ERROR] google login lookup failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	return ctrl.issueTokens(c, user.ID, user.Role, user.UserName)
}

/* ====================== REFRESH ====================== */

func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	userID, opaque, err := authService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	stored, err := authRepo.FindActiveRefreshToken(ctrl.DB, userID, opaque)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token expired or revoked")
	}
	// One-time use. The old row is revoked before new tokens go out.
	if err := authRepo.RevokeRefreshToken(ctrl.DB, stored.ID); err != nil {
		log.Printf("[ERROR] failed to revoke refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to refresh session")
	}

	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account no longer exists")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}

	return ctrl.issueTokens(c, user.ID, user.Role, user.UserName)
}

/* ====================== LOGOUT ====================== */

// Logout blacklists the presented access token until its natural expiry.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing bearer token")
	}
	token := strings.TrimSpace(parts[1])

	expiredAt := authService.AccessTokenExpiry(token)
	if err := authRepo.BlacklistToken(ctrl.DB, token, expiredAt); err != nil {
		log.Printf("[ERROR] failed to blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log out")
	}

	// Best effort revoke of the account's outstanding refresh tokens.
	if userID := helper.GetUserUUID(c); userID != constants.DummyUserID {
		now := time.Now()
		if err := ctrl.DB.Model(&authModel.RefreshToken{}).
			Where("user_id = ? AND revoked_at IS NULL", userID).
			Update("revoked_at", &now).Error; err != nil {
			log.Printf("[ERROR] failed to revoke refresh tokens on logout: %v", err)
		}
	}

	return helper.JsonOK(c, "Logged out", nil)
}

/* ====================== ME ====================== */

func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	if userID == constants.DummyUserID {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	resp := dto.MeResponse{
		ID:       user.ID.String(),
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role,
	}
	if st, err := authRepo.FindStudentByUserID(ctrl.DB, user.ID); err == nil {
		sid := st.StudentID.String()
		resp.StudentID = &sid
	}
	return helper.JsonOK(c, "OK", resp)
}

/* ====================== INTERNAL ====================== */

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, userID uuid.UUID, role, userName string) error {
	claims := authService.TokenClaims{UserID: userID, Role: role, UserName: userName}
	if st, err := authRepo.FindStudentByUserID(ctrl.DB, userID); err == nil {
		sid := st.StudentID
		claims.StudentID = &sid
	}

	accessToken, err := authService.GenerateAccessToken(claims)
	if err != nil {
		log.Printf("[ERROR] failed to sign access token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}

	opaque, signed, err := authService.GenerateRefreshToken(userID)
	if err != nil {
		log.Printf("[ERROR] failed to generate refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}
	ua, ip := c.Get("User-Agent"), c.IP()
	rt := &authModel.RefreshToken{
		UserID:    userID,
		TokenHash: authRepo.HashRefreshToken(opaque),
		ExpiresAt: time.Now().Add(authService.RefreshTokenTTL),
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := authRepo.StoreRefreshToken(ctrl.DB, rt); err != nil {
		log.Printf("[ERROR] failed to persist refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to sign in")
	}

	return helper.JsonOK(c, "Signed in", dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: signed,
		TokenType:    "Bearer",
		ExpiresIn:    int(authService.AccessTokenTTL.Seconds()),
	})
}
