// file: internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"crypto/sha256"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "uniportal_backend/internals/features/academics/students/model"
	authModel "uniportal_backend/internals/features/users/auth/model"
	userModel "uniportal_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmailOrUsername(db *gorm.DB, identifier string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("email = ? OR user_name = ?", identifier, identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

/* ====================== STUDENT LINK ====================== */

// FindStudentByUserID resolves the student record bound to an account; the
// student id goes into the JWT claims so screens never guess identity.
func FindStudentByUserID(db *gorm.DB, userID uuid.UUID) (*studentModel.Student, error) {
	var st studentModel.Student
	if err := db.First(&st, "student_user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

/* ====================== TOKENS ====================== */

func HashRefreshToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return sum[:]
}

func StoreRefreshToken(db *gorm.DB, rt *authModel.RefreshToken) error {
	return db.Create(rt).Error
}

func FindActiveRefreshToken(db *gorm.DB, userID uuid.UUID, token string) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.Where("user_id = ? AND token_hash = ? AND revoked_at IS NULL AND expires_at > ?",
		userID, HashRefreshToken(token), time.Now()).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshToken(db *gorm.DB, id uuid.UUID) error {
	now := time.Now()
	return db.Model(&authModel.RefreshToken{}).
		Where("id = ?", id).
		Update("revoked_at", &now).Error
}

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	return db.Create(&authModel.TokenBlacklist{Token: token, ExpiredAt: expiredAt}).Error
}
