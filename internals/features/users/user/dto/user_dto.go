// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	userModel "uniportal_backend/internals/features/users/user/model"
)

type UpdateProfileRequest struct {
	UserName string `json:"user_name" validate:"omitempty,min=3,max=50"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
