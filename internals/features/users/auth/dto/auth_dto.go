// file: internals/features/users/auth/dto/auth_dto.go
package dto

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3,max=100"`
	Password   string `json:"password" validate:"required,min=8,max=100"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type MeResponse struct {
	ID        string  `json:"id"`
	UserName  string  `json:"user_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	StudentID *string `json:"student_id,omitempty"`
}
