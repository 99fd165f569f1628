// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"github.com/google/uuid"

	"timetable_backend/internals/features/users/user/model"
)

/* =========================
   Requests
   ========================= */

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin staff viewer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

/* =========================
   Responses
   ========================= */

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

func FromModel(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		UserRole:  u.UserRole,
	}
}
