package dto

import (
	userModel "camping/internal/domains/user/model"
	"camping/shared/constant"
	gModel "camping/shared/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,max=50"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=user owner admin"`
}

// ToUserModel applies the default role when none was requested.
func (r *RegisterRequest) ToUserModel(actor, hashedPassword string) userModel.User {
	role := r.Role
	if role == "" {
		role = constant.RoleUser
	}

	return userModel.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		Metadata: gModel.NewMetadata(actor),
	}
}

type RegisterResponse struct {
	UserID string `json:"userId"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UpdateProfileRequest struct {
	Username    string `json:"username"    validate:"omitempty,notblank,max=50"`
	Email       string `json:"email"       validate:"omitempty,email,max=255"`
	NewPassword string `json:"newPassword" validate:"omitempty,min=6,max=72"`
}

func (r *UpdateProfileRequest) IsEmpty() bool {
	return r.Username == "" && r.Email == "" && r.NewPassword == ""
}

// ProfileUpdate holds the columns written by a profile update. Zero fields are skipped.
type ProfileUpdate struct {
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`
}
