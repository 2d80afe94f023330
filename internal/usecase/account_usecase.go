package usecase

import (
	"context"

	"ecobin/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string `json:"full_name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	RFIDTag  string `json:"rfid_uid" validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// Profile is the public view of a user account.
type Profile struct {
	UserID        uint        `json:"user_id"`
	FullName      string      `json:"full_name"`
	Username      string      `json:"username"`
	Role          entity.Role `json:"role"`
	Points        int         `json:"current_points"`
	RecycledItems int         `json:"total_recycled_items"`
	CarbonGrams   int         `json:"carbon_saved_g"`
}

// RegisterOutput returns the newly created account's ID.
type RegisterOutput struct {
	UserID uint `json:"user_id"`
}

// LoginOutput returns the profile and access token after a successful login.
type LoginOutput struct {
	User        *Profile `json:"user"`
	AccessToken string   `json:"access_token"`
}

// AccountUsecase defines the account-related business operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// NewProfile maps a user entity to its public view.
func NewProfile(user *entity.User) *Profile {
	return &Profile{
		UserID:        user.ID,
		FullName:      user.FullName,
		Username:      user.Username,
		Role:          user.Role,
		Points:        user.Points,
		RecycledItems: user.RecycledItems,
		CarbonGrams:   user.CarbonGrams,
	}
}
