package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type UserResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone,omitempty"`
	Role           string    `json:"role"`
	BusinessStatus *string   `json:"business_status,omitempty"`
	Points         int64     `json:"points"`
	IsBlocked      bool      `json:"is_blocked"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	var businessStatus *string
	if user.BusinessStatus != nil {
		s := string(*user.BusinessStatus)
		businessStatus = &s
	}

	return UserResponse{
		ID:             user.ID.String(),
		Name:           user.Name,
		Email:          user.Email,
		Phone:          user.Phone,
		Role:           string(user.Role),
		BusinessStatus: businessStatus,
		Points:         user.Points,
		IsBlocked:      user.IsBlocked,
		IsActive:       user.IsActive,
		CreatedAt:      user.CreatedAt,
	}
}
