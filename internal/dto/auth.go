package dto

import "github.com/campuspulse/campus-api/internal/models"

// LoginRequest identifies a user by name and major. Matching both fields
// returns the existing account, otherwise one is created.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Major    string `json:"major" validate:"required"`
}

// LoginResponse returns the issued session token and the resolved user.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresIn int64       `json:"expires_in"`
	User      models.User `json:"user"`
}

// UpdateAvatarRequest sets the avatar URL, the only mutable profile field.
type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,url"`
}

// ProfileResponse is the signed-in user's dashboard view.
type ProfileResponse struct {
	User         models.User         `json:"user"`
	Status       string              `json:"status"`
	Availability models.Availability `json:"availability"`
	CurrentClass *models.ClassInfo   `json:"current_class"`
	NextClass    *models.ClassInfo   `json:"next_class"`
	RecentClass  *models.RecentClass `json:"recent_class"`
}
