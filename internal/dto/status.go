package dto

import "time"

// UpdateStatusRequest sets the caller's availability tag.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=studying free help busy tired social"`
}

// StatusResponse reports a user's current tag; absent records read as free.
type StatusResponse struct {
	Status    string     `json:"status"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
