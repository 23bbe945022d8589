package models

import "time"

// User is a campus member. Users are created on first login keyed by the
// (username, major) pair and stay immutable afterwards except for the avatar
// reference.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Major     string    `json:"major"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
