package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the JWT payload for a signed-in user. SessionID doubles
// as the revocation handle in the session registry.
type SessionClaims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Major     string `json:"major"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}
