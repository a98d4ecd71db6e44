package dto

import "time"

// RevokeTokenRequest 强制失效某个Token
type RevokeTokenRequest struct {
	Token string `json:"token" binding:"required" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// RevokeTokenResponse Revoked为false表示Token本来就已过期
type RevokeTokenResponse struct {
	Revoked   bool       `json:"revoked"`
	UserID    uint       `json:"userId,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
