// Package auth, as part of the authentication module.
// This file, `dto.go` (Data Transfer Object), defines the structures used in
// API requests and responses related to authentication.
package auth

import "github.com/user/market-go/users"

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"demo@anahuac.mx"`
	Password string `json:"password" example:"demo123"`
}

// LoginResponse is returned to the client upon successful login.
// The token is presented back on mutating endpoints as
// `Authorization: Bearer <token>`.
type LoginResponse struct {
	Message string           `json:"message" example:"Login exitoso"`
	Token   string           `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User    users.PublicUser `json:"user"`
}
