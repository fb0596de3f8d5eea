// Package auth is responsible for authentication: the demo login, the session
// token codec (JWT), and the bearer-token gate in front of mutating endpoints.
// In the original Express backend this was a login route plus a `verifyToken`
// middleware; here the same responsibilities are split across a service
// (business logic), handlers (HTTP layer) and middleware (the gate).
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/market-go/apperror"
	"github.com/user/market-go/config"
	"github.com/user/market-go/users"
)

// uniformLoginError is the one message returned for every failed login.
// Unknown email and wrong password are deliberately indistinguishable so the
// endpoint cannot be used to enumerate valid accounts.
const uniformLoginError = "Credenciales inválidas"

// tokenIssuer identifies tokens minted by this service.
const tokenIssuer = "market"

// CustomClaims embeds jwt.RegisteredClaims and adds the identity fields this
// application binds into a session token: the user's id and email.
// Embedding `jwt.RegisteredClaims` brings in the standard claims (`exp`,
// `iat`, `iss`, ...) and their validation.
type CustomClaims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService provides the login operation and the session token codec.
// Dependencies (the user registry and auth configuration) are injected
// explicitly via the constructor.
type AuthService struct {
	registry   *users.Registry
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(registry *users.Registry, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		registry:   registry,
		authConfig: authConfig,
	}
}

// Login authenticates a principal against the static registry and, on
// success, returns a signed session token together with the public user info.
// Both failure modes (unknown email, wrong password) return the same
// apperror.AuthError, which the handler surfaces as a 401.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, ok := s.registry.FindByEmail(req.Email)
	if !ok {
		return nil, apperror.NewAuthError(uniformLoginError, nil)
	}

	// `bcrypt.CompareHashAndPassword` performs the comparison in a way that
	// doesn't leak timing information about the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError(uniformLoginError, nil)
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, apperror.NewInternalError("no se pudo generar el token", err)
	}

	return &LoginResponse{
		Message: "Login exitoso",
		Token:   token,
		User:    user.Public(),
	}, nil
}

// GenerateToken signs a session token binding the user's identity for the
// configured validity window (2 hours by default).
// The session model is stateless: nothing is stored server-side, so a token
// stays valid until its natural expiry regardless of later server state.
func (s *AuthService) GenerateToken(user *users.User) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.authConfig.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprintf("%d", user.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a session token string.
// It checks the signing algorithm, the signature and the expiry; any failure
// yields an error and callers must treat all of them identically.
func (s *AuthService) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable. Rejecting other methods here closes the
		// classic "alg confusion" hole where a token signed with `none` or an
		// asymmetric key sneaks past verification.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.authConfig.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.UserID == 0 {
		return nil, errors.New("token has no user identity")
	}
	return claims, nil
}
