// Package auth, as part of the authentication module.
// This file, `middleware.go`, defines the bearer-token gate placed in front of
// mutating endpoints. It is the Go counterpart of the original `verifyToken`
// Express middleware, in the standard `func(next http.Handler) http.Handler`
// shape that chi composes.
package auth

import (
	"net/http"
	"strings"

	"github.com/user/market-go/apperror"
)

// uniformGateError is the single message the gate returns for every rejection.
// Missing header, wrong scheme, malformed token, bad signature and expiry all
// look identical to the client: the response must not reveal which check failed.
const uniformGateError = "No autorizado"

// JWTMiddleware creates the bearer-token gate.
// It verifies the credential from the Authorization header and, on success,
// attaches the decoded claims to the request context for downstream handlers.
// The check is pure computation: no I/O, no suspension, fail closed.
func JWTMiddleware(service *AuthService) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError(uniformGateError, nil))
				return
			}

			// The header must be exactly "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
				WriteError(w, r, apperror.NewAuthError(uniformGateError, nil))
				return
			}

			claims, err := service.ValidateToken(parts[1])
			if err != nil {
				// The underlying error is kept for server-side logs via the
				// apperror wrapper, but the client sees the uniform message.
				WriteError(w, r, apperror.NewAuthError(uniformGateError, err))
				return
			}

			ctx := NewContextWithClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
