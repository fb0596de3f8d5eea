package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/market-go/apperror"
	"github.com/user/market-go/config"
	"github.com/user/market-go/users"
)

func testAuthConfig(duration time.Duration) config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:     "secreto-de-prueba",
		TokenDuration: duration,
		RequireAuth:   true,
	}
}

func newTestService(t *testing.T, duration time.Duration) *AuthService {
	t.Helper()
	registry, err := users.NewRegistry()
	require.NoError(t, err)
	return NewAuthService(registry, testAuthConfig(duration))
}

func TestGenerateAndValidateToken_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2*time.Hour)
	user := &users.User{ID: 1, Email: "demo@anahuac.mx"}

	tok, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "demo@anahuac.mx", claims.Email)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	// A negative validity window produces an already-expired token.
	svc := newTestService(t, -1*time.Second)
	tok, err := svc.GenerateToken(&users.User{ID: 1, Email: "demo@anahuac.mx"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tok)
	require.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	issuing := newTestService(t, time.Hour)
	tok, err := issuing.GenerateToken(&users.User{ID: 1, Email: "demo@anahuac.mx"})
	require.NoError(t, err)

	registry, err := users.NewRegistry()
	require.NoError(t, err)
	verifying := NewAuthService(registry, config.AuthConfig{JWTSecret: "otro-secreto", TokenDuration: time.Hour})

	_, err = verifying.ValidateToken(tok)
	require.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, time.Hour)
	_, err := svc.ValidateToken("not.a.jwt")
	require.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2*time.Hour)
	resp, err := svc.Login(context.Background(), LoginRequest{Email: "demo@anahuac.mx", Password: "demo123"})
	require.NoError(t, err)

	assert.Equal(t, "Login exitoso", resp.Message)
	assert.Equal(t, 1, resp.User.ID)
	assert.Equal(t, "demo@anahuac.mx", resp.User.Email)
	assert.Equal(t, "Usuario Demo", resp.User.Name)

	// The issued credential must verify against the same service.
	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2*time.Hour)
	_, err := svc.Login(context.Background(), LoginRequest{Email: "DEMO@Anahuac.MX", Password: "demo123"})
	require.NoError(t, err)
}

func TestLogin_UniformFailureMessage(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2*time.Hour)

	// Unknown email and wrong password must be observably identical:
	// same error type, same message.
	_, errUnknown := svc.Login(context.Background(), LoginRequest{Email: "nadie@anahuac.mx", Password: "demo123"})
	_, errWrongPass := svc.Login(context.Background(), LoginRequest{Email: "demo@anahuac.mx", Password: "incorrecta"})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.True(t, apperror.IsAuthError(errUnknown))
	assert.True(t, apperror.IsAuthError(errWrongPass))
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}
