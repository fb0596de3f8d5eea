package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postLogin(t *testing.T, h *Handlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleLogin()(rec, req)
	return rec
}

func TestHandleLogin_Success(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2*time.Hour)
	h := NewHandlers(svc)

	rec := postLogin(t, h, `{"email":"demo@anahuac.mx","password":"demo123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login exitoso", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "demo@anahuac.mx", resp.User.Email)

	// The response must never carry the password, hashed or otherwise.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestHandleLogin_MissingFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2*time.Hour)
	h := NewHandlers(svc)

	for _, body := range []string{
		`{"email":"demo@anahuac.mx"}`,
		`{"password":"demo123"}`,
		`{}`,
		`not json`,
	} {
		rec := postLogin(t, h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
		assert.JSONEq(t, `{"message":"email y password son obligatorios"}`, rec.Body.String())
	}
}

func TestHandleLogin_BadCredentialsAreUniform(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, 2*time.Hour)
	h := NewHandlers(svc)

	unknown := postLogin(t, h, `{"email":"nadie@anahuac.mx","password":"demo123"}`)
	wrongPass := postLogin(t, h, `{"email":"demo@anahuac.mx","password":"incorrecta"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	// No observable difference between "unknown email" and "wrong password".
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
	assert.JSONEq(t, `{"message":"Credenciales inválidas"}`, unknown.Body.String())
}
