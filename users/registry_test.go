package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewRegistry_SeedsDemoUser(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry()
	require.NoError(t, err)

	u, ok := r.FindByEmail("demo@anahuac.mx")
	require.True(t, ok)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "Usuario Demo", u.Name)

	// The stored credential is a hash, never the plaintext.
	assert.NotEqual(t, "demo123", u.HashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("demo123")))
}

func TestFindByEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry()
	require.NoError(t, err)

	_, ok := r.FindByEmail("Demo@Anahuac.MX")
	assert.True(t, ok)
}

func TestFindByEmail_Unknown(t *testing.T) {
	t.Parallel()

	r, err := NewRegistry()
	require.NoError(t, err)

	_, ok := r.FindByEmail("nadie@anahuac.mx")
	assert.False(t, ok)
}
