package users

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// seedUser describes one statically provisioned principal before hashing.
type seedUser struct {
	id       int
	email    string
	password string
	name     string
}

// demoSeed is the single demo login of the system. The plaintext only exists
// here, at seed time; the registry stores a bcrypt hash of it.
var demoSeed = []seedUser{
	{id: 1, email: "demo@anahuac.mx", password: "demo123", name: "Usuario Demo"},
}

// Registry is the static, read-only collection of login principals.
// It is seeded at construction and never mutated afterwards, so it is safe
// for concurrent use by any number of request handlers without locking.
type Registry struct {
	byEmail map[string]*User
}

// NewRegistry builds the registry from the demo seed, hashing each password
// with bcrypt. Hashing happens once per process start, not per login.
func NewRegistry() (*Registry, error) {
	r := &Registry{byEmail: make(map[string]*User, len(demoSeed))}
	for _, s := range demoSeed {
		hashed, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", s.email, err)
		}
		// Emails are stored and looked up lowercased so login is
		// case-insensitive on the email, like the original backend.
		r.byEmail[strings.ToLower(s.email)] = &User{
			ID:             s.id,
			Email:          strings.ToLower(s.email),
			HashedPassword: string(hashed),
			Name:           s.name,
		}
	}
	return r, nil
}

// FindByEmail looks up a principal by email (case-insensitive).
// The boolean reports whether a principal was found; callers must not
// translate "not found" into a distinct client-visible message.
func (r *Registry) FindByEmail(email string) (*User, bool) {
	u, ok := r.byEmail[strings.ToLower(email)]
	return u, ok
}
