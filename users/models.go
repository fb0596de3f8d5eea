// Package users holds the login principals of the system.
// There is no account management here: the registry is seeded once at startup
// with the demo principal and never changes for the lifetime of the process.
package users

// User represents a login principal.
// The `json:"-"` tag on HashedPassword keeps the credential out of every
// API response, no matter how the struct ends up being serialized.
type User struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // Do not expose the password hash
	Name           string `json:"name"`
}

// PublicUser is the client-facing projection of a User, returned alongside
// a freshly issued session token on login.
type PublicUser struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"demo@anahuac.mx"`
	Name  string `json:"name" example:"Usuario Demo"`
}

// Public returns the client-facing projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name}
}
