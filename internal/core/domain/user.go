package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User is a flat record describing one registered user. Nothing in the
// codebase mutates a User after it has been built.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser assembles a User from its parts. Inputs are taken as-is.
func NewUser(id int64, name, email string, createdAt time.Time) *User {
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
	}
}
