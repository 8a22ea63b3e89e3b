package domain

import (
	"time"
)

// Admin represents a portal administrator account. PasswordHash is a bcrypt
// hash and never leaves the server.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
