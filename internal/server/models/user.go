package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash and never leaves
// the server.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Avatar       string
	CreatedAt    time.Time
}
