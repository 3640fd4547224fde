package models

import "time"

// User is a registered account holder. The password is stored only as a
// bcrypt hash; the raw value never leaves the service layer.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
