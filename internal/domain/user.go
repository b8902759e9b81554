package domain

import "time"

// User represents a registered account. Name and Email are unique across the
// store; the record is immutable after registration.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
