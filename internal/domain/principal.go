package domain

import "github.com/google/uuid"

// Principal is an authenticated identity. Staff users and customers share the
// shape but live in disjoint stores.
type Principal struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Roles        []string
}
