package domain

import "github.com/google/uuid"

type Company struct {
	ID      uuid.UUID
	Name    string
	Address string
	Country string
}
