package domain

import "github.com/google/uuid"

type Employee struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Age       int
	Position  string
}
