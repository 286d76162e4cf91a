package employee

import (
	"github.com/google/uuid"

	"radagast/internal/domain"
)

type EmployeeDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Age      int       `json:"age"`
	Position string    `json:"position"`
}

func (d EmployeeDTO) ShapeID() (string, any) {
	return "id", d.ID
}

func (d EmployeeDTO) ShapeFields() map[string]any {
	return map[string]any{
		"name":     d.Name,
		"age":      d.Age,
		"position": d.Position,
	}
}

type EmployeeForCreationDTO struct {
	Name     string `json:"name" validate:"required,max=60"`
	Age      int    `json:"age" validate:"required,gte=18"`
	Position string `json:"position" validate:"required,max=60"`
}

type EmployeeForUpdateDTO struct {
	Name     string `json:"name" validate:"required,max=60"`
	Age      int    `json:"age" validate:"required,gte=18"`
	Position string `json:"position" validate:"required,max=60"`
}

// EmployeeForPatchDTO carries a partial update; only non-nil fields are
// applied.
type EmployeeForPatchDTO struct {
	Name     *string `json:"name" validate:"omitempty,max=60"`
	Age      *int    `json:"age" validate:"omitempty,gte=18"`
	Position *string `json:"position" validate:"omitempty,max=60"`
}

func newEmployeeDTO(e domain.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:       e.ID,
		Name:     e.Name,
		Age:      e.Age,
		Position: e.Position,
	}
}

func (d EmployeeForCreationDTO) toEntity() domain.Employee {
	return domain.Employee{
		ID:       uuid.New(),
		Name:     d.Name,
		Age:      d.Age,
		Position: d.Position,
	}
}
