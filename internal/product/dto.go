package product

import (
	"github.com/google/uuid"

	"radagast/internal/domain"
)

type ProductDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

func (d ProductDTO) ShapeID() (string, any) {
	return "id", d.ID
}

func (d ProductDTO) ShapeFields() map[string]any {
	return map[string]any{
		"name":  d.Name,
		"price": d.Price,
	}
}

type ProductForCreationDTO struct {
	Name  string  `json:"name" validate:"required,max=120"`
	Price float64 `json:"price" validate:"gte=0"`
}

type ProductForUpdateDTO struct {
	Name  string  `json:"name" validate:"required,max=120"`
	Price float64 `json:"price" validate:"gte=0"`
}

type ProductForPatchDTO struct {
	Name  *string  `json:"name" validate:"omitempty,max=120"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}

func NewProductDTO(p domain.Product) ProductDTO {
	return ProductDTO{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
	}
}

// ToEntity is exported because order creation can embed products.
func (d ProductForCreationDTO) ToEntity() domain.Product {
	return domain.Product{
		ID:    uuid.New(),
		Name:  d.Name,
		Price: d.Price,
	}
}
