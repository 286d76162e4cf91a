package company

import (
	"github.com/google/uuid"

	"radagast/internal/domain"
)

type CompanyDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	FullAddress string    `json:"fullAddress"`
}

type CompanyForCreationDTO struct {
	Name    string `json:"name" validate:"required,max=60"`
	Address string `json:"address" validate:"required,max=120"`
	Country string `json:"country" validate:"required,max=60"`
}

type CompanyForUpdateDTO struct {
	Name    string `json:"name" validate:"required,max=60"`
	Address string `json:"address" validate:"required,max=120"`
	Country string `json:"country" validate:"required,max=60"`
}

func newCompanyDTO(c domain.Company) CompanyDTO {
	return CompanyDTO{
		ID:          c.ID,
		Name:        c.Name,
		FullAddress: c.Address + " " + c.Country,
	}
}

func (d CompanyForCreationDTO) toEntity() domain.Company {
	return domain.Company{
		ID:      uuid.New(),
		Name:    d.Name,
		Address: d.Address,
		Country: d.Country,
	}
}
