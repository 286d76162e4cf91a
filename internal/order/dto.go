package order

import (
	"github.com/google/uuid"

	"radagast/internal/domain"
	"radagast/internal/product"
)

type OrderDTO struct {
	ID           uuid.UUID `json:"id"`
	IDUser       uuid.UUID `json:"idUser"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	NameDistrict string    `json:"nameDistrict"`
	Status       string    `json:"status"`
}

type OrderForCreationDTO struct {
	IDUser       uuid.UUID                       `json:"idUser" validate:"required"`
	Date         string                          `json:"date" validate:"required,max=10"`
	Time         string                          `json:"time" validate:"required,max=5"`
	NameDistrict string                          `json:"nameDistrict" validate:"required"`
	Status       string                          `json:"status" validate:"required,max=30"`
	Products     []product.ProductForCreationDTO `json:"products" validate:"omitempty,dive"`
}

type OrderForUpdateDTO struct {
	IDUser       uuid.UUID `json:"idUser" validate:"required"`
	Date         string    `json:"date" validate:"required,max=10"`
	Time         string    `json:"time" validate:"required,max=5"`
	NameDistrict string    `json:"nameDistrict" validate:"required"`
	Status       string    `json:"status" validate:"required,max=30"`
}

func newOrderDTO(o domain.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID,
		IDUser:       o.IDUser,
		Date:         o.Date,
		Time:         o.Time,
		NameDistrict: o.NameDistrict,
		Status:       o.Status,
	}
}

func (d OrderForCreationDTO) toEntity() domain.Order {
	return domain.Order{
		ID:           uuid.New(),
		IDUser:       d.IDUser,
		Date:         d.Date,
		Time:         d.Time,
		NameDistrict: d.NameDistrict,
		Status:       d.Status,
	}
}
