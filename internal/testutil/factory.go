package testutil

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"radagast/internal/domain"
)

func NewCompany() domain.Company {
	return domain.Company{
		ID:      uuid.New(),
		Name:    gofakeit.Company(),
		Address: gofakeit.Street(),
		Country: gofakeit.Country(),
	}
}

func NewEmployee(companyID uuid.UUID) domain.Employee {
	return domain.Employee{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      gofakeit.Name(),
		Age:       gofakeit.Number(18, 65),
		Position:  gofakeit.JobTitle(),
	}
}

func NewOrder() domain.Order {
	return domain.Order{
		ID:           uuid.New(),
		IDUser:       uuid.New(),
		Date:         gofakeit.Date().Format("2006-01-02"),
		Time:         gofakeit.Date().Format("15:04"),
		NameDistrict: gofakeit.City(),
		Status:       domain.OrderStatusPending,
	}
}

func NewProduct(orderID uuid.UUID) domain.Product {
	return domain.Product{
		ID:      uuid.New(),
		OrderID: orderID,
		Name:    gofakeit.ProductName(),
		Price:   gofakeit.Price(1, 500),
	}
}
