package domain

import "github.com/google/uuid"

type Order struct {
	ID           uuid.UUID
	IDUser       uuid.UUID
	Date         string
	Time         string
	NameDistrict string
	Status       string
}

const (
	OrderStatusPending    = "PENDING"
	OrderStatusInDelivery = "IN_DELIVERY"
	OrderStatusDelivered  = "DELIVERED"
	OrderStatusCanceled   = "CANCELED"
)
