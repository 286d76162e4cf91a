package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

type OrderRepository interface {
	GetAll(ctx context.Context, trackChanges bool) ([]domain.Order, error)
	GetByID(ctx context.Context, id uuid.UUID, trackChanges bool) (*domain.Order, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID, trackChanges bool) ([]domain.Order, error)
	Create(order *domain.Order)
	Delete(order domain.Order)
}

type orderRepository struct {
	base[domain.Order]
}

func newOrderRepository(m *manager) *orderRepository {
	return &orderRepository{base: base[domain.Order]{m: m, meta: meta[domain.Order]{
		table:   "Orders",
		columns: []string{"id", "idUser", "orderDate", "orderTime", "nameDistrict", "status"},
		scan: func(rows *sql.Rows) (domain.Order, error) {
			var o domain.Order
			err := rows.Scan(&o.ID, &o.IDUser, &o.Date, &o.Time, &o.NameDistrict, &o.Status)
			return o, err
		},
		args: func(o domain.Order) []any {
			return []any{o.ID, o.IDUser, o.Date, o.Time, o.NameDistrict, o.Status}
		},
		id: func(o domain.Order) uuid.UUID { return o.ID },
	}}}
}

func (r *orderRepository) GetAll(ctx context.Context, trackChanges bool) ([]domain.Order, error) {
	return r.queryAll(ctx, "", nil, "id", trackChanges)
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID, trackChanges bool) (*domain.Order, error) {
	order, err := r.queryOne(ctx, "id = ?", []any{id}, trackChanges)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("order with id %s not found", id))
	}
	return order, nil
}

func (r *orderRepository) GetByIDs(ctx context.Context, ids []uuid.UUID, trackChanges bool) ([]domain.Order, error) {
	return r.queryByIDs(ctx, ids, "id", trackChanges)
}

func (r *orderRepository) Create(order *domain.Order) {
	r.create(order)
}

func (r *orderRepository) Delete(order domain.Order) {
	r.delete(order)
}
