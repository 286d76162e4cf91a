package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

type ProductRepository interface {
	GetForOrder(ctx context.Context, orderID uuid.UUID, trackChanges bool) ([]domain.Product, error)
	GetByID(ctx context.Context, orderID, id uuid.UUID, trackChanges bool) (*domain.Product, error)
	CreateForOrder(orderID uuid.UUID, product *domain.Product)
	Delete(product domain.Product)
}

type productRepository struct {
	base[domain.Product]
}

func newProductRepository(m *manager) *productRepository {
	return &productRepository{base: base[domain.Product]{m: m, meta: meta[domain.Product]{
		table:   "Products",
		columns: []string{"id", "orderId", "name", "price"},
		scan: func(rows *sql.Rows) (domain.Product, error) {
			var p domain.Product
			err := rows.Scan(&p.ID, &p.OrderID, &p.Name, &p.Price)
			return p, err
		},
		args: func(p domain.Product) []any {
			return []any{p.ID, p.OrderID, p.Name, p.Price}
		},
		id: func(p domain.Product) uuid.UUID { return p.ID },
	}}}
}

func (r *productRepository) GetForOrder(ctx context.Context, orderID uuid.UUID, trackChanges bool) ([]domain.Product, error) {
	return r.queryAll(ctx, "orderId = ?", []any{orderID}, "name", trackChanges)
}

func (r *productRepository) GetByID(ctx context.Context, orderID, id uuid.UUID, trackChanges bool) (*domain.Product, error) {
	product, err := r.queryOne(ctx, "orderId = ? AND id = ?", []any{orderID, id}, trackChanges)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("product with id %s not found", id))
	}
	return product, nil
}

func (r *productRepository) CreateForOrder(orderID uuid.UUID, product *domain.Product) {
	product.OrderID = orderID
	r.create(product)
}

func (r *productRepository) Delete(product domain.Product) {
	r.delete(product)
}
