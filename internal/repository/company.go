package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

type CompanyRepository interface {
	GetAll(ctx context.Context, trackChanges bool) ([]domain.Company, error)
	GetByID(ctx context.Context, id uuid.UUID, trackChanges bool) (*domain.Company, error)
	// GetByIDs is a batch get. Callers compare the result count against the
	// requested count; a mismatch means the batch is not fully satisfied.
	GetByIDs(ctx context.Context, ids []uuid.UUID, trackChanges bool) ([]domain.Company, error)
	Create(company *domain.Company)
	Delete(company domain.Company)
}

type companyRepository struct {
	base[domain.Company]
}

func newCompanyRepository(m *manager) *companyRepository {
	return &companyRepository{base: base[domain.Company]{m: m, meta: meta[domain.Company]{
		table:   "Companies",
		columns: []string{"id", "name", "address", "country"},
		scan: func(rows *sql.Rows) (domain.Company, error) {
			var c domain.Company
			err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Country)
			return c, err
		},
		args: func(c domain.Company) []any {
			return []any{c.ID, c.Name, c.Address, c.Country}
		},
		id: func(c domain.Company) uuid.UUID { return c.ID },
	}}}
}

func (r *companyRepository) GetAll(ctx context.Context, trackChanges bool) ([]domain.Company, error) {
	return r.queryAll(ctx, "", nil, "name", trackChanges)
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID, trackChanges bool) (*domain.Company, error) {
	company, err := r.queryOne(ctx, "id = ?", []any{id}, trackChanges)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("company with id %s not found", id))
	}
	return company, nil
}

func (r *companyRepository) GetByIDs(ctx context.Context, ids []uuid.UUID, trackChanges bool) ([]domain.Company, error) {
	return r.queryByIDs(ctx, ids, "name", trackChanges)
}

func (r *companyRepository) Create(company *domain.Company) {
	r.create(company)
}

func (r *companyRepository) Delete(company domain.Company) {
	r.delete(company)
}
