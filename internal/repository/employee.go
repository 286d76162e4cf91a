package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

type EmployeeRepository interface {
	GetForCompany(ctx context.Context, companyID uuid.UUID, trackChanges bool) ([]domain.Employee, error)
	GetByID(ctx context.Context, companyID, id uuid.UUID, trackChanges bool) (*domain.Employee, error)
	CreateForCompany(companyID uuid.UUID, employee *domain.Employee)
	Delete(employee domain.Employee)
}

type employeeRepository struct {
	base[domain.Employee]
}

func newEmployeeRepository(m *manager) *employeeRepository {
	return &employeeRepository{base: base[domain.Employee]{m: m, meta: meta[domain.Employee]{
		table:   "Employees",
		columns: []string{"id", "companyId", "name", "age", "position"},
		scan: func(rows *sql.Rows) (domain.Employee, error) {
			var e domain.Employee
			err := rows.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Age, &e.Position)
			return e, err
		},
		args: func(e domain.Employee) []any {
			return []any{e.ID, e.CompanyID, e.Name, e.Age, e.Position}
		},
		id: func(e domain.Employee) uuid.UUID { return e.ID },
	}}}
}

func (r *employeeRepository) GetForCompany(ctx context.Context, companyID uuid.UUID, trackChanges bool) ([]domain.Employee, error) {
	return r.queryAll(ctx, "companyId = ?", []any{companyID}, "name", trackChanges)
}

func (r *employeeRepository) GetByID(ctx context.Context, companyID, id uuid.UUID, trackChanges bool) (*domain.Employee, error) {
	employee, err := r.queryOne(ctx, "companyId = ? AND id = ?", []any{companyID, id}, trackChanges)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("employee with id %s not found", id))
	}
	return employee, nil
}

func (r *employeeRepository) CreateForCompany(companyID uuid.UUID, employee *domain.Employee) {
	employee.CompanyID = companyID
	r.create(employee)
}

func (r *employeeRepository) Delete(employee domain.Employee) {
	r.delete(employee)
}
