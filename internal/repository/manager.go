// Package repository mediates all entity access. A Manager is a unit of
// work: reads can hand out tracked entity handles, writes are staged, and
// Commit applies the whole change-set in one transaction.
//
// A Manager instance is request-scoped. Sharing one across concurrent
// requests would share its pending change-set.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	apperrors "radagast/internal/errors"
)

type Manager interface {
	Company() CompanyRepository
	Employee() EmployeeRepository
	Order() OrderRepository
	Product() ProductRepository

	// Commit atomically persists all staged creates, deletes and tracked
	// mutations since the last commit. The change-set is discarded whether
	// or not the commit succeeds.
	Commit(ctx context.Context) error
}

type stagedOp func(ctx context.Context, tx *sql.Tx) error

type trackedEntity struct {
	dirty func() bool
	flush stagedOp
}

type manager struct {
	db *sql.DB

	company  *companyRepository
	employee *employeeRepository
	order    *orderRepository
	product  *productRepository

	creates []stagedOp
	deletes []stagedOp
	tracked []trackedEntity
}

func NewManager(db *sql.DB) Manager {
	m := &manager{db: db}
	m.company = newCompanyRepository(m)
	m.employee = newEmployeeRepository(m)
	m.order = newOrderRepository(m)
	m.product = newProductRepository(m)
	return m
}

func (m *manager) Company() CompanyRepository   { return m.company }
func (m *manager) Employee() EmployeeRepository { return m.employee }
func (m *manager) Order() OrderRepository       { return m.order }
func (m *manager) Product() ProductRepository   { return m.product }

func (m *manager) stageCreate(op stagedOp) { m.creates = append(m.creates, op) }
func (m *manager) stageDelete(op stagedOp) { m.deletes = append(m.deletes, op) }
func (m *manager) track(t trackedEntity)   { m.tracked = append(m.tracked, t) }

func (m *manager) Commit(ctx context.Context) error {
	defer m.discard()

	if len(m.creates) == 0 && len(m.deletes) == 0 && !m.hasDirty() {
		return nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewInternalError("beginning commit transaction", err)
	}
	// MySQL ignores the rollback once the transaction is committed.
	defer tx.Rollback()

	for _, op := range m.creates {
		if err := op(ctx, tx); err != nil {
			return mapCommitError(err)
		}
	}
	for _, t := range m.tracked {
		if !t.dirty() {
			continue
		}
		if err := t.flush(ctx, tx); err != nil {
			return mapCommitError(err)
		}
	}
	for _, op := range m.deletes {
		if err := op(ctx, tx); err != nil {
			return mapCommitError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("committing change set", err)
	}
	return nil
}

func (m *manager) hasDirty() bool {
	for _, t := range m.tracked {
		if t.dirty() {
			return true
		}
	}
	return false
}

func (m *manager) discard() {
	m.creates = nil
	m.deletes = nil
	m.tracked = nil
}

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

func mapCommitError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			return apperrors.NewConflictError("duplicate key", err)
		case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
			return apperrors.NewConflictError("foreign key constraint violated", err)
		}
	}
	return apperrors.NewInternalError("applying change set", err)
}
