package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "radagast/internal/errors"
	"radagast/internal/testutil"
)

// Unit Tests

func TestNewManager(t *testing.T) {
	db := &sql.DB{}
	m := NewManager(db)

	assert.NotNil(t, m.Company())
	assert.NotNil(t, m.Employee())
	assert.NotNil(t, m.Order())
	assert.NotNil(t, m.Product())
}

func TestCommit_EmptyChangeSetIsNoOp(t *testing.T) {
	// No transaction is opened for an empty change-set, so a zero DB works.
	m := NewManager(&sql.DB{})

	assert.NoError(t, m.Commit(context.Background()))
}

// Integration Tests

func TestManager_CreateCommitGetByID_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	m := NewManager(db)
	company := testutil.NewCompany()
	m.Company().Create(&company)
	require.NoError(t, m.Commit(context.Background()))

	fetched, err := NewManager(db).Company().GetByID(context.Background(), company.ID, false)
	require.NoError(t, err)
	assert.Equal(t, company, *fetched)
}

func TestManager_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	_, err := NewManager(db).Company().GetByID(context.Background(), uuid.New(), false)

	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestManager_TrackedMutationIsCommitted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seed := NewManager(db)
	company := testutil.NewCompany()
	seed.Company().Create(&company)
	require.NoError(t, seed.Commit(context.Background()))

	m := NewManager(db)
	tracked, err := m.Company().GetByID(context.Background(), company.ID, true)
	require.NoError(t, err)

	tracked.Name = "Renamed Holdings"
	require.NoError(t, m.Commit(context.Background()))

	fetched, err := NewManager(db).Company().GetByID(context.Background(), company.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Holdings", fetched.Name)
}

func TestManager_UntrackedReadIsNotCommitted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seed := NewManager(db)
	company := testutil.NewCompany()
	seed.Company().Create(&company)
	require.NoError(t, seed.Commit(context.Background()))

	m := NewManager(db)
	snapshot, err := m.Company().GetByID(context.Background(), company.ID, false)
	require.NoError(t, err)

	snapshot.Name = "Should Not Persist"
	require.NoError(t, m.Commit(context.Background()))

	fetched, err := NewManager(db).Company().GetByID(context.Background(), company.ID, false)
	require.NoError(t, err)
	assert.Equal(t, company.Name, fetched.Name)
}

func TestManager_DeleteRemovesEntity(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	seed := NewManager(db)
	company := testutil.NewCompany()
	seed.Company().Create(&company)
	require.NoError(t, seed.Commit(context.Background()))

	m := NewManager(db)
	m.Company().Delete(company)
	require.NoError(t, m.Commit(context.Background()))

	_, err := NewManager(db).Company().GetByID(context.Background(), company.ID, false)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestManager_GetByIDs_PartialBatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	m := NewManager(db)
	first := testutil.NewCompany()
	second := testutil.NewCompany()
	m.Company().Create(&first)
	m.Company().Create(&second)
	require.NoError(t, m.Commit(context.Background()))

	ids := []uuid.UUID{first.ID, second.ID, uuid.New()}
	companies, err := NewManager(db).Company().GetByIDs(context.Background(), ids, false)
	require.NoError(t, err)

	// Two of three requested ids resolve; the caller treats the mismatch
	// as not-found.
	assert.Len(t, companies, 2)
	assert.NotEqual(t, len(ids), len(companies))
}

func TestManager_CommitFailureDiscardsChangeSet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	m := NewManager(db)
	orphan := testutil.NewProduct(uuid.New()) // no such order
	m.Product().CreateForOrder(orphan.OrderID, &orphan)

	err := m.Commit(context.Background())
	require.Error(t, err)
	_, ok := apperrors.IsConflictError(err)
	assert.True(t, ok)

	// The change-set was discarded, so a retry commits nothing.
	assert.NoError(t, m.Commit(context.Background()))
}

func TestManager_CommitIsAtomic(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	m := NewManager(db)
	order := testutil.NewOrder()
	m.Order().Create(&order)
	orphan := testutil.NewProduct(uuid.New()) // violates the FK
	m.Product().CreateForOrder(orphan.OrderID, &orphan)

	require.Error(t, m.Commit(context.Background()))

	// The valid order must not have been applied on its own.
	_, err := NewManager(db).Order().GetByID(context.Background(), order.ID, false)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestManager_OrderWithProducts_CascadeDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	m := NewManager(db)
	order := testutil.NewOrder()
	m.Order().Create(&order)
	product := testutil.NewProduct(order.ID)
	m.Product().CreateForOrder(order.ID, &product)
	require.NoError(t, m.Commit(context.Background()))

	products, err := NewManager(db).Product().GetForOrder(context.Background(), order.ID, false)
	require.NoError(t, err)
	require.Len(t, products, 1)

	del := NewManager(db)
	del.Order().Delete(order)
	require.NoError(t, del.Commit(context.Background()))

	products, err = NewManager(db).Product().GetForOrder(context.Background(), order.ID, false)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestManager_EmployeesScopedToCompany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	m := NewManager(db)
	company := testutil.NewCompany()
	other := testutil.NewCompany()
	m.Company().Create(&company)
	m.Company().Create(&other)
	employee := testutil.NewEmployee(company.ID)
	m.Employee().CreateForCompany(company.ID, &employee)
	require.NoError(t, m.Commit(context.Background()))

	employees, err := NewManager(db).Employee().GetForCompany(context.Background(), other.ID, false)
	require.NoError(t, err)
	assert.Empty(t, employees)

	_, err = NewManager(db).Employee().GetByID(context.Background(), other.ID, employee.ID, false)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
