package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"radagast/internal/domain"
	apperrors "radagast/internal/errors"
)

// PrincipalStore reads and writes one identity pool. Staff users and
// customers get separate instances over separate tables; the schema is
// identical. Principal writes are immediate, not part of a unit of work.
type PrincipalStore struct {
	db    *sql.DB
	table string
}

func NewUserStore(db *sql.DB) *PrincipalStore {
	return &PrincipalStore{db: db, table: "Users"}
}

func NewCustomerStore(db *sql.DB) *PrincipalStore {
	return &PrincipalStore{db: db, table: "Customers"}
}

// FindByUsername returns nil without error when the username is unknown, so
// callers can treat absence and credential mismatch identically.
func (s *PrincipalStore) FindByUsername(ctx context.Context, username string) (*domain.Principal, error) {
	query := `
		SELECT id, username, passwordHash, firstName, lastName, email, phone, roles
		FROM ` + s.table + `
		WHERE username = ?`

	var p domain.Principal
	var roles string
	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&p.ID, &p.Username, &p.PasswordHash,
		&p.FirstName, &p.LastName, &p.Email, &p.Phone,
		&roles,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s by username: %w", s.table, err)
	}

	if err := json.Unmarshal([]byte(roles), &p.Roles); err != nil {
		return nil, fmt.Errorf("decoding %s roles: %w", s.table, err)
	}
	return &p, nil
}

func (s *PrincipalStore) Insert(ctx context.Context, p domain.Principal) error {
	roles, err := json.Marshal(p.Roles)
	if err != nil {
		return fmt.Errorf("encoding %s roles: %w", s.table, err)
	}

	query := `
		INSERT INTO ` + s.table + ` (id, username, passwordHash, firstName, lastName, email, phone, roles)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		p.ID, p.Username, p.PasswordHash,
		p.FirstName, p.LastName, p.Email, p.Phone,
		string(roles),
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return apperrors.NewConflictError(fmt.Sprintf("username %q is already taken", p.Username), err)
		}
		return fmt.Errorf("inserting into %s: %w", s.table, err)
	}
	return nil
}
