package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// meta describes how one entity type maps onto its table. The identity
// column comes first in columns, and args returns values in column order.
type meta[T any] struct {
	table   string
	columns []string
	scan    func(rows *sql.Rows) (T, error)
	args    func(entity T) []any
	id      func(entity T) uuid.UUID
}

// base is the generic repository shared by all four entity repositories.
// Reads go straight to the database; writes are staged on the owning
// manager's change-set until Commit.
type base[T comparable] struct {
	m    *manager
	meta meta[T]
}

func (b *base[T]) selectQuery(where, orderBy string) string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.meta.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.meta.table)
	if where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(where)
	}
	if orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(orderBy)
	}
	return sb.String()
}

func (b *base[T]) queryAll(ctx context.Context, where string, args []any, orderBy string, trackChanges bool) ([]T, error) {
	rows, err := b.m.db.QueryContext(ctx, b.selectQuery(where, orderBy), args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", b.meta.table, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := b.meta.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", b.meta.table, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", b.meta.table, err)
	}

	if trackChanges {
		for i := range items {
			b.trackEntity(&items[i])
		}
	}
	return items, nil
}

// queryOne returns nil when no row matches; callers decide how absence is
// reported.
func (b *base[T]) queryOne(ctx context.Context, where string, args []any, trackChanges bool) (*T, error) {
	items, err := b.queryAll(ctx, where, args, "", false)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	entity := &items[0]
	if trackChanges {
		b.trackEntity(entity)
	}
	return entity, nil
}

func (b *base[T]) queryByIDs(ctx context.Context, ids []uuid.UUID, orderBy string, trackChanges bool) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	where := b.meta.columns[0] + " IN (" + strings.Join(placeholders, ", ") + ")"
	return b.queryAll(ctx, where, args, orderBy, trackChanges)
}

// create stages an insert. The pointer is read at commit time, so field
// mutations made before Commit are persisted.
func (b *base[T]) create(entity *T) {
	b.m.stageCreate(func(ctx context.Context, tx *sql.Tx) error {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(b.meta.columns)), ", ")
		query := "INSERT INTO " + b.meta.table +
			" (" + strings.Join(b.meta.columns, ", ") + ") VALUES (" + placeholders + ")"
		if _, err := tx.ExecContext(ctx, query, b.meta.args(*entity)...); err != nil {
			return fmt.Errorf("inserting into %s: %w", b.meta.table, err)
		}
		return nil
	})
}

// delete stages a removal by identity.
func (b *base[T]) delete(entity T) {
	id := b.meta.id(entity)
	b.m.stageDelete(func(ctx context.Context, tx *sql.Tx) error {
		query := "DELETE FROM " + b.meta.table + " WHERE " + b.meta.columns[0] + " = ?"
		if _, err := tx.ExecContext(ctx, query, id); err != nil {
			return fmt.Errorf("deleting from %s: %w", b.meta.table, err)
		}
		return nil
	})
}

// trackEntity registers a live handle: a snapshot is kept and compared at
// commit time, and a changed entity is flushed with an UPDATE.
func (b *base[T]) trackEntity(entity *T) {
	snapshot := *entity
	b.m.track(trackedEntity{
		dirty: func() bool { return *entity != snapshot },
		flush: func(ctx context.Context, tx *sql.Tx) error {
			columns := b.meta.columns
			assignments := make([]string, 0, len(columns)-1)
			for _, column := range columns[1:] {
				assignments = append(assignments, column+" = ?")
			}
			args := append(b.meta.args(*entity)[1:], b.meta.id(*entity))
			query := "UPDATE " + b.meta.table +
				" SET " + strings.Join(assignments, ", ") +
				" WHERE " + columns[0] + " = ?"
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("updating %s: %w", b.meta.table, err)
			}
			return nil
		},
	})
}
