package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tkexclusiv/catalog_api/internal/database"
)

// ResourceRepository handles data access for one catalog table described by a Schema.
// Statements are written with ? placeholders and rebound for the driver in use.
type ResourceRepository[T any] struct {
	db     *sqlx.DB
	schema Schema
}

// NewResourceRepository creates a ResourceRepository for the schema's table.
func NewResourceRepository[T any](db *sqlx.DB, schema Schema) *ResourceRepository[T] {
	return &ResourceRepository[T]{db: db, schema: schema}
}

// Schema returns the table description the repository was built with.
func (r *ResourceRepository[T]) Schema() Schema {
	return r.schema
}

// List returns every row using the schema's list query.
func (r *ResourceRepository[T]) List(ctx context.Context) ([]T, error) {
	q := r.schema.ListQuery
	if q == "" {
		q = fmt.Sprintf("SELECT * FROM %s ORDER BY %s", r.schema.Table, r.orderBy())
	}
	items := []T{}
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(q)); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns a single row or sql.ErrNoRows.
func (r *ResourceRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.GetContext(ctx, &item, r.db.Rebind(r.selectByID()), id); err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert writes a new row and returns it as stored, including generated columns.
func (r *ResourceRepository[T]) Insert(ctx context.Context, set []Assignment) (*T, error) {
	if len(set) == 0 {
		return nil, errors.New("insert: no columns")
	}
	cols := make([]string, len(set))
	marks := make([]string, len(set))
	args := make([]any, len(set))
	for i, a := range set {
		cols[i] = a.Column
		marks[i] = "?"
		args[i] = a.Value
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		r.schema.Table, strings.Join(cols, ", "), strings.Join(marks, ", "))

	var item T
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var id int64
		if err := tx.QueryRowxContext(ctx, tx.Rebind(q), args...).Scan(&id); err != nil {
			return err
		}
		return tx.GetContext(ctx, &item, tx.Rebind(r.selectByID()), id)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update writes the given columns of row id and returns the updated row.
// It returns sql.ErrNoRows when no row has that id.
func (r *ResourceRepository[T]) Update(ctx context.Context, id int64, set []Assignment) (*T, error) {
	if len(set) == 0 {
		return nil, errors.New("update: no columns")
	}
	clauses := make([]string, 0, len(set)+1)
	args := make([]any, 0, len(set)+1)
	for _, a := range set {
		clauses = append(clauses, a.Column+" = ?")
		args = append(args, a.Value)
	}
	if r.schema.Touch {
		clauses = append(clauses, "updated_at = CURRENT_TIMESTAMP")
	}
	args = append(args, id)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", r.schema.Table, strings.Join(clauses, ", "))

	var item T
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(q), args...)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return sql.ErrNoRows
		}
		return tx.GetContext(ctx, &item, tx.Rebind(r.selectByID()), id)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes row id. It returns sql.ErrNoRows when nothing was deleted.
func (r *ResourceRepository[T]) Delete(ctx context.Context, id int64) error {
	if !r.schema.Deletable {
		return fmt.Errorf("%s does not support delete", r.schema.Table)
	}
	q := fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.schema.Table)
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(q), id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return sql.ErrNoRows
		}
		return nil
	})
}

func (r *ResourceRepository[T]) selectByID() string {
	return fmt.Sprintf("SELECT * FROM %s WHERE id = ?", r.schema.Table)
}

func (r *ResourceRepository[T]) orderBy() string {
	if r.schema.OrderBy != "" {
		return r.schema.OrderBy
	}
	return "id"
}

// IsUniqueViolation reports whether err is a duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// SQLite reports constraint failures only through the message text.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
