package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/strokerox/agenciaHG/internal/model"
)

// ClientRepo gives access to the clientes directory. Names are stored
// upper-cased so the report and the selectors on the sale form always show
// a passenger the same way regardless of how an agent typed it.
type ClientRepo struct{ DB *sql.DB }

func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{DB: db} }

// List returns all clients ordered by first name, the order the sale form's
// passenger selector expects.
func (r *ClientRepo) List(ctx context.Context) ([]model.Client, error) {
	const q = `SELECT id_cliente, nombre, apellido FROM clientes ORDER BY nombre ASC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Client, 0)
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Apellido); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetByID fetches a single client; sql.ErrNoRows when absent.
func (r *ClientRepo) GetByID(ctx context.Context, id uint64) (model.Client, error) {
	var c model.Client
	err := r.DB.QueryRowContext(ctx,
		"SELECT id_cliente, nombre, apellido FROM clientes WHERE id_cliente=? LIMIT 1",
		id).Scan(&c.ID, &c.Nombre, &c.Apellido)
	return c, err
}

// Create inserts a client and returns its generated ID.
func (r *ClientRepo) Create(ctx context.Context, nombre, apellido string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO clientes (nombre, apellido) VALUES (?, ?)",
		strings.ToUpper(nombre), strings.ToUpper(apellido))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update rewrites a client's names. Returns sql.ErrNoRows when no row with
// the given id exists.
func (r *ClientRepo) Update(ctx context.Context, id uint64, nombre, apellido string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE clientes SET nombre=?, apellido=? WHERE id_cliente=?",
		strings.ToUpper(nombre), strings.ToUpper(apellido), id)
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
}

// Delete removes a client. A client referenced by any boleto cannot be
// deleted; the FK constraint rejects it and the failure surfaces as
// ErrConflict so the handler can answer 409 instead of a bare 500.
func (r *ClientRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM clientes WHERE id_cliente=?", id)
	if err != nil {
		if isFKViolation(err) {
			return ErrConflict
		}
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
}
