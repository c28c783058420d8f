package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/strokerox/agenciaHG/internal/model"
)

// ReservationRepo resolves booking locators (PNRs) against the reservas
// table. A locator row is created lazily the first time it appears on a
// sale and is immutable afterwards.
type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// GetByLocator fetches a reservation by exact locator match.
func (r *ReservationRepo) GetByLocator(ctx context.Context, locator string) (model.Reservation, error) {
	var res model.Reservation
	err := r.DB.QueryRowContext(ctx,
		"SELECT localizador, fecha_venta FROM reservas WHERE localizador=? LIMIT 1",
		locator).Scan(&res.Localizador, &res.FechaVenta)
	return res, err
}

// FindOrCreateTx returns the reservation row for the locator, inserting it
// with fecha_venta = now when it does not exist yet. Repeated calls with
// the same locator are idempotent: an existing row is returned untouched,
// fecha_venta included.
//
// Two concurrent sales can race on the same brand-new locator. The loser's
// INSERT hits the primary-key constraint (1062); that does not poison an
// InnoDB transaction, so we re-read once and return the winner's row
// instead of failing the whole sale.
func (r *ReservationRepo) FindOrCreateTx(ctx context.Context, tx *sql.Tx, locator string) (model.Reservation, error) {
	const sel = `SELECT localizador, fecha_venta FROM reservas WHERE localizador=? LIMIT 1`

	var res model.Reservation
	err := tx.QueryRowContext(ctx, sel, locator).Scan(&res.Localizador, &res.FechaVenta)
	if err == nil {
		return res, nil
	}
	if err != sql.ErrNoRows {
		return model.Reservation{}, err
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO reservas (localizador, fecha_venta) VALUES (?, ?)",
		locator, now)
	if err != nil {
		if isDuplicateKey(err) {
			// Lost the race; the row exists now.
			err = tx.QueryRowContext(ctx, sel, locator).Scan(&res.Localizador, &res.FechaVenta)
			return res, err
		}
		return model.Reservation{}, err
	}
	return model.Reservation{Localizador: locator, FechaVenta: now}, nil
}
