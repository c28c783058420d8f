package repository

import (
	"context"
	"database/sql"

	"github.com/strokerox/agenciaHG/internal/model"
)

// AirlineRepo reads the aerolineas directory. Airlines are reference data
// seeded with the schema; the API never writes them.
type AirlineRepo struct{ DB *sql.DB }

func NewAirlineRepo(db *sql.DB) *AirlineRepo { return &AirlineRepo{DB: db} }

// List returns all airlines ordered by name.
func (r *AirlineRepo) List(ctx context.Context) ([]model.Airline, error) {
	const q = `SELECT id_aerolinea, nombre FROM aerolineas ORDER BY nombre ASC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Airline, 0)
	for rows.Next() {
		var a model.Airline
		if err := rows.Scan(&a.ID, &a.Nombre); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
