package repository

import (
	"context"
	"database/sql"

	"github.com/strokerox/agenciaHG/internal/model"
)

// SaleRepo persists boletos rows and produces the joined sales report.
type SaleRepo struct{ DB *sql.DB }

func NewSaleRepo(db *sql.DB) *SaleRepo { return &SaleRepo{DB: db} }

// CreateTx inserts a sale within the scope of an existing transaction and
// populates the generated id_transaccion on the record. The reservation row
// for sale.Localizador must already exist in the same transaction. Unknown
// cliente_id/aerolinea_id references surface as ErrForeignKey; the caller
// must roll back.
func (r *SaleRepo) CreateTx(ctx context.Context, tx *sql.Tx, sale *model.Sale) error {
	const q = `INSERT INTO boletos
		(numero_boleto, tipo, ruta, fecha_ida, fecha_retorno,
		 monto_neto, fee_emision, monto_venta, utilidad, fee_comision,
		 aerolinea_id, cliente_id, localizador_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var numero sql.NullString
	if sale.NumeroBoleto != nil && *sale.NumeroBoleto != "" {
		numero = sql.NullString{String: *sale.NumeroBoleto, Valid: true}
	}
	var retorno sql.NullTime
	if sale.FechaRetorno != nil {
		retorno = sql.NullTime{Time: *sale.FechaRetorno, Valid: true}
	}

	res, err := tx.ExecContext(ctx, q,
		numero, sale.Tipo, sale.Ruta, sale.FechaIda, retorno,
		sale.MontoNeto, sale.FeeEmision, sale.MontoVenta, sale.Utilidad, sale.FeeComision,
		sale.AirlineID, sale.ClientID, sale.Localizador,
	)
	if err != nil {
		if isFKViolation(err) {
			return ErrForeignKey
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	sale.ID = uint64(id)
	return nil
}

// ListViews returns the sales report: every boleto joined with the passenger
// name, airline name and locator, newest transaction first. LEFT JOINs keep
// a sale visible even after its client, airline or reservation row was
// removed by an admin, preserving history over strict referential display.
func (r *SaleRepo) ListViews(ctx context.Context) ([]model.SaleView, error) {
	const q = `SELECT
			b.id_transaccion,
			r.localizador,
			b.numero_boleto,
			CONCAT(c.nombre, ' ', c.apellido) AS pasajero,
			a.nombre AS aerolinea,
			b.ruta,
			b.fecha_ida,
			b.monto_venta,
			b.utilidad,
			b.fee_comision
		FROM boletos b
		LEFT JOIN clientes c ON b.cliente_id = c.id_cliente
		LEFT JOIN aerolineas a ON b.aerolinea_id = a.id_aerolinea
		LEFT JOIN reservas r ON b.localizador_id = r.localizador
		ORDER BY b.id_transaccion DESC`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SaleView, 0)
	for rows.Next() {
		var (
			v        model.SaleView
			loc      sql.NullString
			numero   sql.NullString
			pasajero sql.NullString
			linea    sql.NullString
			ida      sql.NullTime
		)
		if err := rows.Scan(&v.ID, &loc, &numero, &pasajero, &linea,
			&v.Ruta, &ida, &v.MontoVenta, &v.Utilidad, &v.FeeComision); err != nil {
			return nil, err
		}
		if loc.Valid {
			s := loc.String
			v.Localizador = &s
		}
		if numero.Valid {
			s := numero.String
			v.NumeroBoleto = &s
		}
		if pasajero.Valid {
			s := pasajero.String
			v.Pasajero = &s
		}
		if linea.Valid {
			s := linea.String
			v.Aerolinea = &s
		}
		if ida.Valid {
			v.FechaIda = ida.Time.Format("2006-01-02")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
