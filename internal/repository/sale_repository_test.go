package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokerox/agenciaHG/internal/model"
)

func TestSaleCreateTxPopulatesID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO boletos").
		WillReturnResult(sqlmock.NewResult(15, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	sale := &model.Sale{
		Tipo:        model.SaleTypeTicket,
		Ruta:        "SDQ-MAD",
		FechaIda:    time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		MontoNeto:   decimal.RequireFromString("500"),
		FeeEmision:  decimal.RequireFromString("50"),
		MontoVenta:  decimal.RequireFromString("800"),
		Utilidad:    decimal.RequireFromString("250"),
		FeeComision: decimal.RequireFromString("50"),
		AirlineID:   1,
		ClientID:    2,
		Localizador: "ABC123",
	}
	require.NoError(t, NewSaleRepo(db).CreateTx(context.Background(), tx, sale))
	require.NoError(t, tx.Commit())

	assert.Equal(t, uint64(15), sale.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateTxForeignKeyViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO boletos").
		WillReturnError(errors.New("Error 1452: Cannot add or update a child row: a foreign key constraint fails"))
	mock.ExpectRollback()

	tx, err := db.Begin()
	require.NoError(t, err)

	sale := &model.Sale{Tipo: model.SaleTypeTicket, Ruta: "SDQ-MAD", Localizador: "ABC123"}
	err = NewSaleRepo(db).CreateTx(context.Background(), tx, sale)
	assert.ErrorIs(t, err, ErrForeignKey)
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListViewsOrdersNewestFirstAndSurvivesMissingJoins(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id_transaccion", "localizador", "numero_boleto", "pasajero",
		"aerolinea", "ruta", "fecha_ida", "monto_venta", "utilidad", "fee_comision"}
	mock.ExpectQuery(`ORDER BY b.id_transaccion DESC`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(3, "XYZ9", nil, "ANA GOMEZ", nil, "SDQ-JFK",
				time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), "800.00", "250.00", "50.00").
			AddRow(2, nil, "0011122233344", nil, "AVIANCA", "SDQ-BOG",
				time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), "300.00", "-20.00", "-4.00"))

	views, err := NewSaleRepo(db).ListViews(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, uint64(3), views[0].ID)
	assert.Equal(t, uint64(2), views[1].ID)

	// Deleted airline and client rows leave nils, not errors.
	assert.Nil(t, views[0].Aerolinea)
	assert.Nil(t, views[1].Pasajero)
	assert.Nil(t, views[1].Localizador)
	require.NotNil(t, views[0].Pasajero)
	assert.Equal(t, "ANA GOMEZ", *views[0].Pasajero)
	assert.Equal(t, "2026-09-01", views[0].FechaIda)
	assert.True(t, views[1].Utilidad.Equal(decimal.RequireFromString("-20")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
