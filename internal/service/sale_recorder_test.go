package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokerox/agenciaHG/internal/repository"
)

func newRecorderWithMock(t *testing.T) (*SaleRecorder, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rec := NewSaleRecorder(db,
		repository.NewReservationRepo(db),
		repository.NewSaleRepo(db),
		decimal.RequireFromString("0.20"))
	return rec, mock
}

func validInput() SaleInput {
	return SaleInput{
		NumeroBoleto: "0012345678901",
		Tipo:         "BOLETO",
		Ruta:         "MIA-BOG-MIA",
		FechaIda:     "2026-09-15",
		FechaRetorno: "2026-09-22",
		MontoNeto:    "500",
		FeeEmision:   "50",
		MontoVenta:   "800",
		AerolineaID:  1,
		ClienteID:    2,
		Localizador:  "NEW1",
	}
}

func TestRecordNewLocator(t *testing.T) {
	rec, mock := newRecorderWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}))
	mock.ExpectExec("INSERT INTO reservas").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO boletos").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	res, err := rec.Record(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, uint64(7), res.TransactionID)
	assert.True(t, res.Utilidad.Equal(decimal.NewFromInt(250)), "utilidad = %s", res.Utilidad)
	assert.True(t, res.Comision.Equal(decimal.NewFromInt(50)), "comision = %s", res.Comision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordExistingLocatorSkipsInsert(t *testing.T) {
	rec, mock := newRecorderWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}).
			AddRow("NEW1", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)))
	mock.ExpectExec("INSERT INTO boletos").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectCommit()

	_, err := rec.Record(context.Background(), validInput())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordUnknownAirlineRollsBack(t *testing.T) {
	rec, mock := newRecorderWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}))
	mock.ExpectExec("INSERT INTO reservas").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO boletos").
		WillReturnError(errors.New("Error 1452: Cannot add or update a child row: a foreign key constraint fails"))
	mock.ExpectRollback()

	in := validInput()
	in.AerolineaID = 99
	_, err := rec.Record(context.Background(), in)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrForeignKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordValidationRejectsBeforeStore(t *testing.T) {
	rec, mock := newRecorderWithMock(t)

	cases := []struct {
		name   string
		mutate func(*SaleInput)
	}{
		{"missing ruta", func(in *SaleInput) { in.Ruta = " " }},
		{"missing localizador", func(in *SaleInput) { in.Localizador = "" }},
		{"missing cliente", func(in *SaleInput) { in.ClienteID = 0 }},
		{"missing aerolinea", func(in *SaleInput) { in.AerolineaID = 0 }},
		{"missing fecha_ida", func(in *SaleInput) { in.FechaIda = "" }},
		{"malformed fecha_ida", func(in *SaleInput) { in.FechaIda = "15/09/2026" }},
		{"malformed fecha_retorno", func(in *SaleInput) { in.FechaRetorno = "soon" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := rec.Record(context.Background(), in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	// No query, exec or transaction may have reached the store.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildSaleComputation(t *testing.T) {
	rec, _ := newRecorderWithMock(t)

	cases := []struct {
		name     string
		neto     any
		fee      any
		venta    any
		utilidad string
		comision string
	}{
		{"round trip ticket", "500", "50", "800", "250", "50"},
		{"sold below cost", "150", "0", "100", "-50", "-10"},
		{"numbers not strings", float64(500), float64(50), float64(800), "250", "50"},
		{"lenient zero defaults", "", "abc", nil, "0", "0"},
		{"cents stay exact", "100.10", "0.15", "200.28", "100.03", "20.006"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.MontoNeto = tc.neto
			in.FeeEmision = tc.fee
			in.MontoVenta = tc.venta

			sale, err := rec.buildSale(in)
			require.NoError(t, err)

			wantU := decimal.RequireFromString(tc.utilidad)
			wantC := decimal.RequireFromString(tc.comision)
			assert.True(t, sale.Utilidad.Equal(wantU), "utilidad = %s, want %s", sale.Utilidad, wantU)
			assert.True(t, sale.FeeComision.Equal(wantC), "comision = %s, want %s", sale.FeeComision, wantC)
		})
	}
}

func TestBuildSaleDefaultsAndNormalization(t *testing.T) {
	rec, _ := newRecorderWithMock(t)

	in := validInput()
	in.Tipo = ""
	in.NumeroBoleto = "  "
	in.FechaRetorno = ""

	sale, err := rec.buildSale(in)
	require.NoError(t, err)

	assert.Equal(t, "BOLETO", sale.Tipo)
	assert.Nil(t, sale.NumeroBoleto, "blank ticket number must store NULL")
	assert.Nil(t, sale.FechaRetorno, "empty return date must store NULL, not an empty string")
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), sale.FechaIda)
}
