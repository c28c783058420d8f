package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOrCreateTxExistingLocator(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sold := time.Date(2026, 7, 1, 9, 30, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WithArgs("ABC123").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}).AddRow("ABC123", sold))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewReservationRepo(db)
	res, err := repo.FindOrCreateTx(context.Background(), tx, "ABC123")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	// Idempotent: the original sale date comes back untouched.
	assert.Equal(t, "ABC123", res.Localizador)
	assert.Equal(t, sold, res.FechaVenta)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateTxInsertsNewLocator(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WithArgs("NEW1").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}))
	mock.ExpectExec("INSERT INTO reservas").
		WithArgs("NEW1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewReservationRepo(db)
	res, err := repo.FindOrCreateTx(context.Background(), tx, "NEW1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, "NEW1", res.Localizador)
	assert.WithinDuration(t, time.Now().UTC(), res.FechaVenta, time.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateTxDuplicateRaceRereads(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	winner := time.Date(2026, 7, 2, 14, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WithArgs("RACE1").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}))
	mock.ExpectExec("INSERT INTO reservas").
		WithArgs("RACE1", sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062: Duplicate entry 'RACE1' for key 'reservas.PRIMARY'"))
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WithArgs("RACE1").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}).AddRow("RACE1", winner))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := NewReservationRepo(db)
	res, err := repo.FindOrCreateTx(context.Background(), tx, "RACE1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	// The concurrent writer won; we adopt its row.
	assert.Equal(t, winner, res.FechaVenta)
	assert.NoError(t, mock.ExpectationsWereMet())
}
