package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strokerox/agenciaHG/internal/queue"
	"github.com/strokerox/agenciaHG/internal/repository"
	"github.com/strokerox/agenciaHG/internal/service"
)

func newSaleHandlerWithMock(t *testing.T) (*SaleHandler, sqlmock.Sqlmock, *[]queue.SaleRecordedEvent) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sales := repository.NewSaleRepo(db)
	recorder := service.NewSaleRecorder(db, repository.NewReservationRepo(db), sales,
		decimal.RequireFromString("0.20"))

	h := NewSaleHandler(recorder, sales)
	published := &[]queue.SaleRecordedEvent{}
	h.publish = func(_ context.Context, ev queue.SaleRecordedEvent) error {
		*published = append(*published, ev)
		return nil
	}
	return h, mock, published
}

func TestSaleCreateReturnsComputedAmounts(t *testing.T) {
	h, mock, published := newSaleHandlerWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT localizador, fecha_venta FROM reservas").
		WillReturnRows(sqlmock.NewRows([]string{"localizador", "fecha_venta"}))
	mock.ExpectExec("INSERT INTO reservas").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO boletos").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body := `{"ruta":"SDQ-MIA","fecha_ida":"2026-09-15","monto_neto":"500",
		"fee_emision":50,"monto_venta":"800","aerolinea_id":1,"cliente_id":2,
		"localizador":"NEW1"}`
	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"utilidad":"250"`)
	assert.Contains(t, rec.Body.String(), `"comision":"50"`)

	require.Len(t, *published, 1)
	assert.Equal(t, "NEW1", (*published)[0].Localizador)
	assert.Equal(t, "250", (*published)[0].Utilidad)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleCreateRejectsMissingFields(t *testing.T) {
	h, mock, published := newSaleHandlerWithMock(t)

	body := `{"monto_venta":"800","aerolinea_id":1,"cliente_id":2}`
	req := httptest.NewRequest(http.MethodPost, "/sales", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, *published, "no event for a rejected sale")
	assert.NoError(t, mock.ExpectationsWereMet(), "validation must reject before any store access")
}
