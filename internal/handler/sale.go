package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/strokerox/agenciaHG/internal/queue"
	"github.com/strokerox/agenciaHG/internal/repository"
	"github.com/strokerox/agenciaHG/internal/service"
)

// SaleHandler exposes sale registration and the joined sales report. The
// computation and transaction live in service.SaleRecorder; this layer only
// binds, translates errors to status codes and fires the post-commit event.
type SaleHandler struct {
	Recorder *service.SaleRecorder
	Sales    *repository.SaleRepo

	// publish sends the post-commit event; swapped out in tests.
	publish func(context.Context, queue.SaleRecordedEvent) error
}

func NewSaleHandler(recorder *service.SaleRecorder, sales *repository.SaleRepo) *SaleHandler {
	if recorder == nil || sales == nil {
		panic("nil dependency passed to NewSaleHandler")
	}
	return &SaleHandler{Recorder: recorder, Sales: sales, publish: queue.PublishSaleRecorded}
}

// Create handles POST /sales. On success it answers 201 with the computed
// utilidad and comision so the form shows them without re-querying.
func (h *SaleHandler) Create(c echo.Context) error {
	var in service.SaleInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	res, err := h.Recorder.Record(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if errors.Is(err, repository.ErrForeignKey) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "unknown cliente_id or aerolinea_id"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to register sale"})
	}

	// The sale is committed; the event is best-effort.
	_ = h.publish(ctx, queue.SaleRecordedEvent{
		TransactionID: res.TransactionID,
		Localizador:   in.Localizador,
		NumeroBoleto:  in.NumeroBoleto,
		Tipo:          in.Tipo,
		Ruta:          in.Ruta,
		ClienteID:     in.ClienteID,
		AerolineaID:   in.AerolineaID,
		MontoVenta:    res.MontoVenta.String(),
		Utilidad:      res.Utilidad.String(),
		FeeComision:   res.Comision.String(),
		RecordedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"msg":      "venta registrada",
		"utilidad": res.Utilidad,
		"comision": res.Comision,
	})
}

// List handles GET /sales: the four-table join, newest transaction first.
func (h *SaleHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	views, err := h.Sales.ListViews(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load sales"})
	}
	return c.JSON(http.StatusOK, views)
}
