package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/strokerox/agenciaHG/internal/repository"
)

// AirlineHandler serves the read-only aerolineas directory.
type AirlineHandler struct {
	Airlines *repository.AirlineRepo
}

func NewAirlineHandler(airlines *repository.AirlineRepo) *AirlineHandler {
	if airlines == nil {
		panic("nil repository passed to NewAirlineHandler")
	}
	return &AirlineHandler{Airlines: airlines}
}

// List handles GET /airlines.
func (h *AirlineHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	airlines, err := h.Airlines.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load airlines"})
	}
	return c.JSON(http.StatusOK, airlines)
}
